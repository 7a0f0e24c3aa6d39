package notoize

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/notoize/catalog"
	"github.com/npillmayer/notoize/uscript"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type StackTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestStackFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.resolve")
	defer teardown()
	suite.Run(t, new(StackTestEnviron))
}

// run once, before test suite methods
func (env *StackTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("noto.resolve").SetTraceLevel(tracing.LevelInfo)
}

// --- Tests -----------------------------------------------------------------

func (env *StackTestEnviron) TestDedupAndOrder() {
	res, err := Stack("aأb", NewSans())
	env.NoError(err)
	env.Equal([]catalog.FontVariant{catalog.Sans, catalog.SansArabic}, res.Fonts,
		"expected exactly two fonts in first-occurrence order")
	env.Empty(res.Uncovered)
	env.Empty(res.Fallbacks)
}

func (env *StackTestEnviron) TestNames() {
	res, err := Stack("aأ", NewSans())
	env.NoError(err)
	env.Equal([]string{"NotoSans", "NotoSansArabic"}, res.Names())
}

func (env *StackTestEnviron) TestFiles() {
	res, err := Stack("中", NewSans())
	env.NoError(err)
	files := res.Files()
	env.Len(files, 1)
	env.Equal("Noto Sans CJK SC", files[0].Name)
	env.Equal("NotoSansCJKsc-Regular.otf", files[0].Filename)
	env.Equal("Sans/OTF/SimplifiedChinese/NotoSansCJKsc-Regular.otf", files[0].RepoPath)
}

func (env *StackTestEnviron) TestUncoveredReported() {
	res, err := Stack("a\u0530b\u0530", NewSans()) // U+0530 is unassigned
	env.NoError(err)
	env.Equal([]catalog.FontVariant{catalog.Sans}, res.Fonts)
	env.Equal([]rune{0x0530}, res.Uncovered, "expected the unassigned codepoint once")
}

func (env *StackTestEnviron) TestFallbackReported() {
	res, err := Stack("aꚠ", PreferSerif()) // Bamum has no serif face
	env.NoError(err)
	env.Equal([]catalog.FontVariant{catalog.Serif, catalog.SansBamum}, res.Fonts)
	env.Len(res.Fallbacks, 1)
	env.Equal(uscript.Bamum, res.Fallbacks[0].Script)
}

func (env *StackTestEnviron) TestPerCodepointMap() {
	res, err := Stack("aأ", NewSans())
	env.NoError(err)
	env.Equal(catalog.Sans, res.Map['a'])
	env.Equal(catalog.SansArabic, res.Map['أ'])
}

func (env *StackTestEnviron) TestScriptsAndMissing() {
	res, err := Stack("กข", NewSans())
	env.NoError(err)
	env.Equal([]uscript.Script{uscript.Thai}, res.Scripts())
	env.Equal([]catalog.FontVariant{catalog.SansThaiLooped, catalog.SerifThai},
		res.MissingVariants())
}

func (env *StackTestEnviron) TestInvalidOverrideFailsFast() {
	conf := NewSans()
	conf.Nushu = []catalog.FontVariant{catalog.SansThai}
	res, err := Stack("abc", conf) // error even though no Nushu character occurs
	env.Error(err)
	env.Nil(res)
}

func (env *StackTestEnviron) TestEmptyInput() {
	res, err := Stack("", NewSans())
	env.NoError(err)
	env.Empty(res.Fonts)
	env.Empty(res.Uncovered)
}

// --- Idempotence -----------------------------------------------------------

func TestStackIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.resolve")
	defer teardown()
	//
	text := "Hello, سلام! ∀x∈ℝ: x≤∞ — ฿100 中文 🎉"
	conf := NewSans()
	conf.PreferMath = true
	first, err := Stack(text, conf)
	if err != nil {
		t.Fatalf("resolution failed: %v", err)
	}
	second, err := Stack(text, conf)
	if err != nil {
		t.Fatalf("resolution failed: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("expected identical results, diff:\n%s", diff)
	}
}
