package catalog

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFilenames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.catalog")
	defer teardown()
	//
	cases := []struct {
		v    FontVariant
		want string
	}{
		{SansArabic, "NotoSansArabic-Regular.ttf"},
		{KufiArabic, "NotoKufiArabic-Regular.ttf"},
		{SansCJKSC, "NotoSansCJKsc-Regular.otf"},
		{SansCJKHK, "NotoSansCJKhk-Regular.otf"},
		{ColorEmoji, "NotoColorEmoji.ttf"},
		{SansOldSouthArabian, "NotoSansOldSouthArabian-Regular.ttf"},
		{SansZanabazar, "NotoSansZanabazarSquare-Regular.ttf"},
		{SansSymbols2, "NotoSansSymbols2-Regular.ttf"},
		{ZnamennyMusicalNotation, "NotoZnamennyMusicalNotation-Regular.ttf"},
	}
	for _, c := range cases {
		if f := c.v.Filename(); f != c.want {
			t.Errorf("expected filename %q for %s, have %q", c.want, c.v, f)
		}
	}
}

func TestFilenamesTotal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.catalog")
	defer teardown()
	//
	for v := NoVariant + 1; v < variantCount; v++ {
		f := v.Filename()
		if !strings.HasPrefix(f, "Noto") {
			t.Errorf("variant %s has suspect filename %q", v, f)
		}
		if !strings.HasSuffix(f, ".ttf") && !strings.HasSuffix(f, ".otf") {
			t.Errorf("variant %s has suspect filename %q", v, f)
		}
	}
}

func TestRepoPaths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.catalog")
	defer teardown()
	//
	cases := []struct {
		v    FontVariant
		want string
	}{
		{SansArabic, "fonts/NotoSansArabic/hinted/ttf/NotoSansArabic-Regular.ttf"},
		{SansCJKSC, "Sans/OTF/SimplifiedChinese/NotoSansCJKsc-Regular.otf"},
		{SansCJKJP, "Sans/OTF/Japanese/NotoSansCJKjp-Regular.otf"},
		{ColorEmoji, "fonts/NotoColorEmoji.ttf"},
	}
	for _, c := range cases {
		if p := c.v.RepoPath(); p != c.want {
			t.Errorf("expected repo path %q for %s, have %q", c.want, c.v, p)
		}
	}
}
