package notoize

import (
	"errors"
	"testing"

	"github.com/npillmayer/notoize/catalog"
	"github.com/npillmayer/notoize/uscript"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestConfigPresets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.resolve")
	defer teardown()
	//
	if conf := NewSans(); conf.Style != catalog.PreferSans || conf.PreferMath {
		t.Errorf("unexpected sans preset %v", conf)
	}
	if conf := PreferSerif(); conf.Style != catalog.PreferSerif {
		t.Errorf("unexpected serif preset %v", conf)
	}
	var zero Config
	if zero.Style != catalog.PreferSans || zero.PreferMath {
		t.Errorf("expected the zero config to equal the sans preset")
	}
}

func TestConfigValidate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.resolve")
	defer teardown()
	//
	conf := NewSans()
	conf.Arabic = []catalog.FontVariant{catalog.KufiArabic, catalog.NastaliqUrdu}
	conf.ThaiLao = []catalog.FontVariant{catalog.SansLaoLooped}
	if err := conf.Validate(); err != nil {
		t.Errorf("expected config to validate, got %v", err)
	}
	//
	conf.Hebrew = []catalog.FontVariant{catalog.KufiArabic} // wrong script
	err := conf.Validate()
	var inval InvalidOverrideError
	if !errors.As(err, &inval) {
		t.Fatalf("expected an invalid-override error, got %v", err)
	}
	if inval.Script != uscript.Hebrew || inval.Variant != catalog.KufiArabic {
		t.Errorf("unexpected error detail %v", inval)
	}
}

func TestConfigZeroValueIsUsable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.resolve")
	defer teardown()
	//
	var conf Config
	res, err := Stack("abc", conf)
	if err != nil {
		t.Fatalf("resolution failed: %v", err)
	}
	if len(res.Fonts) != 1 || res.Fonts[0] != catalog.Sans {
		t.Errorf("expected [NotoSans], have %v", res.Fonts)
	}
}
