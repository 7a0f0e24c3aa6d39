package notoize

import (
	"testing"

	"github.com/npillmayer/notoize/catalog"
	"github.com/npillmayer/notoize/uscript"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestResolveDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.resolve")
	defer teardown()
	//
	cases := []struct {
		sc   uscript.Script
		conf Config
		want catalog.FontVariant
	}{
		{uscript.LGC, NewSans(), catalog.Sans},
		{uscript.LGC, PreferSerif(), catalog.Serif},
		{uscript.Arabic, NewSans(), catalog.SansArabic},
		{uscript.Arabic, PreferSerif(), catalog.NaskhArabic},
		{uscript.CJK, NewSans(), catalog.SansCJKSC},
		{uscript.Hebrew, PreferSerif(), catalog.SerifHebrew},
		{uscript.Thai, NewSans(), catalog.SansThai},
		{uscript.Thai, PreferSerif(), catalog.SerifThai},
	}
	for _, c := range cases {
		v, fb, err := resolve(c.sc, 0, c.conf)
		if err != nil {
			t.Fatalf("resolution of %s failed: %v", c.sc, err)
		}
		if v != c.want || fb != nil {
			t.Errorf("expected %s to resolve to %s, have %s (fallback %v)",
				c.sc, c.want, v, fb)
		}
	}
}

func TestResolveSingleMembership(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.resolve")
	defer teardown()
	//
	// Every script must resolve to exactly one member of its own variant set,
	// on both sides of the style preference.
	for _, sc := range uscript.All() {
		for _, conf := range []Config{NewSans(), PreferSerif()} {
			v, _, err := resolve(sc, 0, conf)
			if err != nil {
				t.Fatalf("resolution of %s failed: %v", sc, err)
			}
			if !catalog.Member(sc, v) {
				t.Errorf("script %s resolved to %s, not one of its variants", sc, v)
			}
		}
	}
}

func TestResolveOverridePrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.resolve")
	defer teardown()
	//
	conf := PreferSerif() // must not matter: the override list wins
	conf.Arabic = []catalog.FontVariant{catalog.KufiArabic, catalog.NastaliqUrdu}
	v, fb, err := resolve(uscript.Arabic, 'ب', conf)
	if err != nil {
		t.Fatalf("resolution failed: %v", err)
	}
	if v != catalog.KufiArabic || fb != nil {
		t.Errorf("expected the first override entry Kufi, have %s", v)
	}
}

func TestResolveOverrideInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.resolve")
	defer teardown()
	//
	conf := NewSans()
	conf.Hebrew = []catalog.FontVariant{catalog.KufiArabic}
	if _, _, err := resolve(uscript.Hebrew, 'א', conf); err == nil {
		t.Errorf("expected an invalid-override error")
	}
}

func TestResolveThaiLaoCounterparts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.resolve")
	defer teardown()
	//
	conf := NewSans()
	conf.ThaiLao = []catalog.FontVariant{catalog.SansThaiLooped}
	v, _, err := resolve(uscript.Thai, 'ก', conf)
	if err != nil {
		t.Fatalf("resolution failed: %v", err)
	}
	if v != catalog.SansThaiLooped {
		t.Errorf("expected Thai to resolve to the looped Thai face, have %s", v)
	}
	v, _, err = resolve(uscript.Lao, 'ຄ', conf)
	if err != nil {
		t.Fatalf("resolution failed: %v", err)
	}
	if v != catalog.SansLaoLooped {
		t.Errorf("expected Lao to resolve to the looped Lao counterpart, have %s", v)
	}
}

func TestResolveMathSymbolsSplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.resolve")
	defer teardown()
	//
	math := NewSans()
	math.PreferMath = true
	arrow := rune(0x2190)  // dual Math/Symbols
	euro := rune(0x20AC)   // Symbols only
	watch := rune(0x231A)  // Symbols 2 side
	forall := rune(0x2200) // Math only
	//
	if v, _, _ := resolve(uscript.Lookup(arrow), arrow, math); v != catalog.SansMath {
		t.Errorf("expected the arrow to lean Math, have %s", v)
	}
	if v, _, _ := resolve(uscript.Lookup(arrow), arrow, NewSans()); v != catalog.SansSymbols {
		t.Errorf("expected the arrow to resolve to Symbols by default, have %s", v)
	}
	if v, _, _ := resolve(uscript.Lookup(euro), euro, math); v != catalog.SansSymbols {
		t.Errorf("expected the euro sign to stay Symbols under the math flag, have %s", v)
	}
	if v, _, _ := resolve(uscript.Lookup(watch), watch, math); v != catalog.SansSymbols2 {
		t.Errorf("expected the watch symbol on the Symbols 2 side, have %s", v)
	}
	if v, _, _ := resolve(uscript.Lookup(forall), forall, NewSans()); v != catalog.SansMath {
		t.Errorf("expected the quantifier to resolve to Math regardless of the flag, have %s", v)
	}
}

func TestResolveNoSerifFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.resolve")
	defer teardown()
	//
	v, fb, err := resolve(uscript.Bamum, 0xA6A0, PreferSerif())
	if err != nil {
		t.Fatalf("resolution failed: %v", err)
	}
	if v != catalog.SansBamum {
		t.Errorf("expected Bamum to fall back to its sans face, have %s", v)
	}
	if fb == nil || fb.Script != uscript.Bamum || fb.Requested != catalog.PreferSerif {
		t.Errorf("expected the fallback to be recorded, have %v", fb)
	}
	//
	// And the mirror case: a serif-only script under sans preference.
	v, fb, err = resolve(uscript.Tibetan, 0x0F40, NewSans())
	if err != nil {
		t.Fatalf("resolution failed: %v", err)
	}
	if v != catalog.SerifTibetan || fb == nil {
		t.Errorf("expected Tibetan to fall back to its serif face, have %s (fallback %v)", v, fb)
	}
}

func TestResolveSymbolsSerifFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.resolve")
	defer teardown()
	//
	// The Symbols pseudo-script has sans faces only; a serif preference must
	// record the substitution just like any sans-only script does.
	euro := rune(0x20AC)
	v, fb, err := resolve(uscript.Symbols, euro, PreferSerif())
	if err != nil {
		t.Fatalf("resolution failed: %v", err)
	}
	if v != catalog.SansSymbols {
		t.Errorf("expected the euro sign to fall back to Sans Symbols, have %s", v)
	}
	if fb == nil || fb.Script != uscript.Symbols || fb.Requested != catalog.PreferSerif ||
		fb.Variant != catalog.SansSymbols {
		t.Errorf("expected the fallback to be recorded, have %v", fb)
	}
	//
	// The Symbols 2 side and the Math lean fall back the same way.
	watch := rune(0x231A)
	if _, fb, _ := resolve(uscript.Symbols, watch, PreferSerif()); fb == nil {
		t.Errorf("expected a recorded fallback on the Symbols 2 side")
	}
	conf := PreferSerif()
	conf.PreferMath = true
	arrow := rune(0x2190)
	if v, fb, _ := resolve(uscript.Symbols, arrow, conf); v != catalog.SansMath || fb == nil {
		t.Errorf("expected the arrow to lean Math with a recorded fallback, have %s (%v)", v, fb)
	}
	//
	// Under sans preference nothing is substituted.
	if _, fb, _ := resolve(uscript.Symbols, euro, NewSans()); fb != nil {
		t.Errorf("expected no fallback under sans preference, have %v", fb)
	}
	//
	// And the diagnostic surfaces through a whole pass.
	res, err := Stack("€", PreferSerif())
	if err != nil {
		t.Fatalf("resolution failed: %v", err)
	}
	if len(res.Fallbacks) != 1 || res.Fallbacks[0].Script != uscript.Symbols {
		t.Errorf("expected one Symbols fallback in the result, have %v", res.Fallbacks)
	}
}
