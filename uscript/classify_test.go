package uscript

import (
	"testing"
	"unicode"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLookupTotality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.uscript")
	defer teardown()
	//
	counts := make(map[Script]int)
	for r := rune(0); r <= unicode.MaxRune; r++ {
		counts[Lookup(r)]++
	}
	if counts[LGC] == 0 || counts[Arabic] == 0 || counts[CJK] == 0 {
		t.Errorf("expected LGC, Arabic and CJK to classify codepoints, have %v", counts)
	}
	if counts[Unclassified] == 0 {
		t.Errorf("expected unassigned codepoints to remain unclassified")
	}
	t.Logf("classified %d scripts", len(counts))
}

func TestLookupKnownCodepoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.uscript")
	defer teardown()
	//
	cases := []struct {
		r  rune
		sc Script
	}{
		{'a', LGC},
		{'Ω', LGC},
		{'д', LGC},
		{' ', LGC},    // Common folds into LGC
		{0x0301, LGC}, // combining acute, Inherited folds into LGC
		{'ب', Arabic},
		{'א', Hebrew},
		{'ก', Thai},
		{'ຄ', Lao},
		{0x1E900, Adlam},
		{0x07CA, Nko},
		{0x0712, Syriac},
		{0x18B00, Khitan},
		{0x1B170, Nushu},
		{0xA6A0, Bamum},
		{'中', CJK},
		{'あ', CJK},
		{'한', CJK},
		{0x2200, Math},    // for-all quantifier
		{0x1D538, Math},   // double-struck A
		{0x2190, Symbols}, // leftwards arrow
		{0x20AC, Symbols}, // euro sign
		{0x231A, Symbols}, // watch, Symbols 2 side
		{0x1D11E, Music},  // musical G clef
		{0x1CF00, Znamenny},
		{0x1D2E0, MayanNumerals},
		{0x1EC71, IndicSiyaqNumbers},
		{0x1ED01, OttomanSiyaqNumbers},
		{0x1F600, Emoji},
		{0x0BE6, Tamil},
		{0x11FC0, TamilSupplement},
		{0x10D00, HanifiRohingya},
		{0x1E100, NyiakengPuachueHmong},
		{0xD800, Unclassified},  // surrogate
		{0x0530, Unclassified},  // unassigned
		{0x10FFFF, Unclassified},
	}
	for _, c := range cases {
		if sc := Lookup(c.r); sc != c.sc {
			t.Errorf("expected U+%04X to classify as %s, is %s", c.r, c.sc, sc)
		}
	}
}

func TestBlockTablePrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.uscript")
	defer teardown()
	//
	// U+2100 is a Common codepoint and would fold into LGC; the coverage
	// table claims it for Symbols.
	if sc := Lookup(0x2100); sc != Symbols {
		t.Errorf("expected U+2100 to classify as Symbols, is %s", sc)
	}
	// Tamil Supplement overrides the Tamil script property.
	if sc := Lookup(0x11FD0); sc != TamilSupplement {
		t.Errorf("expected U+11FD0 to classify as Tamil Supplement, is %s", sc)
	}
}

func TestDualMathSymbolsCount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.uscript")
	defer teardown()
	//
	count := 0
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if IsDualMathSymbols(r) {
			count++
			if Lookup(r) != Symbols {
				t.Errorf("expected dual codepoint U+%04X to classify as Symbols", r)
			}
		}
	}
	if count != 222 {
		t.Errorf("expected 222 dual Math/Symbols codepoints, have %d", count)
	}
}

func TestSymbols2Split(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.uscript")
	defer teardown()
	//
	if !IsSymbols2(0x2800) { // braille
		t.Errorf("expected braille patterns on the Symbols 2 side")
	}
	if IsSymbols2(0x20AC) { // euro sign
		t.Errorf("expected currency symbols on the Symbols side")
	}
	if IsSymbols2(0x2190) || !IsDualMathSymbols(0x2190) {
		t.Errorf("expected arrows to be dual Math/Symbols, not Symbols 2")
	}
}

func TestLookupAgreesWithTypesetting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.uscript")
	defer teardown()
	//
	// Spot-check the classification table against go-text/typesetting's
	// Unicode script lookup for scripts which map 1:1.
	probes := []rune{'ب', 'א', 'ก', 'ຄ', 0x1E900, 0x07CA, 0x0712, 0x0BE6, 0x10D00}
	for _, r := range probes {
		want := language.LookupScript(r)
		if got := Lookup(r).Tag(); got != want {
			t.Errorf("expected U+%04X to carry ISO tag %v, has %v", r, want, got)
		}
	}
}
