package uscript

import (
	"testing"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestScriptNamesComplete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.uscript")
	defer teardown()
	//
	for sc := Unclassified; sc < scriptCount; sc++ {
		if _, ok := scriptNames[sc]; !ok {
			t.Errorf("script %d has no name entry", sc)
		}
	}
	if len(scriptNames) != int(scriptCount) {
		t.Errorf("expected %d script names, have %d", scriptCount, len(scriptNames))
	}
}

func TestParseScriptRoundtrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.uscript")
	defer teardown()
	//
	for _, sc := range All() {
		parsed, ok := ParseScript(sc.String())
		if !ok || parsed != sc {
			t.Errorf("expected %q to parse back to script %d, have %d (ok=%v)",
				sc.String(), sc, parsed, ok)
		}
	}
	if _, ok := ParseScript("Klingon"); ok {
		t.Errorf("expected unknown script name to fail parsing")
	}
}

func TestAllExcludesUnclassified(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.uscript")
	defer teardown()
	//
	scripts := All()
	if len(scripts) != int(scriptCount)-1 {
		t.Errorf("expected %d scripts, have %d", int(scriptCount)-1, len(scripts))
	}
	for _, sc := range scripts {
		if sc == Unclassified {
			t.Errorf("All() must not contain Unclassified")
		}
	}
}

func TestScriptTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noto.uscript")
	defer teardown()
	//
	for _, sc := range All() {
		if sc.Tag() == language.Unknown {
			t.Errorf("script %s has no ISO 15924 tag", sc)
		}
	}
	if Unclassified.Tag() != language.Unknown {
		t.Errorf("expected Unclassified to map to the unknown tag")
	}
	if Arabic.Tag() != language.Arabic {
		t.Errorf("expected Arabic to map to language.Arabic")
	}
}
