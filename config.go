package notoize

import (
	"fmt"

	"github.com/npillmayer/notoize/catalog"
	"github.com/npillmayer/notoize/uscript"
)

// Config is the caller-supplied preference set for a resolution pass. The
// zero value is usable and equals NewSans(). A Config is a value type and is
// never mutated by the engine; one Config may serve any number of concurrent
// Stack calls.
//
// The per-script fields are ordered priority lists of stylistic alternates:
// the first list entry which is a member of the script's catalog wins,
// overriding both the script default and the global Style. Thai and Lao share
// one axis (ThaiLao) because their Noto families come in matching looped and
// loopless styles; a Thai variant listed there applies to Lao codepoints as
// its same-style Lao counterpart, and vice versa.
type Config struct {
	Style      catalog.Serifness // global sans/serif preference
	PreferMath bool              // dual Math/Symbols codepoints lean Math

	Adlam   []catalog.FontVariant
	Nko     []catalog.FontVariant
	Arabic  []catalog.FontVariant
	Hebrew  []catalog.FontVariant
	Khitan  []catalog.FontVariant
	Nushu   []catalog.FontVariant
	Syriac  []catalog.FontVariant
	ThaiLao []catalog.FontVariant
}

// NewSans returns the default configuration: sans-serif preference, no math
// leaning, no overrides.
func NewSans() Config {
	return Config{Style: catalog.PreferSans}
}

// PreferSerif returns a configuration preferring the serif side of every
// family which has one, with no overrides.
func PreferSerif() Config {
	return Config{Style: catalog.PreferSerif}
}

// InvalidOverrideError reports a configuration override entry naming a font
// variant which is not a member of the script the list is for.
type InvalidOverrideError struct {
	Script  uscript.Script
	Variant catalog.FontVariant
}

func (e InvalidOverrideError) Error() string {
	return fmt.Sprintf("override variant %s is not a member of script %s",
		e.Variant, e.Script)
}

// overrideAxes pairs each override list with the scripts it governs. ThaiLao
// appears twice, once per script.
func (c Config) overrideAxes() []struct {
	script uscript.Script
	list   []catalog.FontVariant
} {
	return []struct {
		script uscript.Script
		list   []catalog.FontVariant
	}{
		{uscript.Adlam, c.Adlam},
		{uscript.Nko, c.Nko},
		{uscript.Arabic, c.Arabic},
		{uscript.Hebrew, c.Hebrew},
		{uscript.Khitan, c.Khitan},
		{uscript.Nushu, c.Nushu},
		{uscript.Syriac, c.Syriac},
		{uscript.Thai, c.ThaiLao},
		{uscript.Lao, c.ThaiLao},
	}
}

// overrideFor returns the override list governing a script, or nil.
func (c Config) overrideFor(sc uscript.Script) []catalog.FontVariant {
	switch sc {
	case uscript.Adlam:
		return c.Adlam
	case uscript.Nko:
		return c.Nko
	case uscript.Arabic:
		return c.Arabic
	case uscript.Hebrew:
		return c.Hebrew
	case uscript.Khitan:
		return c.Khitan
	case uscript.Nushu:
		return c.Nushu
	case uscript.Syriac:
		return c.Syriac
	case uscript.Thai, uscript.Lao:
		return c.ThaiLao
	}
	return nil
}

// Validate checks every override list against the catalog and returns an
// InvalidOverrideError for the first entry which does not belong to the
// script governed by its list. Stack validates implicitly, but callers
// constructing a Config up front should validate once and fail fast instead
// of mid-scan.
func (c Config) Validate() error {
	for _, axis := range c.overrideAxes() {
		for _, v := range axis.list {
			if !axisMember(axis.script, v) {
				return InvalidOverrideError{Script: axis.script, Variant: v}
			}
		}
	}
	return nil
}

// axisMember reports whether v belongs to the override axis of script sc. For
// Thai and Lao this accepts members of either script, as the shared ThaiLao
// list may mix them.
func axisMember(sc uscript.Script, v catalog.FontVariant) bool {
	if sc == uscript.Thai || sc == uscript.Lao {
		return catalog.Member(uscript.Thai, v) || catalog.Member(uscript.Lao, v)
	}
	return catalog.Member(sc, v)
}
