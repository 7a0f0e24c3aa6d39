package notoize

import (
	"github.com/npillmayer/notoize/catalog"
	"github.com/npillmayer/notoize/uscript"
)

// Fallback records that a script had no default for the requested style side
// and the resolver substituted the other side's default. This is a
// diagnostic, not an error.
type Fallback struct {
	Script    uscript.Script
	Requested catalog.Serifness
	Variant   catalog.FontVariant
}

// Thai and Lao style counterparts. The shared ThaiLao override axis lets a
// caller name either side; the resolver translates to the script actually hit.
var laoCounterpart = map[catalog.FontVariant]catalog.FontVariant{
	catalog.SansThai:       catalog.SansLao,
	catalog.SansThaiLooped: catalog.SansLaoLooped,
	catalog.SerifThai:      catalog.SerifLao,
}

var thaiCounterpart = map[catalog.FontVariant]catalog.FontVariant{
	catalog.SansLao:       catalog.SansThai,
	catalog.SansLaoLooped: catalog.SansThaiLooped,
	catalog.SerifLao:      catalog.SerifThai,
}

// resolve selects exactly one font variant for a classified codepoint. It is
// a pure function of script, configuration and, for the dual Math/Symbols
// codepoints only, the codepoint itself.
//
// Resolution order: the per-codepoint Symbols split, then the script's
// override list (first valid entry wins), then the default table with the
// cross-side fallback. The returned Fallback is non-nil exactly when the
// fallback triggered. An error is returned only for an override list with no
// valid entry; sc must not be Unclassified (callers filter those out first).
func resolve(sc uscript.Script, r rune, conf Config) (catalog.FontVariant, *Fallback, error) {
	if sc == uscript.Symbols {
		// Noto Sans Symbols splits its coverage over two fonts, and the
		// arrow/letterlike/superscript blocks are additionally covered by
		// Noto Sans Math. All members are sans faces, so a serif preference
		// falls back and is recorded like any other cross-side substitution.
		v := catalog.SansSymbols
		switch {
		case conf.PreferMath && uscript.IsDualMathSymbols(r):
			v = catalog.SansMath
		case uscript.IsSymbols2(r):
			v = catalog.SansSymbols2
		}
		var fb *Fallback
		if conf.Style == catalog.PreferSerif {
			tracer().Debugf("script %s has no %s default, falling back to %s", sc, conf.Style, v)
			fb = &Fallback{Script: sc, Requested: conf.Style, Variant: v}
		}
		return v, fb, nil
	}
	if ov := conf.overrideFor(sc); len(ov) > 0 {
		for _, v := range ov {
			if !axisMember(sc, v) {
				continue
			}
			return counterpart(sc, v), nil, nil
		}
		return catalog.NoVariant, nil, InvalidOverrideError{Script: sc, Variant: ov[0]}
	}
	if v, ok := catalog.Default(sc, conf.Style); ok {
		return v, nil, nil
	}
	other := catalog.PreferSans
	if conf.Style == catalog.PreferSans {
		other = catalog.PreferSerif
	}
	v, ok := catalog.Default(sc, other)
	if !ok {
		// cannot happen: every script carries a default on at least one side
		return catalog.NoVariant, nil, nil
	}
	tracer().Debugf("script %s has no %s default, falling back to %s", sc, conf.Style, v)
	return v, &Fallback{Script: sc, Requested: conf.Style, Variant: v}, nil
}

// counterpart translates an override choice across the Thai/Lao axis if the
// chosen variant belongs to the sibling script.
func counterpart(sc uscript.Script, v catalog.FontVariant) catalog.FontVariant {
	switch sc {
	case uscript.Thai:
		if c, ok := thaiCounterpart[v]; ok && v.Script() == uscript.Lao {
			return c
		}
	case uscript.Lao:
		if c, ok := laoCounterpart[v]; ok && v.Script() == uscript.Thai {
			return c
		}
	}
	return v
}
