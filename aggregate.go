package notoize

import (
	"github.com/npillmayer/notoize/catalog"
	"github.com/npillmayer/notoize/uscript"
)

// Result is the outcome of one resolution pass. Fonts lists the required
// variants in first-occurrence order without duplicates. Uncovered collects
// the scalar values no known script claims, again deduplicated in
// first-occurrence order; they are reported, never silently dropped.
// Fallbacks records every script for which the requested style side had no
// default. Map assigns each distinct input codepoint its resolved variant.
type Result struct {
	Fonts     []catalog.FontVariant
	Uncovered []rune
	Fallbacks []Fallback
	Map       map[rune]catalog.FontVariant
}

// FontRef describes a resolved font as clients consume it: the family name,
// the release file name, and the file's path within its release repository.
type FontRef struct {
	Name     string
	Filename string
	RepoPath string
}

// Stack resolves the minimal Noto font stack covering text. The pass is
// total: every scalar value of the input is consumed, unresolvable ones end
// up in Result.Uncovered. The only error condition is an invalid override
// configuration.
func Stack(text string, conf Config) (*Result, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	res := &Result{Map: make(map[rune]catalog.FontVariant)}
	seen := make(map[catalog.FontVariant]bool)
	uncovered := make(map[rune]bool)
	fellback := make(map[uscript.Script]bool)
	for _, r := range text {
		sc := uscript.Lookup(r)
		if sc == uscript.Unclassified {
			if !uncovered[r] {
				uncovered[r] = true
				res.Uncovered = append(res.Uncovered, r)
			}
			continue
		}
		v, fb, err := resolve(sc, r, conf)
		if err != nil {
			return nil, err // unreachable after Validate, kept for safety
		}
		res.Map[r] = v
		if fb != nil && !fellback[fb.Script] {
			fellback[fb.Script] = true
			res.Fallbacks = append(res.Fallbacks, *fb)
		}
		if !seen[v] {
			seen[v] = true
			res.Fonts = append(res.Fonts, v)
		}
	}
	tracer().Infof("resolved %d fonts for %d distinct codepoints, %d uncovered",
		len(res.Fonts), len(res.Map), len(res.Uncovered))
	return res, nil
}

// Scripts returns the scripts covered by the resolved stack, deduplicated in
// stack order.
func (res *Result) Scripts() []uscript.Script {
	return catalog.ScriptsOf(res.Fonts)
}

// Names returns the compact font identifiers of the stack, e.g.
// ["NotoSans" "NotoSansArabic"].
func (res *Result) Names() []string {
	names := make([]string, len(res.Fonts))
	for i, v := range res.Fonts {
		names[i] = v.String()
	}
	return names
}

// Files returns the stack as font file references, ready for a client to
// locate the binaries in the Noto release repositories.
func (res *Result) Files() []FontRef {
	refs := make([]FontRef, len(res.Fonts))
	for i, v := range res.Fonts {
		refs[i] = FontRef{
			Name:     v.Name(),
			Filename: v.Filename(),
			RepoPath: v.RepoPath(),
		}
	}
	return refs
}

// MissingVariants lists catalog members of the covered scripts which the
// stack does not include, a diagnostic for clients maintaining a font
// inventory.
func (res *Result) MissingVariants() []catalog.FontVariant {
	return catalog.MissingVariants(res.Fonts)
}
