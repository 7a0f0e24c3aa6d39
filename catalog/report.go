package catalog

import (
	"github.com/npillmayer/notoize/uscript"
)

// ScriptsOf returns the scripts covered by a list of variants, deduplicated
// in order of first appearance.
func ScriptsOf(variants []FontVariant) []uscript.Script {
	var scripts []uscript.Script
	seen := make(map[uscript.Script]bool)
	for _, v := range variants {
		sc := v.Script()
		if sc == uscript.Unclassified || seen[sc] {
			continue
		}
		seen[sc] = true
		scripts = append(scripts, sc)
	}
	return scripts
}

// MissingVariants returns the catalog members absent from a list of variants,
// restricted to the scripts the list touches. This is a coverage diagnostic:
// a client holding the listed fonts could additionally install the returned
// ones without widening its script coverage.
func MissingVariants(variants []FontVariant) []FontVariant {
	have := make(map[FontVariant]bool, len(variants))
	for _, v := range variants {
		have[v] = true
	}
	var missing []FontVariant
	for _, sc := range ScriptsOf(variants) {
		for _, m := range Variants(sc) {
			if !have[m] {
				missing = append(missing, m)
			}
		}
	}
	return missing
}
