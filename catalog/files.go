package catalog

import (
	"strings"
)

// specialFilenames lists the fonts whose release filename does not follow
// from the family name, either because the inventory abbreviates the name
// ("Sans OldSouArab") or because the file breaks the "-Regular.ttf" pattern
// (Color Emoji).
var specialFilenames = map[FontVariant]string{
	ColorEmoji:               "NotoColorEmoji.ttf",
	SansImperialAramaic:      "NotoSansImperialAramaic-Regular.ttf",
	SansOldSouthArabian:      "NotoSansOldSouthArabian-Regular.ttf",
	SansOldNorthArabian:      "NotoSansOldNorthArabian-Regular.ttf",
	SansInscriptionalPahlavi: "NotoSansInscriptionalPahlavi-Regular.ttf",
	SansPsalterPahlavi:       "NotoSansPsalterPahlavi-Regular.ttf",
	SansOldHungarian:         "NotoSansOldHungarian-Regular.ttf",
	SansZanabazar:            "NotoSansZanabazarSquare-Regular.ttf",
	SansEgyptianHieroglyphs:  "NotoSansEgyptianHieroglyphs-Regular.ttf",
	SansAnatolianHieroglyphs: "NotoSansAnatolianHieroglyphs-Regular.ttf",
}

// cjkLanguageDir maps the regional CJK suffix to the per-language directory
// within the noto-cjk release repository.
var cjkLanguageDir = map[string]string{
	"JP": "Japanese",
	"KR": "Korean",
	"SC": "SimplifiedChinese",
	"TC": "TraditionalChinese",
	"HK": "TraditionalChineseHK",
}

// Filename returns the name of the font file as shipped in the Noto release
// repositories, e.g. "NotoSansArabic-Regular.ttf" or "NotoSansCJKsc-Regular.otf".
func (v FontVariant) Filename() string {
	if v == NoVariant {
		return ""
	}
	if f, ok := specialFilenames[v]; ok {
		return f
	}
	name := variantData[v].name
	if region, ok := cjkRegion(name); ok {
		style := strings.Fields(name)[0]
		return "Noto" + style + "CJK" + strings.ToLower(region) + "-Regular.otf"
	}
	return v.String() + "-Regular.ttf"
}

// RepoPath returns the path of the font file within its release repository.
// Most fonts live in notofonts.github.io, the CJK fonts in noto-cjk and the
// emoji font in noto-emoji.
func (v FontVariant) RepoPath() string {
	if v == NoVariant {
		return ""
	}
	if v == ColorEmoji {
		return "fonts/NotoColorEmoji.ttf"
	}
	f := v.Filename()
	name := variantData[v].name
	if region, ok := cjkRegion(name); ok {
		style := strings.Fields(name)[0]
		return style + "/OTF/" + cjkLanguageDir[region] + "/" + f
	}
	family := f
	if i := strings.IndexByte(f, '-'); i >= 0 {
		family = f[:i]
	}
	return "fonts/" + family + "/hinted/ttf/" + f
}

// cjkRegion extracts the regional suffix from a CJK family name such as
// "Sans CJK SC".
func cjkRegion(name string) (string, bool) {
	if !strings.Contains(name, "CJK") {
		return "", false
	}
	fields := strings.Fields(name)
	return fields[len(fields)-1], true
}
