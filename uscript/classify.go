package uscript

import (
	"sort"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// span is one half-open classification entry: lo <= r <= hi map to script.
type span struct {
	lo, hi rune
	script Script
}

// blockRanges is the hand-maintained font-availability table. It claims
// codepoints which either have no Unicode script of their own (symbol, music
// and number blocks filed under `Common`) or which Noto covers with a
// dedicated block font (Tamil Supplement). It is consulted before the
// script-property table and must stay sorted by lo and disjoint.
//
// The Symbols entries lump together the coverage of Noto Sans Symbols,
// Noto Sans Symbols 2 and the symbol blocks shared with Noto Sans Math;
// symbols2Ranges and dualRanges below record the sub-family split.
var blockRanges = []span{
	{0x2070, 0x208E, Symbols}, // superscripts and subscripts
	{0x20A0, 0x20CF, Symbols}, // currency symbols
	{0x20D0, 0x20FF, Symbols}, // combining marks for symbols
	{0x2100, 0x214F, Symbols}, // letterlike symbols
	{0x2150, 0x218B, Symbols}, // number forms
	{0x2190, 0x21FF, Symbols}, // arrows
	{0x2200, 0x22FF, Math},    // mathematical operators
	{0x2300, 0x23FF, Symbols}, // miscellaneous technical
	{0x2400, 0x243F, Symbols}, // control pictures
	{0x2460, 0x24FF, Symbols}, // enclosed alphanumerics
	{0x25A0, 0x25FF, Symbols}, // geometric shapes
	{0x2600, 0x26FF, Symbols}, // miscellaneous symbols
	{0x2700, 0x27BF, Symbols}, // dingbats
	{0x27C0, 0x27EF, Math},    // miscellaneous mathematical symbols-A
	{0x2800, 0x28FF, Symbols}, // braille patterns
	{0x2980, 0x29FF, Math},    // miscellaneous mathematical symbols-B
	{0x2A00, 0x2AFF, Math},    // supplemental mathematical operators
	{0x2B00, 0x2BFF, Symbols}, // miscellaneous symbols and arrows
	{0x4DC0, 0x4DFF, Symbols}, // yijing hexagram symbols
	{0x10190, 0x101CF, Symbols},
	{0x11FC0, 0x11FFF, TamilSupplement},
	{0x1CF00, 0x1CFCF, Znamenny},
	{0x1D000, 0x1D0FF, Music}, // byzantine musical symbols
	{0x1D100, 0x1D1FF, Music}, // musical symbols
	{0x1D200, 0x1D24F, Music}, // ancient greek musical notation
	{0x1D2E0, 0x1D2FF, MayanNumerals},
	{0x1D400, 0x1D7FF, Math}, // mathematical alphanumeric symbols
	{0x1EC70, 0x1ECBF, IndicSiyaqNumbers},
	{0x1ED00, 0x1ED4F, OttomanSiyaqNumbers},
	{0x1F000, 0x1F0FF, Symbols}, // mahjong, dominos, playing cards
	{0x1F100, 0x1F1FF, Symbols}, // enclosed alphanumeric supplement
	{0x1F300, 0x1F5FF, Emoji},
	{0x1F600, 0x1F64F, Emoji},
	{0x1F650, 0x1F67F, Symbols}, // ornamental dingbats
	{0x1F680, 0x1F6FF, Emoji},
	{0x1F700, 0x1F77F, Symbols}, // alchemical symbols
	{0x1F780, 0x1F7FF, Symbols}, // geometric shapes extended
	{0x1F800, 0x1F8FF, Symbols}, // supplemental arrows-C
	{0x1F900, 0x1F9FF, Emoji},
	{0x1FA00, 0x1FA6F, Symbols}, // chess symbols
	{0x1FA70, 0x1FAFF, Emoji},
}

// dualRanges holds the 222 codepoints covered by both Noto Sans Math and
// Noto Sans Symbols. They classify as Symbols; the PreferMath configuration
// flag flips them to the Math variant at resolution time.
var dualRanges = []span{
	{0x2070, 0x208E, Symbols},
	{0x2100, 0x214F, Symbols},
	{0x2190, 0x21FE, Symbols},
}

// symbols2Ranges marks the part of the Symbols pseudo-script which
// Noto Sans Symbols 2 renders (Noto Sans Symbols renders the rest).
var symbols2Ranges = []span{
	{0x2300, 0x243F, Symbols},
	{0x25A0, 0x25FF, Symbols},
	{0x2600, 0x26FF, Symbols},
	{0x2700, 0x27BF, Symbols},
	{0x2800, 0x28FF, Symbols},
	{0x2B00, 0x2BFF, Symbols},
	{0x4DC0, 0x4DFF, Symbols},
	{0x1F000, 0x1F0FF, Symbols},
	{0x1F650, 0x1F67F, Symbols},
	{0x1F700, 0x1F8FF, Symbols},
	{0x1FA00, 0x1FA6F, Symbols},
}

// scriptTables associates every catalog script with the range table(s) of the
// Unicode script property backing it. Grouped entries merge several Unicode
// scripts into one catalog script.
var scriptTables = []struct {
	script Script
	table  *unicode.RangeTable
}{
	{LGC, rangetable.Merge(unicode.Latin, unicode.Greek, unicode.Cyrillic,
		unicode.Common, unicode.Inherited)},
	{CJK, rangetable.Merge(unicode.Han, unicode.Hiragana, unicode.Katakana,
		unicode.Hangul, unicode.Bopomofo)},
	{Meroitic, rangetable.Merge(unicode.Meroitic_Cursive, unicode.Meroitic_Hieroglyphs)},
	{Adlam, unicode.Adlam},
	{Ahom, unicode.Ahom},
	{AnatolianHieroglyphs, unicode.Anatolian_Hieroglyphs},
	{Arabic, unicode.Arabic},
	{Armenian, unicode.Armenian},
	{Avestan, unicode.Avestan},
	{Balinese, unicode.Balinese},
	{Bamum, unicode.Bamum},
	{BassaVah, unicode.Bassa_Vah},
	{Batak, unicode.Batak},
	{Bengali, unicode.Bengali},
	{Bhaiksuki, unicode.Bhaiksuki},
	{Brahmi, unicode.Brahmi},
	{Buginese, unicode.Buginese},
	{Buhid, unicode.Buhid},
	{CanadianAboriginal, unicode.Canadian_Aboriginal},
	{Carian, unicode.Carian},
	{CaucasianAlbanian, unicode.Caucasian_Albanian},
	{Chakma, unicode.Chakma},
	{Cham, unicode.Cham},
	{Cherokee, unicode.Cherokee},
	{Chorasmian, unicode.Chorasmian},
	{Coptic, unicode.Coptic},
	{Cuneiform, unicode.Cuneiform},
	{Cypriot, unicode.Cypriot},
	{CyproMinoan, unicode.Cypro_Minoan},
	{Deseret, unicode.Deseret},
	{Devanagari, unicode.Devanagari},
	{DivesAkuru, unicode.Dives_Akuru},
	{Dogra, unicode.Dogra},
	{Duployan, unicode.Duployan},
	{EgyptianHieroglyphs, unicode.Egyptian_Hieroglyphs},
	{Elbasan, unicode.Elbasan},
	{Elymaic, unicode.Elymaic},
	{Ethiopic, unicode.Ethiopic},
	{Georgian, unicode.Georgian},
	{Glagolitic, unicode.Glagolitic},
	{Gothic, unicode.Gothic},
	{Grantha, unicode.Grantha},
	{Gujarati, unicode.Gujarati},
	{GunjalaGondi, unicode.Gunjala_Gondi},
	{Gurmukhi, unicode.Gurmukhi},
	{HanifiRohingya, unicode.Hanifi_Rohingya},
	{Hanunoo, unicode.Hanunoo},
	{Hatran, unicode.Hatran},
	{Hebrew, unicode.Hebrew},
	{ImperialAramaic, unicode.Imperial_Aramaic},
	{InscriptionalPahlavi, unicode.Inscriptional_Pahlavi},
	{InscriptionalParthian, unicode.Inscriptional_Parthian},
	{Javanese, unicode.Javanese},
	{Kaithi, unicode.Kaithi},
	{Kannada, unicode.Kannada},
	{Kawi, unicode.Kawi},
	{KayahLi, unicode.Kayah_Li},
	{Kharoshthi, unicode.Kharoshthi},
	{Khitan, unicode.Khitan_Small_Script},
	{Khmer, unicode.Khmer},
	{Khojki, unicode.Khojki},
	{Khudawadi, unicode.Khudawadi},
	{Lao, unicode.Lao},
	{Lepcha, unicode.Lepcha},
	{Limbu, unicode.Limbu},
	{LinearA, unicode.Linear_A},
	{LinearB, unicode.Linear_B},
	{Lisu, unicode.Lisu},
	{Lycian, unicode.Lycian},
	{Lydian, unicode.Lydian},
	{Mahajani, unicode.Mahajani},
	{Makasar, unicode.Makasar},
	{Malayalam, unicode.Malayalam},
	{Mandaic, unicode.Mandaic},
	{Manichaean, unicode.Manichaean},
	{Marchen, unicode.Marchen},
	{MasaramGondi, unicode.Masaram_Gondi},
	{Medefaidrin, unicode.Medefaidrin},
	{MeeteiMayek, unicode.Meetei_Mayek},
	{MendeKikakui, unicode.Mende_Kikakui},
	{Miao, unicode.Miao},
	{Modi, unicode.Modi},
	{Mongolian, unicode.Mongolian},
	{Mro, unicode.Mro},
	{Multani, unicode.Multani},
	{Myanmar, unicode.Myanmar},
	{Nabataean, unicode.Nabataean},
	{NagMundari, unicode.Nag_Mundari},
	{Nandinagari, unicode.Nandinagari},
	{NewTaiLue, unicode.New_Tai_Lue},
	{Newa, unicode.Newa},
	{Nko, unicode.Nko},
	{Nushu, unicode.Nushu},
	{NyiakengPuachueHmong, unicode.Nyiakeng_Puachue_Hmong},
	{Ogham, unicode.Ogham},
	{OlChiki, unicode.Ol_Chiki},
	{OldHungarian, unicode.Old_Hungarian},
	{OldItalic, unicode.Old_Italic},
	{OldNorthArabian, unicode.Old_North_Arabian},
	{OldPermic, unicode.Old_Permic},
	{OldPersian, unicode.Old_Persian},
	{OldSogdian, unicode.Old_Sogdian},
	{OldSouthArabian, unicode.Old_South_Arabian},
	{OldTurkic, unicode.Old_Turkic},
	{OldUyghur, unicode.Old_Uyghur},
	{Oriya, unicode.Oriya},
	{Osage, unicode.Osage},
	{Osmanya, unicode.Osmanya},
	{PahawhHmong, unicode.Pahawh_Hmong},
	{Palmyrene, unicode.Palmyrene},
	{PauCinHau, unicode.Pau_Cin_Hau},
	{PhagsPa, unicode.Phags_Pa},
	{Phoenician, unicode.Phoenician},
	{PsalterPahlavi, unicode.Psalter_Pahlavi},
	{Rejang, unicode.Rejang},
	{Runic, unicode.Runic},
	{Samaritan, unicode.Samaritan},
	{Saurashtra, unicode.Saurashtra},
	{Sharada, unicode.Sharada},
	{Shavian, unicode.Shavian},
	{Siddham, unicode.Siddham},
	{SignWriting, unicode.SignWriting},
	{Sinhala, unicode.Sinhala},
	{Sogdian, unicode.Sogdian},
	{SoraSompeng, unicode.Sora_Sompeng},
	{Soyombo, unicode.Soyombo},
	{Sundanese, unicode.Sundanese},
	{SylotiNagri, unicode.Syloti_Nagri},
	{Syriac, unicode.Syriac},
	{Tagalog, unicode.Tagalog},
	{Tagbanwa, unicode.Tagbanwa},
	{TaiLe, unicode.Tai_Le},
	{TaiTham, unicode.Tai_Tham},
	{TaiViet, unicode.Tai_Viet},
	{Takri, unicode.Takri},
	{Tamil, unicode.Tamil},
	{Tangsa, unicode.Tangsa},
	{Tangut, unicode.Tangut},
	{Telugu, unicode.Telugu},
	{Thaana, unicode.Thaana},
	{Thai, unicode.Thai},
	{Tibetan, unicode.Tibetan},
	{Tifinagh, unicode.Tifinagh},
	{Tirhuta, unicode.Tirhuta},
	{Toto, unicode.Toto},
	{Ugaritic, unicode.Ugaritic},
	{Vai, unicode.Vai},
	{Vithkuqi, unicode.Vithkuqi},
	{Wancho, unicode.Wancho},
	{WarangCiti, unicode.Warang_Citi},
	{Yezidi, unicode.Yezidi},
	{Yi, unicode.Yi},
	{Zanabazar, unicode.Zanabazar_Square},
}

// scriptRanges is the flattened, sorted classification table derived from
// scriptTables. Built once at package initialization, read-only afterwards.
var scriptRanges []span

func init() {
	for _, entry := range scriptTables {
		scriptRanges = appendSpans(scriptRanges, entry.table, entry.script)
	}
	sort.Slice(scriptRanges, func(i, j int) bool {
		return scriptRanges[i].lo < scriptRanges[j].lo
	})
	tracer().Debugf("script classification table has %d ranges", len(scriptRanges))
}

// appendSpans flattens a unicode.RangeTable into spans for one script.
// Ranges with a stride greater than 1 are split into single-codepoint spans.
func appendSpans(spans []span, table *unicode.RangeTable, script Script) []span {
	for _, r := range table.R16 {
		if r.Stride == 1 {
			spans = append(spans, span{rune(r.Lo), rune(r.Hi), script})
			continue
		}
		for cp := rune(r.Lo); cp <= rune(r.Hi); cp += rune(r.Stride) {
			spans = append(spans, span{cp, cp, script})
		}
	}
	for _, r := range table.R32 {
		if r.Stride == 1 {
			spans = append(spans, span{rune(r.Lo), rune(r.Hi), script})
			continue
		}
		for cp := rune(r.Lo); cp <= rune(r.Hi); cp += rune(r.Stride) {
			spans = append(spans, span{cp, cp, script})
		}
	}
	return spans
}

// find locates r in a sorted span slice, returning Unclassified on a miss.
func find(spans []span, r rune) Script {
	i := sort.Search(len(spans), func(i int) bool { return spans[i].hi >= r })
	if i < len(spans) && spans[i].lo <= r && r <= spans[i].hi {
		return spans[i].script
	}
	return Unclassified
}

// Lookup classifies a Unicode scalar value. It is total: every input maps to
// a Script, with Unclassified standing in for codepoints outside the range
// tables (unassigned codepoints, surrogates, and scripts without Noto
// coverage). The hand-maintained block table takes precedence over the
// script-property table, so that e.g. U+2200 classifies as Math rather than
// as a Common codepoint of LGC.
func Lookup(r rune) Script {
	if r < 0 || r > unicode.MaxRune {
		return Unclassified
	}
	if sc := find(blockRanges, r); sc != Unclassified {
		return sc
	}
	return find(scriptRanges, r)
}

// IsDualMathSymbols reports whether r is one of the 222 codepoints covered by
// both Noto Sans Math and Noto Sans Symbols. Such codepoints classify as
// Symbols; a caller preferring mathematical typesetting renders them with the
// Math variant instead.
func IsDualMathSymbols(r rune) bool {
	return find(dualRanges, r) == Symbols
}

// IsSymbols2 reports whether a codepoint of the Symbols pseudo-script is
// rendered by Noto Sans Symbols 2 rather than Noto Sans Symbols.
func IsSymbols2(r rune) bool {
	return find(symbols2Ranges, r) == Symbols
}
