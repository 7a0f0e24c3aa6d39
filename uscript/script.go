package uscript

// Script identifies a writing system for which the Noto ecosystem provides at
// least one font family. It is a closed enumeration, fixed at build time.
//
// Script values do not correspond 1:1 to Unicode script property values:
// Latin, Greek and Cyrillic are folded into LGC (they share the core Noto
// Sans/Serif families), the Han/Kana/Hangul/Bopomofo scripts are folded into
// CJK, the two Meroitic scripts share one entry, and a number of pseudo-script
// entries (Symbols, Music, …) cover symbol blocks which Unicode classifies as
// `Common`.
type Script uint16

const (
	// Unclassified is the zero Script: the codepoint belongs to no writing
	// system known to the catalog. It owns no font variants.
	Unclassified Script = iota

	// LGC covers Latin, Greek, Cyrillic plus the Common and Inherited
	// codepoints which the core Noto Sans/Serif families render.
	LGC
	// CJK covers Han, Hiragana, Katakana, Hangul and Bopomofo.
	CJK
	// Symbols is the pseudo-script for codepoints covered by Noto Sans Symbols
	// or Noto Sans Symbols 2. It includes the codepoints which Noto Sans Math
	// covers as well; for those the font preference decides, see
	// IsDualMathSymbols.
	Symbols
	// Music is the pseudo-script for the musical notation blocks.
	Music
	// Znamenny is the pseudo-script for Znamenny musical notation.
	Znamenny
	// Emoji is the pseudo-script for the emoji blocks.
	Emoji

	Adlam
	Ahom
	AnatolianHieroglyphs
	Arabic
	Armenian
	Avestan
	Balinese
	Bamum
	BassaVah
	Batak
	Bengali
	Bhaiksuki
	Brahmi
	Buginese
	Buhid
	CanadianAboriginal
	Carian
	CaucasianAlbanian
	Chakma
	Cham
	Cherokee
	Chorasmian
	Coptic
	Cuneiform
	Cypriot
	CyproMinoan
	Deseret
	Devanagari
	DivesAkuru
	Dogra
	Duployan
	EgyptianHieroglyphs
	Elbasan
	Elymaic
	Ethiopic
	Georgian
	Glagolitic
	Gothic
	Grantha
	Gujarati
	GunjalaGondi
	Gurmukhi
	HanifiRohingya
	Hanunoo
	Hatran
	Hebrew
	ImperialAramaic
	IndicSiyaqNumbers
	InscriptionalPahlavi
	InscriptionalParthian
	Javanese
	Kaithi
	Kannada
	Kawi
	KayahLi
	Kharoshthi
	Khitan
	Khmer
	Khojki
	Khudawadi
	Lao
	Lepcha
	Limbu
	LinearA
	LinearB
	Lisu
	Lycian
	Lydian
	Mahajani
	Makasar
	Malayalam
	Mandaic
	Manichaean
	Marchen
	MasaramGondi
	// Math is the pseudo-script for the blocks only Noto Sans Math covers
	// (mathematical operators and alphanumerics). Symbol blocks with shared
	// Math coverage classify as Symbols instead.
	Math
	MayanNumerals
	Medefaidrin
	MeeteiMayek
	MendeKikakui
	Meroitic
	Miao
	Modi
	Mongolian
	Mro
	Multani
	Myanmar
	Nabataean
	NagMundari
	Nandinagari
	NewTaiLue
	Newa
	Nko
	Nushu
	NyiakengPuachueHmong
	Ogham
	OlChiki
	OldHungarian
	OldItalic
	OldNorthArabian
	OldPermic
	OldPersian
	OldSogdian
	OldSouthArabian
	OldTurkic
	OldUyghur
	Oriya
	Osage
	Osmanya
	OttomanSiyaqNumbers
	PahawhHmong
	Palmyrene
	PauCinHau
	PhagsPa
	Phoenician
	PsalterPahlavi
	Rejang
	Runic
	Samaritan
	Saurashtra
	Sharada
	Shavian
	Siddham
	SignWriting
	Sinhala
	Sogdian
	SoraSompeng
	Soyombo
	Sundanese
	SylotiNagri
	Syriac
	Tagalog
	Tagbanwa
	TaiLe
	TaiTham
	TaiViet
	Takri
	Tamil
	TamilSupplement
	Tangsa
	Tangut
	Telugu
	Thaana
	Thai
	Tibetan
	Tifinagh
	Tirhuta
	Toto
	Ugaritic
	Vai
	Vithkuqi
	Wancho
	WarangCiti
	Yezidi
	Yi
	Zanabazar

	scriptCount // must stay last
)

var scriptNames = map[Script]string{
	Unclassified:          "Unclassified",
	LGC:                   "LGC",
	CJK:                   "CJK",
	Symbols:               "Symbols",
	Music:                 "Music",
	Znamenny:              "Znamenny Musical Notation",
	Emoji:                 "Emoji",
	Adlam:                 "Adlam",
	Ahom:                  "Ahom",
	AnatolianHieroglyphs:  "Anatolian Hieroglyphs",
	Arabic:                "Arabic",
	Armenian:              "Armenian",
	Avestan:               "Avestan",
	Balinese:              "Balinese",
	Bamum:                 "Bamum",
	BassaVah:              "Bassa Vah",
	Batak:                 "Batak",
	Bengali:               "Bengali",
	Bhaiksuki:             "Bhaiksuki",
	Brahmi:                "Brahmi",
	Buginese:              "Buginese",
	Buhid:                 "Buhid",
	CanadianAboriginal:    "Canadian Aboriginal",
	Carian:                "Carian",
	CaucasianAlbanian:     "Caucasian Albanian",
	Chakma:                "Chakma",
	Cham:                  "Cham",
	Cherokee:              "Cherokee",
	Chorasmian:            "Chorasmian",
	Coptic:                "Coptic",
	Cuneiform:             "Cuneiform",
	Cypriot:               "Cypriot",
	CyproMinoan:           "Cypro Minoan",
	Deseret:               "Deseret",
	Devanagari:            "Devanagari",
	DivesAkuru:            "Dives Akuru",
	Dogra:                 "Dogra",
	Duployan:              "Duployan",
	EgyptianHieroglyphs:   "Egyptian Hieroglyphs",
	Elbasan:               "Elbasan",
	Elymaic:               "Elymaic",
	Ethiopic:              "Ethiopic",
	Georgian:              "Georgian",
	Glagolitic:            "Glagolitic",
	Gothic:                "Gothic",
	Grantha:               "Grantha",
	Gujarati:              "Gujarati",
	GunjalaGondi:          "Gunjala Gondi",
	Gurmukhi:              "Gurmukhi",
	HanifiRohingya:        "Hanifi Rohingya",
	Hanunoo:               "Hanunoo",
	Hatran:                "Hatran",
	Hebrew:                "Hebrew",
	ImperialAramaic:       "Imperial Aramaic",
	IndicSiyaqNumbers:     "Indic Siyaq Numbers",
	InscriptionalPahlavi:  "Inscriptional Pahlavi",
	InscriptionalParthian: "Inscriptional Parthian",
	Javanese:              "Javanese",
	Kaithi:                "Kaithi",
	Kannada:               "Kannada",
	Kawi:                  "Kawi",
	KayahLi:               "Kayah Li",
	Kharoshthi:            "Kharoshthi",
	Khitan:                "Khitan",
	Khmer:                 "Khmer",
	Khojki:                "Khojki",
	Khudawadi:             "Khudawadi",
	Lao:                   "Lao",
	Lepcha:                "Lepcha",
	Limbu:                 "Limbu",
	LinearA:               "Linear A",
	LinearB:               "Linear B",
	Lisu:                  "Lisu",
	Lycian:                "Lycian",
	Lydian:                "Lydian",
	Mahajani:              "Mahajani",
	Makasar:               "Makasar",
	Malayalam:             "Malayalam",
	Mandaic:               "Mandaic",
	Manichaean:            "Manichaean",
	Marchen:               "Marchen",
	MasaramGondi:          "Masaram Gondi",
	Math:                  "Math",
	MayanNumerals:         "Mayan Numerals",
	Medefaidrin:           "Medefaidrin",
	MeeteiMayek:           "Meetei Mayek",
	MendeKikakui:          "Mende Kikakui",
	Meroitic:              "Meroitic",
	Miao:                  "Miao",
	Modi:                  "Modi",
	Mongolian:             "Mongolian",
	Mro:                   "Mro",
	Multani:               "Multani",
	Myanmar:               "Myanmar",
	Nabataean:             "Nabataean",
	NagMundari:            "Nag Mundari",
	Nandinagari:           "Nandinagari",
	NewTaiLue:             "New Tai Lue",
	Newa:                  "Newa",
	Nko:                   "NKo",
	Nushu:                 "Nushu",
	NyiakengPuachueHmong:  "Nyiakeng Puachue Hmong",
	Ogham:                 "Ogham",
	OlChiki:               "Ol Chiki",
	OldHungarian:          "Old Hungarian",
	OldItalic:             "Old Italic",
	OldNorthArabian:       "Old North Arabian",
	OldPermic:             "Old Permic",
	OldPersian:            "Old Persian",
	OldSogdian:            "Old Sogdian",
	OldSouthArabian:       "Old South Arabian",
	OldTurkic:             "Old Turkic",
	OldUyghur:             "Old Uyghur",
	Oriya:                 "Oriya",
	Osage:                 "Osage",
	Osmanya:               "Osmanya",
	OttomanSiyaqNumbers:   "Ottoman Siyaq",
	PahawhHmong:           "Pahawh Hmong",
	Palmyrene:             "Palmyrene",
	PauCinHau:             "Pau Cin Hau",
	PhagsPa:               "Phags-Pa",
	Phoenician:            "Phoenician",
	PsalterPahlavi:        "Psalter Pahlavi",
	Rejang:                "Rejang",
	Runic:                 "Runic",
	Samaritan:             "Samaritan",
	Saurashtra:            "Saurashtra",
	Sharada:               "Sharada",
	Shavian:               "Shavian",
	Siddham:               "Siddham",
	SignWriting:           "SignWriting",
	Sinhala:               "Sinhala",
	Sogdian:               "Sogdian",
	SoraSompeng:           "Sora Sompeng",
	Soyombo:               "Soyombo",
	Sundanese:             "Sundanese",
	SylotiNagri:           "Syloti Nagri",
	Syriac:                "Syriac",
	Tagalog:               "Tagalog",
	Tagbanwa:              "Tagbanwa",
	TaiLe:                 "Tai Le",
	TaiTham:               "Tai Tham",
	TaiViet:               "Tai Viet",
	Takri:                 "Takri",
	Tamil:                 "Tamil",
	TamilSupplement:       "Tamil Supplement",
	Tangsa:                "Tangsa",
	Tangut:                "Tangut",
	Telugu:                "Telugu",
	Thaana:                "Thaana",
	Thai:                  "Thai",
	Tibetan:               "Tibetan",
	Tifinagh:              "Tifinagh",
	Tirhuta:               "Tirhuta",
	Toto:                  "Toto",
	Ugaritic:              "Ugaritic",
	Vai:                   "Vai",
	Vithkuqi:              "Vithkuqi",
	Wancho:                "Wancho",
	WarangCiti:            "Warang Citi",
	Yezidi:                "Yezidi",
	Yi:                    "Yi",
	Zanabazar:             "Zanabazar",
}

// String returns a human-readable name for a script, e.g. "Old Hungarian".
func (sc Script) String() string {
	if name, ok := scriptNames[sc]; ok {
		return name
	}
	return "Unclassified"
}

// All returns every Script except Unclassified, in enumeration order.
// The returned slice is freshly allocated and may be modified by the caller.
func All() []Script {
	scripts := make([]Script, 0, int(scriptCount)-1)
	for sc := LGC; sc < scriptCount; sc++ {
		scripts = append(scripts, sc)
	}
	return scripts
}

// ParseScript finds the Script with the given human-readable name, as returned
// by Script.String. The boolean result reports whether the name is known.
func ParseScript(name string) (Script, bool) {
	for sc, n := range scriptNames {
		if n == name && sc != Unclassified {
			return sc, true
		}
	}
	return Unclassified, false
}
