package uscript

import (
	"github.com/go-text/typesetting/language"
)

// tags maps catalog scripts to the ISO 15924 script identifiers used by
// go-text/typesetting. Grouped catalog scripts map to their dominant member
// (LGC to Latin, CJK to Han); pseudo-scripts carved out of symbol blocks map
// to Common, except Math which ISO 15924 names Zmth.
var tags = map[Script]language.Script{
	Unclassified:          language.Unknown,
	LGC:                   language.Latin,
	CJK:                   language.Han,
	Symbols:               language.Common,
	Music:                 language.Common,
	Znamenny:              language.Common,
	Emoji:                 language.Common,
	Math:                  language.Mathematical_notation,
	MayanNumerals:         language.Common,
	IndicSiyaqNumbers:     language.Common,
	OttomanSiyaqNumbers:   language.Common,
	Meroitic:              language.Meroitic_Cursive,
	TamilSupplement:       language.Tamil,
	Adlam:                 language.Adlam,
	Ahom:                  language.Ahom,
	AnatolianHieroglyphs:  language.Anatolian_Hieroglyphs,
	Arabic:                language.Arabic,
	Armenian:              language.Armenian,
	Avestan:               language.Avestan,
	Balinese:              language.Balinese,
	Bamum:                 language.Bamum,
	BassaVah:              language.Bassa_Vah,
	Batak:                 language.Batak,
	Bengali:               language.Bengali,
	Bhaiksuki:             language.Bhaiksuki,
	Brahmi:                language.Brahmi,
	Buginese:              language.Buginese,
	Buhid:                 language.Buhid,
	CanadianAboriginal:    language.Canadian_Aboriginal,
	Carian:                language.Carian,
	CaucasianAlbanian:     language.Caucasian_Albanian,
	Chakma:                language.Chakma,
	Cham:                  language.Cham,
	Cherokee:              language.Cherokee,
	Chorasmian:            language.Chorasmian,
	Coptic:                language.Coptic,
	Cuneiform:             language.Cuneiform,
	Cypriot:               language.Cypriot,
	CyproMinoan:           language.Cypro_Minoan,
	Deseret:               language.Deseret,
	Devanagari:            language.Devanagari,
	DivesAkuru:            language.Dives_Akuru,
	Dogra:                 language.Dogra,
	Duployan:              language.Duployan,
	EgyptianHieroglyphs:   language.Egyptian_Hieroglyphs,
	Elbasan:               language.Elbasan,
	Elymaic:               language.Elymaic,
	Ethiopic:              language.Ethiopic,
	Georgian:              language.Georgian,
	Glagolitic:            language.Glagolitic,
	Gothic:                language.Gothic,
	Grantha:               language.Grantha,
	Gujarati:              language.Gujarati,
	GunjalaGondi:          language.Gunjala_Gondi,
	Gurmukhi:              language.Gurmukhi,
	HanifiRohingya:        language.Hanifi_Rohingya,
	Hanunoo:               language.Hanunoo,
	Hatran:                language.Hatran,
	Hebrew:                language.Hebrew,
	ImperialAramaic:       language.Imperial_Aramaic,
	InscriptionalPahlavi:  language.Inscriptional_Pahlavi,
	InscriptionalParthian: language.Inscriptional_Parthian,
	Javanese:              language.Javanese,
	Kaithi:                language.Kaithi,
	Kannada:               language.Kannada,
	Kawi:                  language.Kawi,
	KayahLi:               language.Kayah_Li,
	Kharoshthi:            language.Kharoshthi,
	Khitan:                language.Khitan_Small_Script,
	Khmer:                 language.Khmer,
	Khojki:                language.Khojki,
	Khudawadi:             language.Khudawadi,
	Lao:                   language.Lao,
	Lepcha:                language.Lepcha,
	Limbu:                 language.Limbu,
	LinearA:               language.Linear_A,
	LinearB:               language.Linear_B,
	Lisu:                  language.Lisu,
	Lycian:                language.Lycian,
	Lydian:                language.Lydian,
	Mahajani:              language.Mahajani,
	Makasar:               language.Makasar,
	Malayalam:             language.Malayalam,
	Mandaic:               language.Mandaic,
	Manichaean:            language.Manichaean,
	Marchen:               language.Marchen,
	MasaramGondi:          language.Masaram_Gondi,
	Medefaidrin:           language.Medefaidrin,
	MeeteiMayek:           language.Meetei_Mayek,
	MendeKikakui:          language.Mende_Kikakui,
	Miao:                  language.Miao,
	Modi:                  language.Modi,
	Mongolian:             language.Mongolian,
	Mro:                   language.Mro,
	Multani:               language.Multani,
	Myanmar:               language.Myanmar,
	Nabataean:             language.Nabataean,
	NagMundari:            language.Nag_Mundari,
	Nandinagari:           language.Nandinagari,
	NewTaiLue:             language.New_Tai_Lue,
	Newa:                  language.Newa,
	Nko:                   language.Nko,
	Nushu:                 language.Nushu,
	NyiakengPuachueHmong:  language.Nyiakeng_Puachue_Hmong,
	Ogham:                 language.Ogham,
	OlChiki:               language.Ol_Chiki,
	OldHungarian:          language.Old_Hungarian,
	OldItalic:             language.Old_Italic,
	OldNorthArabian:       language.Old_North_Arabian,
	OldPermic:             language.Old_Permic,
	OldPersian:            language.Old_Persian,
	OldSogdian:            language.Old_Sogdian,
	OldSouthArabian:       language.Old_South_Arabian,
	OldTurkic:             language.Old_Turkic,
	OldUyghur:             language.Old_Uyghur,
	Oriya:                 language.Oriya,
	Osage:                 language.Osage,
	Osmanya:               language.Osmanya,
	PahawhHmong:           language.Pahawh_Hmong,
	Palmyrene:             language.Palmyrene,
	PauCinHau:             language.Pau_Cin_Hau,
	PhagsPa:               language.Phags_Pa,
	Phoenician:            language.Phoenician,
	PsalterPahlavi:        language.Psalter_Pahlavi,
	Rejang:                language.Rejang,
	Runic:                 language.Runic,
	Samaritan:             language.Samaritan,
	Saurashtra:            language.Saurashtra,
	Sharada:               language.Sharada,
	Shavian:               language.Shavian,
	Siddham:               language.Siddham,
	SignWriting:           language.SignWriting,
	Sinhala:               language.Sinhala,
	Sogdian:               language.Sogdian,
	SoraSompeng:           language.Sora_Sompeng,
	Soyombo:               language.Soyombo,
	Sundanese:             language.Sundanese,
	SylotiNagri:           language.Syloti_Nagri,
	Syriac:                language.Syriac,
	Tagalog:               language.Tagalog,
	Tagbanwa:              language.Tagbanwa,
	TaiLe:                 language.Tai_Le,
	TaiTham:               language.Tai_Tham,
	TaiViet:               language.Tai_Viet,
	Takri:                 language.Takri,
	Tamil:                 language.Tamil,
	Tangsa:                language.Tangsa,
	Tangut:                language.Tangut,
	Telugu:                language.Telugu,
	Thaana:                language.Thaana,
	Thai:                  language.Thai,
	Tibetan:               language.Tibetan,
	Tifinagh:              language.Tifinagh,
	Tirhuta:               language.Tirhuta,
	Toto:                  language.Toto,
	Ugaritic:              language.Ugaritic,
	Vai:                   language.Vai,
	Vithkuqi:              language.Vithkuqi,
	Wancho:                language.Wancho,
	WarangCiti:            language.Warang_Citi,
	Yezidi:                language.Yezidi,
	Yi:                    language.Yi,
	Zanabazar:             language.Zanabazar_Square,
}

// Tag returns the ISO 15924 script identifier for sc, for interoperability
// with go-text/typesetting. Pseudo-scripts report language.Common (Math
// reports Zmth), grouped scripts report their dominant member.
func (sc Script) Tag() language.Script {
	if tag, ok := tags[sc]; ok {
		return tag
	}
	return language.Unknown
}
