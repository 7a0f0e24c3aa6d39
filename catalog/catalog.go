package catalog

import (
	"github.com/npillmayer/notoize/uscript"
)

// Serifness is the global style preference a caller expresses: render with the
// sans-serif or the serif side of a font family, wherever a script offers the
// choice.
type Serifness uint8

const (
	// PreferSans selects the sans-serif family member where one exists.
	PreferSans Serifness = iota
	// PreferSerif selects the serif family member where one exists.
	PreferSerif
)

// String returns "Sans" or "Serif".
func (s Serifness) String() string {
	if s == PreferSerif {
		return "Serif"
	}
	return "Sans"
}

// variantsOf lists the catalog members per script, in enumeration order.
// Built once at package initialization from the variant table.
var variantsOf map[uscript.Script][]FontVariant

// sansDefault and serifDefault encode the per-script default table. A script
// missing from one of the two maps has no default on that side; the resolver
// then falls back to the other side.
var sansDefault = map[uscript.Script]FontVariant{
	uscript.LGC:      Sans,
	uscript.CJK:      SansCJKSC,
	uscript.Symbols:  SansSymbols,
	uscript.Math:     SansMath,
	uscript.Music:    Music,
	uscript.Znamenny: ZnamennyMusicalNotation,
	uscript.Emoji:    ColorEmoji,

	uscript.Adlam:                 SansAdlam,
	uscript.AnatolianHieroglyphs:  SansAnatolianHieroglyphs,
	uscript.Arabic:                SansArabic,
	uscript.Armenian:              SansArmenian,
	uscript.Avestan:               SansAvestan,
	uscript.Balinese:              SansBalinese,
	uscript.Bamum:                 SansBamum,
	uscript.BassaVah:              SansBassaVah,
	uscript.Batak:                 SansBatak,
	uscript.Bengali:               SansBengali,
	uscript.Bhaiksuki:             SansBhaiksuki,
	uscript.Brahmi:                SansBrahmi,
	uscript.Buginese:              SansBuginese,
	uscript.Buhid:                 SansBuhid,
	uscript.CanadianAboriginal:    SansCanadianAboriginal,
	uscript.Carian:                SansCarian,
	uscript.CaucasianAlbanian:     SansCaucasianAlbanian,
	uscript.Chakma:                SansChakma,
	uscript.Cham:                  SansCham,
	uscript.Cherokee:              SansCherokee,
	uscript.Chorasmian:            SansChorasmian,
	uscript.Coptic:                SansCoptic,
	uscript.Cuneiform:             SansCuneiform,
	uscript.Cypriot:               SansCypriot,
	uscript.CyproMinoan:           SansCyproMinoan,
	uscript.Deseret:               SansDeseret,
	uscript.Devanagari:            SansDevanagari,
	uscript.Duployan:              SansDuployan,
	uscript.EgyptianHieroglyphs:   SansEgyptianHieroglyphs,
	uscript.Elbasan:               SansElbasan,
	uscript.Elymaic:               SansElymaic,
	uscript.Ethiopic:              SansEthiopic,
	uscript.Georgian:              SansGeorgian,
	uscript.Glagolitic:            SansGlagolitic,
	uscript.Gothic:                SansGothic,
	uscript.Grantha:               SansGrantha,
	uscript.Gujarati:              SansGujarati,
	uscript.GunjalaGondi:          SansGunjalaGondi,
	uscript.Gurmukhi:              SansGurmukhi,
	uscript.HanifiRohingya:        SansHanifiRohingya,
	uscript.Hanunoo:               SansHanunoo,
	uscript.Hatran:                SansHatran,
	uscript.Hebrew:                SansHebrew,
	uscript.ImperialAramaic:       SansImperialAramaic,
	uscript.IndicSiyaqNumbers:     SansIndicSiyaqNumbers,
	uscript.InscriptionalPahlavi:  SansInscriptionalPahlavi,
	uscript.InscriptionalParthian: SansInscriptionalParthian,
	uscript.Javanese:              SansJavanese,
	uscript.Kaithi:                SansKaithi,
	uscript.Kannada:               SansKannada,
	uscript.Kawi:                  SansKawi,
	uscript.KayahLi:               SansKayahLi,
	uscript.Kharoshthi:            SansKharoshthi,
	uscript.Khmer:                 SansKhmer,
	uscript.Khojki:                SansKhojki,
	uscript.Khudawadi:             SansKhudawadi,
	uscript.Lao:                   SansLao,
	uscript.Lepcha:                SansLepcha,
	uscript.Limbu:                 SansLimbu,
	uscript.LinearA:               SansLinearA,
	uscript.LinearB:               SansLinearB,
	uscript.Lisu:                  SansLisu,
	uscript.Lycian:                SansLycian,
	uscript.Lydian:                SansLydian,
	uscript.Mahajani:              SansMahajani,
	uscript.Malayalam:             SansMalayalam,
	uscript.Mandaic:               SansMandaic,
	uscript.Manichaean:            SansManichaean,
	uscript.Marchen:               SansMarchen,
	uscript.MasaramGondi:          SansMasaramGondi,
	uscript.MayanNumerals:         SansMayanNumerals,
	uscript.Medefaidrin:           SansMedefaidrin,
	uscript.MeeteiMayek:           SansMeeteiMayek,
	uscript.MendeKikakui:          SansMendeKikakui,
	uscript.Meroitic:              SansMeroitic,
	uscript.Miao:                  SansMiao,
	uscript.Modi:                  SansModi,
	uscript.Mongolian:             SansMongolian,
	uscript.Mro:                   SansMro,
	uscript.Multani:               SansMultani,
	uscript.Myanmar:               SansMyanmar,
	uscript.Nabataean:             SansNabataean,
	uscript.NagMundari:            SansNagMundari,
	uscript.Nandinagari:           SansNandinagari,
	uscript.NewTaiLue:             SansNewTaiLue,
	uscript.Newa:                  SansNewa,
	uscript.Nko:                   SansNko,
	uscript.Nushu:                 SansNushu,
	uscript.Ogham:                 SansOgham,
	uscript.OlChiki:               SansOlChiki,
	uscript.OldHungarian:          SansOldHungarian,
	uscript.OldItalic:             SansOldItalic,
	uscript.OldNorthArabian:       SansOldNorthArabian,
	uscript.OldPermic:             SansOldPermic,
	uscript.OldPersian:            SansOldPersian,
	uscript.OldSogdian:            SansOldSogdian,
	uscript.OldSouthArabian:       SansOldSouthArabian,
	uscript.OldTurkic:             SansOldTurkic,
	uscript.Oriya:                 SansOriya,
	uscript.Osage:                 SansOsage,
	uscript.Osmanya:               SansOsmanya,
	uscript.PahawhHmong:           SansPahawhHmong,
	uscript.Palmyrene:             SansPalmyrene,
	uscript.PauCinHau:             SansPauCinHau,
	uscript.PhagsPa:               SansPhagsPa,
	uscript.Phoenician:            SansPhoenician,
	uscript.PsalterPahlavi:        SansPsalterPahlavi,
	uscript.Rejang:                SansRejang,
	uscript.Runic:                 SansRunic,
	uscript.Samaritan:             SansSamaritan,
	uscript.Saurashtra:            SansSaurashtra,
	uscript.Sharada:               SansSharada,
	uscript.Shavian:               SansShavian,
	uscript.Siddham:               SansSiddham,
	uscript.SignWriting:           SansSignWriting,
	uscript.Sinhala:               SansSinhala,
	uscript.Sogdian:               SansSogdian,
	uscript.SoraSompeng:           SansSoraSompeng,
	uscript.Soyombo:               SansSoyombo,
	uscript.Sundanese:             SansSundanese,
	uscript.SylotiNagri:           SansSylotiNagri,
	uscript.Syriac:                SansSyriac,
	uscript.Tagalog:               SansTagalog,
	uscript.Tagbanwa:              SansTagbanwa,
	uscript.TaiLe:                 SansTaiLe,
	uscript.TaiTham:               SansTaiTham,
	uscript.TaiViet:               SansTaiViet,
	uscript.Takri:                 SansTakri,
	uscript.Tamil:                 SansTamil,
	uscript.TamilSupplement:       SansTamilSupplement,
	uscript.Tangsa:                SansTangsa,
	uscript.Telugu:                SansTelugu,
	uscript.Thaana:                SansThaana,
	uscript.Thai:                  SansThai,
	uscript.Tifinagh:              SansTifinagh,
	uscript.Tirhuta:               SansTirhuta,
	uscript.Ugaritic:              SansUgaritic,
	uscript.Vai:                   SansVai,
	uscript.Vithkuqi:              SansVithkuqi,
	uscript.Wancho:                SansWancho,
	uscript.WarangCiti:            SansWarangCiti,
	uscript.Yi:                    SansYi,
	uscript.Zanabazar:             SansZanabazar,
}

var serifDefault = map[uscript.Script]FontVariant{
	uscript.LGC:        Serif,
	uscript.Arabic:     NaskhArabic,
	uscript.Armenian:   SerifArmenian,
	uscript.Balinese:   SerifBalinese,
	uscript.Bengali:    SerifBengali,
	uscript.Devanagari: SerifDevanagari,
	uscript.Ethiopic:   SerifEthiopic,
	uscript.Georgian:   SerifGeorgian,
	uscript.Grantha:    SerifGrantha,
	uscript.Gujarati:   SerifGujarati,
	uscript.Gurmukhi:   SerifGurmukhi,
	uscript.Hebrew:     SerifHebrew,
	uscript.Kannada:    SerifKannada,
	uscript.Khmer:      SerifKhmer,
	uscript.Khojki:     SerifKhojki,
	uscript.Lao:        SerifLao,
	uscript.Malayalam:  SerifMalayalam,
	uscript.Myanmar:    SerifMyanmar,
	uscript.Oriya:      SerifOriya,
	uscript.Sinhala:    SerifSinhala,
	uscript.Tamil:      SerifTamil,
	uscript.Telugu:     SerifTelugu,
	uscript.Thai:       SerifThai,
	uscript.Vithkuqi:   SerifVithkuqi,

	// Serif-only scripts: no sans member exists at all.
	uscript.Ahom:                 SerifAhom,
	uscript.DivesAkuru:           SerifDivesAkuru,
	uscript.Dogra:                SerifDogra,
	uscript.Khitan:               SerifKhitanSmallScript,
	uscript.Makasar:              SerifMakasar,
	uscript.NyiakengPuachueHmong: SerifNPHmong,
	uscript.OldUyghur:            SerifOldUyghur,
	uscript.OttomanSiyaqNumbers:  SerifOttomanSiyaq,
	uscript.Tangut:               SerifTangut,
	uscript.Tibetan:              SerifTibetan,
	uscript.Toto:                 SerifToto,
	uscript.Yezidi:               SerifYezidi,
}

func init() {
	variantsOf = make(map[uscript.Script][]FontVariant)
	for v := NoVariant + 1; v < variantCount; v++ {
		info, ok := variantData[v]
		if !ok {
			continue // caught by the catalog consistency test
		}
		variantsOf[info.script] = append(variantsOf[info.script], v)
	}
	// The dual Math/Symbols codepoints make Noto Sans Math an acceptable
	// member of the Symbols pseudo-script, too.
	variantsOf[uscript.Symbols] = append(variantsOf[uscript.Symbols], SansMath)
	tracer().Debugf("font catalog covers %d scripts", len(variantsOf))
}

// Variants returns the catalog members for a script, in stable enumeration
// order. The result is nil exactly for uscript.Unclassified (and for scripts
// unknown to the catalog). Callers must not modify the returned slice.
func Variants(sc uscript.Script) []FontVariant {
	return variantsOf[sc]
}

// Default returns the default variant of a script for the requested
// Serifness. The boolean result reports whether the script has a default on
// that side at all; callers are expected to fall back to the opposite side
// when it does not (see the resolver in the root package, which records the
// fallback for diagnostics).
func Default(sc uscript.Script, style Serifness) (FontVariant, bool) {
	var v FontVariant
	var ok bool
	if style == PreferSerif {
		v, ok = serifDefault[sc]
	} else {
		v, ok = sansDefault[sc]
	}
	return v, ok
}

// HasSans reports whether a script has a sans-side default.
func HasSans(sc uscript.Script) bool {
	_, ok := sansDefault[sc]
	return ok
}

// HasSerif reports whether a script has a serif-side default.
func HasSerif(sc uscript.Script) bool {
	_, ok := serifDefault[sc]
	return ok
}

// Member reports whether v is a catalog member of script sc. Note that
// Noto Sans Math counts as a member of both the Math and the Symbols
// pseudo-scripts.
func Member(sc uscript.Script, v FontVariant) bool {
	for _, m := range variantsOf[sc] {
		if m == v {
			return true
		}
	}
	return false
}
