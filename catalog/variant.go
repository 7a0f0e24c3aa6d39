package catalog

import (
	"strings"

	"github.com/npillmayer/notoize/uscript"
)

// FontVariant identifies one concrete font resource within a script's Noto
// family, e.g. Noto Kufi Arabic or Noto Sans Adlam Unjoined. The enumeration
// is closed and fixed at build time; every variant belongs to exactly one
// script.
type FontVariant uint16

const (
	// NoVariant is the zero FontVariant; it belongs to no script.
	NoVariant FontVariant = iota

	// Core LGC family (Latin, Greek, Cyrillic plus Common/Inherited).
	Sans
	Serif
	SansMono

	SansAdlam
	SansAdlamUnjoined
	SerifAhom
	SansAnatolianHieroglyphs
	SansArabic
	KufiArabic
	NaskhArabic
	NaskhArabicUI
	NastaliqUrdu
	SansArmenian
	SerifArmenian
	SansAvestan
	SansBalinese
	SerifBalinese
	SansBamum
	SansBassaVah
	SansBatak
	SansBengali
	SerifBengali
	SansBhaiksuki
	SansBrahmi
	SansBuginese
	SansBuhid
	SansCanadianAboriginal
	SansCarian
	SansCaucasianAlbanian
	SansChakma
	SansCham
	SansCherokee
	SansChorasmian
	SansCJKHK
	SansCJKJP
	SansCJKKR
	SansCJKSC
	SansCJKTC
	SansCoptic
	SansCuneiform
	SansCypriot
	SansCyproMinoan
	SansDeseret
	SansDevanagari
	SerifDevanagari
	SerifDivesAkuru
	SerifDogra
	SansDuployan
	SansEgyptianHieroglyphs
	SansElbasan
	SansElymaic
	ColorEmoji
	SansEthiopic
	SerifEthiopic
	SansGeorgian
	SerifGeorgian
	SansGlagolitic
	SansGothic
	SansGrantha
	SerifGrantha
	SansGujarati
	SerifGujarati
	SansGunjalaGondi
	SansGurmukhi
	SerifGurmukhi
	SansHanifiRohingya
	SansHanunoo
	SansHatran
	SansHebrew
	SerifHebrew
	RashiHebrew
	SansImperialAramaic
	SansIndicSiyaqNumbers
	SansInscriptionalPahlavi
	SansInscriptionalParthian
	SansJavanese
	SansKaithi
	SansKannada
	SerifKannada
	SansKawi
	SerifKhitanSmallScript
	FangsongKSSRotated
	FangsongKSSVertical
	SansKayahLi
	SansKharoshthi
	SansKhmer
	SerifKhmer
	SansKhojki
	SerifKhojki
	SansKhudawadi
	SansLao
	SansLaoLooped
	SerifLao
	SansLepcha
	SansLimbu
	SansLinearA
	SansLinearB
	SansLisu
	SansLycian
	SansLydian
	SansMahajani
	SansMalayalam
	SerifMalayalam
	SansMandaic
	SerifMakasar
	SansManichaean
	SansMasaramGondi
	SansMarchen
	SansMath
	SansMayanNumerals
	SansMedefaidrin
	SansMeeteiMayek
	SansMendeKikakui
	SansMeroitic
	SansMiao
	SansModi
	SansMongolian
	SansMro
	SansMultani
	Music
	SansMyanmar
	SerifMyanmar
	SansNabataean
	SansNagMundari
	SansNandinagari
	SansNewTaiLue
	SansNewa
	SansNko
	SansNkoUnjoined
	SansNushu
	TraditionalNushu
	SerifNPHmong
	SansOgham
	SansOlChiki
	SansOldHungarian
	SansOldItalic
	SansOldNorthArabian
	SansOldPermic
	SansOldPersian
	SansOldSogdian
	SansOldSouthArabian
	SansOldTurkic
	SerifOldUyghur
	SansOriya
	SerifOriya
	SansOsage
	SansOsmanya
	SerifOttomanSiyaq
	SansPahawhHmong
	SansPalmyrene
	SansPauCinHau
	SansPhagsPa
	SansPhoenician
	SansPsalterPahlavi
	SansRejang
	SansRunic
	SansSamaritan
	SansSaurashtra
	SansSharada
	SansShavian
	SansSiddham
	SansSignWriting
	SansSinhala
	SerifSinhala
	SansSogdian
	SansSoraSompeng
	SansSoyombo
	SansSundanese
	SansSylotiNagri
	SansSymbols
	SansSymbols2
	SansSyriac
	SansSyriacEastern
	SansSyriacWestern
	SansTamil
	SerifTamil
	SansTamilSupplement
	SansTagalog
	SansTagbanwa
	SansTaiLe
	SansTaiTham
	SansTaiViet
	SansTakri
	SansTangsa
	SerifTangut
	SansTelugu
	SerifTelugu
	SansThaana
	SansThai
	SansThaiLooped
	SerifThai
	SerifTibetan
	SansTifinagh
	SansTifinaghAPT
	SansTifinaghAdrar
	SansTifinaghAgrawImazighen
	SansTifinaghAhaggar
	SansTifinaghAir
	SansTifinaghAzawagh
	SansTifinaghGhat
	SansTifinaghHawad
	SansTifinaghRhissaIxa
	SansTifinaghSIL
	SansTifinaghTawellemmet
	SansTirhuta
	SerifToto
	SansUgaritic
	SansVai
	SansVithkuqi
	SerifVithkuqi
	SansWancho
	SansWarangCiti
	SerifYezidi
	SansYi
	SansZanabazar
	ZnamennyMusicalNotation

	variantCount // must stay last
)

// variantInfo carries the static description of one variant: its owning
// script and its short family name, i.e. the full Noto name without the
// leading "Noto " (this matches the names used in the notofonts inventory,
// including the abbreviated ones like "Sans OldSouArab").
type variantInfo struct {
	script uscript.Script
	name   string
}

var variantData = map[FontVariant]variantInfo{
	Sans:     {uscript.LGC, "Sans"},
	Serif:    {uscript.LGC, "Serif"},
	SansMono: {uscript.LGC, "Sans Mono"},

	SansAdlam:                 {uscript.Adlam, "Sans Adlam"},
	SansAdlamUnjoined:         {uscript.Adlam, "Sans Adlam Unjoined"},
	SerifAhom:                 {uscript.Ahom, "Serif Ahom"},
	SansAnatolianHieroglyphs:  {uscript.AnatolianHieroglyphs, "Sans AnatoHiero"},
	SansArabic:                {uscript.Arabic, "Sans Arabic"},
	KufiArabic:                {uscript.Arabic, "Kufi Arabic"},
	NaskhArabic:               {uscript.Arabic, "Naskh Arabic"},
	NaskhArabicUI:             {uscript.Arabic, "Naskh Arabic UI"},
	NastaliqUrdu:              {uscript.Arabic, "Nastaliq Urdu"},
	SansArmenian:              {uscript.Armenian, "Sans Armenian"},
	SerifArmenian:             {uscript.Armenian, "Serif Armenian"},
	SansAvestan:               {uscript.Avestan, "Sans Avestan"},
	SansBalinese:              {uscript.Balinese, "Sans Balinese"},
	SerifBalinese:             {uscript.Balinese, "Serif Balinese"},
	SansBamum:                 {uscript.Bamum, "Sans Bamum"},
	SansBassaVah:              {uscript.BassaVah, "Sans Bassa Vah"},
	SansBatak:                 {uscript.Batak, "Sans Batak"},
	SansBengali:               {uscript.Bengali, "Sans Bengali"},
	SerifBengali:              {uscript.Bengali, "Serif Bengali"},
	SansBhaiksuki:             {uscript.Bhaiksuki, "Sans Bhaiksuki"},
	SansBrahmi:                {uscript.Brahmi, "Sans Brahmi"},
	SansBuginese:              {uscript.Buginese, "Sans Buginese"},
	SansBuhid:                 {uscript.Buhid, "Sans Buhid"},
	SansCanadianAboriginal:    {uscript.CanadianAboriginal, "Sans Canadian Aboriginal"},
	SansCarian:                {uscript.Carian, "Sans Carian"},
	SansCaucasianAlbanian:     {uscript.CaucasianAlbanian, "Sans Caucasian Albanian"},
	SansChakma:                {uscript.Chakma, "Sans Chakma"},
	SansCham:                  {uscript.Cham, "Sans Cham"},
	SansCherokee:              {uscript.Cherokee, "Sans Cherokee"},
	SansChorasmian:            {uscript.Chorasmian, "Sans Chorasmian"},
	SansCJKHK:                 {uscript.CJK, "Sans CJK HK"},
	SansCJKJP:                 {uscript.CJK, "Sans CJK JP"},
	SansCJKKR:                 {uscript.CJK, "Sans CJK KR"},
	SansCJKSC:                 {uscript.CJK, "Sans CJK SC"},
	SansCJKTC:                 {uscript.CJK, "Sans CJK TC"},
	SansCoptic:                {uscript.Coptic, "Sans Coptic"},
	SansCuneiform:             {uscript.Cuneiform, "Sans Cuneiform"},
	SansCypriot:               {uscript.Cypriot, "Sans Cypriot"},
	SansCyproMinoan:           {uscript.CyproMinoan, "Sans Cypro Minoan"},
	SansDeseret:               {uscript.Deseret, "Sans Deseret"},
	SansDevanagari:            {uscript.Devanagari, "Sans Devanagari"},
	SerifDevanagari:           {uscript.Devanagari, "Serif Devanagari"},
	SerifDivesAkuru:           {uscript.DivesAkuru, "Serif Dives Akuru"},
	SerifDogra:                {uscript.Dogra, "Serif Dogra"},
	SansDuployan:              {uscript.Duployan, "Sans Duployan"},
	SansEgyptianHieroglyphs:   {uscript.EgyptianHieroglyphs, "Sans EgyptHiero"},
	SansElbasan:               {uscript.Elbasan, "Sans Elbasan"},
	SansElymaic:               {uscript.Elymaic, "Sans Elymaic"},
	ColorEmoji:                {uscript.Emoji, "Color Emoji"},
	SansEthiopic:              {uscript.Ethiopic, "Sans Ethiopic"},
	SerifEthiopic:             {uscript.Ethiopic, "Serif Ethiopic"},
	SansGeorgian:              {uscript.Georgian, "Sans Georgian"},
	SerifGeorgian:             {uscript.Georgian, "Serif Georgian"},
	SansGlagolitic:            {uscript.Glagolitic, "Sans Glagolitic"},
	SansGothic:                {uscript.Gothic, "Sans Gothic"},
	SansGrantha:               {uscript.Grantha, "Sans Grantha"},
	SerifGrantha:              {uscript.Grantha, "Serif Grantha"},
	SansGujarati:              {uscript.Gujarati, "Sans Gujarati"},
	SerifGujarati:             {uscript.Gujarati, "Serif Gujarati"},
	SansGunjalaGondi:          {uscript.GunjalaGondi, "Sans Gunjala Gondi"},
	SansGurmukhi:              {uscript.Gurmukhi, "Sans Gurmukhi"},
	SerifGurmukhi:             {uscript.Gurmukhi, "Serif Gurmukhi"},
	SansHanifiRohingya:        {uscript.HanifiRohingya, "Sans Hanifi Rohingya"},
	SansHanunoo:               {uscript.Hanunoo, "Sans Hanunoo"},
	SansHatran:                {uscript.Hatran, "Sans Hatran"},
	SansHebrew:                {uscript.Hebrew, "Sans Hebrew"},
	SerifHebrew:               {uscript.Hebrew, "Serif Hebrew"},
	RashiHebrew:               {uscript.Hebrew, "Rashi Hebrew"},
	SansImperialAramaic:       {uscript.ImperialAramaic, "Sans ImpAramaic"},
	SansIndicSiyaqNumbers:     {uscript.IndicSiyaqNumbers, "Sans Indic Siyaq Numbers"},
	SansInscriptionalPahlavi:  {uscript.InscriptionalPahlavi, "Sans InsPahlavi"},
	SansInscriptionalParthian: {uscript.InscriptionalParthian, "Sans Inscriptional Parthian"},
	SansJavanese:              {uscript.Javanese, "Sans Javanese"},
	SansKaithi:                {uscript.Kaithi, "Sans Kaithi"},
	SansKannada:               {uscript.Kannada, "Sans Kannada"},
	SerifKannada:              {uscript.Kannada, "Serif Kannada"},
	SansKawi:                  {uscript.Kawi, "Sans Kawi"},
	SerifKhitanSmallScript:    {uscript.Khitan, "Serif Khitan Small Script"},
	FangsongKSSRotated:        {uscript.Khitan, "Fangsong KSS Rotated"},
	FangsongKSSVertical:       {uscript.Khitan, "Fangsong KSS Vertical"},
	SansKayahLi:               {uscript.KayahLi, "Sans Kayah Li"},
	SansKharoshthi:            {uscript.Kharoshthi, "Sans Kharoshthi"},
	SansKhmer:                 {uscript.Khmer, "Sans Khmer"},
	SerifKhmer:                {uscript.Khmer, "Serif Khmer"},
	SansKhojki:                {uscript.Khojki, "Sans Khojki"},
	SerifKhojki:               {uscript.Khojki, "Serif Khojki"},
	SansKhudawadi:             {uscript.Khudawadi, "Sans Khudawadi"},
	SansLao:                   {uscript.Lao, "Sans Lao"},
	SansLaoLooped:             {uscript.Lao, "Sans Lao Looped"},
	SerifLao:                  {uscript.Lao, "Serif Lao"},
	SansLepcha:                {uscript.Lepcha, "Sans Lepcha"},
	SansLimbu:                 {uscript.Limbu, "Sans Limbu"},
	SansLinearA:               {uscript.LinearA, "Sans Linear A"},
	SansLinearB:               {uscript.LinearB, "Sans Linear B"},
	SansLisu:                  {uscript.Lisu, "Sans Lisu"},
	SansLycian:                {uscript.Lycian, "Sans Lycian"},
	SansLydian:                {uscript.Lydian, "Sans Lydian"},
	SansMahajani:              {uscript.Mahajani, "Sans Mahajani"},
	SansMalayalam:             {uscript.Malayalam, "Sans Malayalam"},
	SerifMalayalam:            {uscript.Malayalam, "Serif Malayalam"},
	SansMandaic:               {uscript.Mandaic, "Sans Mandaic"},
	SerifMakasar:              {uscript.Makasar, "Serif Makasar"},
	SansManichaean:            {uscript.Manichaean, "Sans Manichaean"},
	SansMasaramGondi:          {uscript.MasaramGondi, "Sans Masaram Gondi"},
	SansMarchen:               {uscript.Marchen, "Sans Marchen"},
	SansMath:                  {uscript.Math, "Sans Math"},
	SansMayanNumerals:         {uscript.MayanNumerals, "Sans Mayan Numerals"},
	SansMedefaidrin:           {uscript.Medefaidrin, "Sans Medefaidrin"},
	SansMeeteiMayek:           {uscript.MeeteiMayek, "Sans Meetei Mayek"},
	SansMendeKikakui:          {uscript.MendeKikakui, "Sans Mende Kikakui"},
	SansMeroitic:              {uscript.Meroitic, "Sans Meroitic"},
	SansMiao:                  {uscript.Miao, "Sans Miao"},
	SansModi:                  {uscript.Modi, "Sans Modi"},
	SansMongolian:             {uscript.Mongolian, "Sans Mongolian"},
	SansMro:                   {uscript.Mro, "Sans Mro"},
	SansMultani:               {uscript.Multani, "Sans Multani"},
	Music:                     {uscript.Music, "Music"},
	SansMyanmar:               {uscript.Myanmar, "Sans Myanmar"},
	SerifMyanmar:              {uscript.Myanmar, "Serif Myanmar"},
	SansNabataean:             {uscript.Nabataean, "Sans Nabataean"},
	SansNagMundari:            {uscript.NagMundari, "Sans Nag Mundari"},
	SansNandinagari:           {uscript.Nandinagari, "Sans Nandinagari"},
	SansNewTaiLue:             {uscript.NewTaiLue, "Sans New Tai Lue"},
	SansNewa:                  {uscript.Newa, "Sans Newa"},
	SansNko:                   {uscript.Nko, "Sans NKo"},
	SansNkoUnjoined:           {uscript.Nko, "Sans NKo Unjoined"},
	SansNushu:                 {uscript.Nushu, "Sans Nushu"},
	TraditionalNushu:          {uscript.Nushu, "Traditional Nushu"},
	SerifNPHmong:              {uscript.NyiakengPuachueHmong, "Serif NP Hmong"},
	SansOgham:                 {uscript.Ogham, "Sans Ogham"},
	SansOlChiki:               {uscript.OlChiki, "Sans Ol Chiki"},
	SansOldHungarian:          {uscript.OldHungarian, "Sans OldHung"},
	SansOldItalic:             {uscript.OldItalic, "Sans Old Italic"},
	SansOldNorthArabian:       {uscript.OldNorthArabian, "Sans OldNorArab"},
	SansOldPermic:             {uscript.OldPermic, "Sans Old Permic"},
	SansOldPersian:            {uscript.OldPersian, "Sans OldPersian"},
	SansOldSogdian:            {uscript.OldSogdian, "Sans OldSogdian"},
	SansOldSouthArabian:       {uscript.OldSouthArabian, "Sans OldSouArab"},
	SansOldTurkic:             {uscript.OldTurkic, "Sans Old Turkic"},
	SerifOldUyghur:            {uscript.OldUyghur, "Serif Old Uyghur"},
	SansOriya:                 {uscript.Oriya, "Sans Oriya"},
	SerifOriya:                {uscript.Oriya, "Serif Oriya"},
	SansOsage:                 {uscript.Osage, "Sans Osage"},
	SansOsmanya:               {uscript.Osmanya, "Sans Osmanya"},
	SerifOttomanSiyaq:         {uscript.OttomanSiyaqNumbers, "Serif Ottoman Siyaq"},
	SansPahawhHmong:           {uscript.PahawhHmong, "Sans Pahawh Hmong"},
	SansPalmyrene:             {uscript.Palmyrene, "Sans Palmyrene"},
	SansPauCinHau:             {uscript.PauCinHau, "Sans PauCinHau"},
	SansPhagsPa:               {uscript.PhagsPa, "Sans PhagsPa"},
	SansPhoenician:            {uscript.Phoenician, "Sans Phoenician"},
	SansPsalterPahlavi:        {uscript.PsalterPahlavi, "Sans PsaPahlavi"},
	SansRejang:                {uscript.Rejang, "Sans Rejang"},
	SansRunic:                 {uscript.Runic, "Sans Runic"},
	SansSamaritan:             {uscript.Samaritan, "Sans Samaritan"},
	SansSaurashtra:            {uscript.Saurashtra, "Sans Saurashtra"},
	SansSharada:               {uscript.Sharada, "Sans Sharada"},
	SansShavian:               {uscript.Shavian, "Sans Shavian"},
	SansSiddham:               {uscript.Siddham, "Sans Siddham"},
	SansSignWriting:           {uscript.SignWriting, "Sans SignWriting"},
	SansSinhala:               {uscript.Sinhala, "Sans Sinhala"},
	SerifSinhala:              {uscript.Sinhala, "Serif Sinhala"},
	SansSogdian:               {uscript.Sogdian, "Sans Sogdian"},
	SansSoraSompeng:           {uscript.SoraSompeng, "Sans Sora Sompeng"},
	SansSoyombo:               {uscript.Soyombo, "Sans Soyombo"},
	SansSundanese:             {uscript.Sundanese, "Sans Sundanese"},
	SansSylotiNagri:           {uscript.SylotiNagri, "Sans Syloti Nagri"},
	SansSymbols:               {uscript.Symbols, "Sans Symbols"},
	SansSymbols2:              {uscript.Symbols, "Sans Symbols 2"},
	SansSyriac:                {uscript.Syriac, "Sans Syriac"},
	SansSyriacEastern:         {uscript.Syriac, "Sans Syriac Eastern"},
	SansSyriacWestern:         {uscript.Syriac, "Sans Syriac Western"},
	SansTamil:                 {uscript.Tamil, "Sans Tamil"},
	SerifTamil:                {uscript.Tamil, "Serif Tamil"},
	SansTamilSupplement:       {uscript.TamilSupplement, "Sans Tamil Supplement"},
	SansTagalog:               {uscript.Tagalog, "Sans Tagalog"},
	SansTagbanwa:              {uscript.Tagbanwa, "Sans Tagbanwa"},
	SansTaiLe:                 {uscript.TaiLe, "Sans Tai Le"},
	SansTaiTham:               {uscript.TaiTham, "Sans Tai Tham"},
	SansTaiViet:               {uscript.TaiViet, "Sans Tai Viet"},
	SansTakri:                 {uscript.Takri, "Sans Takri"},
	SansTangsa:                {uscript.Tangsa, "Sans Tangsa"},
	SerifTangut:               {uscript.Tangut, "Serif Tangut"},
	SansTelugu:                {uscript.Telugu, "Sans Telugu"},
	SerifTelugu:               {uscript.Telugu, "Serif Telugu"},
	SansThaana:                {uscript.Thaana, "Sans Thaana"},
	SansThai:                  {uscript.Thai, "Sans Thai"},
	SansThaiLooped:            {uscript.Thai, "Sans Thai Looped"},
	SerifThai:                 {uscript.Thai, "Serif Thai"},
	SerifTibetan:              {uscript.Tibetan, "Serif Tibetan"},
	// Tifinagh has one pan-regional font plus a set of regional alternates.
	SansTifinagh:               {uscript.Tifinagh, "Sans Tifinagh"},
	SansTifinaghAPT:            {uscript.Tifinagh, "Sans Tifinagh APT"},
	SansTifinaghAdrar:          {uscript.Tifinagh, "Sans Tifinagh Adrar"},
	SansTifinaghAgrawImazighen: {uscript.Tifinagh, "Sans Tifinagh Agraw Imazighen"},
	SansTifinaghAhaggar:        {uscript.Tifinagh, "Sans Tifinagh Ahaggar"},
	SansTifinaghAir:            {uscript.Tifinagh, "Sans Tifinagh Air"},
	SansTifinaghAzawagh:        {uscript.Tifinagh, "Sans Tifinagh Azawagh"},
	SansTifinaghGhat:           {uscript.Tifinagh, "Sans Tifinagh Ghat"},
	SansTifinaghHawad:          {uscript.Tifinagh, "Sans Tifinagh Hawad"},
	SansTifinaghRhissaIxa:      {uscript.Tifinagh, "Sans Tifinagh Rhissa Ixa"},
	SansTifinaghSIL:            {uscript.Tifinagh, "Sans Tifinagh SIL"},
	SansTifinaghTawellemmet:    {uscript.Tifinagh, "Sans Tifinagh Tawellemmet"},

	SansTirhuta:             {uscript.Tirhuta, "Sans Tirhuta"},
	SerifToto:               {uscript.Toto, "Serif Toto"},
	SansUgaritic:            {uscript.Ugaritic, "Sans Ugaritic"},
	SansVai:                 {uscript.Vai, "Sans Vai"},
	SansVithkuqi:            {uscript.Vithkuqi, "Sans Vithkuqi"},
	SerifVithkuqi:           {uscript.Vithkuqi, "Serif Vithkuqi"},
	SansWancho:              {uscript.Wancho, "Sans Wancho"},
	SansWarangCiti:          {uscript.WarangCiti, "Sans WarangCiti"},
	SerifYezidi:             {uscript.Yezidi, "Serif Yezidi"},
	SansYi:                  {uscript.Yi, "Sans Yi"},
	SansZanabazar:           {uscript.Zanabazar, "Sans Zanabazar"},
	ZnamennyMusicalNotation: {uscript.Znamenny, "Znamenny Musical Notation"},
}

// Script returns the script a variant belongs to, or uscript.Unclassified for
// NoVariant.
func (v FontVariant) Script() uscript.Script {
	return variantData[v].script
}

// Name returns the full font family name, e.g. "Noto Kufi Arabic".
func (v FontVariant) Name() string {
	if v == NoVariant {
		return "<none>"
	}
	return "Noto " + variantData[v].name
}

// String returns the compact font identifier with spaces and hyphens
// stripped, e.g. "NotoSansArabic" or "NotoSansSymbols2". This is the form
// clients typically embed in font stacks.
func (v FontVariant) String() string {
	if v == NoVariant {
		return "<none>"
	}
	return "Noto" + strings.NewReplacer(" ", "", "-", "").Replace(variantData[v].name)
}

// IsSans reports whether the variant belongs to the sans-serif side of its
// family. Variants which are neither (Kufi, Nastaliq, Rashi, Fangsong,
// Traditional Nushu, Music, Color Emoji, …) report false on both sides.
func (v FontVariant) IsSans() bool {
	return strings.HasPrefix(variantData[v].name, "Sans")
}

// IsSerif reports whether the variant belongs to the serif side of its family.
func (v FontVariant) IsSerif() bool {
	return strings.HasPrefix(variantData[v].name, "Serif") ||
		strings.HasPrefix(variantData[v].name, "Naskh")
}
