package content

import (
	"go-pestcontrol-web/internal/domain"
	"go-pestcontrol-web/pkg/locale"
)

// Labels for the contact form's enumerated options. Every value the
// form accepts must have an entry here; a missing one falls back to
// the raw slug rather than breaking the form.

var districtLabels = map[string]domain.Bilingual{
	"al-hamra":    {Ar: "الحمراء", En: "Al-Hamra"},
	"al-rawdah":   {Ar: "الروضة", En: "Al-Rawdah"},
	"al-salamah":  {Ar: "السلامة", En: "Al-Salamah"},
	"al-naseem":   {Ar: "النسيم", En: "Al-Naseem"},
	"al-safa":     {Ar: "الصفا", En: "Al-Safa"},
	"al-aziziyah": {Ar: "العزيزية", En: "Al-Aziziyah"},
	"obhur-north": {Ar: "أبحر الشمالية", En: "Obhur North"},
	"al-marwah":   {Ar: "المروة", En: "Al-Marwah"},
	"other":       {Ar: "حي آخر", En: "Other"},
}

var pestLabels = map[string]domain.Bilingual{
	"cockroaches": {Ar: "صراصير", En: "Cockroaches"},
	"bedbugs":     {Ar: "بق الفراش", En: "Bed bugs"},
	"termites":    {Ar: "نمل أبيض", En: "Termites"},
	"rodents":     {Ar: "قوارض", En: "Rodents"},
	"ants":        {Ar: "نمل", En: "Ants"},
	"mosquitoes":  {Ar: "بعوض", En: "Mosquitoes"},
	"flies":       {Ar: "ذباب", En: "Flies"},
	"other":       {Ar: "آفة أخرى", En: "Other"},
}

// DistrictLabel resolves the display label for a district slug.
func DistrictLabel(l locale.Locale, slug string) string {
	if b, ok := districtLabels[slug]; ok {
		return b.Resolve(l)
	}
	return slug
}

// PestLabel resolves the display label for a pest type slug.
func PestLabel(l locale.Locale, slug string) string {
	if b, ok := pestLabels[slug]; ok {
		return b.Resolve(l)
	}
	return slug
}
