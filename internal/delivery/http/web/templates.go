package web

import (
	"embed"
	"html/template"

	"go-pestcontrol-web/internal/content"
	"go-pestcontrol-web/pkg/locale"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates. Each page is a full
// document named by its file; partials (header, footer, hero,
// testimonials) are shared defines.
func Templates() *template.Template {
	funcs := template.FuncMap{
		// t resolves a UI chrome string for the page's locale:
		// {{t .Lang "nav.services"}}
		"t": func(lang, key string) string {
			return content.T(locale.Locale(lang), key)
		},
		"districtLabel": func(lang, slug string) string {
			return content.DistrictLabel(locale.Locale(lang), slug)
		},
		"pestLabel": func(lang, slug string) string {
			return content.PestLabel(locale.Locale(lang), slug)
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
