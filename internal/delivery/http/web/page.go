package web

import (
	"html/template"
	"strings"

	"go-pestcontrol-web/config"
	"go-pestcontrol-web/internal/content"
	"go-pestcontrol-web/pkg/locale"
	"go-pestcontrol-web/pkg/seo"
)

// Site is the read-only company identity injected into every page.
type Site struct {
	Name         string
	Phone        string
	WhatsAppLink string
	License      string
	BaseURL      string
}

// NavLink is one header navigation entry, already locale-prefixed.
type NavLink struct {
	Label string
	Href  string
}

// Page is the chrome every template receives: locale, direction,
// navigation, SEO payload and the language switcher target.
type Page struct {
	Lang        string
	Dir         string
	RTL         bool
	Title       string
	Description string
	Site        Site
	Nav         []NavLink
	AltHref     string
	AltLabel    string
	Schema      template.HTML
}

// newPage assembles the shared chrome for one render. path is the
// unprefixed route of the current page, used to build the language
// switcher link into the other locale.
func newPage(cfg *config.Config, l locale.Locale, path, title, description string) Page {
	other := locale.English
	altLabel := "English"
	if l == locale.English {
		other = locale.Arabic
		altLabel = "العربية"
	}

	name := cfg.CompanyNameEn
	if l == locale.Arabic {
		name = cfg.CompanyNameAr
	}

	greeting := "مرحباً، أرغب بالاستفسار عن خدماتكم"
	if l == locale.English {
		greeting = "Hello, I would like to ask about your services"
	}

	return Page{
		Lang:        string(l),
		Dir:         locale.Direction(l),
		RTL:         locale.IsRightToLeft(l),
		Title:       title,
		Description: description,
		Site: Site{
			Name:         name,
			Phone:        cfg.Phone,
			WhatsAppLink: locale.BuildMessagingLink(cfg.WhatsAppHandle, greeting),
			License:      cfg.LicenseNumber,
			BaseURL:      cfg.BaseURL,
		},
		Nav: []NavLink{
			{Label: content.T(l, "nav.home"), Href: locale.PathFor(l, "/")},
			{Label: content.T(l, "nav.services"), Href: locale.PathFor(l, "/services")},
			{Label: content.T(l, "nav.blog"), Href: locale.PathFor(l, "/blog")},
			{Label: content.T(l, "nav.contact"), Href: locale.PathFor(l, "/contact")},
		},
		AltHref:  locale.PathFor(other, path),
		AltLabel: altLabel,
	}
}

// withSchema attaches JSON-LD blocks to the page head.
func (p Page) withSchema(schemas ...seo.Schema) Page {
	var b strings.Builder
	for _, s := range schemas {
		b.WriteString(`<script type="application/ld+json">`)
		b.WriteString(s.JSON())
		b.WriteString("</script>\n")
	}
	// Schemas are built from our own catalog, not user input.
	p.Schema = template.HTML(b.String())
	return p
}
