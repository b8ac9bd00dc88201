package domain

import (
	"time"

	"go-pestcontrol-web/pkg/locale"
)

// Bilingual is a pair of pre-authored variants of one value. En must
// always be present; Ar may be omitted when the caller accepts
// degrading to the English text.
type Bilingual struct {
	Ar string `json:"ar"`
	En string `json:"en"`
}

// Resolve picks the variant for the active locale, falling back to
// the other side when one is missing.
func (b Bilingual) Resolve(l locale.Locale) string {
	return locale.Resolve(l, b.Ar, b.En)
}

// FAQItem is one question/answer pair on a service page.
type FAQItem struct {
	Question Bilingual `json:"question"`
	Answer   Bilingual `json:"answer"`
}

// ServiceContent is the display record for one service landing page.
type ServiceContent struct {
	Slug        string      `json:"slug"`
	Name        Bilingual   `json:"name"`
	Tagline     Bilingual   `json:"tagline"`
	Description Bilingual   `json:"description"`
	Image       string      `json:"image"`
	Features    []Bilingual `json:"features"`
	FAQs        []FAQItem   `json:"faqs"`
}

// TOCEntry is one table-of-contents row in a blog article. Entries
// render in the order the author listed them.
type TOCEntry struct {
	ID    string    `json:"id"`
	Title Bilingual `json:"title"`
	Level int       `json:"level"`
}

// RelatedArticle is a link card at the bottom of a blog article.
type RelatedArticle struct {
	Slug  string    `json:"slug"`
	Title Bilingual `json:"title"`
	Image string    `json:"image"`
}

// BlogContent is the display record for one blog post. Body holds
// pre-authored HTML per locale.
type BlogContent struct {
	Slug        string           `json:"slug"`
	Title       Bilingual        `json:"title"`
	Excerpt     Bilingual        `json:"excerpt"`
	Body        Bilingual        `json:"body"`
	Author      string           `json:"author"`
	PublishedAt time.Time        `json:"published_at"`
	Image       string           `json:"image"`
	TOC         []TOCEntry       `json:"toc"`
	Related     []RelatedArticle `json:"related"`
}

// DistrictContent is a city-district landing page.
type DistrictContent struct {
	Slug  string    `json:"slug"`
	Name  Bilingual `json:"name"`
	Blurb Bilingual `json:"blurb"`
}

// Testimonial is one customer quote on the home page.
type Testimonial struct {
	Author Bilingual `json:"author"`
	Quote  Bilingual `json:"quote"`
	Rating int       `json:"rating"`
}
