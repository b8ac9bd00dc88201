// Package seo builds schema.org JSON-LD payloads for the page head.
// Building is best effort: missing fields are simply omitted from the
// output, never turned into an error the visitor could see.
package seo

import "encoding/json"

// Schema is a structured-data payload ready to be serialized into a
// <script type="application/ld+json"> block.
type Schema map[string]interface{}

// JSON serializes the schema. Marshalling a map of strings and nested
// maps cannot fail, so the error is swallowed and an empty object
// returned in the degenerate case.
func (s Schema) JSON() string {
	b, err := json.Marshal(s)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// ArticleData carries the fields search engines expect for blog posts.
type ArticleData struct {
	Title       string
	Description string
	Author      string
	PublishedAt string // ISO 8601 date
	Image       string
	URL         string
}

// ServiceData carries the fields for a pest-control service page.
type ServiceData struct {
	Name        string
	Description string
	ServiceType string
	Provider    string
	AreaServed  string
	URL         string
}

// QA is a single FAQ entry.
type QA struct {
	Question string
	Answer   string
}

// Article builds an Article schema.
func Article(d ArticleData) Schema {
	s := Schema{
		"@context": "https://schema.org",
		"@type":    "Article",
	}
	put(s, "headline", d.Title)
	put(s, "description", d.Description)
	put(s, "datePublished", d.PublishedAt)
	put(s, "image", d.Image)
	put(s, "url", d.URL)
	if d.Author != "" {
		s["author"] = Schema{"@type": "Person", "name": d.Author}
	}
	return s
}

// Service builds a Service schema.
func Service(d ServiceData) Schema {
	s := Schema{
		"@context": "https://schema.org",
		"@type":    "Service",
	}
	put(s, "name", d.Name)
	put(s, "description", d.Description)
	put(s, "serviceType", d.ServiceType)
	put(s, "url", d.URL)
	if d.Provider != "" {
		s["provider"] = Schema{"@type": "LocalBusiness", "name": d.Provider}
	}
	if d.AreaServed != "" {
		s["areaServed"] = Schema{"@type": "City", "name": d.AreaServed}
	}
	return s
}

// FAQ builds an FAQPage schema from question/answer pairs, preserving
// the caller's ordering.
func FAQ(items []QA) Schema {
	entities := make([]Schema, 0, len(items))
	for _, qa := range items {
		entities = append(entities, Schema{
			"@type": "Question",
			"name":  qa.Question,
			"acceptedAnswer": Schema{
				"@type": "Answer",
				"text":  qa.Answer,
			},
		})
	}
	return Schema{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}

func put(s Schema, key, value string) {
	if value != "" {
		s[key] = value
	}
}
