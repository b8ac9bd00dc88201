// Package locale holds the small amount of logic every page shares:
// which language is active, which way the layout flows, and how links
// to WhatsApp and to internal pages are built.
package locale

import (
	"net/url"
	"strings"
)

// Locale is the language tag active for a single request. Exactly one
// locale is active per render and it never changes mid-render.
type Locale string

const (
	Arabic  Locale = "ar"
	English Locale = "en"
)

// Default is the unprefixed locale in the routing convention.
const Default = Arabic

// Parse maps a raw tag to a supported locale. Unknown tags fall back
// to the default rather than failing; a bad Accept-Language header
// should never 500 a content page.
func Parse(tag string) Locale {
	if strings.EqualFold(tag, string(English)) {
		return English
	}
	return Arabic
}

// IsRightToLeft reports whether the locale is rendered right-to-left.
func IsRightToLeft(l Locale) bool {
	return l == Arabic
}

// Direction returns the value for the HTML dir attribute.
func Direction(l Locale) string {
	if IsRightToLeft(l) {
		return "rtl"
	}
	return "ltr"
}

// Resolve picks the locale-appropriate variant of a bilingual value.
// Arabic prefers primary, English prefers fallback, and an empty
// variant degrades to the other side so a missing translation renders
// the untranslated text instead of nothing.
func Resolve[T comparable](l Locale, primary, fallback T) T {
	var zero T
	if l == Arabic {
		if primary != zero {
			return primary
		}
		return fallback
	}
	if fallback != zero {
		return fallback
	}
	return primary
}

// BuildMessagingLink builds a wa.me deep link that opens a chat with
// the handle, pre-filled with message. The handle is reduced to its
// digits; the message is query-encoded so Arabic text survives the
// round trip byte-for-byte. This never fails: a handle with no digits
// simply yields a link that opens nothing useful.
func BuildMessagingLink(handle, message string) string {
	var digits strings.Builder
	for _, r := range handle {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	q := url.Values{"text": {message}}
	return "https://wa.me/" + digits.String() + "?" + q.Encode()
}

// PathFor prefixes an internal path according to the routing
// convention: Arabic is the default and unprefixed, English lives
// under /en.
func PathFor(l Locale, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if l == English {
		if path == "/" {
			return "/en"
		}
		return "/en" + path
	}
	return path
}
