package validation

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Digits plus the punctuation people paste from their dialer: + - space ( )
	contactPhoneRegex = regexp.MustCompile(`^[0-9+\-\s()]+$`)

	// Letters (Arabic or Latin), spaces and light punctuation for names
	nameRegex = regexp.MustCompile(`^[\p{L} .'-]+$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("contact_phone", ContactPhone)
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
}

// ContactPhone validates the character set of a phone number. Length
// is enforced separately by the min tag.
func ContactPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return contactPhoneRegex.MatchString(val)
}

// ValidName validates that a string contains only name characters,
// Arabic script included
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return nameRegex.MatchString(val)
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, r := range val {
		if r > 0x1F000 {
			return false // Supplementary characters (mostly emoji/symbols)
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}
