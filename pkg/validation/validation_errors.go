package validation

import (
	"fmt"

	"go-pestcontrol-web/pkg/locale"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single inline form error, addressed to the field it
// belongs to so the client can render it next to the offending input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fieldLabels maps struct field names to the labels shown next to the
// form inputs, per locale.
var fieldLabels = map[string]map[locale.Locale]string{
	"Name":     {locale.Arabic: "الاسم", locale.English: "Name"},
	"Phone":    {locale.Arabic: "رقم الجوال", locale.English: "Phone number"},
	"Area":     {locale.Arabic: "الحي", locale.English: "District"},
	"PestType": {locale.Arabic: "نوع الآفة", locale.English: "Pest type"},
	"Message":  {locale.Arabic: "الرسالة", locale.English: "Message"},
}

// formFields maps struct field names back to the form field names the
// client submitted, so errors attach to the right input.
var formFields = map[string]string{
	"Name":     "name",
	"Phone":    "phone",
	"Area":     "area",
	"PestType": "pestType",
	"Message":  "message",
}

// FormatValidationErrors converts validator.ValidationErrors to
// field-level messages in the requested locale.
func FormatValidationErrors(err error, l locale.Locale) []FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []FieldError{{Field: "form", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		out = append(out, FieldError{
			Field:   formFieldName(e.Field()),
			Message: formatSingleError(e, l),
		})
	}
	return out
}

func formatSingleError(e validator.FieldError, l locale.Locale) string {
	label := fieldLabel(e.Field(), l)
	param := e.Param()

	if l == locale.Arabic {
		switch e.Tag() {
		case "required":
			return fmt.Sprintf("%s: هذا الحقل مطلوب", label)
		case "min":
			return fmt.Sprintf("%s: الحد الأدنى %s حرفًا", label, param)
		case "max":
			return fmt.Sprintf("%s: الحد الأقصى %s حرفًا", label, param)
		case "oneof":
			return fmt.Sprintf("%s: اختر قيمة من القائمة", label)
		case "contact_phone":
			return fmt.Sprintf("%s: يسمح فقط بالأرقام والرموز + - ( )", label)
		case "valid_name":
			return fmt.Sprintf("%s: يسمح فقط بالحروف والمسافات", label)
		case "no_emoji":
			return fmt.Sprintf("%s: لا يسمح بالرموز التعبيرية", label)
		default:
			return fmt.Sprintf("%s: قيمة غير صالحة", label)
		}
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: This field is required", label)
	case "min":
		return fmt.Sprintf("%s: Must be at least %s characters", label, param)
	case "max":
		return fmt.Sprintf("%s: Must be at most %s characters", label, param)
	case "oneof":
		return fmt.Sprintf("%s: Pick a value from the list", label)
	case "contact_phone":
		return fmt.Sprintf("%s: Only digits and + - ( ) are allowed", label)
	case "valid_name":
		return fmt.Sprintf("%s: Only letters and spaces are allowed", label)
	case "no_emoji":
		return fmt.Sprintf("%s: Emoji are not allowed", label)
	default:
		return fmt.Sprintf("%s: Invalid value", label)
	}
}

func fieldLabel(fieldName string, l locale.Locale) string {
	if labels, ok := fieldLabels[fieldName]; ok {
		if label, ok := labels[l]; ok {
			return label
		}
	}
	return fieldName
}

func formFieldName(fieldName string) string {
	if name, ok := formFields[fieldName]; ok {
		return name
	}
	return fieldName
}
