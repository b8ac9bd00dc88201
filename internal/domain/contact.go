package domain

import (
	"context"
	"time"
)

// Districts served by the company. Submissions must name one of these
// (or "other"); the same list drives the contact form's select box.
var Districts = []string{
	"al-hamra",
	"al-rawdah",
	"al-salamah",
	"al-naseem",
	"al-safa",
	"al-aziziyah",
	"obhur-north",
	"al-marwah",
	"other",
}

// PestTypes the company treats.
var PestTypes = []string{
	"cockroaches",
	"bedbugs",
	"termites",
	"rodents",
	"ants",
	"mosquitoes",
	"flies",
	"other",
}

// Attachment is an optional photo of the infestation sent with a
// submission. Data is held in memory only for the lifetime of the
// request; the repository stores metadata, not bytes.
type Attachment struct {
	Filename string
	Size     int64
	MIME     string
	Data     []byte
}

// ContactSubmission is one contact form submission. Validation tags
// mirror the form's schema; anything failing them never reaches the
// repository or the forwarder.
type ContactSubmission struct {
	ID        string      `json:"id"`
	Name      string      `json:"name" form:"name" validate:"required,min=2,max=50"`
	Phone     string      `json:"phone" form:"phone" validate:"required,min=10,contact_phone"`
	Area      string      `json:"area" form:"area" validate:"required,oneof=al-hamra al-rawdah al-salamah al-naseem al-safa al-aziziyah obhur-north al-marwah other"`
	PestType  string      `json:"pest_type" form:"pestType" validate:"required,oneof=cockroaches bedbugs termites rodents ants mosquitoes flies other"`
	Message   string      `json:"message" form:"message" validate:"required,min=10,max=500"`
	File      *Attachment `json:"-" form:"-"`
	CreatedAt time.Time   `json:"created_at"`
}

// ContactReceipt is what a successful submission returns to the
// client: the stored ID plus the pre-filled WhatsApp handoff link the
// client opens after its success toast.
type ContactReceipt struct {
	SubmissionID string `json:"submission_id"`
	WhatsAppLink string `json:"whatsapp_link"`
}

// ContactUsecase defines the contact form operations
type ContactUsecase interface {
	// Submit validates, persists and forwards a submission. Validation
	// failures return *validation.Errors via apperror; transport
	// failures are wrapped and surfaced as a generic failure.
	Submit(ctx context.Context, sub *ContactSubmission) (*ContactReceipt, error)
	// ListSubmissions returns stored submissions, newest first.
	ListSubmissions(ctx context.Context, limit, offset int) ([]ContactSubmission, error)
}

// ContactRepository persists accepted submissions
type ContactRepository interface {
	Create(ctx context.Context, sub *ContactSubmission) error
	List(ctx context.Context, limit, offset int) ([]ContactSubmission, error)
}
