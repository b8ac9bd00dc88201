package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-pestcontrol-web/internal/domain"
	"go-pestcontrol-web/pkg/email"
	"go-pestcontrol-web/pkg/locale"
	"go-pestcontrol-web/pkg/security"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Forwarder relays an accepted submission to the company inbox.
// Satisfied by *email.EmailService.
type Forwarder interface {
	SendSubmissionEmail(data email.SubmissionEmailData) error
	IsConfigured() bool
}

// AttachmentError reports a rejected file. It is surfaced as an
// inline error on the file field, independent of the other fields.
type AttachmentError struct {
	Reason string
}

func (e *AttachmentError) Error() string {
	return "invalid attachment: " + e.Reason
}

type contactUsecase struct {
	repo           domain.ContactRepository
	forwarder      Forwarder
	validate       *validator.Validate
	whatsappHandle string
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(repo domain.ContactRepository, forwarder Forwarder, validate *validator.Validate, whatsappHandle string) domain.ContactUsecase {
	return &contactUsecase{
		repo:           repo,
		forwarder:      forwarder,
		validate:       validate,
		whatsappHandle: whatsappHandle,
	}
}

// Submit validates the submission, rejects a bad attachment before
// anything else runs, then persists and forwards. Each call is
// independent; nothing is memoized between submissions.
func (uc *contactUsecase) Submit(ctx context.Context, sub *domain.ContactSubmission) (*domain.ContactReceipt, error) {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Phone = strings.TrimSpace(sub.Phone)
	sub.Message = strings.TrimSpace(sub.Message)

	if err := uc.validate.Struct(sub); err != nil {
		return nil, err
	}

	if sub.File != nil {
		res := security.ValidateAttachment(sub.File.Filename, sub.File.Data, sub.File.MIME)
		if !res.Valid {
			return nil, &AttachmentError{Reason: res.Error}
		}
	}

	sub.ID = uuid.NewString()
	sub.CreatedAt = time.Now().UTC()

	if uc.repo != nil {
		if err := uc.repo.Create(ctx, sub); err != nil {
			return nil, fmt.Errorf("failed to store submission: %w", err)
		}
	}

	if uc.forwarder != nil && uc.forwarder.IsConfigured() {
		data := email.SubmissionEmailData{
			Name:     sub.Name,
			Phone:    sub.Phone,
			Area:     sub.Area,
			PestType: sub.PestType,
			Message:  sub.Message,
		}
		if sub.File != nil {
			data.AttachmentName = sub.File.Filename
		}
		if err := uc.forwarder.SendSubmissionEmail(data); err != nil {
			return nil, fmt.Errorf("failed to forward submission: %w", err)
		}
	}

	return &domain.ContactReceipt{
		SubmissionID: sub.ID,
		WhatsAppLink: uc.handoffLink(sub),
	}, nil
}

// handoffLink builds the wa.me link the client opens after its
// success toast: a short summary of who is asking, from where, about
// what. Best effort only; nothing tracks whether it gets opened.
func (uc *contactUsecase) handoffLink(sub *domain.ContactSubmission) string {
	summary := fmt.Sprintf(
		"مرحباً، أنا %s من حي %s. لدي مشكلة: %s",
		sub.Name, sub.Area, sub.PestType,
	)
	return locale.BuildMessagingLink(uc.whatsappHandle, summary)
}

// ListSubmissions returns stored submissions, newest first.
func (uc *contactUsecase) ListSubmissions(ctx context.Context, limit, offset int) ([]domain.ContactSubmission, error) {
	if uc.repo == nil {
		return nil, fmt.Errorf("submission storage is not configured")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.repo.List(ctx, limit, offset)
}
