package usecase_test

import (
	"context"
	"net/url"
	"testing"

	"go-pestcontrol-web/internal/content"
	"go-pestcontrol-web/internal/domain"
	"go-pestcontrol-web/internal/usecase"
	"go-pestcontrol-web/pkg/email"
	"go-pestcontrol-web/pkg/locale"
	"go-pestcontrol-web/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories
type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, sub *domain.ContactSubmission) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *MockContactRepo) List(ctx context.Context, limit, offset int) ([]domain.ContactSubmission, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactSubmission), args.Error(1)
}

type MockForwarder struct {
	mock.Mock
}

func (m *MockForwarder) SendSubmissionEmail(data email.SubmissionEmailData) error {
	return m.Called(data).Error(0)
}

func (m *MockForwarder) IsConfigured() bool {
	return m.Called().Bool(0)
}

func newContactUC(repo domain.ContactRepository, fwd usecase.Forwarder) domain.ContactUsecase {
	v := validator.New()
	validation.RegisterValidators(v)
	return usecase.NewContactUsecase(repo, fwd, v, "+966 55 530 1460")
}

func validSubmission() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		Name:     "Ahmed Saleh",
		Phone:    "+966 55 530 1460",
		Area:     "al-hamra",
		PestType: "cockroaches",
		Message:  "There are roaches in my kitchen sink area",
	}
}

func TestSubmitValidation(t *testing.T) {
	t.Run("one-character name fails and never touches repo or forwarder", func(t *testing.T) {
		repo := new(MockContactRepo)
		fwd := new(MockForwarder)
		uc := newContactUC(repo, fwd)

		sub := validSubmission()
		sub.Name = "A"
		_, err := uc.Submit(context.Background(), sub)
		require.Error(t, err)
		assert.IsType(t, validator.ValidationErrors{}, err)

		// Repeated invalid submits stay side-effect free
		_, err = uc.Submit(context.Background(), sub)
		require.Error(t, err)

		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		fwd.AssertNotCalled(t, "SendSubmissionEmail", mock.Anything)
	})

	t.Run("oversized attachment rejected before persistence", func(t *testing.T) {
		repo := new(MockContactRepo)
		fwd := new(MockForwarder)
		uc := newContactUC(repo, fwd)

		sub := validSubmission()
		sub.File = &domain.Attachment{
			Filename: "big.png",
			Size:     6 << 20,
			MIME:     "image/png",
			Data:     make([]byte, 6<<20),
		}
		_, err := uc.Submit(context.Background(), sub)
		require.Error(t, err)

		var attErr *usecase.AttachmentError
		assert.ErrorAs(t, err, &attErr)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		fwd.AssertNotCalled(t, "SendSubmissionEmail", mock.Anything)
	})
}

func TestSubmitHappyPath(t *testing.T) {
	repo := new(MockContactRepo)
	fwd := new(MockForwarder)
	uc := newContactUC(repo, fwd)

	fwd.On("IsConfigured").Return(true)
	fwd.On("SendSubmissionEmail", mock.AnythingOfType("email.SubmissionEmailData")).Return(nil).Run(func(args mock.Arguments) {
		data := args.Get(0).(email.SubmissionEmailData)
		assert.Equal(t, "Ahmed Saleh", data.Name)
		assert.Equal(t, "al-hamra", data.Area)
		assert.Equal(t, "cockroaches", data.PestType)
		assert.Empty(t, data.AttachmentName, "no file was attached")
	})
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ContactSubmission")).Return(nil).Run(func(args mock.Arguments) {
		sub := args.Get(1).(*domain.ContactSubmission)
		assert.NotEmpty(t, sub.ID)
		assert.False(t, sub.CreatedAt.IsZero())
	})

	receipt, err := uc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.NotEmpty(t, receipt.SubmissionID)

	// Handoff link must target the company's digits and carry the
	// summary intact through URL encoding
	u, err := url.Parse(receipt.WhatsAppLink)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/966555301460", u.Path)
	assert.Contains(t, u.Query().Get("text"), "Ahmed Saleh")
	assert.Contains(t, u.Query().Get("text"), "al-hamra")

	repo.AssertExpectations(t)
	fwd.AssertExpectations(t)
}

func TestSubmitTwiceIsIndependent(t *testing.T) {
	repo := new(MockContactRepo)
	fwd := new(MockForwarder)
	uc := newContactUC(repo, fwd)

	fwd.On("IsConfigured").Return(true)
	fwd.On("SendSubmissionEmail", mock.Anything).Return(nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	_, err = uc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	repo.AssertNumberOfCalls(t, "Create", 2)
	fwd.AssertNumberOfCalls(t, "SendSubmissionEmail", 2)
}

func TestSubmitForwardingFailure(t *testing.T) {
	repo := new(MockContactRepo)
	fwd := new(MockForwarder)
	uc := newContactUC(repo, fwd)

	fwd.On("IsConfigured").Return(true)
	fwd.On("SendSubmissionEmail", mock.Anything).Return(assert.AnError)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.Submit(context.Background(), validSubmission())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to forward submission")
}

func TestListSubmissionsClampsPaging(t *testing.T) {
	repo := new(MockContactRepo)
	uc := newContactUC(repo, nil)

	repo.On("List", mock.Anything, 20, 0).Return([]domain.ContactSubmission{}, nil)

	_, err := uc.ListSubmissions(context.Background(), -5, -1)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestContentResolution(t *testing.T) {
	uc := usecase.NewContentUsecase(content.NewCatalog())

	t.Run("arabic service page", func(t *testing.T) {
		svc, ok := uc.ServiceBySlug(locale.Arabic, "cockroaches")
		require.True(t, ok)
		assert.Equal(t, "مكافحة الصراصير", svc.Name)
		assert.Equal(t, "/services/cockroaches", svc.Href)
	})

	t.Run("english service page", func(t *testing.T) {
		svc, ok := uc.ServiceBySlug(locale.English, "cockroaches")
		require.True(t, ok)
		assert.Equal(t, "Cockroach Control", svc.Name)
		assert.Equal(t, "/en/services/cockroaches", svc.Href)
	})

	t.Run("unknown slug reports missing", func(t *testing.T) {
		_, ok := uc.ServiceBySlug(locale.Arabic, "dragons")
		assert.False(t, ok)
	})

	t.Run("blog TOC and related keep caller order", func(t *testing.T) {
		post, ok := uc.PostBySlug(locale.English, "termite-signs")
		require.True(t, ok)
		require.Len(t, post.TOC, 3)
		assert.Equal(t, "mud-tubes", post.TOC[0].ID)
		assert.Equal(t, "hollow-wood", post.TOC[1].ID)
		require.NotEmpty(t, post.Related)
		assert.Equal(t, "/en/blog/summer-pests", post.Related[0].Href)
	})
}
