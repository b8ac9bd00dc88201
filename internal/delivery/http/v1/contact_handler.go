package v1

import (
	"errors"
	"io"
	"net/http"

	"go-pestcontrol-web/internal/content"
	"go-pestcontrol-web/internal/delivery/http/response"
	"go-pestcontrol-web/internal/domain"
	"go-pestcontrol-web/internal/usecase"
	"go-pestcontrol-web/pkg/apperror"
	"go-pestcontrol-web/pkg/locale"
	"go-pestcontrol-web/pkg/security"
	"go-pestcontrol-web/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact route (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, limiter gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", limiter, handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Submit a pest control request. Multipart form with an optional photo. This is a public endpoint.
// @Tags         contact
// @Accept       multipart/form-data
// @Produce      json
// @Param        name      formData  string  true   "Customer name (2-50 chars)"
// @Param        phone     formData  string  true   "Phone number (min 10 chars)"
// @Param        area      formData  string  true   "District slug or 'other'"
// @Param        pestType  formData  string  true   "Pest type or 'other'"
// @Param        message   formData  string  true   "Problem description (10-500 chars)"
// @Param        locale    formData  string  false  "ar or en, controls error message language"
// @Param        file      formData  file    false  "Photo of the problem (jpeg/png/webp, max 5 MiB)"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      429       {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	l := locale.Parse(c.PostForm("locale"))

	var sub domain.ContactSubmission
	if err := c.ShouldBind(&sub); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if fileHeader, err := c.FormFile("file"); err == nil && fileHeader != nil {
		// Size is rejected up front, mirroring the client's
		// attach-time check, before the bytes are even read.
		if fileHeader.Size > security.MaxAttachmentBytes {
			response.Error(c, http.StatusBadRequest, content.T(l, "contact.failure"), []validation.FieldError{
				{Field: "file", Message: "file too large: max 5 MiB"},
			})
			return
		}

		f, err := fileHeader.Open()
		if err != nil {
			c.Error(apperror.BadRequest("could not read uploaded file"))
			return
		}
		data, err := io.ReadAll(io.LimitReader(f, security.MaxAttachmentBytes+1))
		f.Close()
		if err != nil {
			c.Error(apperror.BadRequest("could not read uploaded file"))
			return
		}

		sub.File = &domain.Attachment{
			Filename: fileHeader.Filename,
			Size:     fileHeader.Size,
			MIME:     fileHeader.Header.Get("Content-Type"),
			Data:     data,
		}
	}

	receipt, err := h.contactUC.Submit(c.Request.Context(), &sub)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			response.Error(c, http.StatusBadRequest, content.T(l, "contact.failure"),
				validation.FormatValidationErrors(err, l))
			return
		}

		var attErr *usecase.AttachmentError
		if errors.As(err, &attErr) {
			response.Error(c, http.StatusBadRequest, content.T(l, "contact.failure"), []validation.FieldError{
				{Field: "file", Message: attErr.Reason},
			})
			return
		}

		c.Error(apperror.New(http.StatusBadGateway, content.T(l, "contact.failure"), err))
		return
	}

	response.Success(c, http.StatusOK, content.T(l, "contact.success"), receipt)
}
