package v1

import (
	"net/http"
	"strconv"

	"go-pestcontrol-web/internal/delivery/http/response"
	"go-pestcontrol-web/internal/domain"
	"go-pestcontrol-web/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	contactUC domain.ContactUsecase
}

// NewAdminHandler registers the admin routes (JWT protected)
func NewAdminHandler(protected *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &AdminHandler{
		contactUC: contactUC,
	}

	protected.GET("/admin/submissions", handler.ListSubmissions)
}

// ListSubmissions godoc
// @Summary      List Contact Submissions
// @Description  Returns stored submissions, newest first.
// @Tags         admin
// @Produce      json
// @Param        limit   query     int  false  "Page size (max 100, default 20)"
// @Param        offset  query     int  false  "Offset"
// @Success      200     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/submissions [get]
func (h *AdminHandler) ListSubmissions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	subs, err := h.contactUC.ListSubmissions(c.Request.Context(), limit, offset)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Submissions retrieved", subs)
}
