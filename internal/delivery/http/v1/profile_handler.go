package v1

import (
	"net/http"

	"go-apply-portal/internal/delivery/http/middleware"
	"go-apply-portal/internal/delivery/http/response"
	"go-apply-portal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct{}

// NewProfileHandler registers the applicant profile routes
func NewProfileHandler(rg *gin.RouterGroup) {
	handler := &ProfileHandler{}

	rg.GET("/me", handler.Me)
}

// GetProfile godoc
// @Summary      Get the acting applicant profile
// @Description  Get the profile prefilled into every application form. Resolved from the session token, or the configured default applicant.
// @Tags         applicants
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /me [get]
func (h *ProfileHandler) Me(c *gin.Context) {
	profile := middleware.ApplicantFrom(c)
	if profile == nil {
		c.Error(apperror.Unauthorized("No applicant profile available"))
		return
	}

	response.Success(c, http.StatusOK, "Applicant profile", profile)
}
