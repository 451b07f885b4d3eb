package v1

import (
	"net/http"
	"strconv"

	"go-apply-portal/internal/delivery/http/middleware"
	"go-apply-portal/internal/delivery/http/response"
	"go-apply-portal/internal/domain"
	"go-apply-portal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	submissionUC domain.SubmissionUsecase
}

// NewSubmissionHandler registers the final submission route
func NewSubmissionHandler(rg *gin.RouterGroup, submissionUC domain.SubmissionUsecase) {
	handler := &SubmissionHandler{submissionUC: submissionUC}

	rg.POST("/jobs/:jobId/submit", handler.Submit)
}

type SubmitApplicationRequest struct {
	// ConfirmName must match the applicant's profile name exactly, up to
	// case and surrounding whitespace
	ConfirmName string `json:"confirm_name" binding:"required"`
	// Values overrides or supplies form field values for this attempt;
	// attachments always come from the saved draft
	Values map[string]string `json:"values"`
}

// SubmitApplication godoc
// @Summary      Submit an application
// @Description  Validate the application form and forward it to the ATS. Requires the applicant to re-type their full name as confirmation.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        jobId       path      int                       true  "Job ID"
// @Param        submission  body      SubmitApplicationRequest  true  "Submission confirmation"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /jobs/{jobId}/submit [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("jobId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := middleware.ApplicantFrom(c)
	if profile == nil {
		c.Error(apperror.Unauthorized("No applicant profile available"))
		return
	}

	application, err := h.submissionUC.Submit(c.Request.Context(), profile, &domain.SubmitRequest{
		JobID:       jobID,
		ConfirmName: req.ConfirmName,
		Values:      req.Values,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", application)
}
