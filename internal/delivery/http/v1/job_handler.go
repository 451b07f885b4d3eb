package v1

import (
	"net/http"
	"strconv"

	"go-apply-portal/internal/delivery/http/response"
	"go-apply-portal/internal/domain"
	"go-apply-portal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

// NewJobHandler registers the job listing routes
func NewJobHandler(rg *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := rg.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/:jobId", handler.GetDetails)
	}
}

// ListJobs godoc
// @Summary      List open jobs
// @Description  Get every job listing the portal accepts applications for
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobUC.ListJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

// GetJobDetails godoc
// @Summary      Get job details
// @Description  Get one job listing by ID
// @Tags         jobs
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /jobs/{jobId} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("jobId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}
