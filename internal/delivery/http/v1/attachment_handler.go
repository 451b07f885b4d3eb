package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"go-apply-portal/internal/delivery/http/middleware"
	"go-apply-portal/internal/delivery/http/response"
	"go-apply-portal/internal/encoder"
	"go-apply-portal/pkg/apperror"
	"go-apply-portal/pkg/security"

	"github.com/gin-gonic/gin"
)

type AttachmentHandler struct {
	encoder *encoder.Encoder
	limiter *security.UploadLimiter
}

// NewAttachmentHandler registers the file upload route
func NewAttachmentHandler(rg *gin.RouterGroup, enc *encoder.Encoder, limiter *security.UploadLimiter) {
	handler := &AttachmentHandler{encoder: enc, limiter: limiter}

	rg.POST("/jobs/:jobId/attachments", handler.Upload)
}

// UploadAttachment godoc
// @Summary      Upload an attachment
// @Description  Validate and encode a resume, cover letter, or video for a job application. The encoded attachment is folded into the job's saved draft.
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Param        jobId  path      int     true  "Job ID"
// @Param        kind   formData  string  true  "Attachment kind (resume, cover_letter, video)"
// @Param        file   formData  file    true  "File content"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      422    {object}  response.Response
// @Failure      429    {object}  response.Response
// @Router       /jobs/{jobId}/attachments [post]
func (h *AttachmentHandler) Upload(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("jobId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	kind := c.PostForm("kind")
	if kind == "" {
		c.Error(apperror.BadRequest("Attachment kind is required"))
		return
	}

	var applicantID int64
	if profile := middleware.ApplicantFrom(c); profile != nil {
		applicantID = profile.ID
	}

	allowed, retryAfter, err := h.limiter.AllowUpload(c.Request.Context(), c.ClientIP(), applicantID)
	if err == nil && !allowed {
		c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
		response.Error(c, http.StatusTooManyRequests, "Too many uploads. Please try again later.", nil)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("A file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Unprocessable("Failed to process file content"))
		return
	}
	defer file.Close()

	attachment, err := h.encoder.Encode(c.Request.Context(), jobID, kind, fileHeader.Filename, file)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Attachment uploaded successfully", gin.H{
		"filename":     attachment.Filename,
		"type":         attachment.Type,
		"content_type": attachment.ContentType,
	})
}
