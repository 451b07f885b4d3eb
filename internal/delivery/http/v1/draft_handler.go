package v1

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-apply-portal/internal/delivery/http/response"
	"go-apply-portal/internal/domain"
	"go-apply-portal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type DraftHandler struct {
	draftUC domain.DraftUsecase
}

// NewDraftHandler registers the draft save/restore routes
func NewDraftHandler(rg *gin.RouterGroup, draftUC domain.DraftUsecase) {
	handler := &DraftHandler{draftUC: draftUC}

	rg.POST("/applications/save", handler.Save)
	rg.GET("/applications/save", handler.Load)
}

// SaveApplication godoc
// @Summary      Save an application draft
// @Description  Persist an in-progress application so it survives a page reload. Any keys beyond job_id and attachments are stored as form field values.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        draft  body      map[string]interface{}  true  "Draft application"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /applications/save [post]
func (h *DraftHandler) Save(c *gin.Context) {
	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	draft, err := draftFromBody(body)
	if err != nil {
		c.Error(err)
		return
	}

	saved, err := h.draftUC.SaveDraft(c.Request.Context(), draft)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application saved successfully", saved)
}

// LoadApplication godoc
// @Summary      Load a saved application draft
// @Description  Retrieve the saved draft for a job, if one exists
// @Tags         applications
// @Produce      json
// @Param        jobId  query     int  true  "Job ID"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /applications/save [get]
func (h *DraftHandler) Load(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Query("jobId"), 10, 64)
	if err != nil || jobID == 0 {
		c.Error(apperror.BadRequest("Job ID is required"))
		return
	}

	draft, err := h.draftUC.LoadDraft(c.Request.Context(), jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application retrieved successfully", draft)
}

// draftFromBody splits the incoming JSON into the draft's fixed shape and
// its free-form field values. Clients send field values as sibling keys of
// job_id, so anything not recognized lands in Fields unchanged.
func draftFromBody(body map[string]json.RawMessage) (*domain.DraftApplication, error) {
	draft := &domain.DraftApplication{
		Fields:      map[string]interface{}{},
		Attachments: []domain.Attachment{},
	}

	for key, raw := range body {
		switch key {
		case "id":
			if err := json.Unmarshal(raw, &draft.ID); err != nil {
				return nil, apperror.BadRequest("Invalid draft ID")
			}
		case "job_id":
			if err := json.Unmarshal(raw, &draft.JobID); err != nil {
				return nil, apperror.BadRequest("Job ID is required")
			}
		case "user_id", "applicant_id":
			if err := json.Unmarshal(raw, &draft.ApplicantID); err != nil {
				return nil, apperror.BadRequest("Invalid applicant ID")
			}
		case "attachments":
			if err := json.Unmarshal(raw, &draft.Attachments); err != nil {
				return nil, apperror.BadRequest("Invalid attachments")
			}
		case "saved_at":
			// Server-assigned, ignore whatever the client echoes back
		default:
			var value interface{}
			if err := json.Unmarshal(raw, &value); err != nil {
				return nil, apperror.BadRequest("Invalid field value: " + key)
			}
			draft.Fields[key] = value
		}
	}

	return draft, nil
}
