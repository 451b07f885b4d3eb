package v1

import (
	"net/http"

	"go-apply-portal/internal/delivery/http/response"
	"go-apply-portal/internal/domain"

	"github.com/gin-gonic/gin"
)

type TrackHandler struct {
	trackUC domain.TrackUsecase
}

// NewTrackHandler registers the per-track form field catalog routes
func NewTrackHandler(rg *gin.RouterGroup, trackUC domain.TrackUsecase) {
	handler := &TrackHandler{trackUC: trackUC}

	rg.GET("/tracks/:track/fields", handler.Fields)
}

// TrackFields godoc
// @Summary      Get form fields for a track
// @Description  Get the ordered field definitions an application form renders for a track. Unknown tracks return an empty list.
// @Tags         tracks
// @Produce      json
// @Param        track  path      string  true  "Track name (Engineering, Design, Product, job)"
// @Success      200    {object}  response.Response
// @Router       /tracks/{track}/fields [get]
func (h *TrackHandler) Fields(c *gin.Context) {
	fields := h.trackUC.FieldsForTrack(c.Request.Context(), c.Param("track"))

	response.Success(c, http.StatusOK, "Track fields", gin.H{
		"track":  c.Param("track"),
		"fields": fields,
	})
}
