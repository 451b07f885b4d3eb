package v1

import (
	"net/http"

	"go-apply-portal/internal/delivery/http/response"
	"go-apply-portal/internal/domain"
	"go-apply-portal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SupportHandler struct {
	supportUC domain.SupportUsecase
}

// NewSupportHandler registers the support form routes
func NewSupportHandler(rg *gin.RouterGroup, supportUC domain.SupportUsecase) {
	handler := &SupportHandler{supportUC: supportUC}

	rg.POST("/support", handler.SubmitSupport)
}

// SubmitSupport godoc
// @Summary      Submit a support request
// @Description  Send a message to the portal support address
// @Tags         support
// @Accept       json
// @Produce      json
// @Param        support  body      domain.SupportRequest  true  "Support Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /support [post]
func (h *SupportHandler) SubmitSupport(c *gin.Context) {
	var req domain.SupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.supportUC.SendSupportMessage(c.Request.Context(), &req); err != nil {
		if err.Error() == "email service is not configured" {
			c.Error(apperror.New(http.StatusServiceUnavailable, "Support service temporarily unavailable", err))
			return
		}
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to send message. Please try again later.", err))
		return
	}

	response.Success(c, http.StatusOK, "Your message has been sent successfully!", nil)
}
