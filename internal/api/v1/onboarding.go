package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirestream/hirestream/internal/api/dto"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/logger"
	"github.com/hirestream/hirestream/internal/service"
)

type OnboardingHandler struct {
	service service.OnboardingService
	log     *logger.Logger
}

func NewOnboardingHandler(service service.OnboardingService, log *logger.Logger) *OnboardingHandler {
	return &OnboardingHandler{service: service, log: log}
}

// @Summary Issue an onboarding link
// @Description Sign a time-limited onboarding link token for a person
// @Tags Onboarding
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param link body dto.IssueLinkRequest true "Link request"
// @Success 201 {object} dto.IssueLinkResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /onboarding/links [post]
func (h *OnboardingHandler) IssueLink(c *gin.Context) {
	var req dto.IssueLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.IssueLink(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Resolve an onboarding link
// @Description Verify a link token and return the onboarding phase for its person
// @Tags Onboarding
// @Produce json
// @Param token query string true "Link token"
// @Success 200 {object} dto.OnboardingPhaseResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /onboarding/phase [get]
func (h *OnboardingHandler) GetPhase(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.Error(ierr.NewError("token is required").
			WithHint("An onboarding link token is required").
			Mark(ierr.ErrTokenInvalid))
		return
	}

	resp, err := h.service.GetPhase(c.Request.Context(), token)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
