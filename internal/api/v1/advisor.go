package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirestream/hirestream/internal/logger"
	"github.com/hirestream/hirestream/internal/service"
)

type AdvisorHandler struct {
	service service.AdvisorService
	log     *logger.Logger
}

func NewAdvisorHandler(service service.AdvisorService, log *logger.Logger) *AdvisorHandler {
	return &AdvisorHandler{service: service, log: log}
}

// @Summary Suggest missing documents
// @Description Ask the document completeness advisor which required documents look unmet. Advisory only.
// @Tags Advisor
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Person ID"
// @Success 200 {object} dto.AdvisorSuggestionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /persons/{id}/advisor/suggestions [get]
func (h *AdvisorHandler) SuggestMissingDocuments(c *gin.Context) {
	resp, err := h.service.SuggestMissingDocuments(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Extract document fields
// @Description Ask the advisor to read fields out of a stored document
// @Tags Advisor
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Document ID"
// @Success 200 {object} dto.ExtractedFieldsResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /documents/{id}/fields [get]
func (h *AdvisorHandler) ExtractDocumentFields(c *gin.Context) {
	resp, err := h.service.ExtractDocumentFields(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
