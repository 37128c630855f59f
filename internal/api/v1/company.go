package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirestream/hirestream/internal/api/dto"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/logger"
	"github.com/hirestream/hirestream/internal/service"
	"github.com/hirestream/hirestream/internal/types"
)

type CompanyHandler struct {
	service service.CompanyService
	log     *logger.Logger
}

func NewCompanyHandler(service service.CompanyService, log *logger.Logger) *CompanyHandler {
	return &CompanyHandler{service: service, log: log}
}

// @Summary Create a company
// @Description Create a company with its required-document definitions
// @Tags Companies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param company body dto.CreateCompanyRequest true "Company"
// @Success 201 {object} dto.CompanyResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateCompany(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a company
// @Description Get a company by ID
// @Tags Companies
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Company ID"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /companies/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	resp, err := h.service.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List companies
// @Description List companies
// @Tags Companies
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.ListCompaniesResponse
// @Router /companies [get]
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	var filter types.CompanyFilter
	filter.QueryFilter = *types.NewDefaultQueryFilter()
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListCompanies(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a company
// @Description Update a company's profile or required-document definitions
// @Tags Companies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Company ID"
// @Param company body dto.UpdateCompanyRequest true "Company"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /companies/{id} [put]
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateCompany(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a company
// @Description Delete a company
// @Tags Companies
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Company ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} middleware.ErrorResponse
// @Router /companies/{id} [delete]
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	if err := h.service.DeleteCompany(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "company deleted successfully"})
}

// @Summary Upload a company logo
// @Description Upload the company logo as multipart form data
// @Tags Companies
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Company ID"
// @Param file formData file true "Logo image"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /companies/{id}/logo [post]
func (h *CompanyHandler) UploadLogo(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("A logo file is required").
			Mark(ierr.ErrValidation))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Failed to read uploaded file").
			Mark(ierr.ErrValidation))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Failed to read uploaded file").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UploadLogo(c.Request.Context(), c.Param("id"), data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
