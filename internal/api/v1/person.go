package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hirestream/hirestream/internal/api/dto"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/logger"
	"github.com/hirestream/hirestream/internal/service"
	"github.com/hirestream/hirestream/internal/types"
)

type PersonHandler struct {
	service   service.PersonService
	lifecycle service.LifecycleService
	log       *logger.Logger
}

func NewPersonHandler(
	service service.PersonService,
	lifecycle service.LifecycleService,
	log *logger.Logger,
) *PersonHandler {
	return &PersonHandler{
		service:   service,
		lifecycle: lifecycle,
		log:       log,
	}
}

// @Summary Submit an application
// @Description Submit a public job application; the person enters as a candidate
// @Tags Persons
// @Accept json
// @Produce json
// @Param application body dto.CreateApplicationRequest true "Application"
// @Success 201 {object} dto.PersonResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /applications [post]
func (h *PersonHandler) CreateApplication(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateApplication(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Import an employee
// @Description Create a person directly as an employee, bypassing the hiring funnel
// @Tags Persons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param person body dto.ImportEmployeeRequest true "Employee"
// @Success 201 {object} dto.PersonResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /persons/import [post]
func (h *PersonHandler) ImportEmployee(c *gin.Context) {
	var req dto.ImportEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ImportEmployee(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a person
// @Description Get a person by ID
// @Tags Persons
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Person ID"
// @Success 200 {object} dto.PersonResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /persons/{id} [get]
func (h *PersonHandler) GetPerson(c *gin.Context) {
	resp, err := h.service.GetPerson(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List persons by status
// @Description List one status partition, newest applications first
// @Tags Persons
// @Produce json
// @Security ApiKeyAuth
// @Param status query string true "Person status"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.ListPersonsResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /persons [get]
func (h *PersonHandler) ListPersons(c *gin.Context) {
	var filter types.PersonFilter
	filter.QueryFilter = *types.NewDefaultQueryFilter()
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	status := types.PersonStatus(c.Query("status"))
	resp, err := h.lifecycle.ListByStatus(c.Request.Context(), status, &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a person
// @Description Update a person's application payload. Status changes go through the status endpoint.
// @Tags Persons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Person ID"
// @Param person body dto.UpdatePersonRequest true "Person"
// @Success 200 {object} dto.PersonResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /persons/{id} [put]
func (h *PersonHandler) UpdatePerson(c *gin.Context) {
	var req dto.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdatePerson(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a person
// @Description Delete a person and their document references
// @Tags Persons
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Person ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} middleware.ErrorResponse
// @Router /persons/{id} [delete]
func (h *PersonHandler) DeletePerson(c *gin.Context) {
	if err := h.service.DeletePerson(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "person deleted successfully"})
}

// @Summary Change a person's status
// @Description Apply a lifecycle transition. Moving to inactive requires an effective date, reason and description.
// @Tags Persons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Person ID"
// @Param status body dto.SetStatusRequest true "Status change"
// @Success 200 {object} dto.PersonResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /persons/{id}/status [post]
func (h *PersonHandler) SetStatus(c *gin.Context) {
	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.lifecycle.SetStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Dashboard summary
// @Description Per-status person counts for the dashboard navigation. Counts are best effort.
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.DashboardSummaryResponse
// @Router /dashboard/summary [get]
func (h *PersonHandler) GetDashboardSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.lifecycle.GetDashboardSummary(c.Request.Context()))
}

// @Summary Expiring credentials
// @Description List new hires and employees whose driver's license expires within the window
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Param within_days query int false "Day window (default 30)"
// @Success 200 {object} dto.ListExpiringCredentialsResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /credentials/expiring [get]
func (h *PersonHandler) CheckExpiringCredentials(c *gin.Context) {
	withinDays := 30
	if raw := c.Query("within_days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.Error(ierr.WithError(err).
				WithHint("within_days must be an integer").
				Mark(ierr.ErrValidation))
			return
		}
		withinDays = parsed
	}

	resp, err := h.lifecycle.CheckExpiringCredentials(c.Request.Context(), withinDays)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
