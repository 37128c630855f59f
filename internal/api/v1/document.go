package v1

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hirestream/hirestream/internal/api/dto"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/logger"
	"github.com/hirestream/hirestream/internal/service"
	"github.com/hirestream/hirestream/internal/types"
)

type DocumentHandler struct {
	service service.DocumentService
	log     *logger.Logger
}

func NewDocumentHandler(service service.DocumentService, log *logger.Logger) *DocumentHandler {
	return &DocumentHandler{service: service, log: log}
}

// @Summary Upload a document
// @Description Upload a file into a named slot for a person. Single slots replace the previous upload.
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Person ID"
// @Param slot formData string true "Document slot"
// @Param requirement_id formData string false "Required-document definition ID"
// @Param file formData file true "File"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /persons/{id}/documents [post]
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("A file is required").
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

	req := dto.UploadDocumentRequest{
		PersonID:      c.Param("id"),
		Slot:          types.DocumentSlot(c.PostForm("slot")),
		RequirementID: c.PostForm("requirement_id"),
		FileName:      fileHeader.Filename,
	}

	resp, err := h.service.UploadDocument(c.Request.Context(), req, data)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary List a person's documents
// @Description List document references for a person, optionally filtered by slot
// @Tags Documents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Person ID"
// @Param slot query string false "Document slot"
// @Success 200 {object} dto.ListDocumentsResponse
// @Router /persons/{id}/documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	filter := types.NewNoLimitDocumentFilter(c.Param("id"))
	if raw := c.Query("slot"); raw != "" {
		slot := types.DocumentSlot(raw)
		filter.Slot = &slot
	}

	resp, err := h.service.ListDocuments(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get a document
// @Description Get a document reference by ID
// @Tags Documents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	resp, err := h.service.GetDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a document
// @Description Delete a document reference and best-effort remove the stored file
// @Tags Documents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Document ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} middleware.ErrorResponse
// @Router /documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	if err := h.service.DeleteDocument(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "document deleted successfully"})
}

// @Summary Retrieve a file
// @Description Stream stored file bytes by opaque storage key
// @Tags Files
// @Produce octet-stream
// @Security ApiKeyAuth
// @Param key path string true "Storage key"
// @Success 200 {file} binary
// @Failure 404 {object} middleware.ErrorResponse
// @Router /files/{key} [get]
func (h *DocumentHandler) GetFile(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")

	content, err := h.service.GetContentByKey(c.Request.Context(), key)
	if err != nil {
		c.Error(err)
		return
	}

	serveContent(c, content)
}

// @Summary Retrieve a person's file
// @Description Stream stored file bytes scoped to a person; keys belonging to other people are not found
// @Tags Files
// @Produce octet-stream
// @Security ApiKeyAuth
// @Param id path string true "Person ID"
// @Param key path string true "Storage key"
// @Success 200 {file} binary
// @Failure 404 {object} middleware.ErrorResponse
// @Router /persons/{id}/files/{key} [get]
func (h *DocumentHandler) GetPersonFile(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")

	content, err := h.service.GetContentForPerson(c.Request.Context(), c.Param("id"), key)
	if err != nil {
		c.Error(err)
		return
	}

	serveContent(c, content)
}

func serveContent(c *gin.Context, content *dto.DocumentContent) {
	contentType := content.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", `inline; filename="`+content.FileName+`"`)
	c.Data(http.StatusOK, contentType, content.Data)
}
