package handler

import (
	"fmt"
	"net/http"

	"github.com/deepshiftai/invoicer-api/internal/application/service"
	"github.com/deepshiftai/invoicer-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ExportHandler handles PDF export HTTP requests
type ExportHandler struct {
	exportService   *service.ExportService
	documentService *service.DocumentService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService, documentService *service.DocumentService) *ExportHandler {
	return &ExportHandler{
		exportService:   exportService,
		documentService: documentService,
	}
}

// PDF renders a document as a downloadable PDF file
func (h *ExportHandler) PDF(c *gin.Context) {
	doc, err := h.documentService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	data, filename, err := h.exportService.PDF(doc)
	if err != nil {
		response.InternalServerError(c, "Failed to render PDF")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
