package handler

import (
	"github.com/deepshiftai/invoicer-api/internal/application/service"
	"github.com/deepshiftai/invoicer-api/internal/domain/entity"
	"github.com/deepshiftai/invoicer-api/internal/domain/enum"
	"github.com/deepshiftai/invoicer-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// DocumentHandler handles document-related HTTP requests
type DocumentHandler struct {
	documentService *service.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// List returns documents matching the query parameters
func (h *DocumentHandler) List(c *gin.Context) {
	criteria := entity.QueryCriteria{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		DateStart: c.Query("date_start"),
		DateEnd:   c.Query("date_end"),
		Sort:      enum.SortKey(c.Query("sort")),
	}

	docs := h.documentService.List(c.Request.Context(), criteria)

	response.OK(c, "Documents retrieved", gin.H{
		"documents": docs,
		"count":     len(docs),
	})
}

// New returns a fresh unsaved draft with editor defaults
func (h *DocumentHandler) New(c *gin.Context) {
	doc, err := h.documentService.NewDraft(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Draft created", doc)
}

// Get returns a single document by id
func (h *DocumentHandler) Get(c *gin.Context) {
	doc, err := h.documentService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Document retrieved", doc)
}

// SaveDraft stores a document as a draft
func (h *DocumentHandler) SaveDraft(c *gin.Context) {
	var doc entity.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	saved, err := h.documentService.SaveDraft(c.Request.Context(), doc)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Draft saved", saved)
}

// Finalize issues a document as an invoice or receipt
func (h *DocumentHandler) Finalize(c *gin.Context) {
	var doc entity.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	finalized, err := h.documentService.Finalize(c.Request.Context(), doc)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Document finalized", finalized)
}

// MarkPaid marks an issued invoice as paid
func (h *DocumentHandler) MarkPaid(c *gin.Context) {
	doc, err := h.documentService.MarkPaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Document marked as paid", doc)
}

// Delete removes a document
func (h *DocumentHandler) Delete(c *gin.Context) {
	if err := h.documentService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
