package handler

import (
	"net/http"
	"strconv"

	"github.com/deepshiftai/invoicer-api/internal/application/service"
	"github.com/deepshiftai/invoicer-api/internal/presentation/http/dto/request"
	"github.com/deepshiftai/invoicer-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// VerificationHandler handles QR code generation and document verification
type VerificationHandler struct {
	verificationService *service.VerificationService
	documentService     *service.DocumentService
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(
	verificationService *service.VerificationService,
	documentService *service.DocumentService,
) *VerificationHandler {
	return &VerificationHandler{
		verificationService: verificationService,
		documentService:     documentService,
	}
}

// QRCode returns the document's verification QR code as a PNG
func (h *VerificationHandler) QRCode(c *gin.Context) {
	doc, err := h.documentService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	size := 256
	if s := c.Query("size"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed >= 64 && parsed <= 1024 {
			size = parsed
		}
	}

	png, err := h.verificationService.QRCodePNG(doc, size)
	if err != nil {
		response.InternalServerError(c, "Failed to render QR code")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// Verify resolves a document id to its public verification summary. Unknown
// ids return an invalid result rather than a bare error, so scanners can show
// a definitive "not found" screen.
func (h *VerificationHandler) Verify(c *gin.Context) {
	result, err := h.verificationService.Verify(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.APIResponse{
			Success: false,
			Message: "Document not found",
			Data:    result,
		})
		return
	}
	response.OK(c, "Document verified", result)
}

// Scan resolves raw QR content to a verification summary. Malformed payloads
// and unknown ids both answer 200 with an invalid result so scanners always
// get a definitive verdict.
func (h *VerificationHandler) Scan(c *gin.Context) {
	var req request.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	id, err := service.DocumentIDFromPayload(req.Content)
	if err != nil {
		response.OK(c, "Document could not be verified", &service.VerificationResult{Valid: false})
		return
	}

	result, err := h.verificationService.Verify(c.Request.Context(), id)
	if err != nil {
		response.OK(c, "Document could not be verified", result)
		return
	}
	response.OK(c, "Document verified", result)
}
