package handler

import (
	"strings"

	"github.com/deepshiftai/invoicer-api/internal/application/service"
	"github.com/deepshiftai/invoicer-api/internal/presentation/http/dto/request"
	"github.com/deepshiftai/invoicer-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// BrandingHandler handles signature and logo HTTP requests
type BrandingHandler struct {
	brandingService *service.BrandingService
}

// NewBrandingHandler creates a new branding handler
func NewBrandingHandler(brandingService *service.BrandingService) *BrandingHandler {
	return &BrandingHandler{brandingService: brandingService}
}

// GetSignature returns the stored signature data URL
func (h *BrandingHandler) GetSignature(c *gin.Context) {
	dataURL, err := h.brandingService.Signature(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Signature retrieved", gin.H{"dataUrl": dataURL})
}

// SetSignature stores the uploaded signature
func (h *BrandingHandler) SetSignature(c *gin.Context) {
	var req request.AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if !strings.HasPrefix(req.DataURL, "data:image/") {
		response.BadRequest(c, "Signature must be an image data URL")
		return
	}

	if err := h.brandingService.SetSignature(c.Request.Context(), req.DataURL); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Signature saved", gin.H{"dataUrl": req.DataURL})
}

// DeleteSignature removes the stored signature
func (h *BrandingHandler) DeleteSignature(c *gin.Context) {
	if err := h.brandingService.RemoveSignature(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// GetLogo returns the stored logo data URL
func (h *BrandingHandler) GetLogo(c *gin.Context) {
	dataURL, err := h.brandingService.Logo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Logo retrieved", gin.H{"dataUrl": dataURL})
}

// SetLogo stores the uploaded logo
func (h *BrandingHandler) SetLogo(c *gin.Context) {
	var req request.AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if !strings.HasPrefix(req.DataURL, "data:image/") {
		response.BadRequest(c, "Logo must be an image data URL")
		return
	}

	if err := h.brandingService.SetLogo(c.Request.Context(), req.DataURL); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Logo saved", gin.H{"dataUrl": req.DataURL})
}

// DeleteLogo removes the stored logo
func (h *BrandingHandler) DeleteLogo(c *gin.Context) {
	if err := h.brandingService.RemoveLogo(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
