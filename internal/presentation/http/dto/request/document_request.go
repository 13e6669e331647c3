package request

// AssetRequest carries an uploaded branding image as a data URL.
type AssetRequest struct {
	DataURL string `json:"dataUrl" binding:"required"`
}

// ScanRequest carries raw QR code content captured by a scanner.
type ScanRequest struct {
	Content string `json:"content" binding:"required"`
}
