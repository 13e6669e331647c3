package service

import (
	"context"

	"github.com/deepshiftai/invoicer-api/internal/domain/repository"
)

// KV store keys for branding assets. Values are data URLs uploaded by the user.
const (
	signatureKey = "invoicer-signature"
	logoKey      = "invoicer-logo"
)

// BrandingService manages the stored signature and logo images
type BrandingService struct {
	kv repository.KVStore
}

// NewBrandingService creates a new branding service
func NewBrandingService(kv repository.KVStore) *BrandingService {
	return &BrandingService{kv: kv}
}

// Signature returns the stored signature data URL, or empty when unset.
func (s *BrandingService) Signature(ctx context.Context) (string, error) {
	value, _, err := s.kv.Get(ctx, signatureKey)
	return value, err
}

// SetSignature stores the signature data URL.
func (s *BrandingService) SetSignature(ctx context.Context, dataURL string) error {
	return s.kv.Set(ctx, signatureKey, dataURL)
}

// RemoveSignature deletes the stored signature.
func (s *BrandingService) RemoveSignature(ctx context.Context) error {
	return s.kv.Delete(ctx, signatureKey)
}

// Logo returns the stored logo data URL, or empty when unset.
func (s *BrandingService) Logo(ctx context.Context) (string, error) {
	value, _, err := s.kv.Get(ctx, logoKey)
	return value, err
}

// SetLogo stores the logo data URL.
func (s *BrandingService) SetLogo(ctx context.Context, dataURL string) error {
	return s.kv.Set(ctx, logoKey, dataURL)
}

// RemoveLogo deletes the stored logo.
func (s *BrandingService) RemoveLogo(ctx context.Context) error {
	return s.kv.Delete(ctx, logoKey)
}
