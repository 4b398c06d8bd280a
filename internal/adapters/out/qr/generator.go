// Package qr renders parcel pickup credentials as QR code images.
package qr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"relais/internal/core/domain/model/kernel"

	qrcode "github.com/skip2/go-qrcode"
)

const imageSizePx = 256

// FileQRGenerator implements ports.QRGenerator by writing PNG images to a
// local directory. The returned path is the public serving path, not the
// filesystem location.
type FileQRGenerator struct {
	dir string
}

// NewFileQRGenerator creates a generator writing images under dir.
func NewFileQRGenerator(dir string) *FileQRGenerator {
	return &FileQRGenerator{dir: dir}
}

// Generate renders a QR image encoding the parcel identifier and returns its
// public path. Regenerating for the same parcel overwrites the previous image.
func (g *FileQRGenerator) Generate(_ context.Context, parcelID kernel.UUID) (string, error) {
	if err := parcelID.Validate(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create qr directory: %w", err)
	}

	fileName := fmt.Sprintf("QRCode_%s.png", parcelID.String())
	filePath := filepath.Join(g.dir, fileName)

	if err := qrcode.WriteFile(parcelID.String(), qrcode.Medium, imageSizePx, filePath); err != nil {
		return "", fmt.Errorf("failed to render qr code: %w", err)
	}

	return "/qr-codes/" + fileName, nil
}
