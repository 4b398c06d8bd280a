package ports

import (
	"context"

	"relais/internal/core/domain/model/kernel"
)

// QRGenerator renders a pickup credential for a parcel and returns the
// path under which the rendered image is served.
type QRGenerator interface {
	// Generate renders a QR image encoding the parcel identifier and
	// returns its public path, e.g. "/qr-codes/QRCode_{id}.png".
	Generate(ctx context.Context, parcelID kernel.UUID) (string, error)
}
