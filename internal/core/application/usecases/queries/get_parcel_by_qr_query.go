package queries

import (
	"errors"

	"relais/internal/pkg/errs"
	"relais/internal/pkg/guard"
)

var (
	ErrGetParcelByQRQueryIsNotConstructed = errors.New(
		"GetParcelByQRQuery must be created via NewGetParcelByQRQuery constructor",
	)
	ErrQRCodePathIsRequired = errs.NewValueIsRequiredError("qr code path")
)

// GetParcelByQRQuery looks a parcel up by its pickup credential path.
// Used by relay-point operators scanning a presented QR code.
type GetParcelByQRQuery struct { //nolint:recvcheck //using for validation
	qrCodePath string

	guard guard.ConstructorGuard
}

// NewGetParcelByQRQuery creates a credential lookup query.
func NewGetParcelByQRQuery(qrCodePath string) (GetParcelByQRQuery, error) {
	if qrCodePath == "" {
		return GetParcelByQRQuery{}, ErrQRCodePathIsRequired
	}

	return GetParcelByQRQuery{
		qrCodePath: qrCodePath,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelByQRQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelByQRQueryIsNotConstructed)
}

// QRCodePath returns the credential path to look up.
func (q GetParcelByQRQuery) QRCodePath() string { return q.qrCodePath }
