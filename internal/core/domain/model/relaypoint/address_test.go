package relaypoint_test

import (
	"testing"

	"relais/internal/core/domain/model/relaypoint"
	"relais/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("creates address", func(t *testing.T) {
		addr, err := relaypoint.NewAddress("12 rue de la Paix", "Paris", "75002")

		require.NoError(t, err)
		assert.Equal(t, "12 rue de la Paix", addr.Street())
		assert.Equal(t, "Paris", addr.City())
		assert.Equal(t, "75002", addr.PostalCode())
		assert.Equal(t, "12 rue de la Paix, 75002 Paris", addr.String())
	})

	t.Run("rejects empty fields", func(t *testing.T) {
		tests := []struct {
			name               string
			street, city, code string
		}{
			{"empty street", "", "Paris", "75002"},
			{"empty city", "12 rue de la Paix", "", "75002"},
			{"empty postal code", "12 rue de la Paix", "Paris", ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := relaypoint.NewAddress(tt.street, tt.city, tt.code)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var addr relaypoint.Address

		require.Error(t, addr.Validate())
	})
}
