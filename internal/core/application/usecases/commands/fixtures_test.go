package commands_test

import (
	"testing"

	"relais/internal/core/domain/model/client"
	"relais/internal/core/domain/model/kernel"
	"relais/internal/core/domain/model/owner"
	"relais/internal/core/domain/model/parcel"
	"relais/internal/core/domain/model/relaypoint"

	"github.com/stretchr/testify/require"
)

func fixtureClient(t *testing.T) *client.Client {
	t.Helper()
	c, err := client.NewClient(
		kernel.NewUUID(), "Marie", "Durand", "marie@example.com",
		"+33612345678", "hash", "Paris")
	require.NoError(t, err)
	return c
}

func fixtureOwner(t *testing.T) *owner.Owner {
	t.Helper()
	o, err := owner.NewOwner(kernel.NewUUID(), "Pierre Blanc", "pierre@example.com")
	require.NoError(t, err)
	return o
}

func fixtureRelayPoint(t *testing.T, capacity int) *relaypoint.RelayPoint {
	t.Helper()
	coords, err := kernel.NewCoordinates(48.8566, 2.3522)
	require.NoError(t, err)
	addr, err := relaypoint.NewAddress("12 rue de la Paix", "Paris", "75002")
	require.NoError(t, err)
	rp, err := relaypoint.NewRelayPoint(
		kernel.NewUUID(), "Tabac de la Paix", coords, addr,
		kernel.NewUUID(), capacity, "Mon-Sat 8:00-19:00", "")
	require.NoError(t, err)
	return rp
}

func fixtureParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "books", 2.5, 30)
	require.NoError(t, err)
	return p
}
