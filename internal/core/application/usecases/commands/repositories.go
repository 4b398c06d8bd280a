// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"relais/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ClientRepoFactory provides access to the client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// RelayPointRepoFactory provides access to the relay-point repository within a transaction.
	RelayPointRepoFactory interface {
		RelayPointRepository() ports.RelayPointRepository
	}

	// OwnerRepoFactory provides access to the owner repository within a transaction.
	OwnerRepoFactory interface {
		OwnerRepository() ports.OwnerRepository
	}

	// ClientUoW manages transactions for client-only operations.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	// ClientUoWFactory creates new client unit of work instances.
	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// ParcelUoW manages transactions for parcel-only operations.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// RelayPointUoW manages transactions for relay-point-only operations.
	RelayPointUoW interface {
		TxManager
		RelayPointRepoFactory
	}

	// RelayPointUoWFactory creates new relay-point unit of work instances.
	RelayPointUoWFactory interface {
		Create() RelayPointUoW
	}

	// OwnerUoW manages transactions for owner-only operations.
	OwnerUoW interface {
		TxManager
		OwnerRepoFactory
	}

	// OwnerUoWFactory creates new owner unit of work instances.
	OwnerUoWFactory interface {
		Create() OwnerUoW
	}

	// ParcelRelayUoW manages transactions spanning parcel and relay-point
	// aggregates. Used when a parcel operation must check its relay point.
	ParcelRelayUoW interface {
		TxManager
		ParcelRepoFactory
		RelayPointRepoFactory
	}

	// ParcelRelayUoWFactory creates new parcel/relay unit of work instances.
	ParcelRelayUoWFactory interface {
		Create() ParcelRelayUoW
	}

	// OwnerRelayUoW manages transactions spanning owner and relay-point
	// aggregates. Used when relay-point administration touches ownership.
	OwnerRelayUoW interface {
		TxManager
		OwnerRepoFactory
		RelayPointRepoFactory
	}

	// OwnerRelayUoWFactory creates new owner/relay unit of work instances.
	OwnerRelayUoWFactory interface {
		Create() OwnerRelayUoW
	}

	// UoW manages transactions across all aggregates. Used by the
	// deposit/pickup orchestration and notification-producing commands,
	// which coordinate parcels, relay points and client contacts.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   parcelRepo := uow.ParcelRepository()
	//   relayRepo := uow.RelayPointRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ClientRepoFactory
		ParcelRepoFactory
		RelayPointRepoFactory
		OwnerRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
