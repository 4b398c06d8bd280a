package postgres

import (
	"relais/internal/adapters/out/postgres/clientrepo"
	"relais/internal/adapters/out/postgres/ownerrepo"
	"relais/internal/adapters/out/postgres/parcelrepo"
	"relais/internal/adapters/out/postgres/relaypointrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the database schema for every aggregate table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&clientrepo.ClientDTO{},
		&ownerrepo.OwnerDTO{},
		&relaypointrepo.RelayPointDTO{},
		&parcelrepo.ParcelDTO{},
	)
}
