package ownerrepo

import (
	"context"
	"errors"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/core/domain/model/owner"
	"relais/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOwnerRepository implements OwnerRepository using GORM.
type GormOwnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOwnerRepository creates a new GORM owner repository.
func NewGormOwnerRepository(db *gorm.DB, tracker aggregateTracker) *GormOwnerRepository {
	return &GormOwnerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new owner to the database.
func (r *GormOwnerRepository) Add(ctx context.Context, aggregate *owner.Owner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing owner to the database.
// Only the owner's own columns are written; relay-point membership is
// persisted through the relay-point repository.
func (r *GormOwnerRepository) Update(ctx context.Context, aggregate *owner.Owner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OwnerDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes an owner from the database.
func (r *GormOwnerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OwnerDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("owner", id.String())
	}

	return nil
}

// Get retrieves an owner by ID, loading the owned relay-point identifiers
// from the relay_points back-reference.
func (r *GormOwnerRepository) Get(ctx context.Context, id kernel.UUID) (*owner.Owner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OwnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("owner", id.String())
		}
		return nil, err
	}

	relayPointIDs, err := r.loadRelayPointIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, relayPointIDs)
}

func (r *GormOwnerRepository) loadRelayPointIDs(ctx context.Context, ownerID kernel.UUID) ([]kernel.UUID, error) {
	var rawIDs []uuid.UUID
	err := r.db.WithContext(ctx).
		Table("relay_points").
		Where("owner_id = ?", ownerID.Bytes()).
		Order("name").
		Pluck("id", &rawIDs).Error
	if err != nil {
		return nil, err
	}

	relayPointIDs := make([]kernel.UUID, 0, len(rawIDs))
	for _, rawID := range rawIDs {
		relayPointID, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return nil, idErr
		}
		relayPointIDs = append(relayPointIDs, relayPointID)
	}

	return relayPointIDs, nil
}
