package relaypointrepo

import (
	"context"
	"errors"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/core/domain/model/parcel"
	"relais/internal/core/domain/model/relaypoint"
	"relais/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRelayPointRepository implements RelayPointRepository using GORM.
type GormRelayPointRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRelayPointRepository creates a new GORM relay-point repository.
func NewGormRelayPointRepository(db *gorm.DB, tracker aggregateTracker) *GormRelayPointRepository {
	return &GormRelayPointRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new relay point to the database.
func (r *GormRelayPointRepository) Add(ctx context.Context, aggregate *relaypoint.RelayPoint) error {
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

// Update saves an existing relay point to the database.
// All columns are written so a never-set rating (nil) persists; the held
// parcel-id set is carried by the parcels table and not written here.
func (r *GormRelayPointRepository) Update(ctx context.Context, aggregate *relaypoint.RelayPoint) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RelayPointDTO{}).
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

// Delete removes a relay point from the database together with the parcels
// it currently holds (cascading removal of the held collection). Parcels
// merely assigned here but not deposited, and withdrawn parcels kept for
// history, are detached instead.
func (r *GormRelayPointRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	heldStatuses := []string{parcel.StatusReceived.String(), parcel.StatusDelivered.String()}
	err := r.db.WithContext(ctx).Exec(
		`DELETE FROM parcels WHERE relay_point_id = ? AND status IN ?`,
		id.Bytes(), heldStatuses).Error
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).
		Table("parcels").
		Where("relay_point_id = ?", id.Bytes()).
		Update("relay_point_id", nil).Error
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RelayPointDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("relay point", id.String())
	}

	return nil
}

// Get retrieves a relay point by ID, loading the held parcel identifiers
// from the parcels table.
func (r *GormRelayPointRepository) Get(ctx context.Context, id kernel.UUID) (*relaypoint.RelayPoint, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RelayPointDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("relay point", id.String())
		}
		return nil, err
	}

	parcelIDs, err := r.loadHeldParcelIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, parcelIDs)
}

func (r *GormRelayPointRepository) loadHeldParcelIDs(ctx context.Context, relayPointID kernel.UUID) ([]kernel.UUID, error) {
	heldStatuses := []string{parcel.StatusReceived.String(), parcel.StatusDelivered.String()}

	var rawIDs []uuid.UUID
	err := r.db.WithContext(ctx).
		Table("parcels").
		Where("relay_point_id = ? AND status IN ?", relayPointID.Bytes(), heldStatuses).
		Order("deposited_at").
		Pluck("id", &rawIDs).Error
	if err != nil {
		return nil, err
	}

	parcelIDs := make([]kernel.UUID, 0, len(rawIDs))
	for _, rawID := range rawIDs {
		parcelID, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return nil, idErr
		}
		parcelIDs = append(parcelIDs, parcelID)
	}

	return parcelIDs, nil
}
