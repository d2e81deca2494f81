// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"lastseen/internal/domain/entity"
	domainerrors "lastseen/internal/domain/errors"
	"lastseen/internal/domain/repository"
	"lastseen/internal/errors"
	"lastseen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// locationRepository implements repository.LocationRepository.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// ListRecords lists records newest first, optionally for one owner and bounded by Limit.
func (repo *locationRepository) ListRecords(ctx context.Context, filter repository.ListFilter) ([]*entity.LocationRecord, error) {
	var locationModels []*model.LocationModel

	tx := repo.db.WithContext(ctx).Order("updated_at DESC").Order("id DESC")
	if filter.OwnerID != nil {
		tx = tx.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	if err := tx.Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list location records")
	}

	records := make([]*entity.LocationRecord, 0, len(locationModels))
	for _, locationM := range locationModels {
		records = append(records, toLocationDomain(locationM))
	}

	return records, nil
}

// CreateRecord persists a new record and copies back the generated values.
func (repo *locationRepository) CreateRecord(ctx context.Context, record *entity.LocationRecord) error {
	locationM := fromLocationDomain(record)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("location owner does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location record")
	}

	record.ID = locationM.ID
	record.CreatedAt = locationM.CreatedAt
	record.UpdatedAt = locationM.UpdatedAt

	return nil
}

// UpdateRecord overwrites the owner-editable fields of an existing record.
// The caller's UpdatedAt is kept so the ordering key follows the writer's clock.
func (repo *locationRepository) UpdateRecord(ctx context.Context, record *entity.LocationRecord) error {
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = repo.db.NowFunc()
	}

	result := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("id = ? AND owner_id = ?", record.ID, record.OwnerID).
		Updates(map[string]any{
			"latitude":    record.Coordinates.Lat,
			"longitude":   record.Coordinates.Lng,
			"note":        record.Note,
			"place_label": record.PlaceLabel,
			"visibility":  record.Visibility.String(),
			"vague":       record.Vague,
			"expires_at":  record.ExpiresAt,
			"updated_at":  record.UpdatedAt,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update location record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// DeleteRecord removes a record permanently.
func (repo *locationRepository) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LocationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete location record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// DeleteRecordsByOwner removes every record of an owner.
func (repo *locationRepository) DeleteRecordsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&model.LocationModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete location records by owner")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM LocationModel to a domain LocationRecord.
func toLocationDomain(data *model.LocationModel) *entity.LocationRecord {
	if data == nil {
		return nil
	}

	return &entity.LocationRecord{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Coordinates: entity.Coordinates{Lat: data.Latitude, Lng: data.Longitude},
		Note:        data.Note,
		PlaceLabel:  data.PlaceLabel,
		Visibility:  entity.VisibilityMode(data.Visibility),
		Vague:       data.Vague,
		ExpiresAt:   data.ExpiresAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromLocationDomain converts a domain LocationRecord to a GORM LocationModel.
func fromLocationDomain(data *entity.LocationRecord) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		Latitude:   data.Coordinates.Lat,
		Longitude:  data.Coordinates.Lng,
		Note:       data.Note,
		PlaceLabel: data.PlaceLabel,
		Visibility: data.Visibility.String(),
		Vague:      data.Vague,
		ExpiresAt:  data.ExpiresAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
