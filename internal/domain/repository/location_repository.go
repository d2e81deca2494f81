// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"lastseen/internal/domain/entity"
	"lastseen/internal/errors"

	"github.com/google/uuid"
)

// ErrLocationNotFound is returned when a location record does not exist (or no longer exists).
var ErrLocationNotFound = errors.New("location record not found")

// ListFilter narrows a record listing. Results are always ordered by updated_at descending.
type ListFilter struct {
	// OwnerID restricts the listing to one owner when set.
	OwnerID *uuid.UUID
	// Limit bounds the page size; zero or negative means unbounded.
	Limit int
}

// LocationRepository is the record store boundary. The engine treats it as an
// unordered, eventually consistent remote collection keyed by record id.
type LocationRepository interface {
	// ListRecords returns records matching the filter, newest first.
	ListRecords(ctx context.Context, filter ListFilter) ([]*entity.LocationRecord, error)

	// CreateRecord persists a new record and fills in ID and timestamps.
	CreateRecord(ctx context.Context, record *entity.LocationRecord) error

	// UpdateRecord overwrites the owner-editable fields of an existing record.
	// Returns ErrLocationNotFound when the record is gone.
	UpdateRecord(ctx context.Context, record *entity.LocationRecord) error

	// DeleteRecord removes a record. Returns ErrLocationNotFound when it is already gone.
	DeleteRecord(ctx context.Context, id uuid.UUID) error

	// DeleteRecordsByOwner removes every physical record of an owner and reports how many went.
	DeleteRecordsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}
