package service

import (
	"context"
)

// LocationEvent is emitted after an owner logs or clears their location.
type LocationEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	Type       string `json:"type"`                 // constants.LocationEventLogged or LocationEventCleared
	OwnerID    string `json:"owner_id"`
	RecordID   string `json:"record_id,omitempty"`
	PlaceLabel string `json:"place_label,omitempty"`
	Visibility string `json:"visibility,omitempty"` // Audience scope of the logged record
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLocationEvent publishes a location event for follower notification
	PublishLocationEvent(ctx context.Context, event *LocationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
