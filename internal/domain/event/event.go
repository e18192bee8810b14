package event

import (
	"context"
	"time"
)

// Type names a change to one entity, e.g. "review.deleted".
type Type string

const (
	UserCreated    Type = "user.created"
	UserUpdated    Type = "user.updated"
	PlaceCreated   Type = "place.created"
	PlaceUpdated   Type = "place.updated"
	ReviewCreated  Type = "review.created"
	ReviewUpdated  Type = "review.updated"
	ReviewDeleted  Type = "review.deleted"
	AmenityCreated Type = "amenity.created"
	AmenityUpdated Type = "amenity.updated"
)

// Event is a change notification emitted after a successful write.
type Event struct {
	Type       Type      `json:"type"`
	EntityID   string    `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func New(t Type, entityID string) Event {
	return Event{Type: t, EntityID: entityID, OccurredAt: time.Now().UTC()}
}

// Publisher delivers change events. Delivery is best-effort.
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
