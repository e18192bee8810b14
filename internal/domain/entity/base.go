package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the identity and timestamps every entity embeds.
type Base struct {
	id        string
	createdAt time.Time
	updatedAt time.Time
}

// NewBase assigns a fresh UUIDv4 and equal creation/update timestamps.
func NewBase() Base {
	now := time.Now().UTC()
	return Base{
		id:        uuid.NewString(),
		createdAt: now,
		updatedAt: now,
	}
}

// RestoreBase rebuilds identity from known values, e.g. for fixtures.
func RestoreBase(id string, createdAt, updatedAt time.Time) Base {
	return Base{id: id, createdAt: createdAt, updatedAt: updatedAt}
}

// Getters
func (b *Base) ID() string           { return b.id }
func (b *Base) CreatedAt() time.Time { return b.createdAt }
func (b *Base) UpdatedAt() time.Time { return b.updatedAt }

// EnsureIdentity assigns identity only if the entity has none yet.
func (b *Base) EnsureIdentity() {
	if b.id != "" {
		return
	}
	*b = NewBase()
}

// Touch bumps updatedAt. The new value is always strictly after the old one,
// even if the wall clock has not moved.
func (b *Base) Touch() {
	now := time.Now().UTC()
	if !now.After(b.updatedAt) {
		now = b.updatedAt.Add(time.Nanosecond)
	}
	b.updatedAt = now
}
