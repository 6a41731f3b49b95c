// Package service declares the ports the use cases need from infrastructure.
package service

import (
	"context"
	"time"
)

// ProfileEventType names a profile lifecycle transition.
type ProfileEventType string

const (
	ProfileCreated       ProfileEventType = "profile.created"
	ProfileUpdated       ProfileEventType = "profile.updated"
	ProfileDeleted       ProfileEventType = "profile.deleted"
	ProfileBlacklisted   ProfileEventType = "profile.blacklisted"
	ProfileUnblacklisted ProfileEventType = "profile.unblacklisted"
)

// ProfileEvent announces a persisted profile change. It carries no PII.
type ProfileEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	EventID    string           `json:"event_id"`
	Type       ProfileEventType `json:"type"`
	ProfileID  string           `json:"profile_id"`
	Kind       string           `json:"kind"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishProfileEvent publishes a profile lifecycle event
	PublishProfileEvent(ctx context.Context, event *ProfileEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
