package service

import (
	"context"
	"time"
)

// RatingAcceptedEvent is published after a rating is stored.
type RatingAcceptedEvent struct {
	RequestID         string    `json:"request_id,omitempty"` // For distributed tracing
	RatingID          string    `json:"rating_id"`
	ShopID            string    `json:"shop_id"`
	CustomerEmail     string    `json:"customer_email"`
	OverallExperience int       `json:"overall_experience"`
	AcceptedAt        time.Time `json:"accepted_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRatingAccepted publishes a rating event for downstream consumers
	PublishRatingAccepted(ctx context.Context, event *RatingAcceptedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
