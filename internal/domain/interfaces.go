package domain

import (
	"context"

	"github.com/Andydrums87/bookabash-sub001/internal/pricing"
)

// OfferingStore persists supplier offerings.
type OfferingStore interface {
	// Get returns the offering with the given id or ErrOfferingNotFound.
	Get(ctx context.Context, id string) (*pricing.SupplierOffering, error)

	// Save inserts or replaces an offering.
	Save(ctx context.Context, offering *pricing.SupplierOffering) error

	// List returns the ids of every stored offering.
	List(ctx context.Context) ([]string, error)
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}
