package catalog

import (
	"context"

	"github.com/alizaqureshi939-lab/Lafz-Box/internal/models"
)

// Store is the external document-store contract the catalog consumes. Any
// persistent store with upsert-by-id, unconditional delete and full-snapshot
// subscriptions can sit behind it; the Firestore adapter is the real one and
// tests use an in-memory fake.
type Store interface {
	// PutStory upserts a story document keyed by its id.
	PutStory(ctx context.Context, s models.Story) error
	// DeleteStory removes a story document if present. Absent ids are a no-op.
	DeleteStory(ctx context.Context, id string) error
	// PutPaymentConfig replaces the payment-config singleton wholesale.
	PutPaymentConfig(ctx context.Context, cfg models.PaymentConfig) error

	// WatchStories delivers the full current story set on every change, newest
	// first. The channel closes when ctx is cancelled or the stream dies.
	WatchStories(ctx context.Context) (<-chan []models.Story, error)
	// WatchPaymentConfig delivers the current config on every change; an
	// absent document yields the built-in default.
	WatchPaymentConfig(ctx context.Context) (<-chan models.PaymentConfig, error)
}

// CreateStoryInput carries the admin "Add New Story" form. Price is the raw
// numeric amount (no currency symbol); the catalog formats it on success.
type CreateStoryInput struct {
	Title       string
	Description string
	Genre       string
	IsPaid      bool
	Price       string
	CoverURL    string
	PDFURL      string
}
