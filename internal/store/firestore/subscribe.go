package firestore

import (
	"context"

	firestore "cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/alizaqureshi939-lab/Lafz-Box/internal/models"
)

// WatchStories streams the full story set, newest first, on every change to
// the collection. The channel closes when ctx is cancelled or the underlying
// stream dies; the consumer decides whether a dead stream is fatal.
func (c *Client) WatchStories(ctx context.Context) (<-chan []models.Story, error) {
	it := c.fs.Collection(storiesCollection).
		OrderBy(orderField, firestore.Desc).
		Snapshots(ctx)

	ch := make(chan []models.Story, 1)
	go func() {
		defer close(ch)
		defer it.Stop()
		for {
			snap, err := it.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					c.log.Error("stories snapshot stream failed", zap.Error(err))
				}
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				c.log.Error("read stories snapshot failed", zap.Error(err))
				return
			}

			stories := make([]models.Story, 0, len(docs))
			for _, d := range docs {
				var s models.Story
				if err := d.DataTo(&s); err != nil {
					// One malformed document must not poison the whole view.
					c.log.Warn("skipping malformed story document",
						zap.String("doc", d.Ref.ID), zap.Error(err))
					continue
				}
				stories = append(stories, s)
			}

			select {
			case <-ctx.Done():
				return
			case ch <- stories:
			}
		}
	}()
	return ch, nil
}

// WatchPaymentConfig streams the payment-config singleton on every change.
// While the document does not exist, the built-in default is delivered.
func (c *Client) WatchPaymentConfig(ctx context.Context) (<-chan models.PaymentConfig, error) {
	it := c.fs.Collection(configCollection).Doc(paymentConfigDoc).Snapshots(ctx)

	ch := make(chan models.PaymentConfig, 1)
	go func() {
		defer close(ch)
		defer it.Stop()
		for {
			snap, err := it.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					c.log.Error("payment config stream failed", zap.Error(err))
				}
				return
			}

			cfg := models.DefaultPaymentConfig()
			if snap.Exists() {
				if err := snap.DataTo(&cfg); err != nil {
					c.log.Warn("malformed payment config document, using default", zap.Error(err))
					cfg = models.DefaultPaymentConfig()
				}
			}

			select {
			case <-ctx.Done():
				return
			case ch <- cfg:
			}
		}
	}()
	return ch, nil
}
