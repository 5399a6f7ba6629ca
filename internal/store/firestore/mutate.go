package firestore

import (
	"context"
	"fmt"

	"github.com/alizaqureshi939-lab/Lafz-Box/internal/models"
)

// PutStory upserts the story document keyed by its id.
func (c *Client) PutStory(ctx context.Context, s models.Story) error {
	if s.ID == "" {
		return fmt.Errorf("put story: empty id")
	}
	_, err := c.fs.Collection(storiesCollection).Doc(s.ID).Set(ctx, s)
	if err != nil {
		return fmt.Errorf("put story %s: %w", s.ID, err)
	}
	return nil
}

// DeleteStory removes the story document. Firestore's delete is
// remove-if-present: deleting an absent id succeeds.
func (c *Client) DeleteStory(ctx context.Context, id string) error {
	_, err := c.fs.Collection(storiesCollection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("delete story %s: %w", id, err)
	}
	return nil
}

// PutPaymentConfig replaces the config/payment singleton wholesale.
func (c *Client) PutPaymentConfig(ctx context.Context, cfg models.PaymentConfig) error {
	_, err := c.fs.Collection(configCollection).Doc(paymentConfigDoc).Set(ctx, cfg)
	if err != nil {
		return fmt.Errorf("put payment config: %w", err)
	}
	return nil
}
