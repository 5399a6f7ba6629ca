package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/alizaqureshi939-lab/Lafz-Box/internal/apperr"
	"github.com/alizaqureshi939-lab/Lafz-Box/internal/models"
)

// RecordSale adds n manually reconciled sales to a story and re-puts its
// document. The counter only moves through this deliberate operator action;
// reaching the purchase workflow's success state never writes anything.
//
// Single-operator read-modify-write: no version check guards against a
// concurrent writer, matching the rest of the admin surface.
func (c *Catalog) RecordSale(ctx context.Context, id string, n int64) (models.Story, error) {
	if n <= 0 {
		return models.Story{}, apperr.Validation("count", "not_positive", "sale count must be greater than zero")
	}

	story, ok := c.Get(id)
	if !ok {
		return models.Story{}, apperr.ErrNotFound
	}

	story.Sales += n
	if err := c.store.PutStory(ctx, story); err != nil {
		c.log.Error("record sale failed", zap.String("id", id), zap.Error(err))
		return models.Story{}, apperr.Store("record sale", err)
	}

	c.log.Info("sales recorded", zap.String("id", id), zap.Int64("added", n), zap.Int64("total", story.Sales))
	return story, nil
}
