package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/alizaqureshi939-lab/Lafz-Box/internal/apperr"
	"github.com/alizaqureshi939-lab/Lafz-Box/internal/validate"
)

// DeleteStory removes a story by id. The store's delete is unconditional, so
// an already-absent id still reports success; the removal shows up in ListAll
// with the next snapshot. Irreversible: callers must confirm first.
func (c *Catalog) DeleteStory(ctx context.Context, id string) error {
	id = validate.SanitizeString(id)
	if id == "" {
		return apperr.Validation("id", "required", "story id is required")
	}

	if err := c.store.DeleteStory(ctx, id); err != nil {
		c.log.Error("delete story failed", zap.String("id", id), zap.Error(err))
		return apperr.Store("delete story", err)
	}

	c.log.Info("story deleted", zap.String("id", id))
	return nil
}
