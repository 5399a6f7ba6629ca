package catalog

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/alizaqureshi939-lab/Lafz-Box/internal/models"
)

// Catalog owns the story list and the payment-config singleton. It holds no
// state the store does not already have: its view is always the last full
// snapshot the subscriptions delivered, and writes go straight to the store
// without optimistic local edits.
type Catalog struct {
	store Store
	log   *zap.Logger
	now   func() time.Time

	mu      sync.RWMutex
	stories []models.Story
	config  models.PaymentConfig
	ready   bool
	lastID  int64
}

func New(store Store, log *zap.Logger) *Catalog {
	if log == nil {
		log = zap.NewNop()
	}
	return &Catalog{
		store:  store,
		log:    log.Named("catalog"),
		now:    time.Now,
		config: models.DefaultPaymentConfig(),
	}
}

// Run subscribes to both collections and applies snapshots until ctx is
// cancelled. Call it from its own goroutine; readers see updates through the
// accessor methods.
func (c *Catalog) Run(ctx context.Context) error {
	stories, err := c.store.WatchStories(ctx)
	if err != nil {
		return err
	}
	configs, err := c.store.WatchPaymentConfig(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case snap, ok := <-stories:
			if !ok {
				return nil
			}
			c.applySnapshot(snap)
		case cfg, ok := <-configs:
			if !ok {
				return nil
			}
			c.applyConfig(cfg)
		}
	}
}

// applySnapshot replaces the held story set wholesale. No diffing or merging:
// the store's latest snapshot is always the truth.
func (c *Catalog) applySnapshot(snap []models.Story) {
	sorted := make([]models.Story, len(snap))
	copy(sorted, snap)
	sortByIDDesc(sorted)

	c.mu.Lock()
	c.stories = sorted
	c.ready = true
	c.mu.Unlock()

	c.log.Debug("applied story snapshot", zap.Int("count", len(sorted)))
}

func (c *Catalog) applyConfig(cfg models.PaymentConfig) {
	c.mu.Lock()
	c.config = cfg
	c.mu.Unlock()

	c.log.Debug("applied payment config", zap.String("upiId", cfg.UPIID))
}

// Ready reports whether at least one story snapshot has arrived.
func (c *Catalog) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}

// ListAll returns the current known set, newest first (id descending).
func (c *Catalog) ListAll() []models.Story {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Story, len(c.stories))
	copy(out, c.stories)
	return out
}

// PaymentConfig returns the current global payment settings.
func (c *Catalog) PaymentConfig() models.PaymentConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

// Get looks a story up by id in the current snapshot.
func (c *Catalog) Get(id string) (models.Story, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.stories {
		if s.ID == id {
			return s, true
		}
	}
	return models.Story{}, false
}
