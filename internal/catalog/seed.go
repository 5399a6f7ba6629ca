package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/alizaqureshi939-lab/Lafz-Box/internal/apperr"
	"github.com/alizaqureshi939-lab/Lafz-Box/internal/models"
)

// ErrNotEmpty guards Seed against clobbering a live catalog.
var ErrNotEmpty = errors.New("catalog is not empty")

// SeedStories returns the launch catalog.
func SeedStories() []models.Story {
	return []models.Story{
		{
			ID: "1", Title: "Whispers in the Rain", Genre: models.GenreRomance,
			IsPaid: false, Sales: 120,
			CoverURL:    "https://images.unsplash.com/photo-1515549832467-8783363e19b6?q=80&w=1200&auto=format&fit=crop",
			Description: "A chance encounter under a stormy sky leads to a lifetime of secrets.",
		},
		{
			ID: "2", Title: "The Silent Letter", Genre: models.GenreMystery,
			IsPaid: true, Price: "₹49", Sales: 45,
			CoverURL:    "https://images.unsplash.com/photo-1583324113626-70df0f4deaab?q=80&w=1200&auto=format&fit=crop",
			Description: "An anonymous letter arrives, changing everything she thought she knew.",
		},
		{
			ID: "3", Title: "Velvet Shadows", Genre: models.GenreGirlsLove,
			IsPaid: true, Price: "₹99", Sales: 82,
			CoverURL:    "https://images.unsplash.com/photo-1518136267866-5d464cb3c013?q=80&w=1200&auto=format&fit=crop",
			Description: "Soft glances and hidden touches in the corridors of an old estate.",
		},
		{
			ID: "4", Title: "Fading Echoes", Genre: models.GenreEmotional,
			IsPaid: false, Sales: 200,
			CoverURL:    "https://images.unsplash.com/photo-1495640388908-05fa85288e61?q=80&w=1200&auto=format&fit=crop",
			Description: "Learning to let go of the memories that hold us captive.",
		},
		{
			ID: "5", Title: "Midnight Bloom", Genre: models.GenreRomance,
			IsPaid: true, Price: "₹29", Sales: 15,
			CoverURL:    "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?q=80&w=1200&auto=format&fit=crop",
			Description: "Love blossoms in the darkest hour of the night.",
		},
		{
			ID: "6", Title: "The Glass Heart", Genre: models.GenreEmotional,
			IsPaid: false, Sales: 340,
			CoverURL:    "https://images.unsplash.com/photo-1516575150278-77136aed6920?q=80&w=1200&auto=format&fit=crop",
			Description: "Fragile emotions shatter and reform in this touching narrative.",
		},
		{
			ID: "7", Title: "Ocean Eyes", Genre: models.GenreGirlsLove,
			IsPaid: false, Sales: 90,
			CoverURL:    "https://images.unsplash.com/photo-1516239482977-b550ba7253f2?q=80&w=1200&auto=format&fit=crop",
			Description: "Two souls meeting by the shore, finding solace in the waves.",
		},
	}
}

// Seed publishes the launch catalog into an empty store. It refuses to run
// once any story exists, so it is safe to offer from the admin surface.
func (c *Catalog) Seed(ctx context.Context) error {
	if len(c.ListAll()) > 0 {
		return ErrNotEmpty
	}
	for _, s := range SeedStories() {
		if err := c.store.PutStory(ctx, s); err != nil {
			return apperr.Store(fmt.Sprintf("seed story %s", s.ID), err)
		}
	}
	c.log.Info("seeded launch catalog", zap.Int("count", len(SeedStories())))
	return nil
}
