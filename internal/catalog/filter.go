package catalog

import "github.com/alizaqureshi939-lab/Lafz-Box/internal/models"

// GenreAll disables genre narrowing in FilterPaid.
const GenreAll = "All"

// FilterFree returns the free entries, input order preserved.
func FilterFree(stories []models.Story) []models.Story {
	out := make([]models.Story, 0, len(stories))
	for _, s := range stories {
		if !s.IsPaid {
			out = append(out, s)
		}
	}
	return out
}

// FilterPaid returns the paid entries, optionally narrowed to one genre.
// An empty genre or GenreAll means no narrowing.
func FilterPaid(stories []models.Story, genre string) []models.Story {
	all := genre == "" || genre == GenreAll
	out := make([]models.Story, 0, len(stories))
	for _, s := range stories {
		if !s.IsPaid {
			continue
		}
		if all || string(s.Genre) == genre {
			out = append(out, s)
		}
	}
	return out
}

// FreeStories filters the current snapshot.
func (c *Catalog) FreeStories() []models.Story {
	return FilterFree(c.ListAll())
}

// PaidStories filters the current snapshot by genre.
func (c *Catalog) PaidStories(genre string) []models.Story {
	return FilterPaid(c.ListAll(), genre)
}
