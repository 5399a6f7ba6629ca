package catalog

import (
	"sort"

	"github.com/alizaqureshi939-lab/Lafz-Box/internal/models"
)

// sortByIDDesc orders newest first. Ids are creation-time millisecond strings,
// compared the way the store's orderBy compares them (lexicographic), so the
// local view matches the subscription's delivery order.
func sortByIDDesc(stories []models.Story) {
	sort.SliceStable(stories, func(i, j int) bool {
		return stories[i].ID > stories[j].ID
	})
}
