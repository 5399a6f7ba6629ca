package catalog_test

import (
	"testing"

	"github.com/alizaqureshi939-lab/Lafz-Box/internal/catalog"
	"github.com/alizaqureshi939-lab/Lafz-Box/internal/models"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name      string
		stories   []models.Story
		count     int
		downloads int64
		revenue   string
	}{
		{
			name:    "empty",
			count:   0,
			revenue: "0",
		},
		{
			name: "free downloads count but earn nothing",
			stories: []models.Story{
				{ID: "1", IsPaid: false, Sales: 10},
				{ID: "2", IsPaid: true, Price: "₹50", Sales: 4},
			},
			count:     2,
			downloads: 14,
			revenue:   "200",
		},
		{
			name: "fractional prices round to two places",
			stories: []models.Story{
				{ID: "1", IsPaid: true, Price: "₹19.99", Sales: 3},
			},
			count:     1,
			downloads: 3,
			revenue:   "59.97",
		},
		{
			name: "unparsable price contributes zero",
			stories: []models.Story{
				{ID: "1", IsPaid: true, Price: "₹free?", Sales: 100},
				{ID: "2", IsPaid: true, Price: "₹10", Sales: 1},
			},
			count:     2,
			downloads: 101,
			revenue:   "10",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := catalog.ComputeStats(tc.stories)
			if got.TotalCount != tc.count {
				t.Errorf("count: want %d, got %d", tc.count, got.TotalCount)
			}
			if got.TotalDownloads != tc.downloads {
				t.Errorf("downloads: want %d, got %d", tc.downloads, got.TotalDownloads)
			}
			if got.TotalRevenue.String() != tc.revenue {
				t.Errorf("revenue: want %s, got %s", tc.revenue, got.TotalRevenue)
			}
		})
	}
}
