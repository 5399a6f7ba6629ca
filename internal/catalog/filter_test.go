package catalog_test

import (
	"testing"

	"github.com/alizaqureshi939-lab/Lafz-Box/internal/catalog"
	"github.com/alizaqureshi939-lab/Lafz-Box/internal/models"
)

var shelf = []models.Story{
	{ID: "4", Title: "d", IsPaid: true, Genre: models.GenreMystery},
	{ID: "3", Title: "c", IsPaid: false, Genre: models.GenreRomance},
	{ID: "2", Title: "b", IsPaid: true, Genre: models.GenreRomance},
	{ID: "1", Title: "a", IsPaid: false, Genre: models.GenreMystery},
}

func ids(stories []models.Story) []string {
	out := make([]string, len(stories))
	for i, s := range stories {
		out[i] = s.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterFree(t *testing.T) {
	if got := ids(catalog.FilterFree(shelf)); !equal(got, []string{"3", "1"}) {
		t.Fatalf("want [3 1], got %v", got)
	}
}

func TestFilterPaid(t *testing.T) {
	tests := []struct {
		genre string
		want  []string
	}{
		{genre: "", want: []string{"4", "2"}},
		{genre: catalog.GenreAll, want: []string{"4", "2"}},
		{genre: "Romance", want: []string{"2"}},
		{genre: "Mystery", want: []string{"4"}},
		{genre: "Horror", want: []string{}},
	}
	for _, tc := range tests {
		if got := ids(catalog.FilterPaid(shelf, tc.genre)); !equal(got, tc.want) {
			t.Errorf("genre %q: want %v, got %v", tc.genre, tc.want, got)
		}
	}
}
