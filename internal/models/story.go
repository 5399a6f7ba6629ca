package models

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// Genre is the fixed set of shelves a story can live on.
type Genre string

const (
	GenreRomance   Genre = "Romance"
	GenreMystery   Genre = "Mystery"
	GenreEmotional Genre = "Emotional"
	GenreGirlsLove Genre = "Girls Love"
)

// Genres returns every valid genre in display order.
func Genres() []Genre {
	return []Genre{GenreRomance, GenreMystery, GenreEmotional, GenreGirlsLove}
}

// ParseGenre matches a raw string against the known genres.
func ParseGenre(s string) (Genre, bool) {
	for _, g := range Genres() {
		if string(g) == s {
			return g, true
		}
	}
	return "", false
}

// Story is one downloadable narrative artifact, free or paid.
// Field tags mirror the document layout in the stories collection, so a
// document round-trips byte-for-byte through the store.
type Story struct {
	ID          string `firestore:"id" json:"id"`
	Title       string `firestore:"title" json:"title"`
	Genre       Genre  `firestore:"genre" json:"genre"`
	IsPaid      bool   `firestore:"isPaid" json:"isPaid"`
	Price       string `firestore:"price,omitempty" json:"price,omitempty"`
	CoverURL    string `firestore:"coverUrl" json:"coverUrl"`
	Description string `firestore:"description" json:"description"`
	Sales       int64  `firestore:"sales" json:"sales"`
	PDFURL      string `firestore:"pdfUrl,omitempty" json:"pdfUrl,omitempty"`
}

var nonNumericRE = regexp.MustCompile(`[^0-9.]`)

// PriceAmount parses the display price (e.g. "₹49") into its numeric amount.
// Formatting characters are stripped first; anything that still fails to parse
// counts as zero, which is also how revenue aggregation treats it.
func (s Story) PriceAmount() decimal.Decimal {
	raw := nonNumericRE.ReplaceAllString(s.Price, "")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}
