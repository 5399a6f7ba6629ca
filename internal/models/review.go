package models

// Review is a reader testimonial shown on the home view. Reviews are static
// showcase content; nothing in the catalog writes them.
type Review struct {
	ID      string `json:"id"`
	User    string `json:"user"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

// Reviews returns the showcase testimonials.
func Reviews() []Review {
	return []Review{
		{ID: "1", User: "Aisha K.", Comment: `The stories here touch the soul. "Velvet Shadows" made me cry in the best way possible.`, Rating: 5},
		{ID: "2", User: "Rahul M.", Comment: "I love that the writers are anonymous. It feels so raw and authentic. The mystery collection is top-notch.", Rating: 5},
		{ID: "3", User: "Sana Z.", Comment: "Beautiful website and even more beautiful words. The free reads are a blessing!", Rating: 4},
	}
}
