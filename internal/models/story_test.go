package models_test

import (
	"testing"

	"github.com/alizaqureshi939-lab/Lafz-Box/internal/models"
)

func TestPriceAmount(t *testing.T) {
	tests := []struct {
		price string
		want  string
	}{
		{price: "₹49", want: "49"},
		{price: "₹49.50", want: "49.5"},
		{price: "99", want: "99"},
		{price: "₹1,299", want: "1299"},
		{price: "", want: "0"},
		{price: "free", want: "0"},
		{price: "₹", want: "0"},
		{price: "1.2.3", want: "0"},
	}
	for _, tc := range tests {
		s := models.Story{Price: tc.price}
		if got := s.PriceAmount().String(); got != tc.want {
			t.Errorf("PriceAmount(%q): want %s, got %s", tc.price, tc.want, got)
		}
	}
}

func TestParseGenre(t *testing.T) {
	for _, g := range models.Genres() {
		got, ok := models.ParseGenre(string(g))
		if !ok || got != g {
			t.Errorf("ParseGenre(%q) failed", g)
		}
	}
	if _, ok := models.ParseGenre("Thriller"); ok {
		t.Error("unknown genre must not parse")
	}
	if _, ok := models.ParseGenre("romance"); ok {
		t.Error("genre matching is case sensitive")
	}
}
