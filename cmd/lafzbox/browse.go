package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alizaqureshi939-lab/Lafz-Box/internal/catalog"
	"github.com/alizaqureshi939-lab/Lafz-Box/internal/models"
)

const trendingCount = 4

func (a *app) freeReads(ctx context.Context) {
	free := a.cat.FreeStories()
	if len(free) == 0 {
		fmt.Println("No free stories available yet.")
		return
	}

	fmt.Println()
	fmt.Println("-- Trending Free Reads --")
	trending := free
	if len(trending) > trendingCount {
		trending = trending[:trendingCount]
	}
	printStoryList(trending)
	printReviews()

	if s, ok := a.pickStory(free, "Read which story?"); ok {
		a.openStory(ctx, s)
	}
}

func (a *app) premiumLibrary(ctx context.Context) {
	fmt.Println()
	fmt.Println("-- Premium Library --")
	genres := append([]string{catalog.GenreAll}, genreNames()...)
	for i, g := range genres {
		fmt.Printf("%d) %s\n", i+1, g)
	}
	genre := catalog.GenreAll
	if n, err := strconv.Atoi(a.prompt("Genre> ")); err == nil && n >= 1 && n <= len(genres) {
		genre = genres[n-1]
	}

	paid := a.cat.PaidStories(genre)
	if len(paid) == 0 {
		fmt.Println("No premium stories found in this genre yet.")
		return
	}
	printStoryList(paid)

	if s, ok := a.pickStory(paid, "Buy which story?"); ok {
		a.openStory(ctx, s)
	}
}

// openStory is the selection action: free stories surface their link
// immediately, paid ones go through the purchase flow.
func (a *app) openStory(ctx context.Context, s models.Story) {
	if !s.IsPaid {
		if s.PDFURL != "" {
			fmt.Printf("Opening %q: %s\n", s.Title, s.PDFURL)
		} else {
			fmt.Printf("Opening PDF Reader for: %s\n", s.Title)
		}
		return
	}
	a.purchaseFlow(ctx, s)
}

func (a *app) pickStory(stories []models.Story, label string) (models.Story, bool) {
	n, err := strconv.Atoi(a.prompt(label + " (number, blank to go back) "))
	if err != nil || n < 1 || n > len(stories) {
		return models.Story{}, false
	}
	return stories[n-1], true
}

func printStoryList(stories []models.Story) {
	for i, s := range stories {
		price := "Free"
		if s.IsPaid {
			price = s.Price
		}
		fmt.Printf("%d) %-30s %-10s %s\n", i+1, s.Title, s.Genre, price)
		fmt.Printf("   %s\n", s.Description)
	}
}

func printReviews() {
	fmt.Println()
	fmt.Println("-- What readers say --")
	for _, r := range models.Reviews() {
		fmt.Printf("  %s (%d/5): %s\n", r.User, r.Rating, r.Comment)
	}
}

func genreNames() []string {
	gs := models.Genres()
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = string(g)
	}
	return out
}
