package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/alizaqureshi939-lab/Lafz-Box/internal/apperr"
	"github.com/alizaqureshi939-lab/Lafz-Box/internal/catalog"
	"github.com/alizaqureshi939-lab/Lafz-Box/internal/models"
	"github.com/alizaqureshi939-lab/Lafz-Box/internal/security/password"
	storage "github.com/alizaqureshi939-lab/Lafz-Box/internal/storage/s3"
)

func (a *app) adminDashboard(ctx context.Context) {
	if !a.authenticated && !a.login(ctx) {
		return
	}

	for ctx.Err() == nil {
		st := a.cat.Stats()
		fmt.Println()
		fmt.Println("=== Owner Dashboard ===")
		fmt.Printf("Total Stories: %d   Total Downloads: %d   Total Revenue: ₹%s\n",
			st.TotalCount, st.TotalDownloads, st.TotalRevenue.StringFixed(2))
		fmt.Println("1) Manage content")
		fmt.Println("2) Add new story")
		fmt.Println("3) Delete story")
		fmt.Println("4) Record sale")
		fmt.Println("5) Payment settings")
		fmt.Println("6) Seed launch catalog")
		if a.artifact != nil {
			fmt.Println("7) Upload artifact")
		}
		fmt.Println("b) Back")

		switch a.prompt("> ") {
		case "1":
			a.manageContent()
		case "2":
			a.addStory(ctx)
		case "3":
			a.deleteStory(ctx)
		case "4":
			a.recordSale(ctx)
		case "5":
			a.paymentSettings(ctx)
		case "6":
			a.seed(ctx)
		case "7":
			if a.artifact != nil {
				a.uploadArtifact(ctx)
			}
		case "b", "B":
			return
		}
	}
}

func (a *app) login(ctx context.Context) bool {
	fmt.Println()
	fmt.Println("-- Owner Access --")
	for {
		pin := a.prompt("Enter PIN (blank to cancel): ")
		if pin == "" {
			return false
		}
		ok, err := a.gate.Verify(ctx, pin)
		if errors.Is(err, password.ErrTooManyAttempts) {
			fmt.Println("Too many attempts. Try again later.")
			return false
		}
		if err != nil {
			fmt.Println("Login unavailable:", err)
			return false
		}
		if ok {
			a.authenticated = true
			return true
		}
		fmt.Println("Incorrect PIN. Try again.")
	}
}

func (a *app) manageContent() {
	stories := a.cat.ListAll()
	if len(stories) == 0 {
		fmt.Println("No stories found. Add one to get started!")
		return
	}
	fmt.Printf("%-15s %-30s %-8s %-10s %s\n", "ID", "TITLE", "PDF", "PRICE", "SALES")
	for _, s := range stories {
		pdf := "missing"
		if s.PDFURL != "" {
			pdf = "linked"
		}
		price := "Free"
		if s.IsPaid {
			price = s.Price
		}
		fmt.Printf("%-15s %-30s %-8s %-10s %d\n", s.ID, s.Title, pdf, price, s.Sales)
	}
}

func (a *app) addStory(ctx context.Context) {
	fmt.Println()
	fmt.Println("-- Add New Story --")

	in := catalog.CreateStoryInput{
		Title:       a.prompt("Title: "),
		Description: a.prompt("Description: "),
	}

	genres := genreNames()
	for i, g := range genres {
		fmt.Printf("%d) %s\n", i+1, g)
	}
	if n, err := strconv.Atoi(a.prompt("Genre> ")); err == nil && n >= 1 && n <= len(genres) {
		in.Genre = genres[n-1]
	}

	in.IsPaid = a.prompt("Is this a Paid PDF? (y/n): ") == "y"
	if in.IsPaid {
		in.Price = a.prompt("Price (INR, number only): ")
	}
	in.CoverURL = a.prompt("Cover URL (blank for default): ")
	in.PDFURL = a.prompt("PDF link (Drive/Dropbox/bucket): ")

	s, err := a.cat.CreateStory(ctx, in)
	if err != nil {
		printOpError(err)
		return
	}
	fmt.Printf("Story %q published (id %s). It appears once the library refreshes.\n", s.Title, s.ID)
}

func (a *app) deleteStory(ctx context.Context) {
	stories := a.cat.ListAll()
	if len(stories) == 0 {
		fmt.Println("Nothing to delete.")
		return
	}
	printStoryList(stories)
	s, ok := a.pickStory(stories, "Delete which story?")
	if !ok {
		return
	}
	if !a.confirm(fmt.Sprintf("Delete %q publicly? This cannot be undone.", s.Title)) {
		return
	}
	if err := a.cat.DeleteStory(ctx, s.ID); err != nil {
		printOpError(err)
		return
	}
	fmt.Println("Deleted. The list updates with the next snapshot.")
}

func (a *app) recordSale(ctx context.Context) {
	stories := a.cat.ListAll()
	if len(stories) == 0 {
		fmt.Println("No stories yet.")
		return
	}
	printStoryList(stories)
	s, ok := a.pickStory(stories, "Record a sale for which story?")
	if !ok {
		return
	}
	n, err := strconv.ParseInt(a.prompt("How many verified sales to add: "), 10, 64)
	if err != nil {
		fmt.Println("Enter a whole number.")
		return
	}
	updated, err := a.cat.RecordSale(ctx, s.ID, n)
	if err != nil {
		printOpError(err)
		return
	}
	fmt.Printf("%q now has %d sales.\n", updated.Title, updated.Sales)
}

func (a *app) paymentSettings(ctx context.Context) {
	cur := a.cat.PaymentConfig()
	fmt.Println()
	fmt.Println("-- Global Payment Setup --")
	fmt.Println("Changes here update for all users immediately. Blank keeps the current value.")

	cfg := models.PaymentConfig{
		UPIID:           orCurrent(a.prompt(fmt.Sprintf("UPI ID [%s]: ", cur.UPIID)), cur.UPIID),
		QRCodeURL:       orCurrent(a.prompt(fmt.Sprintf("QR code URL [%s]: ", cur.QRCodeURL)), cur.QRCodeURL),
		InstructionText: orCurrent(a.prompt("Instructions (blank keeps current): "), cur.InstructionText),
	}
	if err := a.cat.UpdatePaymentConfig(ctx, cfg); err != nil {
		printOpError(err)
		return
	}
	fmt.Println("Payment settings updated globally.")
}

func (a *app) seed(ctx context.Context) {
	if err := a.cat.Seed(ctx); err != nil {
		if errors.Is(err, catalog.ErrNotEmpty) {
			fmt.Println("The catalog already has stories; seeding is only for an empty store.")
			return
		}
		printOpError(err)
		return
	}
	fmt.Println("Launch catalog seeded.")
}

func (a *app) uploadArtifact(ctx context.Context) {
	kinds := map[string]storage.ArtifactKind{
		"1": storage.KindCover,
		"2": storage.KindPDF,
		"3": storage.KindQR,
	}
	fmt.Println("1) Cover image  2) Story PDF  3) Payment QR")
	kind, ok := kinds[a.prompt("> ")]
	if !ok {
		return
	}
	name := a.prompt("Name (used in the object key): ")
	path := a.prompt("Local file path: ")
	if path == "" {
		return
	}
	url, err := a.artifact.UploadFile(ctx, kind, name, path)
	if err != nil {
		fmt.Println("Upload failed:", err)
		return
	}
	fmt.Println("Uploaded. Use this URL in the story form:")
	fmt.Println(url)
}

func orCurrent(entered, current string) string {
	if entered == "" {
		return current
	}
	return entered
}

// printOpError renders the taxonomy: validation inline per field, store
// failures as a blocking notice with state left untouched.
func printOpError(err error) {
	var verr *apperr.ValidationError
	if errors.As(err, &verr) {
		for _, f := range verr.Fields {
			fmt.Printf("  %s: %s\n", f.Field, f.Message)
		}
		return
	}
	if errors.Is(err, apperr.ErrNotFound) {
		fmt.Println("That story no longer exists.")
		return
	}
	fmt.Println("Could not reach the database. Check permissions or connection:", err)
}
