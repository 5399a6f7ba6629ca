package catalog

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/alizaqureshi939-lab/Lafz-Box/internal/apperr"
	"github.com/alizaqureshi939-lab/Lafz-Box/internal/models"
	"github.com/alizaqureshi939-lab/Lafz-Box/internal/validate"
)

// DefaultCoverURL is substituted when a story is created without a cover.
const DefaultCoverURL = "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?q=80&w=1000"

// currencyPrefix is the single fixed display currency.
const currencyPrefix = "₹"

const (
	maxTitleLen       = 200
	maxDescriptionLen = 2000
)

// CreateStory validates the input, assigns a fresh id and asks the store to
// persist the document. The new entry becomes visible through ListAll only
// once the subscription delivers the updated snapshot, not on return.
func (c *Catalog) CreateStory(ctx context.Context, in CreateStoryInput) (models.Story, error) {
	story, err := buildStory(in, c.nextID())
	if err != nil {
		return models.Story{}, err
	}

	if err := c.store.PutStory(ctx, story); err != nil {
		c.log.Error("create story failed", zap.String("id", story.ID), zap.Error(err))
		return models.Story{}, apperr.Store("create story", err)
	}

	c.log.Info("story published",
		zap.String("id", story.ID),
		zap.String("title", story.Title),
		zap.Bool("paid", story.IsPaid),
	)
	return story, nil
}

// nextID returns a fresh creation-time id (Unix milliseconds). Successive
// calls within the same millisecond still get unique, increasing ids.
func (c *Catalog) nextID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ms := c.now().UnixMilli()
	if ms <= c.lastID {
		ms = c.lastID + 1
	}
	c.lastID = ms
	return strconv.FormatInt(ms, 10)
}

// buildStory applies the full invariant set and returns the document to
// persist. The paid/price invariant is enforced in both directions: paid
// stories need a positive amount, free stories must not carry one.
func buildStory(in CreateStoryInput, id string) (models.Story, error) {
	verr := &apperr.ValidationError{}

	title, err := validate.RequireBounded("title", in.Title, 1, maxTitleLen)
	if err != nil {
		verr.Add("title", "required", err.Error())
	}
	desc, err := validate.RequireBounded("description", in.Description, 1, maxDescriptionLen)
	if err != nil {
		verr.Add("description", "required", err.Error())
	}

	genre, ok := models.ParseGenre(validate.SanitizeString(in.Genre))
	if !ok {
		verr.Add("genre", "invalid", "genre must be one of the known genres")
	}

	pdfURL, err := validate.RequireURL("pdfUrl", in.PDFURL)
	if err != nil {
		verr.Add("pdfUrl", "required", err.Error())
	}

	coverURL := validate.SanitizeString(in.CoverURL)
	if coverURL == "" {
		coverURL = DefaultCoverURL
	} else if coverURL, err = validate.RequireURL("coverUrl", coverURL); err != nil {
		verr.Add("coverUrl", "invalid", err.Error())
	}

	price, perr := validatePrice(in.IsPaid, in.Price)
	if perr != nil {
		verr.Fields = append(verr.Fields, perr.Fields...)
	}

	if err := verr.OrNil(); err != nil {
		return models.Story{}, err
	}

	return models.Story{
		ID:          id,
		Title:       title,
		Genre:       genre,
		IsPaid:      in.IsPaid,
		Price:       price,
		CoverURL:    coverURL,
		Description: desc,
		Sales:       0,
		PDFURL:      pdfURL,
	}, nil
}

// validatePrice returns the formatted display price ("₹" + amount) for paid
// stories and the empty string for free ones.
func validatePrice(isPaid bool, raw string) (string, *apperr.ValidationError) {
	raw = validate.SanitizeString(raw)

	if !isPaid {
		if raw != "" {
			return "", apperr.Validation("price", "invalid", "free stories must not carry a price")
		}
		return "", nil
	}

	if raw == "" {
		return "", apperr.Validation("price", "required", "paid stories need a price")
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return "", apperr.Validation("price", "invalid", "price must be numeric")
	}
	if !amount.IsPositive() {
		return "", apperr.Validation("price", "not_positive", "price must be greater than zero")
	}
	return currencyPrefix + amount.String(), nil
}
