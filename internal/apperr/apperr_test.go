package apperr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestValidationErrorCollector(t *testing.T) {
	verr := &ValidationError{}
	if err := verr.OrNil(); err != nil {
		t.Fatal("empty collector must collapse to nil")
	}

	verr.Add("title", "required", "title is required")
	verr.Add("price", "invalid", "price must be numeric")

	err := verr.OrNil()
	if err == nil {
		t.Fatal("non-empty collector must surface")
	}
	if !IsValidation(err) {
		t.Fatal("IsValidation must match the collector")
	}
	msg := err.Error()
	if !strings.Contains(msg, "title") || !strings.Contains(msg, "price") {
		t.Fatalf("message should name both fields: %q", msg)
	}
}

func TestStoreErrorWrapping(t *testing.T) {
	cause := errors.New("deadline exceeded")
	err := Store("create story", cause)

	if !IsStore(err) {
		t.Fatal("IsStore must match")
	}
	if !errors.Is(err, cause) {
		t.Fatal("cause must unwrap")
	}
	wrapped := fmt.Errorf("outer: %w", err)
	if !IsStore(wrapped) {
		t.Fatal("IsStore must see through wrapping")
	}
}
