package s3

import (
	"regexp"
	"strings"
	"testing"
)

func TestObjectKey(t *testing.T) {
	re := regexp.MustCompile(`^pdfs/the-quiet-harbor-[0-9a-f]{8}\.pdf$`)
	key := ObjectKey(KindPDF, "The Quiet Harbor", ".PDF")
	if !re.MatchString(key) {
		t.Fatalf("unexpected key %q", key)
	}

	// Distinct calls must not collide even for the same name.
	if other := ObjectKey(KindPDF, "The Quiet Harbor", ".pdf"); other == key {
		t.Fatal("keys for identical names must differ")
	}

	if got := ObjectKey(KindCover, "", ".jpg"); !strings.HasPrefix(got, "covers/n-a-") {
		t.Fatalf("empty name should fall back to the placeholder slug, got %q", got)
	}
}
