package catalog_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/alizaqureshi939-lab/Lafz-Box/internal/apperr"
	"github.com/alizaqureshi939-lab/Lafz-Box/internal/catalog"
	"github.com/alizaqureshi939-lab/Lafz-Box/internal/models"
)

// fakeStore implements catalog.Store in memory with the same delivery
// contract as the real adapter: a full snapshot on subscribe and after every
// mutation.
type fakeStore struct {
	mu       sync.Mutex
	stories  map[string]models.Story
	config   *models.PaymentConfig
	storyCh  chan []models.Story
	configCh chan models.PaymentConfig

	putErr    error
	deleteErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		stories:  map[string]models.Story{},
		storyCh:  make(chan []models.Story, 16),
		configCh: make(chan models.PaymentConfig, 16),
	}
}

func (f *fakeStore) snapshotLocked() []models.Story {
	out := make([]models.Story, 0, len(f.stories))
	for _, s := range f.stories {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (f *fakeStore) PutStory(_ context.Context, s models.Story) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return f.putErr
	}
	f.stories[s.ID] = s
	f.storyCh <- f.snapshotLocked()
	return nil
}

func (f *fakeStore) DeleteStory(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.stories, id) // unconditional: absent ids are a no-op
	f.storyCh <- f.snapshotLocked()
	return nil
}

func (f *fakeStore) PutPaymentConfig(_ context.Context, cfg models.PaymentConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.config = &cfg
	f.configCh <- cfg
	return nil
}

func (f *fakeStore) WatchStories(context.Context) (<-chan []models.Story, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.storyCh <- f.snapshotLocked()
	return f.storyCh, nil
}

func (f *fakeStore) WatchPaymentConfig(context.Context) (<-chan models.PaymentConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cfg := models.DefaultPaymentConfig()
	if f.config != nil {
		cfg = *f.config
	}
	f.configCh <- cfg
	return f.configCh, nil
}

func startCatalog(t *testing.T, fs *fakeStore) *catalog.Catalog {
	t.Helper()
	cat := catalog.New(fs, nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = cat.Run(ctx) }()
	waitFor(t, cat.Ready)
	return cat
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestSnapshotReplacesWholesale(t *testing.T) {
	fs := newFakeStore()
	fs.stories["100"] = models.Story{ID: "100", Title: "old"}
	cat := startCatalog(t, fs)

	if got := cat.ListAll(); len(got) != 1 || got[0].ID != "100" {
		t.Fatalf("initial snapshot wrong: %+v", got)
	}

	// A later snapshot supersedes everything previously held.
	if err := fs.PutStory(t.Context(), models.Story{ID: "200", Title: "new"}); err != nil {
		t.Fatal(err)
	}
	waitFor(t, func() bool { return len(cat.ListAll()) == 2 })

	got := cat.ListAll()
	if got[0].ID != "200" || got[1].ID != "100" {
		t.Fatalf("want newest first, got %v, %v", got[0].ID, got[1].ID)
	}
}

func TestDeleteStoryGoneFromNextSnapshot(t *testing.T) {
	fs := newFakeStore()
	fs.stories["1"] = models.Story{ID: "1", Title: "a"}
	fs.stories["2"] = models.Story{ID: "2", Title: "b"}
	cat := startCatalog(t, fs)
	waitFor(t, func() bool { return len(cat.ListAll()) == 2 })

	if err := cat.DeleteStory(t.Context(), "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	waitFor(t, func() bool { return len(cat.ListAll()) == 1 })

	for _, s := range cat.ListAll() {
		if s.ID == "1" {
			t.Fatal("deleted id still visible after snapshot update")
		}
	}

	// Idempotent at the model level: deleting the absent id still succeeds.
	if err := cat.DeleteStory(t.Context(), "1"); err != nil {
		t.Fatalf("delete of absent id should be a no-op success, got %v", err)
	}
}

func TestDeleteStoryStoreError(t *testing.T) {
	fs := newFakeStore()
	fs.stories["1"] = models.Story{ID: "1"}
	cat := startCatalog(t, fs)
	waitFor(t, func() bool { return len(cat.ListAll()) == 1 })

	fs.mu.Lock()
	fs.deleteErr = errors.New("permission denied")
	fs.mu.Unlock()

	err := cat.DeleteStory(t.Context(), "1")
	if err == nil {
		t.Fatal("expected store error")
	}
	// The local view stays at the last known-good snapshot.
	if len(cat.ListAll()) != 1 {
		t.Fatal("local snapshot must not change on a failed delete")
	}
}

func TestPaymentConfigRoundTrip(t *testing.T) {
	fs := newFakeStore()
	cat := startCatalog(t, fs)

	// Absent document yields the built-in default.
	if got, want := cat.PaymentConfig(), models.DefaultPaymentConfig(); got != want {
		t.Fatalf("want default config, got %+v", got)
	}

	want := models.PaymentConfig{
		UPIID:           "owner@upi",
		QRCodeURL:       "https://example.com/qr.png",
		InstructionText: "Pay and enter the reference.",
	}
	if err := cat.UpdatePaymentConfig(t.Context(), want); err != nil {
		t.Fatalf("update: %v", err)
	}
	waitFor(t, func() bool { return cat.PaymentConfig() == want })
}

func TestUpdatePaymentConfigRequiresAllFields(t *testing.T) {
	fs := newFakeStore()
	cat := startCatalog(t, fs)

	err := cat.UpdatePaymentConfig(t.Context(), models.PaymentConfig{UPIID: "x@upi"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.config != nil {
		t.Fatal("no write may be attempted on validation failure")
	}
}

func TestRecordSale(t *testing.T) {
	fs := newFakeStore()
	fs.stories["5"] = models.Story{ID: "5", Title: "t", IsPaid: true, Price: "₹49", Sales: 2}
	cat := startCatalog(t, fs)
	waitFor(t, func() bool { return len(cat.ListAll()) == 1 })

	got, err := cat.RecordSale(t.Context(), "5", 3)
	if err != nil {
		t.Fatalf("record sale: %v", err)
	}
	if got.Sales != 5 {
		t.Fatalf("want 5 sales, got %d", got.Sales)
	}

	if _, err := cat.RecordSale(t.Context(), "missing", 1); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("want not-found, got %v", err)
	}
	if _, err := cat.RecordSale(t.Context(), "5", 0); err == nil {
		t.Fatal("zero count must be rejected")
	}
}

func TestSeedOnlyWhenEmpty(t *testing.T) {
	fs := newFakeStore()
	cat := startCatalog(t, fs)

	if err := cat.Seed(t.Context()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	waitFor(t, func() bool { return len(cat.ListAll()) == len(catalog.SeedStories()) })

	if err := cat.Seed(t.Context()); !errors.Is(err, catalog.ErrNotEmpty) {
		t.Fatalf("want ErrNotEmpty, got %v", err)
	}
}
