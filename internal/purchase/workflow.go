package purchase

import (
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/alizaqureshi939-lab/Lafz-Box/internal/apperr"
	"github.com/alizaqureshi939-lab/Lafz-Box/internal/models"
)

// State is where the confirmation flow currently sits.
type State int

const (
	StateClosed State = iota
	StateDetails
	StateProcessing
	StateSuccess
)

func (s State) String() string {
	switch s {
	case StateDetails:
		return "details"
	case StateProcessing:
		return "processing"
	case StateSuccess:
		return "success"
	default:
		return "closed"
	}
}

// MinReferenceLen is the shortest transaction reference the flow accepts.
const MinReferenceLen = 4

var (
	// ErrInFlight: the workflow is single-flight; only one story at a time.
	ErrInFlight = errors.New("a purchase is already in progress")
	// ErrNotPaid: free stories skip the workflow entirely.
	ErrNotPaid = errors.New("story is not paid")
	// ErrNotOpen: the attempted transition is not defined from the current state.
	ErrNotOpen = errors.New("no purchase is open")
)

// Options sets the dwell times of the simulated verification. Zero values
// fall back to the defaults (2s processing, 3s success).
type Options struct {
	ProcessingDelay time.Duration
	SuccessDelay    time.Duration
}

const (
	defaultProcessingDelay = 2 * time.Second
	defaultSuccessDelay    = 3 * time.Second
)

// Workflow drives one paid story through the manual UPI confirmation steps:
// Details -> Processing -> Success, with Closed reachable from anywhere via
// Close. Verification is simulated: Processing is a fixed dwell with no
// failure path. Nothing here is persisted; success grants access purely by
// handing the story back through the release callback.
type Workflow struct {
	log  *zap.Logger
	opts Options

	mu     sync.Mutex
	state  State
	story  models.Story
	config models.PaymentConfig
	ref    string
	timer  *time.Timer
	done   func(models.Story)
	gen    uint64 // bumped on Close so stale timers become no-ops
}

func New(log *zap.Logger, opts Options) *Workflow {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.ProcessingDelay <= 0 {
		opts.ProcessingDelay = defaultProcessingDelay
	}
	if opts.SuccessDelay <= 0 {
		opts.SuccessDelay = defaultSuccessDelay
	}
	return &Workflow{log: log.Named("purchase"), opts: opts}
}

// Start opens the flow at Details for a paid story. onRelease fires exactly
// once, only after the flow reaches Success, and means the artifact may be
// handed to the buyer.
func (w *Workflow) Start(story models.Story, cfg models.PaymentConfig, onRelease func(models.Story)) error {
	if !story.IsPaid {
		return ErrNotPaid
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateClosed {
		return ErrInFlight
	}

	w.state = StateDetails
	w.story = story
	w.config = cfg
	w.ref = ""
	w.done = onRelease

	w.log.Debug("purchase opened", zap.String("id", story.ID), zap.String("price", story.Price))
	return nil
}

// State returns the current state.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Story returns the story under purchase, if the flow is open.
func (w *Workflow) Story() (models.Story, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == StateClosed {
		return models.Story{}, false
	}
	return w.story, true
}

// Config returns the payment settings captured when the flow opened.
func (w *Workflow) Config() models.PaymentConfig {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.config
}

// Submit takes the buyer's transaction reference. Too-short references keep
// the flow at Details and return a ValidationError; a valid one moves to
// Processing, and the dwell timer takes it from there.
func (w *Workflow) Submit(ref string) error {
	ref = strings.TrimSpace(ref)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateDetails {
		return ErrNotOpen
	}
	if utf8.RuneCountInString(ref) < MinReferenceLen {
		return apperr.Validation("transactionRef", "too_short", "please enter a valid transaction id")
	}

	w.ref = ref
	w.state = StateProcessing
	gen := w.gen
	w.timer = time.AfterFunc(w.opts.ProcessingDelay, func() { w.succeed(gen) })

	w.log.Debug("verifying transaction", zap.String("id", w.story.ID), zap.String("ref", ref))
	return nil
}

// succeed moves Processing -> Success and schedules the auto-return. The
// simulated verification has no failure branch.
func (w *Workflow) succeed(gen uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.gen || w.state != StateProcessing {
		return
	}
	w.state = StateSuccess
	w.timer = time.AfterFunc(w.opts.SuccessDelay, func() { w.finish(gen) })
	w.log.Debug("transaction verified", zap.String("id", w.story.ID))
}

// finish closes the flow after the Success dwell and releases the artifact.
func (w *Workflow) finish(gen uint64) {
	w.mu.Lock()
	if gen != w.gen || w.state != StateSuccess {
		w.mu.Unlock()
		return
	}
	story := w.story
	done := w.done
	w.reset()
	w.mu.Unlock()

	if done != nil {
		done(story)
	}
}

// Close cancels from any state, discarding all in-flight state including the
// entered reference. Pending transitions never fire and the release callback
// is not invoked.
func (w *Workflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == StateClosed {
		return
	}
	w.log.Debug("purchase closed", zap.String("id", w.story.ID), zap.Stringer("state", w.state))
	w.reset()
}

// reset must be called with the mutex held.
func (w *Workflow) reset() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.gen++
	w.state = StateClosed
	w.story = models.Story{}
	w.config = models.PaymentConfig{}
	w.ref = ""
	w.done = nil
}
