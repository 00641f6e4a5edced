// Package suggest turns a live recipient text input into a stream of
// suggestion-list states.
//
// Every input bumps a token. A debounce timer carries the token it was armed
// with and does nothing if a newer input arrived; a search response is
// applied only if no input arrived while it was in flight. Selecting a
// candidate arms a one-shot suppression that swallows the query the selection
// itself would schedule.
package suggest

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

const (
	DefaultDebounce     = 250 * time.Millisecond
	DefaultMinLength    = 2
	DefaultLimit        = 8
	DefaultQueryTimeout = 5 * time.Second
)

// Searcher performs the case-insensitive prefix lookup.
type Searcher interface {
	SearchUsers(ctx context.Context, q string) ([]domain.SuggestionCandidate, error)
}

// Phase is where the engine is between keystroke and result.
type Phase int

const (
	PhaseIdle     Phase = iota // nothing scheduled
	PhasePending               // debounce timer armed
	PhaseQuerying              // search in flight
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseQuerying:
		return "querying"
	default:
		return "idle"
	}
}

// Snapshot is one visible state of the suggestion list. Versions increase
// strictly; listeners never see an older version after a newer one.
type Snapshot struct {
	Version    uint64
	Input      string
	Candidates []domain.SuggestionCandidate
	Phase      Phase
	Suppressed bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the real clock; tests pass a fake one.
func WithClock(c clockwork.Clock) Option { return func(e *Engine) { e.clock = c } }

// WithDebounce sets the quiet period before a query is issued.
func WithDebounce(d time.Duration) Option { return func(e *Engine) { e.debounce = d } }

// WithMinLength sets the shortest handle that is ever queried.
func WithMinLength(n int) Option { return func(e *Engine) { e.minLen = n } }

// WithLimit caps the number of candidates shown.
func WithLimit(n int) Option { return func(e *Engine) { e.limit = n } }

// WithQueryTimeout bounds a single search call.
func WithQueryTimeout(d time.Duration) Option { return func(e *Engine) { e.queryTimeout = d } }

// WithOnChange registers the listener that receives every new snapshot.
// Calls are serialized.
func WithOnChange(fn func(Snapshot)) Option { return func(e *Engine) { e.onChange = fn } }

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option { return func(e *Engine) { e.log = l } }

// Engine is the suggestion state machine. Safe for concurrent use.
type Engine struct {
	searcher     Searcher
	clock        clockwork.Clock
	debounce     time.Duration
	minLen       int
	limit        int
	queryTimeout time.Duration
	onChange     func(Snapshot)
	log          *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu         sync.Mutex
	token      uint64
	timer      clockwork.Timer
	suppress   bool
	input      string
	candidates []domain.SuggestionCandidate
	phase      Phase
	version    uint64
	closed     bool

	// notifyMu guards the delivery queue, never a listener call.
	notifyMu  sync.Mutex
	pending   []Snapshot
	draining  bool
	delivered uint64
}

// New creates an Engine querying s.
func New(s Searcher, opts ...Option) *Engine {
	e := &Engine{
		searcher:     s,
		clock:        clockwork.NewRealClock(),
		debounce:     DefaultDebounce,
		minLen:       DefaultMinLength,
		limit:        DefaultLimit,
		queryTimeout: DefaultQueryTimeout,
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With("component", "suggest")
	e.ctx, e.cancel = context.WithCancel(context.Background())
	return e
}

// Input records a change of the recipient text field.
func (e *Engine) Input(text string) {
	e.mu.Lock()
	snap, ok := e.inputLocked(text, false)
	e.mu.Unlock()
	if ok {
		e.notify(snap)
	}
}

// Select puts the candidate's handle into the input and clears the list. The
// query this change would schedule is skipped exactly once.
func (e *Engine) Select(c domain.SuggestionCandidate) {
	e.mu.Lock()
	snap, ok := e.inputLocked(c.Handle, true)
	e.mu.Unlock()
	if ok {
		e.notify(snap)
	}
}

// Clear empties the input, for example after a successful submission.
func (e *Engine) Clear() { e.Input("") }

func (e *Engine) inputLocked(text string, selected bool) (Snapshot, bool) {
	if e.closed {
		return Snapshot{}, false
	}

	e.token++
	e.input = text
	e.suppress = selected
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	if selected {
		e.candidates = nil
	}

	handle, ok := domain.ResolveRecipient(text)
	if !ok || utf8.RuneCountInString(handle) < e.minLen {
		e.suppress = false
		e.candidates = nil
		e.phase = PhaseIdle
		return e.snapshotLocked(), true
	}

	token := e.token
	e.timer = e.clock.AfterFunc(e.debounce, func() { e.fire(token, handle) })
	e.phase = PhasePending
	return e.snapshotLocked(), true
}

func (e *Engine) fire(token uint64, handle string) {
	e.mu.Lock()
	if e.closed || token != e.token {
		e.mu.Unlock()
		return
	}
	e.timer = nil

	if e.suppress {
		e.suppress = false
		e.candidates = nil
		e.phase = PhaseIdle
		snap := e.snapshotLocked()
		e.mu.Unlock()
		e.notify(snap)
		return
	}

	e.phase = PhaseQuerying
	snap := e.snapshotLocked()
	e.wg.Add(1)
	e.mu.Unlock()

	e.notify(snap)
	e.query(token, handle)
}

func (e *Engine) query(token uint64, handle string) {
	defer e.wg.Done()

	ctx, cancel := context.WithTimeout(e.ctx, e.queryTimeout)
	found, err := e.searcher.SearchUsers(ctx, handle)
	cancel()

	e.mu.Lock()
	if e.closed || token != e.token {
		e.mu.Unlock()
		e.log.Debug("stale suggestions dropped", slog.String("query", handle))
		return
	}

	if err != nil {
		e.log.Debug("suggestion query failed", slog.String("query", handle), slog.String("error", err.Error()))
		e.candidates = nil
	} else {
		if len(found) > e.limit {
			found = found[:e.limit]
		}
		e.candidates = found
	}
	e.phase = PhaseIdle
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.notify(snap)
}

func (e *Engine) snapshotLocked() Snapshot {
	e.version++
	return Snapshot{
		Version:    e.version,
		Input:      e.input,
		Candidates: append([]domain.SuggestionCandidate(nil), e.candidates...),
		Phase:      e.phase,
		Suppressed: e.suppress,
	}
}

// Snapshot returns the current state without bumping the version.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{
		Version:    e.version,
		Input:      e.input,
		Candidates: append([]domain.SuggestionCandidate(nil), e.candidates...),
		Phase:      e.phase,
		Suppressed: e.suppress,
	}
}

// notify hands s to the listener. One caller at a time drains the queue and
// calls the listener without holding notifyMu, so a listener may call Input
// or Select; those snapshots are queued and delivered after it returns.
// Versions older than the last delivered one are dropped.
func (e *Engine) notify(s Snapshot) {
	if e.onChange == nil {
		return
	}
	e.notifyMu.Lock()
	e.pending = append(e.pending, s)
	if e.draining {
		e.notifyMu.Unlock()
		return
	}
	e.draining = true
	for len(e.pending) > 0 {
		next := e.pending[0]
		e.pending = e.pending[1:]
		if next.Version <= e.delivered {
			continue
		}
		e.delivered = next.Version
		e.notifyMu.Unlock()
		e.onChange(next)
		e.notifyMu.Lock()
	}
	e.pending = nil
	e.draining = false
	e.notifyMu.Unlock()
}

// Close stops the pending timer, cancels in-flight searches and waits for
// them to return. Later inputs are ignored.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.mu.Unlock()

	e.cancel()
	e.wg.Wait()
}
