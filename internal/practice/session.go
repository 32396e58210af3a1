package practice

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/mlutz/kartei/internal/card"
	"github.com/mlutz/kartei/internal/exercise"
)

// Status is the session lifecycle state.
type Status int

const (
	StatusEmpty    Status = iota // no queue; nothing to practice
	StatusActive                 // serving items
	StatusComplete               // queue exhausted or emptied by removal
	StatusEnded                  // explicitly ended by the caller
)

// AnswerState tracks the current item's answer progression.
type AnswerState int

const (
	AnswerPending AnswerState = iota
	AnswerChecked
)

var (
	// ErrNotActive is returned by mutating operations outside an active session.
	ErrNotActive = errors.New("practice: session not active")
	// ErrAnswerChecked is returned by Skip after the answer was checked;
	// a checked answer must be confirmed.
	ErrAnswerChecked = errors.New("practice: answer already checked, confirm instead")
	// ErrAnswerPending is returned by operations that need a checked answer.
	ErrAnswerPending = errors.New("practice: no answer checked yet")
)

// CardSaver persists an updated card. The session treats a save failure
// as retryable: local state is not advanced until the save succeeds.
type CardSaver interface {
	SaveCard(ctx context.Context, c card.Card) error
}

// DefaultSaveTimeout bounds a single persistence call.
const DefaultSaveTimeout = 10 * time.Second

// Config wires the session's external collaborators.
type Config struct {
	Saver CardSaver

	// OnComplete is invoked exactly once with the total reviewed count
	// when the queue is exhausted or emptied via removal. Errors are
	// logged and swallowed; they never block teardown. Optional.
	OnComplete func(totalReviewed int) error

	// SaveTimeout bounds each SaveCard call. Zero means DefaultSaveTimeout.
	SaveTimeout time.Duration

	// Log receives swallowed collaborator failures. Optional.
	Log logrus.FieldLogger

	// Now and Rand exist for tests; nil means wall clock / global seed.
	Now  func() time.Time
	Rand *rand.Rand
}

// Session drives one practice run. All methods are safe for use from a
// single UI goroutine; a mutex serializes the read-then-write of queue
// and index so overlapping confirm/skip/remove calls cannot interleave.
type Session struct {
	mu  sync.Mutex
	cfg Config

	queue  []Item
	index  int
	status Status

	answerState AnswerState
	checked     bool // answer checked for current item
	checkedOK   bool // tentative correctness from CheckAnswer
	options     []string
	input       string

	correctRun   int
	incorrectRun int
	startedAt    time.Time
	completed    bool // OnComplete already fired
	lastErr      error

	// retained for Restart and option regeneration
	pool     []card.Card
	prefs    exercise.Preferences
	poolSize int
}

// NewSession creates an empty session with the given collaborators.
func NewSession(cfg Config) *Session {
	if cfg.SaveTimeout == 0 {
		cfg.SaveTimeout = DefaultSaveTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}
	return &Session{cfg: cfg, status: StatusEmpty}
}

// Start builds a fresh queue from the pool and preferences. An empty
// queue leaves the session in StatusEmpty. A fresh start resets run
// counters and the session-start timestamp.
func (s *Session) Start(pool []card.Card, prefs exercise.Preferences, poolSize int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pool = pool
	s.prefs = prefs
	s.poolSize = poolSize

	s.queue = BuildQueue(pool, prefs, poolSize, s.cfg.Now(), s.cfg.Rand)
	s.index = 0
	s.correctRun = 0
	s.incorrectRun = 0
	s.completed = false
	s.lastErr = nil
	s.startedAt = s.cfg.Now()

	if len(s.queue) == 0 {
		s.status = StatusEmpty
		return
	}
	s.status = StatusActive
	s.prepareCurrentLocked()
}

// Status returns the lifecycle state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Current returns the item at the queue position, if the session is active.
func (s *Session) Current() (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked()
}

func (s *Session) currentLocked() (Item, bool) {
	if s.status != StatusActive || s.index < 0 || s.index >= len(s.queue) {
		return Item{}, false
	}
	return s.queue[s.index], true
}

// Options returns the multiple-choice options for the current item, or
// nil for free-form exercise types.
func (s *Session) Options() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.options...)
}

// Input returns the free-text answer typed so far.
func (s *Session) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

// SetInput stores the free-text answer in progress.
func (s *Session) SetInput(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = v
}

// AnswerState returns the current item's answer progression.
func (s *Session) AnswerState() AnswerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answerState
}

// Progress returns the 1-based position and queue length.
func (s *Session) Progress() (pos, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return 0, 0
	}
	return s.index + 1, len(s.queue)
}

// Results returns the run counters.
func (s *Session) Results() (correct, incorrect int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.correctRun, s.incorrectRun
}

// StartedAt returns the session-start timestamp.
func (s *Session) StartedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startedAt
}

// Err returns the last persistence error, or nil.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// CheckAnswer records the tentative correctness of the pending answer.
// The value stays overridable until ConfirmAndAdvance.
func (s *Session) CheckAnswer(correct bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.currentLocked(); !ok {
		return ErrNotActive
	}
	s.answerState = AnswerChecked
	s.checked = true
	s.checkedOK = correct
	return nil
}

// Checked returns the tentative correctness recorded by CheckAnswer.
func (s *Session) Checked() (correct, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkedOK, s.checked
}

// ConfirmAndAdvance records the result against the current card, persists
// it, updates run counters, and advances. markedCorrect overrides any
// value recorded by CheckAnswer.
//
// When the save fails the queue, index, and counters stay untouched so
// the same item can be retried; the error is also retained in Err.
func (s *Session) ConfirmAndAdvance(ctx context.Context, markedCorrect bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recordAndAdvanceLocked(ctx, markedCorrect)
}

// Skip marks the current item wrong without an answer, so its
// spaced-repetition state still advances. Only valid while the answer is
// pending; a checked answer must be confirmed.
func (s *Session) Skip(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.answerState == AnswerChecked {
		return ErrAnswerChecked
	}
	return s.recordAndAdvanceLocked(ctx, false)
}

func (s *Session) recordAndAdvanceLocked(ctx context.Context, correct bool) error {
	item, ok := s.currentLocked()
	if !ok {
		return ErrNotActive
	}

	updated := item.Card.WithExerciseResult(item.Type, correct, s.cfg.Now())

	saveCtx, cancel := context.WithTimeout(ctx, s.cfg.SaveTimeout)
	defer cancel()
	if err := s.cfg.Saver.SaveCard(saveCtx, updated); err != nil {
		s.lastErr = fmt.Errorf("save card %s: %w", updated.ID, err)
		return s.lastErr
	}
	s.lastErr = nil

	// Later queue entries for the same card see the recorded result.
	for i := range s.queue {
		if s.queue[i].Card.ID == updated.ID {
			s.queue[i].Card = updated
		}
	}

	if correct {
		s.correctRun++
	} else {
		s.incorrectRun++
	}

	s.advanceLocked()
	return nil
}

// advanceLocked moves to the next queue position or completes the session.
func (s *Session) advanceLocked() {
	if s.index+1 < len(s.queue) {
		s.index++
		s.prepareCurrentLocked()
		return
	}
	s.completeLocked()
}

// RemoveCard drops every queue entry for the card, keeping the index on
// the same logical item. Removing the current item counts it as one
// incorrect review; an emptied queue completes the session.
func (s *Session) RemoveCard(cardID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusActive {
		return
	}

	removedBefore := 0
	removedCurrent := false
	var kept []Item
	for i, it := range s.queue {
		if it.Card.ID != cardID {
			kept = append(kept, it)
			continue
		}
		if i < s.index {
			removedBefore++
		} else if i == s.index {
			removedCurrent = true
		}
	}
	if len(kept) == len(s.queue) {
		return
	}

	s.queue = kept
	s.index -= removedBefore

	if removedCurrent {
		// The learner never answered this one; it still counts as a review.
		s.incorrectRun++
	}

	if len(s.queue) == 0 {
		s.completeLocked()
		return
	}
	if removedCurrent {
		// Entries before the index were already answered and persisted
		// this run; with nothing left ahead the session is finished.
		if s.index >= len(s.queue) {
			s.completeLocked()
			return
		}
		s.prepareCurrentLocked()
	}
}

// UpdateCard replaces the stored card in every matching queue entry, for
// mid-session edits from outside the practice flow. The current item's
// exercise is re-prepared when affected.
func (s *Session) UpdateCard(updated card.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()

	touchedCurrent := false
	for i := range s.queue {
		if s.queue[i].Card.ID == updated.ID {
			s.queue[i].Card = updated
			if i == s.index {
				touchedCurrent = true
			}
		}
	}
	for i := range s.pool {
		if s.pool[i].ID == updated.ID {
			s.pool[i] = updated
		}
	}
	if touchedCurrent && s.status == StatusActive {
		s.prepareCurrentLocked()
	}
}

// Restart rebuilds the session from the distinct cards still in the
// queue, reshuffling from scratch.
func (s *Session) Restart() {
	s.mu.Lock()
	cards := lo.UniqBy(lo.Map(s.queue, func(it Item, _ int) card.Card {
		return it.Card
	}), func(c card.Card) string { return c.ID })
	prefs, poolSize := s.prefs, s.poolSize
	s.mu.Unlock()

	s.Start(cards, prefs, poolSize)
}

// End tears the session down without firing the completion callback.
// Safe to call repeatedly and in any state.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusEnded {
		return
	}
	s.queue = nil
	s.index = 0
	s.options = nil
	s.input = ""
	s.answerState = AnswerPending
	s.checked = false
	s.status = StatusEnded
}

// completeLocked finalizes an exhausted or emptied queue, firing
// OnComplete exactly once.
func (s *Session) completeLocked() {
	s.queue = nil
	s.index = 0
	s.options = nil
	s.input = ""
	s.answerState = AnswerPending
	s.checked = false
	s.status = StatusComplete

	if s.completed {
		return
	}
	s.completed = true
	if s.cfg.OnComplete == nil {
		return
	}
	total := s.correctRun + s.incorrectRun
	if err := s.cfg.OnComplete(total); err != nil {
		s.cfg.Log.WithError(err).Warn("session completion callback failed")
	}
}

// prepareCurrentLocked refreshes per-item state whenever the current item
// changes: multiple-choice options regenerate, stale input clears.
func (s *Session) prepareCurrentLocked() {
	s.answerState = AnswerPending
	s.checked = false
	s.input = ""

	item, ok := s.currentLocked()
	if !ok || !item.Type.IsMultipleChoice() {
		s.options = nil
		return
	}
	s.options = GenerateOptions(item.Card, s.pool, s.cfg.Rand)
}
