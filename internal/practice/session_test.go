package practice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlutz/kartei/internal/card"
	"github.com/mlutz/kartei/internal/exercise"
)

type fakeSaver struct {
	saved []card.Card
	fail  error
}

func (f *fakeSaver) SaveCard(_ context.Context, c card.Card) error {
	if f.fail != nil {
		return f.fail
	}
	f.saved = append(f.saved, c)
	return nil
}

func newTestSession(saver CardSaver, onComplete func(int) error) *Session {
	return NewSession(Config{
		Saver:      saver,
		OnComplete: onComplete,
		Now:        func() time.Time { return qNow },
		Rand:       testRand(),
	})
}

func TestStart_EmptyPoolStaysEmpty(t *testing.T) {
	s := newTestSession(&fakeSaver{}, nil)
	s.Start(nil, exercise.DefaultPreferences(), 0)

	assert.Equal(t, StatusEmpty, s.Status())
	_, ok := s.Current()
	assert.False(t, ok)
}

func TestStart_ScenarioC_TwoCardsMultipleChoiceOnly(t *testing.T) {
	s := newTestSession(&fakeSaver{}, nil)
	pool := makePool(2, "de")

	s.Start(pool, onlyType(exercise.MultipleChoiceText), len(pool))

	assert.Equal(t, StatusEmpty, s.Status(), "session must stay inactive with a 2-card pool")
}

func TestConfirmAndAdvance_RecordsAndCompletes(t *testing.T) {
	saver := &fakeSaver{}
	var completedWith []int
	s := newTestSession(saver, func(total int) error {
		completedWith = append(completedWith, total)
		return nil
	})

	pool := makePool(2, "de")
	s.Start(pool, onlyType(exercise.ReadingRecognition), len(pool))
	require.Equal(t, StatusActive, s.Status())

	first, ok := s.Current()
	require.True(t, ok)

	require.NoError(t, s.CheckAnswer(true))
	require.NoError(t, s.ConfirmAndAdvance(context.Background(), true))

	// Saved card carries the recorded result.
	require.Len(t, saver.saved, 1)
	assert.Equal(t, first.Card.ID, saver.saved[0].ID)
	score := saver.saved[0].Scores[exercise.ReadingRecognition]
	assert.Equal(t, 1, score.CorrectCount)
	assert.Equal(t, 1, score.CurrentChain)

	second, ok := s.Current()
	require.True(t, ok)
	assert.NotEqual(t, first.Card.ID, second.Card.ID)
	assert.Equal(t, AnswerPending, s.AnswerState())

	require.NoError(t, s.ConfirmAndAdvance(context.Background(), false))

	assert.Equal(t, StatusComplete, s.Status())
	correct, incorrect := s.Results()
	assert.Equal(t, 1, correct)
	assert.Equal(t, 1, incorrect)
	require.Equal(t, []int{2}, completedWith, "OnComplete fires once with total reviewed")
}

func TestConfirmAndAdvance_OverridesCheckedAnswer(t *testing.T) {
	saver := &fakeSaver{}
	s := newTestSession(saver, nil)
	pool := makePool(1, "de")
	s.Start(pool, onlyType(exercise.ReadingRecognition), len(pool))

	require.NoError(t, s.CheckAnswer(false))
	require.NoError(t, s.ConfirmAndAdvance(context.Background(), true))

	correct, incorrect := s.Results()
	assert.Equal(t, 1, correct)
	assert.Equal(t, 0, incorrect)
}

func TestConfirmAndAdvance_SaveFailureLeavesStatePut(t *testing.T) {
	saver := &fakeSaver{fail: errors.New("connection reset")}
	s := newTestSession(saver, nil)
	pool := makePool(2, "de")
	s.Start(pool, onlyType(exercise.ReadingRecognition), len(pool))

	before, _ := s.Current()

	err := s.ConfirmAndAdvance(context.Background(), true)
	require.Error(t, err)
	assert.Error(t, s.Err())

	// Same item, counters untouched: the answer can be resubmitted.
	after, ok := s.Current()
	require.True(t, ok)
	assert.True(t, before.Same(after))
	correct, incorrect := s.Results()
	assert.Zero(t, correct)
	assert.Zero(t, incorrect)

	// Retry succeeds once persistence recovers.
	saver.fail = nil
	require.NoError(t, s.ConfirmAndAdvance(context.Background(), true))
	assert.NoError(t, s.Err())
	correct, _ = s.Results()
	assert.Equal(t, 1, correct)
}

func TestSkip_PersistsForcedIncorrect(t *testing.T) {
	saver := &fakeSaver{}
	s := newTestSession(saver, nil)
	pool := makePool(2, "de")
	s.Start(pool, onlyType(exercise.ReadingRecognition), len(pool))

	first, _ := s.Current()
	require.NoError(t, s.Skip(context.Background()))

	require.Len(t, saver.saved, 1)
	score := saver.saved[0].Scores[exercise.ReadingRecognition]
	assert.Equal(t, 1, score.IncorrectCount, "skip advances spaced-repetition state")
	_, incorrect := s.Results()
	assert.Equal(t, 1, incorrect)

	second, _ := s.Current()
	assert.False(t, first.Same(second))
}

func TestSkip_RejectedAfterCheck(t *testing.T) {
	s := newTestSession(&fakeSaver{}, nil)
	pool := makePool(1, "de")
	s.Start(pool, onlyType(exercise.ReadingRecognition), len(pool))

	require.NoError(t, s.CheckAnswer(true))
	err := s.Skip(context.Background())
	assert.ErrorIs(t, err, ErrAnswerChecked)
}

func TestRemoveCard_ScenarioE_LastCardCompletesOnce(t *testing.T) {
	var calls []int
	s := newTestSession(&fakeSaver{}, func(total int) error {
		calls = append(calls, total)
		return errors.New("notify failed") // swallowed, logged
	})
	pool := makePool(1, "de")
	s.Start(pool, onlyType(exercise.ReadingRecognition), len(pool))
	require.Equal(t, StatusActive, s.Status())

	s.RemoveCard(pool[0].ID)

	assert.Equal(t, StatusComplete, s.Status())
	_, incorrect := s.Results()
	assert.Equal(t, 1, incorrect)
	require.Equal(t, []int{1}, calls, "OnComplete invoked exactly once with totalReviewed 1")

	// Removing again is a no-op; the callback must not refire.
	s.RemoveCard(pool[0].ID)
	assert.Len(t, calls, 1)
}

func TestRemoveCard_CurrentAtEndCompletes(t *testing.T) {
	var calls []int
	saver := &fakeSaver{}
	s := newTestSession(saver, func(total int) error {
		calls = append(calls, total)
		return nil
	})
	pool := makePool(2, "de")
	prefs := onlyType(exercise.ReadingRecognition)
	prefs.PrioritizeWeaknesses = true // deterministic order (all untried → pool order)
	s.Start(pool, prefs, len(pool))

	require.NoError(t, s.ConfirmAndAdvance(context.Background(), true))
	last, ok := s.Current()
	require.True(t, ok)

	// Only answered entries would remain, so removal must finalize the
	// session rather than re-serve an already-recorded item.
	s.RemoveCard(last.Card.ID)

	assert.Equal(t, StatusComplete, s.Status())
	_, ok = s.Current()
	assert.False(t, ok)
	correct, incorrect := s.Results()
	assert.Equal(t, 1, correct)
	assert.Equal(t, 1, incorrect, "unanswered removal still counts as a review")
	require.Equal(t, []int{2}, calls, "OnComplete fires once with both reviews counted")

	// The answered first card was persisted exactly once.
	assert.Len(t, saver.saved, 1)
}

func TestRemoveCard_BeforeCurrentShiftsIndexBack(t *testing.T) {
	saver := &fakeSaver{}
	s := newTestSession(saver, nil)
	pool := makePool(3, "de")
	prefs := onlyType(exercise.ReadingRecognition)
	prefs.PrioritizeWeaknesses = true // deterministic order (all untried → pool order)
	s.Start(pool, prefs, len(pool))

	require.NoError(t, s.ConfirmAndAdvance(context.Background(), true))
	current, _ := s.Current()

	var firstID string
	for _, c := range pool {
		if c.ID != current.Card.ID {
			firstID = c.ID
			break
		}
	}
	// Remove the already-answered first entry.
	s.RemoveCard(firstID)

	after, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, current.Card.ID, after.Card.ID, "index must keep pointing at the same logical item")
}

func TestUpdateCard_ReplacesQueueEntries(t *testing.T) {
	s := newTestSession(&fakeSaver{}, nil)
	pool := makePool(2, "de")
	s.Start(pool, onlyType(exercise.ReadingRecognition), len(pool))

	current, _ := s.Current()
	edited := current.Card.WithContent("neu", "new", qNow)
	s.UpdateCard(edited)

	after, _ := s.Current()
	assert.Equal(t, "neu", after.Card.Front)
}

func TestEnd_Idempotent(t *testing.T) {
	s := newTestSession(&fakeSaver{}, nil)
	pool := makePool(2, "de")
	s.Start(pool, onlyType(exercise.ReadingRecognition), len(pool))

	s.End()
	first := s.Status()
	s.End()

	assert.Equal(t, StatusEnded, first)
	assert.Equal(t, StatusEnded, s.Status())
	_, ok := s.Current()
	assert.False(t, ok)
}

func TestMultipleChoice_OptionsPrepared(t *testing.T) {
	s := newTestSession(&fakeSaver{}, nil)
	pool := makePool(5, "de")
	s.Start(pool, onlyType(exercise.MultipleChoiceText), len(pool))
	require.Equal(t, StatusActive, s.Status())

	current, _ := s.Current()
	options := s.Options()
	require.Len(t, options, 4)

	found := 0
	for _, opt := range options {
		if opt == current.Card.Back {
			found++
		}
	}
	assert.Equal(t, 1, found)
}

func TestRestart_RebuildsFromQueueCards(t *testing.T) {
	s := newTestSession(&fakeSaver{}, nil)
	pool := makePool(3, "de")
	s.Start(pool, onlyType(exercise.ReadingRecognition), len(pool))

	require.NoError(t, s.ConfirmAndAdvance(context.Background(), true))
	s.Restart()

	assert.Equal(t, StatusActive, s.Status())
	_, total := s.Progress()
	assert.Equal(t, 3, total, "restart rebuilds from all distinct queued cards")
	correct, incorrect := s.Results()
	assert.Zero(t, correct+incorrect, "restart resets run counters")
}
