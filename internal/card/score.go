package card

import "time"

// MasteryLevel is a qualitative label derived from chain and attempt count.
type MasteryLevel string

const (
	MasteryNew       MasteryLevel = "New"
	MasteryLearning  MasteryLevel = "Learning"
	MasteryGood      MasteryLevel = "Good"
	MasteryMastered  MasteryLevel = "Mastered"
	MasteryDifficult MasteryLevel = "Difficult"
)

// masteredChain is the consecutive-correct streak at which a (card, type)
// pair counts as mastered.
const masteredChain = 5

// ExerciseScore tracks performance for one (card, exercise type) pair.
// Values are immutable: RecordCorrect and RecordIncorrect return a new
// score and never mutate the receiver.
type ExerciseScore struct {
	CorrectCount   int        `json:"correct_count"`
	IncorrectCount int        `json:"incorrect_count"`
	CurrentChain   int        `json:"current_chain"`
	BestChain      int        `json:"best_chain"`
	LastPracticed  *time.Time `json:"last_practiced,omitempty"`
	NextReview     *time.Time `json:"next_review,omitempty"`
}

// RecordCorrect returns the score after a correct answer at time now.
// The review interval expands with the streak: 1 + 2×chain days, where
// chain is the streak after this answer.
func (s ExerciseScore) RecordCorrect(now time.Time) ExerciseScore {
	s.CorrectCount++
	s.CurrentChain++
	if s.CurrentChain > s.BestChain {
		s.BestChain = s.CurrentChain
	}
	s.LastPracticed = &now
	next := now.AddDate(0, 0, reviewIntervalDays(s.CurrentChain))
	s.NextReview = &next
	return s
}

// RecordIncorrect returns the score after a wrong answer at time now.
// The chain steps down one (floor 0) and the card comes back tomorrow.
func (s ExerciseScore) RecordIncorrect(now time.Time) ExerciseScore {
	s.IncorrectCount++
	if s.CurrentChain > 0 {
		s.CurrentChain--
	}
	s.LastPracticed = &now
	next := now.AddDate(0, 0, 1)
	s.NextReview = &next
	return s
}

// reviewIntervalDays maps a streak to a review interval in whole days:
// chain 0 → 1d, 1 → 3d, 2 → 5d, and so on.
func reviewIntervalDays(chain int) int {
	return 1 + 2*chain
}

// TotalAttempts returns the number of recorded answers.
func (s ExerciseScore) TotalAttempts() int {
	return s.CorrectCount + s.IncorrectCount
}

// SuccessRate returns the correct-answer percentage (0 with no attempts).
func (s ExerciseScore) SuccessRate() float64 {
	total := s.TotalAttempts()
	if total == 0 {
		return 0
	}
	return float64(s.CorrectCount) / float64(total) * 100
}

// IsDue reports whether the pair should be reviewed at time now.
// A nil NextReview means the pair has never been scheduled and is due.
func (s ExerciseScore) IsDue(now time.Time) bool {
	return s.NextReview == nil || now.After(*s.NextReview)
}

// Mastery returns the qualitative label for this score.
func (s ExerciseScore) Mastery() MasteryLevel {
	switch {
	case s.CurrentChain >= masteredChain:
		return MasteryMastered
	case s.TotalAttempts() == 0:
		return MasteryNew
	case s.CurrentChain >= 3:
		return MasteryGood
	case s.CurrentChain >= 1:
		return MasteryLearning
	default:
		return MasteryDifficult
	}
}

// MasteryProgress returns the chain as a fraction of mastery, in [0, 1].
func (s ExerciseScore) MasteryProgress() float64 {
	p := float64(s.CurrentChain) / masteredChain
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
