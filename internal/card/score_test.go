package card

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func TestRecordCorrect_ChainArithmetic(t *testing.T) {
	s := ExerciseScore{CorrectCount: 2, IncorrectCount: 1, CurrentChain: 2, BestChain: 4}

	got := s.RecordCorrect(testNow)

	if got.CorrectCount != 3 {
		t.Errorf("CorrectCount = %d, want 3", got.CorrectCount)
	}
	if got.CurrentChain != s.CurrentChain+1 {
		t.Errorf("CurrentChain = %d, want %d", got.CurrentChain, s.CurrentChain+1)
	}
	if got.BestChain != 4 {
		t.Errorf("BestChain = %d, want 4 (monotonic max)", got.BestChain)
	}
	if got.LastPracticed == nil || !got.LastPracticed.Equal(testNow) {
		t.Errorf("LastPracticed = %v, want %v", got.LastPracticed, testNow)
	}

	// Receiver untouched.
	if s.CorrectCount != 2 || s.CurrentChain != 2 {
		t.Error("RecordCorrect mutated the receiver")
	}
}

func TestRecordCorrect_BestChainFollowsNewHigh(t *testing.T) {
	s := ExerciseScore{CurrentChain: 4, BestChain: 4}
	got := s.RecordCorrect(testNow)
	if got.BestChain != 5 {
		t.Errorf("BestChain = %d, want 5", got.BestChain)
	}
}

func TestRecordCorrect_IntervalGrowsWithChain(t *testing.T) {
	tests := []struct {
		chainBefore  int
		wantInterval int // days
	}{
		{0, 3},  // chain becomes 1 → 1+2×1
		{1, 5},  // chain becomes 2
		{4, 11}, // chain becomes 5
	}
	for _, tt := range tests {
		s := ExerciseScore{CurrentChain: tt.chainBefore}
		got := s.RecordCorrect(testNow)
		want := testNow.AddDate(0, 0, tt.wantInterval)
		if got.NextReview == nil || !got.NextReview.Equal(want) {
			t.Errorf("chain %d: NextReview = %v, want %v", tt.chainBefore, got.NextReview, want)
		}
	}
}

func TestRecordIncorrect_ChainFloorsAtZero(t *testing.T) {
	tests := []struct {
		chainBefore int
		wantChain   int
	}{
		{0, 0},
		{1, 0},
		{3, 2},
	}
	for _, tt := range tests {
		s := ExerciseScore{CurrentChain: tt.chainBefore}
		got := s.RecordIncorrect(testNow)
		if got.CurrentChain != tt.wantChain {
			t.Errorf("chain %d: CurrentChain = %d, want %d", tt.chainBefore, got.CurrentChain, tt.wantChain)
		}
		wantNext := testNow.AddDate(0, 0, 1)
		if got.NextReview == nil || !got.NextReview.Equal(wantNext) {
			t.Errorf("chain %d: NextReview = %v, want %v", tt.chainBefore, got.NextReview, wantNext)
		}
		if got.IncorrectCount != 1 {
			t.Errorf("IncorrectCount = %d, want 1", got.IncorrectCount)
		}
	}
}

func TestSuccessRate(t *testing.T) {
	zero := ExerciseScore{}
	if got := zero.SuccessRate(); got != 0 {
		t.Errorf("SuccessRate with no attempts = %v, want 0", got)
	}

	s := ExerciseScore{CorrectCount: 3, IncorrectCount: 1}
	if got := s.SuccessRate(); got != 75 {
		t.Errorf("SuccessRate = %v, want 75", got)
	}
}

func TestIsDue(t *testing.T) {
	unscheduled := ExerciseScore{}
	if !unscheduled.IsDue(testNow) {
		t.Error("score with nil NextReview should be due")
	}

	past := testNow.Add(-time.Hour)
	future := testNow.Add(time.Hour)

	due := ExerciseScore{NextReview: &past}
	if !due.IsDue(testNow) {
		t.Error("past NextReview should be due")
	}

	notDue := ExerciseScore{NextReview: &future}
	if notDue.IsDue(testNow) {
		t.Error("future NextReview should not be due")
	}
}

func TestMastery(t *testing.T) {
	tests := []struct {
		name  string
		score ExerciseScore
		want  MasteryLevel
	}{
		{"no attempts", ExerciseScore{}, MasteryNew},
		{"chain 5", ExerciseScore{CorrectCount: 5, CurrentChain: 5}, MasteryMastered},
		{"chain 7", ExerciseScore{CorrectCount: 9, CurrentChain: 7}, MasteryMastered},
		{"chain 3", ExerciseScore{CorrectCount: 3, CurrentChain: 3}, MasteryGood},
		{"chain 1", ExerciseScore{CorrectCount: 1, CurrentChain: 1}, MasteryLearning},
		{"attempts but chain 0", ExerciseScore{CorrectCount: 2, IncorrectCount: 3}, MasteryDifficult},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.score.Mastery(); got != tt.want {
				t.Errorf("Mastery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMasteryProgress_Clamped(t *testing.T) {
	tests := []struct {
		chain int
		want  float64
	}{
		{0, 0},
		{2, 0.4},
		{5, 1},
		{9, 1},
	}
	for _, tt := range tests {
		s := ExerciseScore{CurrentChain: tt.chain}
		if got := s.MasteryProgress(); got != tt.want {
			t.Errorf("chain %d: MasteryProgress = %v, want %v", tt.chain, got, tt.want)
		}
	}
}
