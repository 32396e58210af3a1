package summary

import (
	"strings"
	"testing"
	"time"
)

func TestResultsAccuracy(t *testing.T) {
	r := Results{Correct: 3, Incorrect: 1}
	if r.Total() != 4 {
		t.Errorf("total = %d, want 4", r.Total())
	}
	if r.Accuracy() != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", r.Accuracy())
	}

	empty := Results{}
	if empty.Accuracy() != 0 {
		t.Errorf("empty accuracy = %v, want 0", empty.Accuracy())
	}
}

func TestViewShowsCounts(t *testing.T) {
	s := New(Results{Correct: 7, Incorrect: 3, Duration: 95 * time.Second, Language: "de"})
	out := s.View(80, 24)

	for _, want := range []string{"Session complete!", "Reviews: 10", "Correct: 7", "70%", "1:35"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
