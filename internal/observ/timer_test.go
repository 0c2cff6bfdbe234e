package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerRecordsAttempts(t *testing.T) {
	tm := NewTimer()
	end := tm.Begin("attempt 1")
	end("converged")

	attempts := tm.Attempts()
	if len(attempts) != 1 {
		t.Fatalf("got %d attempts, want 1", len(attempts))
	}
	if attempts[0].Label != "attempt 1" || attempts[0].Outcome != "converged" {
		t.Errorf("attempt = %+v", attempts[0])
	}
	if attempts[0].Dur < 0 {
		t.Error("duration must not be negative")
	}
}

func TestTimerSealOnce(t *testing.T) {
	tm := NewTimer()
	end := tm.Begin("attempt 1")
	end("failed")
	first := tm.Attempts()[0].Dur
	time.Sleep(time.Millisecond)
	end("converged")

	a := tm.Attempts()[0]
	if a.Outcome != "failed" {
		t.Errorf("outcome = %q, want the first seal to win", a.Outcome)
	}
	if a.Dur != first {
		t.Error("second seal must not change the duration")
	}
}

func TestTimerSummary(t *testing.T) {
	tm := NewTimer()
	tm.Begin("attempt 1")("")
	tm.Begin("attempt 2")("converged")

	s := tm.Summary()
	if !strings.Contains(s, "attempt 2") || !strings.Contains(s, "// converged") {
		t.Errorf("summary missing attempt lines:\n%s", s)
	}
	if !strings.Contains(s, "total") {
		t.Errorf("summary missing total:\n%s", s)
	}
}

func TestNilTimerIsInert(t *testing.T) {
	var tm *Timer
	tm.Begin("attempt 1")("converged")
	if tm.Attempts() != nil || tm.Total() != 0 || tm.Summary() != "" {
		t.Error("nil timer must record nothing")
	}
}
