// Package observ collects wall-clock timings for the layout driver.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// Attempt records one layout pass: how long it ran and how it ended
// ("converged", "failed", or empty when another pass followed).
type Attempt struct {
	Label   string
	Start   time.Time
	Dur     time.Duration
	Outcome string
}

// Timer collects the attempts of a single typeset run. A nil Timer is
// valid and records nothing, so callers never have to guard it.
type Timer struct {
	attempts []Attempt
}

func NewTimer() *Timer { return &Timer{} }

// Begin opens an attempt and returns the closure that seals it with an
// outcome. Sealing twice keeps the first measurement.
func (t *Timer) Begin(label string) func(outcome string) {
	if t == nil {
		return func(string) {}
	}
	t.attempts = append(t.attempts, Attempt{Label: label, Start: time.Now()})
	idx := len(t.attempts) - 1
	done := false
	return func(outcome string) {
		if done {
			return
		}
		done = true
		a := &t.attempts[idx]
		a.Dur = time.Since(a.Start)
		a.Outcome = outcome
	}
}

// Attempts returns the recorded attempts in run order.
func (t *Timer) Attempts() []Attempt {
	if t == nil {
		return nil
	}
	return t.attempts
}

// Total sums the sealed attempt durations.
func (t *Timer) Total() time.Duration {
	if t == nil {
		return 0
	}
	var total time.Duration
	for i := range t.attempts {
		total += t.attempts[i].Dur
	}
	return total
}

// Summary renders the attempts as an aligned block for --timings.
func (t *Timer) Summary() string {
	if t == nil || len(t.attempts) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, a := range t.attempts {
		fmt.Fprintf(&sb, "  %-12s %7.2f ms", a.Label, millis(a.Dur))
		if a.Outcome != "" {
			sb.WriteString("  // " + a.Outcome)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-12s %7.2f ms\n", "total", millis(t.Total()))
	return sb.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
