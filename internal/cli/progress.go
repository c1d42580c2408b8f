package cli

import (
	"fmt"
	"time"
)

// maxETA caps estimates produced from very few samples.
const maxETA = 24 * time.Hour

// ProgressState counts completed requests of a batch and estimates the time
// remaining from the average completion rate so far. It is owned by a single
// goroutine.
type ProgressState struct {
	total     int
	done      int
	failed    int
	startTime time.Time
	now       func() time.Time
}

// NewProgressState creates a tracker for a batch of total requests.
func NewProgressState(total int) *ProgressState {
	return &ProgressState{total: total, startTime: time.Now(), now: time.Now}
}

// Record marks one more request as completed. Completions beyond the batch
// size are ignored.
func (ps *ProgressState) Record(failed bool) {
	if ps.done >= ps.total {
		return
	}
	ps.done++
	if failed {
		ps.failed++
	}
}

// Fraction returns the completed share of the batch, between 0 and 1.
func (ps *ProgressState) Fraction() float64 {
	if ps.total <= 0 {
		return 0
	}
	return float64(ps.done) / float64(ps.total)
}

// Failed returns the number of failed requests recorded so far.
func (ps *ProgressState) Failed() int { return ps.failed }

// ETA extrapolates the remaining time. It returns 0 until the first
// completion and after the last one.
func (ps *ProgressState) ETA() time.Duration {
	if ps.done == 0 || ps.done >= ps.total {
		return 0
	}
	elapsed := ps.now().Sub(ps.startTime)
	eta := time.Duration(float64(elapsed) * float64(ps.total-ps.done) / float64(ps.done))
	if eta > maxETA {
		return maxETA
	}
	return eta
}

// Line renders the progress bar, counters and ETA on one line.
func (ps *ProgressState) Line(width int) string {
	eta := FormatETA(ps.ETA())
	if ps.done >= ps.total {
		eta = "done"
	}
	return fmt.Sprintf("Progress: %6.2f%% [%s] %d/%d (%d failed) ETA: %s",
		ps.Fraction()*100, progressBar(ps.Fraction(), width), ps.done, ps.total, ps.failed, eta)
}

// FormatETA formats a remaining duration with at most two units.
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		m := int(eta.Minutes())
		if s := int(eta.Seconds()) % 60; s > 0 {
			return fmt.Sprintf("%dm%ds", m, s)
		}
		return fmt.Sprintf("%dm", m)
	default:
		h := int(eta.Hours())
		if m := int(eta.Minutes()) % 60; m > 0 {
			return fmt.Sprintf("%dh%dm", h, m)
		}
		return fmt.Sprintf("%dh", h)
	}
}
