package mcts

import (
	"time"
)

type _Timer struct {
	start    time.Time
	duration time.Duration
}

func _NewTimer() *_Timer {
	return &_Timer{time.Now(), -1}
}

// Check if this timer has ended
func (t *_Timer) IsEnd() bool {
	return t.duration >= 0 && time.Since(t.start) >= t.duration
}

// Set the 'start' as now
func (t *_Timer) Reset() {
	t.start = time.Now()
}

func (t *_Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Negative duration disables the timer
func (t *_Timer) Movetime(movetime time.Duration) {
	if movetime < 0 {
		t.duration = -1
	} else {
		t.duration = movetime
	}
}
