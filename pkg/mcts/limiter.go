package mcts

import (
	"context"
	"time"
)

type StopReason int

const (
	StopNone      StopReason = 0
	StopInterrupt StopReason = 1 // Stopped by context cancellation
	StopMovetime  StopReason = 2 // Time limit reached
	StopCycles    StopReason = 4 // Cycle limit reached
	StopDecisive  StopReason = 8 // Tactical shortcut answered, no search was run
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopInterrupt, "Interrupt"},
		{StopMovetime, "Movetime"},
		{StopCycles, "Cycles"},
		{StopDecisive, "Decisive"},
	}

	var result string
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			if result != "" {
				result += "|"
			}
			result += r.name
		}
	}

	return result
}

type LimiterLike interface {
	SetContext(ctx context.Context)
	// Set the limits
	SetLimits(*Limits)
	// Get the limits
	Limits() *Limits
	// Get elapsed time (from the last 'Reset' call)
	Elapsed() time.Duration
	// Whether the context was cancelled
	Stop() bool
	// Reset the limiter's timer and stop reason, called on search setup
	Reset()
	// Whether the search may run another iteration, called after each one
	Ok(cycles uint32) bool
	// Get the reason why the search was stopped, valid after search ends
	StopReason() StopReason
	// Evaluate stop reason based on current state, and set it internally
	EvaluateStopReason(cycles uint32)
	// Override the stop reason, used when the search is skipped entirely
	SetStopReason(StopReason)
}

type Limiter struct {
	limits *Limits
	Timer  *_Timer
	reason StopReason
	ctx    context.Context
}

func NewLimiter() *Limiter {
	return &Limiter{
		limits: DefaultLimits(),
		Timer:  _NewTimer(),
		ctx:    context.Background(),
	}
}

func (l *Limiter) Reset() {
	l.Timer.Movetime(l.limits.Budget())
	l.Timer.Reset()
	l.reason = StopNone
}

func (l *Limiter) EvaluateStopReason(cycles uint32) {
	l.reason = StopReason(l.LimitMask(cycles))
}

func (l *Limiter) StopReason() StopReason {
	return l.reason
}

func (l *Limiter) SetStopReason(reason StopReason) {
	l.reason = reason
}

func (l *Limiter) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	l.ctx = ctx
}

func (l *Limiter) Stop() bool {
	select {
	case <-l.ctx.Done():
		return true
	default:
		return false
	}
}

func (l *Limiter) SetLimits(limits *Limits) {
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

func (l *Limiter) Elapsed() time.Duration {
	return l.Timer.Elapsed()
}

func toMask(val bool, flag StopReason) int {
	if val {
		return int(flag)
	}
	return 0
}

func (l *Limiter) LimitMask(cycles uint32) int {
	limitMask := 0

	limitMask |= toMask(l.Stop(), StopInterrupt)
	limitMask |= toMask(l.Timer.IsEnd(), StopMovetime)
	limitMask |= toMask(l.limits.Cycles != DefaultCyclesLimit && l.limits.Cycles <= cycles, StopCycles)

	return limitMask
}

func (l *Limiter) Ok(cycles uint32) bool {
	return l.LimitMask(cycles) == 0
}
