package mcts

import (
	"encoding/json"
	"strings"
	"time"
)

type Limits struct {
	Movetime time.Duration
	Cycles   uint32
	Margin   float64
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}

const (
	DefaultMovetimeLimit time.Duration = -1
	DefaultCyclesLimit   uint32        = 0
)

func DefaultLimits() *Limits {
	return &Limits{
		Movetime: DefaultMovetimeLimit,
		Cycles:   DefaultCyclesLimit,
		Margin:   DefaultMargin,
	}
}

// Set the maximum time for engine to think, the search will actually use
// Movetime * Margin of it
func (l *Limits) SetMovetime(movetime time.Duration) *Limits {
	l.Movetime = movetime
	return l
}

// Same as SetMovetime, but takes the budget in seconds
func (l *Limits) SetSeconds(seconds float64) *Limits {
	return l.SetMovetime(time.Duration(seconds * float64(time.Second)))
}

// Set the number of full iterations (selection to backpropagation)
func (l *Limits) SetCycles(cycles uint32) *Limits {
	l.Cycles = cycles
	return l
}

// Fraction of the movetime the search may use, clamped to (0, 1]
func (l *Limits) SetMargin(margin float64) *Limits {
	if margin <= 0 || margin > 1 {
		margin = 1
	}
	l.Margin = margin
	return l
}

// Time the search loop may run for, negative if no movetime is set
func (l *Limits) Budget() time.Duration {
	if l.Movetime < 0 {
		return DefaultMovetimeLimit
	}
	margin := l.Margin
	if margin <= 0 {
		margin = DefaultMargin
	}
	return time.Duration(float64(l.Movetime) * margin)
}

func (l *Limits) Validate() error {
	if l.Movetime < 0 && l.Cycles == DefaultCyclesLimit {
		return ErrNoLimits
	}
	return nil
}
