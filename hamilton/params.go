// SPDX-License-Identifier: MIT
//
// File: params.go
// Role: order-derived search parameters.

package hamilton

import "fmt"

// Floors keep the heuristic meaningful on tiny graphs.
const (
	minReverseRate     = 100
	minBacktrackRate   = 1000
	minBacktrackAmount = 5
	resetFactor        = 10 // reset_rate = resetFactor·n, must exceed n
	budgetResets       = 5  // max_iterations = budgetResets·reset_rate
)

// Params are the rates that drive the search loop. Each is a
// non-decreasing function of the graph order.
type Params struct {
	ReverseRate     int // reverse the path every ReverseRate iterations
	BacktrackRate   int // backtrack every BacktrackRate iterations
	BacktrackAmount int // entries dropped per backtrack (path keeps ≥ 2)
	ResetRate       int // iterations per walk before a forced reset
	MaxIterations   int // the search times out once resets·ResetRate exceeds this
}

// DeriveParams returns the parameters for a graph of order n.
//
//	ReverseRate     = max(100,  n/1000)
//	BacktrackRate   = max(1000, n/100)
//	BacktrackAmount = max(5,    n/10000)
//	ResetRate       = 10n
//	MaxIterations   = 5·ResetRate
func DeriveParams(n int) Params {
	reset := resetFactor * n

	return Params{
		ReverseRate:     max(minReverseRate, n/1000),
		BacktrackRate:   max(minBacktrackRate, n/100),
		BacktrackAmount: max(minBacktrackAmount, n/10000),
		ResetRate:       reset,
		MaxIterations:   budgetResets * reset,
	}
}

// Validate rejects parameters the loop cannot run with.
func (p Params) Validate() error {
	switch {
	case p.ReverseRate <= 0:
		return fmt.Errorf("%w: ReverseRate=%d", ErrInvalidParams, p.ReverseRate)
	case p.BacktrackRate <= 0:
		return fmt.Errorf("%w: BacktrackRate=%d", ErrInvalidParams, p.BacktrackRate)
	case p.BacktrackAmount < 0:
		return fmt.Errorf("%w: BacktrackAmount=%d", ErrInvalidParams, p.BacktrackAmount)
	case p.ResetRate <= 0:
		return fmt.Errorf("%w: ResetRate=%d", ErrInvalidParams, p.ResetRate)
	case p.MaxIterations < 0:
		return fmt.Errorf("%w: MaxIterations=%d", ErrInvalidParams, p.MaxIterations)
	}

	return nil
}
