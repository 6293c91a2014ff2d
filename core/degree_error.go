// SPDX-License-Identifier: MIT
//
// File: degree_error.go
// Role: DegreeError and the regular-graph precondition sentinels.
// Policy:
//   - errors.Is(err, ErrDegree) holds for every *DegreeError.
//   - errors.Is(err, <condition>) tells which precondition failed.

package core

import (
	"errors"
	"fmt"
)

// Regular-graph preconditions. A *DegreeError carries the violated one and,
// where an equivalent restatement exists, that one as well.
var (
	// ErrNegativeDegree: k < 0.
	ErrNegativeDegree = errors.New("core: degree is negative")

	// ErrTooFewVertices: n < k+1.
	ErrTooFewVertices = errors.New("core: violated n >= k+1")

	// ErrOddDegreeSum: n·k is odd (handshake lemma).
	ErrOddDegreeSum = errors.New("core: violated n*k being even")

	// ErrDegreeTooLarge: k >= n.
	ErrDegreeTooLarge = errors.New("core: degree >= number of vertices")

	// ErrOddDegreeOddOrder: odd k requested on an odd number of vertices.
	ErrOddDegreeOddOrder = errors.New("core: odd degree with odd number of vertices")
)

// DegreeError reports which precondition of a k-regular graph on N vertices failed.
type DegreeError struct {
	N         int   // number of vertices
	K         int   // requested degree
	Condition error // one of the precondition sentinels above
	Implied   error // equivalent restatement of Condition, or nil
}

// Error implements error.
func (e *DegreeError) Error() string {
	return fmt.Sprintf("core: cannot build %d-regular graph on %d vertices: %v", e.K, e.N, e.Condition)
}

// Unwrap exposes both the kind (ErrDegree) and the violated condition.
func (e *DegreeError) Unwrap() []error {
	if e.Implied == nil {
		return []error{ErrDegree, e.Condition}
	}
	return []error{ErrDegree, e.Condition, e.Implied}
}

// degreeError builds a *DegreeError. n < k+1 is the same as k >= n, and n·k
// is odd exactly when both are odd, so those conditions also carry their twin.
func degreeError(n, k int, cond error) error {
	e := &DegreeError{N: n, K: k, Condition: cond}
	switch cond {
	case ErrTooFewVertices:
		e.Implied = ErrDegreeTooLarge
	case ErrOddDegreeSum:
		e.Implied = ErrOddDegreeOddOrder
	}
	return e
}
