// SPDX-License-Identifier: MIT

package experiment

import "errors"

var (
	// ErrInvalidTrials indicates a non-positive number of samples.
	ErrInvalidTrials = errors.New("experiment: trials must be positive")

	// ErrEmptySweep indicates a sweep or curve with no probabilities.
	ErrEmptySweep = errors.New("experiment: no probabilities to sweep")
)
