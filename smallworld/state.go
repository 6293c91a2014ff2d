// SPDX-License-Identifier: MIT

package smallworld

// State is the construction stage of a Graph.
type State int

const (
	// Uninitialized is the zero Graph; only New leaves this state.
	Uninitialized State = iota
	// Lattice is the freshly built k-regular ring lattice.
	Lattice
	// Rewired is any graph on which Rewire or Replace has run.
	Rewired
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Lattice:
		return "lattice"
	case Rewired:
		return "rewired"
	default:
		return "unknown"
	}
}
