package reservation

import (
	"fmt"
)

// Status represents the lifecycle state of a reservation as staff move
// the vessel from dock to open water and back
type Status uint8

const (
	// StatusAtDock is the initial state set at reservation creation
	StatusAtDock Status = iota
	// StatusInWater marks the vessel launched and awaiting departure
	StatusInWater
	// StatusNavigating marks the vessel out on the water
	StatusNavigating
	// StatusReturned marks the vessel back at the marina awaiting check-in
	StatusReturned
	// StatusCheckedIn is the terminal state after staff complete check-in
	StatusCheckedIn
)

// String returns the string representation of Status
func (s Status) String() string {
	switch s {
	case StatusAtDock:
		return "AT_DOCK"
	case StatusInWater:
		return "IN_WATER"
	case StatusNavigating:
		return "NAVIGATING"
	case StatusReturned:
		return "RETURNED"
	case StatusCheckedIn:
		return "CHECKED_IN"
	default:
		return "unknown"
	}
}

// ParseStatus converts a string representation to a Status
func ParseStatus(s string) (Status, error) {
	switch s {
	case "AT_DOCK":
		return StatusAtDock, nil
	case "IN_WATER":
		return StatusInWater, nil
	case "NAVIGATING":
		return StatusNavigating, nil
	case "RETURNED":
		return StatusReturned, nil
	case "CHECKED_IN":
		return StatusCheckedIn, nil
	default:
		return StatusAtDock, fmt.Errorf("unknown status %q", s)
	}
}

// Position returns the status position within the total lifecycle order
func (s Status) Position() int {
	return int(s)
}

// Before reports whether s precedes other in the lifecycle order
func (s Status) Before(other Status) bool {
	return s < other
}

// IsTerminal returns true if no further transition is permitted
func (s Status) IsTerminal() bool {
	return s == StatusCheckedIn
}

// CanTransitionTo returns true if the lifecycle permits moving to the
// target state. Transitions are strictly forward with no skipping.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusAtDock:
		return target == StatusInWater
	case StatusInWater:
		return target == StatusNavigating
	case StatusNavigating:
		return target == StatusReturned
	case StatusReturned:
		return target == StatusCheckedIn
	case StatusCheckedIn:
		return false // Terminal state
	default:
		return false
	}
}

// ValidTransitions returns all valid transition states from the current state
func (s Status) ValidTransitions() []Status {
	switch s {
	case StatusAtDock:
		return []Status{StatusInWater}
	case StatusInWater:
		return []Status{StatusNavigating}
	case StatusNavigating:
		return []Status{StatusReturned}
	case StatusReturned:
		return []Status{StatusCheckedIn}
	case StatusCheckedIn:
		return []Status{} // Terminal state
	default:
		return []Status{}
	}
}
