package domain

import (
	"fmt"
	"strconv"
)

// Priority is the urgency of a task. The zero value is not a valid priority.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

// Priorities lists every valid priority in ascending order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority converts a persisted ordinal (1, 2 or 3) back into a Priority.
func ParsePriority(code int) (Priority, error) {
	p := Priority(code)
	if !p.IsValid() {
		return 0, fmt.Errorf("priority code %d out of range 1-3", code)
	}
	return p, nil
}

// PriorityFromChoice maps an interactive menu selection to a Priority.
// Anything other than 1, 2 or 3 falls back to Low.
func PriorityFromChoice(choice int) Priority {
	if p, err := ParsePriority(choice); err == nil {
		return p
	}
	return PriorityLow
}

// IsValid reports whether p is one of the declared priorities.
func (p Priority) IsValid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// Code returns the ordinal used by the task file format.
func (p Priority) Code() int {
	return int(p)
}

// String returns the display name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "Priority(" + strconv.Itoa(int(p)) + ")"
	}
}
