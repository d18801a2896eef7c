package duallist

import (
	"fmt"
	"strings"
)

type Side int

const (
	Available Side = iota
	Selected
)

func (s Side) Other() Side {
	if s == Available {
		return Selected
	}
	return Available
}

func (s Side) String() string {
	switch s {
	case Available:
		return "available"
	case Selected:
		return "selected"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

func (s Side) Valid() bool {
	return s == Available || s == Selected
}

// ParseSide accepts the side names plus the left/right aliases used by the
// listbox panes.
func ParseSide(raw string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "available", "left", "l":
		return Available, nil
	case "selected", "right", "r":
		return Selected, nil
	default:
		return 0, fmt.Errorf("unknown side %q", raw)
	}
}
