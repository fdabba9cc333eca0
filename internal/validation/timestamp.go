package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimestamp converts a textual offset to whole seconds. Two
// colon-separated fields are read as MM:SS, three as HH:MM:SS, and a
// bare number as raw seconds. Parsing is purely syntactic; components
// such as a seconds field of 75 are not range-checked.
func ParseTimestamp(s string) (int, error) {
	parts := strings.Split(s, ":")

	switch len(parts) {
	case 1:
		return parseComponent(parts[0])
	case 2:
		minutes, err := parseComponent(parts[0])
		if err != nil {
			return 0, err
		}
		seconds, err := parseComponent(parts[1])
		if err != nil {
			return 0, err
		}
		return minutes*60 + seconds, nil
	case 3:
		hours, err := parseComponent(parts[0])
		if err != nil {
			return 0, err
		}
		minutes, err := parseComponent(parts[1])
		if err != nil {
			return 0, err
		}
		seconds, err := parseComponent(parts[2])
		if err != nil {
			return 0, err
		}
		return hours*3600 + minutes*60 + seconds, nil
	default:
		return 0, fmt.Errorf("expected MM:SS, HH:MM:SS or seconds, got %d fields", len(parts))
	}
}

func parseComponent(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%q is negative", s)
	}
	return n, nil
}
