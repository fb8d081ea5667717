package timestamp

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is a playback offset as written in a setlist entry.
// Fields are kept exactly as given: 90 seconds stays 90 seconds and is not
// carried into minutes.
type Clock struct {
	Hours   int
	Minutes int
	Seconds int
}

// Normalize parses a time token of the form s, m:s or h:m:s.
// Fields may have any zero-padding. Returns ErrMalformedTime for any other
// field count or for fields that are not unsigned decimal integers.
func Normalize(token string) (Clock, error) {
	fields := strings.Split(token, ":")
	if len(fields) > 3 {
		return Clock{}, fmt.Errorf("%w: %q has %d fields (want 1 to 3)", ErrMalformedTime, token, len(fields))
	}

	values := make([]int, len(fields))
	for i, f := range fields {
		n, err := parseField(f)
		if err != nil {
			return Clock{}, fmt.Errorf("%w: %q: %v", ErrMalformedTime, token, err)
		}
		values[i] = n
	}

	var c Clock
	switch len(values) {
	case 1:
		c.Seconds = values[0]
	case 2:
		c.Minutes, c.Seconds = values[0], values[1]
	case 3:
		c.Hours, c.Minutes, c.Seconds = values[0], values[1], values[2]
	}
	return c, nil
}

// parseField accepts ASCII digits only, so signs and spaces are rejected.
func parseField(f string) (int, error) {
	if f == "" {
		return 0, fmt.Errorf("empty field")
	}
	for i := 0; i < len(f); i++ {
		if f[i] < '0' || f[i] > '9' {
			return 0, fmt.Errorf("field %q is not a number", f)
		}
	}
	return strconv.Atoi(f)
}

// String returns the offset as hh:mm:ss, each field padded to two digits.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hours, c.Minutes, c.Seconds)
}

// TotalSeconds returns h*3600 + m*60 + s.
func (c Clock) TotalSeconds() int {
	return c.Hours*3600 + c.Minutes*60 + c.Seconds
}
