package tour

import (
	"errors"
	"fmt"
)

// ErrNoPositions is returned by Read when the input holds no section with
// both coordinates.
var ErrNoPositions = errors.New("tour: no positions found")

// MalformedLineError is returned for a line that is neither a section title
// nor a name/value pair.
type MalformedLineError struct {
	Line int
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("tour: line %d is malformed: %q", e.Line, e.Text)
}

// InvalidValueError is returned when a coordinate is not an integer.
type InvalidValueError struct {
	Section string
	Key     string
	Value   string
	Err     error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("tour: section [%s]: invalid %s %q: %v", e.Section, e.Key, e.Value, e.Err)
}

func (e *InvalidValueError) Unwrap() error {
	return e.Err
}
