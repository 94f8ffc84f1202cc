package store

import "errors"

// ErrLastEntry is returned when a removal would leave a repeatable
// collection empty. Every collection keeps at least one entry at all times;
// the UI is expected to disable the control, this guard is defense in depth.
var ErrLastEntry = errors.New("cannot remove the last remaining entry")
