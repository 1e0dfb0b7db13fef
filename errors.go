package gridview

import "errors"

// ErrInvalidState is returned when an operation is called on a nil or
// closed State.
var ErrInvalidState = errors.New("gridview: invalid state")
