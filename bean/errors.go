package bean

import "errors"

var (
	// ErrDecode indicates a row whose values do not fit the target struct.
	ErrDecode = errors.New("bean: decode failed")

	// ErrNotStruct indicates a value that is neither a struct nor a
	// non-nil pointer to one.
	ErrNotStruct = errors.New("bean: not a struct")
)
