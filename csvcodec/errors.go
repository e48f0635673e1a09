package csvcodec

import "errors"

var (
	// ErrMalformed indicates delimited input that cannot be parsed.
	ErrMalformed = errors.New("csvcodec: malformed input")

	// ErrInvalidFormat indicates a Format that encoding/csv cannot honour
	// (e.g. a quote or line break as delimiter).
	ErrInvalidFormat = errors.New("csvcodec: invalid format")
)
