package csvcodec

import (
	"fmt"
	"unicode/utf8"
)

// DefaultDelimiter separates fields unless a Format says otherwise.
const DefaultDelimiter = ';'

// Format describes the delimited dialect.
type Format struct {
	Delimiter  rune // field separator
	Header     bool // first line holds column titles
	CRLF       bool // terminate lines with \r\n instead of \n
	LazyQuotes bool // tolerate bare quotes on read
}

// DefaultFormat returns the semicolon/CRLF/header dialect.
func DefaultFormat() Format {
	return Format{Delimiter: DefaultDelimiter, Header: true, CRLF: true}
}

// Validate reports ErrInvalidFormat for delimiters encoding/csv rejects.
func (f Format) Validate() error {
	switch {
	case f.Delimiter == 0, f.Delimiter == '"', f.Delimiter == '\r', f.Delimiter == '\n',
		f.Delimiter == utf8.RuneError, !utf8.ValidRune(f.Delimiter):
		return fmt.Errorf("delimiter %q: %w", f.Delimiter, ErrInvalidFormat)
	}

	return nil
}
