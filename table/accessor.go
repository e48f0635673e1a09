// SPDX-License-Identifier: MIT

package table

import (
	"strconv"
	"strings"
)

// Accessor parses a present cell text on read. Blank text yields the zero
// value; text that does not parse yields false.
type Accessor struct {
	text string
}

// Int parses the text as a base-10 int.
func (a Accessor) Int() (int, bool) {
	s, blank := a.trimmed()
	if blank {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	return n, true
}

// Float parses the text as a float64.
func (a Accessor) Float() (float64, bool) {
	s, blank := a.trimmed()
	if blank {
		return 0, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

// Bool parses the text with strconv.ParseBool rules.
func (a Accessor) Bool() (bool, bool) {
	s, blank := a.trimmed()
	if blank {
		return false, true
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, false
	}

	return b, true
}

// String returns the raw text.
func (a Accessor) String() string { return a.text }

func (a Accessor) trimmed() (string, bool) {
	s := strings.TrimSpace(a.text)
	return s, s == ""
}
