// Package csvcodec reads and writes tables as delimited text.
//
// The default Format is semicolon-delimited, CRLF-terminated, with a header
// line holding the declared column titles:
//
//	c1;c2;c3\r\n
//	1.0;2.0;3.0\r\n
//
// Encoding writes one field per declared column title; absent cells become
// empty fields. A table without declared titles is written header-less over
// all of its effective columns.
//
// Decoding with a header declares the header names as column titles (in
// header order) and loads every following record with table.AddRecord
// semantics, so names unknown to a target table become new columns. Without
// a header each record becomes a positional row. Empty fields decode as
// present empty strings.
package csvcodec
