package csvcodec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtable/table"
)

// Decode reads delimited text from r into a new table built with opts.
//
// Errors:
//   - ErrInvalidFormat if f fails Validate.
//   - ErrMalformed if the text does not parse or a record has more fields
//     than the header.
func Decode(r io.Reader, f Format, opts ...table.Option) (*table.Table, error) {
	t := table.New(opts...)
	if err := DecodeInto(t, r, f); err != nil {
		return nil, err
	}

	return t, nil
}

// DecodeString is Decode over a string.
func DecodeString(s string, f Format, opts ...table.Option) (*table.Table, error) {
	return Decode(strings.NewReader(s), f, opts...)
}

// DecodeFile decodes the file at path.
func DecodeFile(path string, f Format, opts ...table.Option) (*table.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("DecodeFile: %w", err)
	}
	defer file.Close()

	return Decode(file, f, opts...)
}

// DecodeFileIfExists decodes path when it names a regular file. It returns
// false without error when path does not exist or is a directory.
func DecodeFileIfExists(path string, f Format, opts ...table.Option) (*table.Table, bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("DecodeFileIfExists: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, false, nil
	}
	t, err := DecodeFile(path, f, opts...)
	if err != nil {
		return nil, false, err
	}

	return t, true, nil
}

// DecodeInto appends the rows read from r to t. With a header, header names
// not yet declared on t become column titles in header order, even when no
// record follows.
func DecodeInto(t *table.Table, r io.Reader, f Format) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("DecodeInto: %w", err)
	}
	cr := newReader(r, f)

	if !f.Header {
		for {
			fields, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return malformed(err)
			}
			t.AddRow(fields...)
		}
	}

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return malformed(err)
	}
	t.DeclareColumnTitles(header...)
	for rec, err := range records(cr, header) {
		if err != nil {
			return err
		}
		t.AddRecord(rec)
	}

	return nil
}

// Records returns a pull-based sequence of records read from r. With a
// header, fields are named by it; without one, by their decimal position.
// The sequence stops after the first error, which it yields.
func Records(r io.Reader, f Format) iter.Seq2[table.Record, error] {
	return func(yield func(table.Record, error) bool) {
		if err := f.Validate(); err != nil {
			yield(nil, fmt.Errorf("Records: %w", err))
			return
		}
		cr := newReader(r, f)
		var header []string
		if f.Header {
			h, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, malformed(err))
				return
			}
			header = h
		}
		for rec, err := range records(cr, header) {
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

// records names each remaining record by header, or by position when
// header is nil.
func records(cr *csv.Reader, header []string) iter.Seq2[table.Record, error] {
	return func(yield func(table.Record, error) bool) {
		for {
			fields, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, malformed(err))
				return
			}
			if header != nil && len(fields) > len(header) {
				line, _ := cr.FieldPos(0)
				yield(nil, fmt.Errorf("%w: line %d: %d fields, header has %d",
					ErrMalformed, line, len(fields), len(header)))
				return
			}
			rec := make(table.Record, len(fields))
			for i, v := range fields {
				rec[i] = table.Field{Name: fieldName(header, i), Value: v}
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

func newReader(r io.Reader, f Format) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = f.Delimiter
	cr.LazyQuotes = f.LazyQuotes
	cr.FieldsPerRecord = -1

	return cr
}

func fieldName(header []string, i int) string {
	if header == nil {
		return strconv.Itoa(i)
	}

	return header[i]
}

func malformed(err error) error {
	return fmt.Errorf("%w: %w", ErrMalformed, err)
}
