package csvcodec

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvtable/table"
)

// Encode writes t to w in format f.
//
// Errors:
//   - ErrInvalidFormat if f fails Validate.
//   - any write error from w.
func Encode(w io.Writer, t *table.Table, f Format) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	cw := csv.NewWriter(w)
	cw.Comma = f.Delimiter
	cw.UseCRLF = f.CRLF

	titles := t.ColumnTitles()
	width := len(titles)
	if width == 0 {
		width = len(t.EffectiveColumns())
	} else if f.Header {
		if err := cw.Write(titles); err != nil {
			return fmt.Errorf("Encode: header: %w", err)
		}
	}

	record := make([]string, width)
	for i, r := range t.All() {
		for j := range record {
			record[j], _ = r.OptionalValue(j)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("Encode: row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// EncodeString renders t as a string in format f.
func EncodeString(t *table.Table, f Format) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, t, f); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// EncodeFile writes t to path, creating or truncating it.
func EncodeFile(path string, t *table.Table, f Format) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("EncodeFile: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("EncodeFile: %w", cerr)
		}
	}()

	return Encode(file, t, f)
}
