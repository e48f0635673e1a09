package xlsxcodec

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvtable/table"
	"github.com/xuri/excelize/v2"
)

// Encode writes t as a single-sheet workbook to w.
func Encode(w io.Writer, t *table.Table, opts ...Option) (err error) {
	o := gatherOptions(opts...)
	sheet := o.sheet
	if sheet == "" {
		sheet = DefaultSheet
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrWorkbook, cerr)
		}
	}()
	if err = f.SetSheetName(DefaultSheet, sheet); err != nil {
		return fmt.Errorf("Encode: sheet %q: %w: %w", sheet, ErrWorkbook, err)
	}

	titles := t.ColumnTitles()
	width := len(titles)
	next := 1
	if width == 0 {
		width = len(t.EffectiveColumns())
	} else if !o.noHeader {
		if err = setRow(f, sheet, next, titles); err != nil {
			return err
		}
		next++
	}

	record := make([]string, width)
	for _, r := range t.All() {
		for j := range record {
			record[j], _ = r.OptionalValue(j)
		}
		if err = setRow(f, sheet, next, record); err != nil {
			return err
		}
		next++
	}
	if err = f.Write(w); err != nil {
		return fmt.Errorf("Encode: %w: %w", ErrWorkbook, err)
	}

	return nil
}

// EncodeFile writes t to path, creating or truncating it.
func EncodeFile(path string, t *table.Table, opts ...Option) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("EncodeFile: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("EncodeFile: %w", cerr)
		}
	}()

	return Encode(file, t, opts...)
}

// setRow writes values starting at column A of the 1-based row.
func setRow(f *excelize.File, sheet string, row int, values []string) error {
	if len(values) == 0 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("row %d: %w", row, err)
	}
	if err = f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("row %d: %w: %w", row, ErrWorkbook, err)
	}

	return nil
}
