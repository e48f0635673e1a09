package xlsxcodec

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvtable/table"
	"github.com/xuri/excelize/v2"
)

// Decode reads one worksheet of the workbook in r into a new table built
// with tableOpts. Without WithSheet the first sheet is read. Header cells
// become column titles; a repeated header cell is declared once.
//
// Errors:
//   - ErrWorkbook if r is not a readable workbook.
//   - ErrSheetNotFound if the requested sheet does not exist.
func Decode(r io.Reader, opts []Option, tableOpts ...table.Option) (t *table.Table, err error) {
	o := gatherOptions(opts...)
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("Decode: %w: %w", ErrWorkbook, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("Decode: %w: %w", ErrWorkbook, cerr)
		}
	}()

	sheet := o.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if idx, ierr := f.GetSheetIndex(sheet); ierr != nil || idx < 0 {
		return nil, fmt.Errorf("Decode: %q: %w", sheet, ErrSheetNotFound)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("Decode: %q: %w: %w", sheet, ErrWorkbook, err)
	}

	t = table.New(tableOpts...)
	if o.noHeader {
		for _, row := range rows {
			t.AddRow(row...)
		}
		return t, nil
	}
	if len(rows) == 0 {
		return t, nil
	}
	header := rows[0]
	t.DeclareColumnTitles(header...)
	for _, row := range rows[1:] {
		rec := make(table.Record, 0, len(row))
		for i, v := range row {
			if i >= len(header) {
				break
			}
			rec = append(rec, table.Field{Name: header[i], Value: v})
		}
		t.AddRecord(rec)
	}

	return t, nil
}

// DecodeFile decodes the workbook at path.
func DecodeFile(path string, opts []Option, tableOpts ...table.Option) (*table.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("DecodeFile: %w", err)
	}
	defer file.Close()

	return Decode(file, opts, tableOpts...)
}
