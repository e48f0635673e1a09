package xlsxcodec

import "errors"

var (
	// ErrSheetNotFound indicates the requested worksheet does not exist.
	ErrSheetNotFound = errors.New("xlsxcodec: sheet not found")

	// ErrWorkbook indicates a workbook that cannot be opened or written.
	ErrWorkbook = errors.New("xlsxcodec: workbook error")
)
