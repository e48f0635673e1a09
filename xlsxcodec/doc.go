// Package xlsxcodec reads and writes tables as .xlsx workbooks through
// github.com/xuri/excelize/v2.
//
// Encode writes one worksheet: the declared column titles on row 1 (unless
// the table has none or WithoutHeader is given), followed by one spreadsheet
// row per table row. Decode reads one worksheet back with the same layout,
// declaring header cells as column titles and loading each following row
// with table.AddRecord semantics.
//
// Spreadsheets drop trailing empty cells, so a trailing absent or empty
// value decodes as absent. Cells to the right of the header are ignored.
package xlsxcodec
