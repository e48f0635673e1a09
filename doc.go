// Package lvtable is an in-memory, sparsely growable table of optional text
// cells, addressable by position or by row and column title, with derived
// views for grouping, filtering, sorting, deduplication and joins.
//
// Packages:
//
//	table/      - Table, Row/Column/Cell views, derived views and joins
//	keyindex/   - ordered name→position index with effective-size tracking
//	matrix/     - Growable: 2-D optional-text store with doubling growth
//	csvcodec/   - delimited text encode/decode (default ';', CRLF, header)
//	xlsxcodec/  - .xlsx encode/decode via excelize
//	bean/       - struct ⇄ row marshalling via mapstructure
//	config/     - YAML configuration for the command
//	cmd/lvtable - command-line front end
//
// Quick example:
//
//	t := table.New().
//		AddColumnTitles("name", "city").
//		AddRow("ann", "oslo").
//		AddRow("bob", "rome")
//
//	byCity, _ := t.As().IndexOfColumn("city")
//	r, _ := byCity.RowByValue("rome")
//	name, _ := r.ValueOf("name") // "bob"
//
// Writes never fail for being out of range: they grow the table. Reads
// outside the current extent return table.ErrOutOfBounds, unknown titles
// table.ErrNotFound.
//
// A Table is not safe for concurrent use.
//
//	go get github.com/katalvlaran/lvtable
package lvtable
