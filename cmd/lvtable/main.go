// Command lvtable inspects and transforms delimited text and .xlsx tables.
//
// Usage:
//
//	lvtable cat people.csv
//	lvtable unique people.csv --output people.xlsx
//	lvtable filter people.csv --column city --equals oslo
//	lvtable sort people.csv --by age --desc
//	lvtable join people.csv cities.csv --left-key city --right-key name
//	lvtable group people.csv --key city --value name
//	lvtable convert people.xlsx people.csv
//
// Inputs and outputs ending in .xlsx use the spreadsheet codec; everything
// else is delimited text in the configured dialect. "-" reads stdin.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvtable:", err)
		os.Exit(1)
	}
}
