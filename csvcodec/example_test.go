package csvcodec_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvtable/csvcodec"
)

// ExampleDecodeString loads semicolon-delimited text and writes it back
// comma-delimited.
func ExampleDecodeString() {
	tb, err := csvcodec.DecodeString("name;city\nann;oslo\n", csvcodec.DefaultFormat())
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = csvcodec.Encode(os.Stdout, tb, csvcodec.Format{Delimiter: ',', Header: true})

	// Output:
	// name,city
	// ann,oslo
}
