package bean

import (
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/katalvlaran/lvtable/table"
)

// TagName is the struct tag read by this package.
const TagName = "table"

// Decode fills out, a pointer to a struct, from the present values of row.
//
// Errors:
//   - ErrDecode if a value cannot be converted to its field type or out is
//     not a usable target.
func Decode(row table.Row, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
		WeaklyTypedInput: true,
		Squash:           true,
		TagName:          TagName,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("Decode: %w: %w", ErrDecode, err)
	}
	if err = dec.Decode(row.AsMap()); err != nil {
		return fmt.Errorf("Decode: row %d: %w: %w", row.Index(), ErrDecode, err)
	}

	return nil
}

// DecodeAll decodes every row of t into a T, in row order.
// Stops at the first failing row.
func DecodeAll[T any](t *table.Table) ([]T, error) {
	out := make([]T, t.RowCount())
	for i, r := range t.All() {
		if err := Decode(r, &out[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}
