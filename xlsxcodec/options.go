package xlsxcodec

// DefaultSheet is the worksheet name used when none is given.
const DefaultSheet = "Sheet1"

// Option configures Encode and Decode.
type Option func(*options)

type options struct {
	sheet    string // "" on decode selects the first sheet
	noHeader bool
}

// WithSheet selects the worksheet to write or read.
// Panics on an empty name.
func WithSheet(name string) Option {
	if name == "" {
		panic("xlsxcodec: WithSheet: empty sheet name")
	}

	return func(o *options) { o.sheet = name }
}

// WithoutHeader treats row 1 as data instead of column titles.
func WithoutHeader() Option {
	return func(o *options) { o.noHeader = true }
}

func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
