// Package config loads the YAML configuration of the lvtable command.
//
// Example file:
//
//	format:
//	  delimiter: ";"
//	  header: true
//	  line_ending: crlf
//	  lazy_quotes: false
//	logging:
//	  level: info
//	  format: text
//
// Keys left out keep their Default value; unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/lvtable/csvcodec"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration that cannot be parsed or
// fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

const (
	LineEndingCRLF = "crlf"
	LineEndingLF   = "lf"
)

// Config is the root of the configuration file.
type Config struct {
	Format  Format  `yaml:"format"`
	Logging Logging `yaml:"logging"`
}

// Format selects the delimited text dialect.
type Format struct {
	Delimiter  string `yaml:"delimiter" validate:"required,len=1"`
	Header     bool   `yaml:"header"`
	LineEnding string `yaml:"line_ending" validate:"oneof=crlf lf"`
	LazyQuotes bool   `yaml:"lazy_quotes"`
}

// Logging selects the log level and handler format.
type Logging struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

var validate = validator.New()

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Format: Format{
			Delimiter:  string(csvcodec.DefaultDelimiter),
			Header:     true,
			LineEnding: LineEndingCRLF,
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads and validates the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("Load: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
// Empty input yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints and that the delimiter is usable.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.CSVFormat().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// CSVFormat converts the format section into a csvcodec.Format.
func (c Config) CSVFormat() csvcodec.Format {
	var delim rune
	for _, r := range c.Format.Delimiter {
		delim = r
		break
	}

	return csvcodec.Format{
		Delimiter:  delim,
		Header:     c.Format.Header,
		CRLF:       c.Format.LineEnding == LineEndingCRLF,
		LazyQuotes: c.Format.LazyQuotes,
	}
}
