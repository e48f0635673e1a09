package main

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/lvtable/config"
	"github.com/katalvlaran/lvtable/csvcodec"
	"github.com/katalvlaran/lvtable/internal/logging"
	"github.com/katalvlaran/lvtable/table"
	"github.com/katalvlaran/lvtable/xlsxcodec"
	"github.com/spf13/cobra"
)

const (
	stdinPath  = "-"
	xlsxSuffix = ".xlsx"
	groupSep   = ","
)

var errUsage = errors.New("invalid flag value")

// app holds the global flags and what PersistentPreRunE derives from them.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	delimiter  string
	output     string

	format csvcodec.Format
	log    *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "lvtable",
		Short:         "Inspect and transform delimited text and .xlsx tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&a.logFormat, "log-format", "", "log format (text, json)")
	pf.StringVar(&a.delimiter, "delimiter", "", "field delimiter for delimited text")
	pf.StringVarP(&a.output, "output", "o", "", "output file; .xlsx selects the spreadsheet codec (default stdout)")

	root.AddCommand(
		a.catCmd(),
		a.uniqueCmd(),
		a.filterCmd(),
		a.sortCmd(),
		a.joinCmd(),
		a.groupCmd(),
		a.convertCmd(),
	)

	return root
}

// setup resolves configuration: defaults, then the config file, then flags.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}
	if a.delimiter != "" {
		if utf8.RuneCountInString(a.delimiter) != 1 {
			return fmt.Errorf("--delimiter %q: %w: want a single character", a.delimiter, errUsage)
		}
		cfg.Format.Delimiter = a.delimiter
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.format = cfg.CSVFormat()
	a.log = logging.WithCommand(logging.Setup(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr()), cmd.Name())

	return nil
}

// run wraps a command body with start/finish logging.
func (a *app) run(body func(cmd *cobra.Command, args []string) (*table.Table, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a.log.Info("command started", "args", args)
		out, err := body(cmd, args)
		if err != nil {
			a.log.Error("command failed", "err", err)
			return err
		}
		if err = a.write(cmd, out, a.output); err != nil {
			return err
		}
		a.log.Info("command finished", "rows", out.RowCount())

		return nil
	}
}

func (a *app) catCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat FILE",
		Short: "Decode FILE and write it back out",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) (*table.Table, error) {
			return a.read(cmd, args[0])
		}),
	}
}

func (a *app) uniqueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unique FILE",
		Short: "Drop repeated rows, keeping the first occurrence",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) (*table.Table, error) {
			t, err := a.read(cmd, args[0])
			if err != nil {
				return nil, err
			}
			return t.As().UniqueRows(), nil
		}),
	}
}

func (a *app) filterCmd() *cobra.Command {
	var column, equals string
	cmd := &cobra.Command{
		Use:   "filter FILE",
		Short: "Keep the rows whose column equals a value",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) (*table.Table, error) {
			t, err := a.read(cmd, args[0])
			if err != nil {
				return nil, err
			}
			if err = requireColumn(t, column); err != nil {
				return nil, err
			}
			return t.As().Filtered(func(r table.Row) bool {
				v, ok := r.OptionalValueOf(column)
				return ok && v == equals
			}), nil
		}),
	}
	cmd.Flags().StringVar(&column, "column", "", "column title to compare")
	cmd.Flags().StringVar(&equals, "equals", "", "value to keep")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}

func (a *app) sortCmd() *cobra.Command {
	var by string
	var desc bool
	cmd := &cobra.Command{
		Use:   "sort FILE",
		Short: "Stably sort rows by a column; rows without a value are dropped",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) (*table.Table, error) {
			t, err := a.read(cmd, args[0])
			if err != nil {
				return nil, err
			}
			if err = requireColumn(t, by); err != nil {
				return nil, err
			}
			order := table.Ascending
			if desc {
				order = table.Descending
			}
			return t.As().SortedBy(table.ColumnKey(by), order), nil
		}),
	}
	cmd.Flags().StringVar(&by, "by", "", "column title to sort by")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	_ = cmd.MarkFlagRequired("by")

	return cmd
}

func (a *app) joinCmd() *cobra.Command {
	var leftKey, rightKey string
	cmd := &cobra.Command{
		Use:   "join LEFT RIGHT",
		Short: "Inner-join two tables on equal column values",
		Args:  cobra.ExactArgs(2),
		RunE: a.run(func(cmd *cobra.Command, args []string) (*table.Table, error) {
			left, err := a.read(cmd, args[0])
			if err != nil {
				return nil, err
			}
			right, err := a.read(cmd, args[1])
			if err != nil {
				return nil, err
			}
			if rightKey == "" {
				rightKey = leftKey
			}
			return left.Join().UsingColumn(leftKey).With(right).UsingColumn(rightKey).Inner()
		}),
	}
	cmd.Flags().StringVar(&leftKey, "left-key", "", "key column of LEFT")
	cmd.Flags().StringVar(&rightKey, "right-key", "", "key column of RIGHT (default: --left-key)")
	_ = cmd.MarkFlagRequired("left-key")

	return cmd
}

func (a *app) groupCmd() *cobra.Command {
	var key, value string
	cmd := &cobra.Command{
		Use:   "group FILE",
		Short: "Collect the values of one column per key of another",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) (*table.Table, error) {
			t, err := a.read(cmd, args[0])
			if err != nil {
				return nil, err
			}
			if err = requireColumn(t, key); err != nil {
				return nil, err
			}
			if err = requireColumn(t, value); err != nil {
				return nil, err
			}
			groups := t.As().Group(table.ColumnKey(key), table.TextOf(table.ColumnKey(value)))
			out := table.New(table.WithLogger(a.log)).AddColumnTitles(key, value)
			for _, k := range slices.Sorted(maps.Keys(groups)) {
				out.AddRow(k, strings.Join(groups[k], groupSep))
			}
			return out, nil
		}),
	}
	cmd.Flags().StringVar(&key, "key", "", "column title to group by")
	cmd.Flags().StringVar(&value, "value", "", "column title to collect")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Convert between codecs chosen by file suffix",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.output = args[1]
			return a.run(func(cmd *cobra.Command, args []string) (*table.Table, error) {
				return a.read(cmd, args[0])
			})(cmd, args)
		},
	}
}

// read decodes path with the codec its suffix selects.
func (a *app) read(cmd *cobra.Command, path string) (*table.Table, error) {
	opts := []table.Option{table.WithLogger(a.log)}
	switch {
	case path == stdinPath:
		return csvcodec.Decode(cmd.InOrStdin(), a.format, opts...)
	case isXLSX(path):
		return xlsxcodec.DecodeFile(path, nil, opts...)
	default:
		return csvcodec.DecodeFile(path, a.format, opts...)
	}
}

// write encodes t to path, or to the command's stdout when path is empty.
func (a *app) write(cmd *cobra.Command, t *table.Table, path string) error {
	switch {
	case path == "" || path == stdinPath:
		return csvcodec.Encode(cmd.OutOrStdout(), t, a.format)
	case isXLSX(path):
		return xlsxcodec.EncodeFile(path, t)
	default:
		return csvcodec.EncodeFile(path, t, a.format)
	}
}

func isXLSX(path string) bool {
	return strings.EqualFold(filepath.Ext(path), xlsxSuffix)
}

func requireColumn(t *table.Table, title string) error {
	if _, ok := t.Column(title); !ok {
		return fmt.Errorf("column %q: %w", title, table.ErrNotFound)
	}

	return nil
}
