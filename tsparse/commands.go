package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/araddon/tseries"
)

type parseRow struct {
	Input      string `json:"input" yaml:"input"`
	Date       string `json:"date,omitempty" yaml:"date,omitempty"`
	Resolution string `json:"resolution,omitempty" yaml:"resolution,omitempty"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newParseCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "parse DATE...",
		Short: "Parse strings and report the resolution each one commits to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := f.cfg.Options()
			rows := make([]parseRow, 0, len(args))
			for _, in := range args {
				row := parseRow{Input: in}
				ts, _, reso, err := tseries.ParseTimeString(in, opts...)
				if err != nil {
					row.Error = err.Error()
				} else {
					row.Date = ts.Format("2006-01-02 15:04:05.999999")
					row.Resolution = reso.String()
				}
				rows = append(rows, row)
			}
			return render(cmd.OutOrStdout(), f.output, []string{"Input", "Date", "Resolution", "Error"}, rows,
				func(r parseRow) []any { return []any{r.Input, r.Date, r.Resolution, r.Error} })
		},
	}
}

type convertRow struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
	Parsed bool   `json:"parsed" yaml:"parsed"`
}

func newConvertCmd(f *rootFlags) *cobra.Command {
	var policy string
	cmd := &cobra.Command{
		Use:   "convert VALUE...",
		Short: "Convert a column of strings to timestamps",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := f.cfg.Options()
			if cmd.Flags().Changed("errors") {
				opts = append(opts, tseries.Errors(tseries.ErrorPolicy(policy)))
			}
			loc, err := f.cfg.Location()
			if err != nil {
				return err
			}
			out, err := tseries.ToDatetime(args, opts...)
			if err != nil {
				return err
			}
			values, ok := out.([]any)
			if !ok {
				return errors.Errorf("unexpected conversion result %T", out)
			}
			rows := make([]convertRow, len(args))
			for i, v := range values {
				rows[i] = convertRow{Input: args[i]}
				switch x := v.(type) {
				case time.Time:
					if loc != nil {
						x = x.In(loc)
					}
					rows[i].Output = x.Format(time.RFC3339Nano)
					rows[i].Parsed = true
				default:
					rows[i].Output = fmt.Sprint(x)
				}
			}
			return render(cmd.OutOrStdout(), f.output, []string{"Input", "Output", "Parsed"}, rows,
				func(r convertRow) []any { return []any{r.Input, r.Output, r.Parsed} })
		},
	}
	cmd.Flags().StringVar(&policy, "errors", string(tseries.ErrorsIgnore), "What to do with unparseable values: ignore or raise")
	return cmd
}

type oleRow struct {
	Serial string `json:"serial" yaml:"serial"`
	Date   string `json:"date" yaml:"date"`
}

func newOLECmd(f *rootFlags) *cobra.Command {
	var reverse bool
	cmd := &cobra.Command{
		Use:   "ole SERIAL...",
		Short: "Convert OLE automation day serials to timestamps",
		Long:  "Convert OLE automation day serials to timestamps, or with --reverse, date strings to serials.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([]oleRow, 0, len(args))
			for _, a := range args {
				row, err := oleConvert(f, a, reverse)
				if err != nil {
					return err
				}
				rows = append(rows, row)
			}
			return render(cmd.OutOrStdout(), f.output, []string{"Serial", "Date"}, rows,
				func(r oleRow) []any { return []any{r.Serial, r.Date} })
		},
	}
	cmd.Flags().BoolVar(&reverse, "reverse", false, "Read arguments as dates and print their serials")
	return cmd
}

func oleConvert(f *rootFlags, a string, reverse bool) (oleRow, error) {
	if reverse {
		ts, _, _, err := tseries.ParseTimeString(a, f.cfg.Options()...)
		if err != nil {
			return oleRow{}, err
		}
		serial, err := tseries.Datetime2OLE(ts)
		if err != nil {
			return oleRow{}, err
		}
		return oleRow{Serial: strconv.FormatFloat(serial, 'f', -1, 64), Date: ts.Format("2006-01-02 15:04:05.999999")}, nil
	}
	v, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return oleRow{}, errors.Wrapf(err, "serial %q", a)
	}
	ts, err := tseries.OLE2Datetime(v)
	if err != nil {
		return oleRow{}, err
	}
	return oleRow{Serial: a, Date: ts.Format("2006-01-02 15:04:05.999999")}, nil
}
