package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/araddon/tseries"
)

type rootFlags struct {
	dayFirst  bool
	yearFirst bool
	envFile   string
	output    string
	cfg       *tseries.Config
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "tsparse",
		Short:         "Parse loosely formatted date strings",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch f.output {
			case outputTable, outputJSON, outputYAML:
			default:
				return errors.Errorf("--output must be one of table, json, yaml; got %q", f.output)
			}
			cfg, err := tseries.LoadConfig(f.envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("dayfirst") {
				cfg.DateDayFirst = f.dayFirst
			}
			if cmd.Flags().Changed("yearfirst") {
				cfg.DateYearFirst = f.yearFirst
			}
			f.cfg = cfg
			return nil
		},
	}
	pf := cmd.PersistentFlags()
	pf.BoolVar(&f.dayFirst, "dayfirst", false, "Read 01/05/2009 as 1 May")
	pf.BoolVar(&f.yearFirst, "yearfirst", false, "Read 01/05/09 as 2001-05-09")
	pf.StringVar(&f.envFile, "env-file", ".env", "Env file holding TSERIES_* settings, ignored when missing")
	pf.StringVarP(&f.output, "output", "o", outputTable, "Output format: table, json or yaml")

	cmd.AddCommand(newParseCmd(f), newConvertCmd(f), newOLECmd(f))
	return cmd
}
