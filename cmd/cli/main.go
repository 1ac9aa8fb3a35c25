package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"fpnpower/domain/electrode"
	"fpnpower/internal/config"
	"fpnpower/internal/container"
	"fpnpower/internal/errors"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError prefixes coded errors with their code
func formatError(err error) string {
	if errors.IsAppError(err) {
		return fmt.Sprintf("[%s] %v", errors.GetCode(err), err)
	}
	return err.Error()
}

type rootOptions struct {
	alpha float64
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "fpnpower-cli",
		Short:         "Power modulation statistics within and outside the FPN",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().Float64Var(&opts.alpha, "alpha", 0, "Significance threshold (default from SIGNIFICANCE_ALPHA or 0.05)")

	rootCmd.AddCommand(
		newShareCmd(opts),
		newNetChangeCmd(opts),
		newAverageCmd(opts),
		newReportCmd(opts),
	)
	return rootCmd
}

// loadConfig applies command-line overrides on top of the environment configuration
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if o.alpha > 0 {
		if o.alpha >= 1 {
			return nil, errors.InvalidInput("--alpha must be in (0, 1)")
		}
		cfg.Analysis.Alpha = o.alpha
	}
	return cfg, nil
}

func (o *rootOptions) container() (*container.Container, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	return container.New(cfg)
}

func newShareCmd(opts *rootOptions) *cobra.Command {
	var bandName string

	cmd := &cobra.Command{
		Use:   "share [results-file]",
		Short: "Percentage of significant electrodes increasing or decreasing power",
		Long: `Compute the share of significant electrodes (p <= alpha) with a power
increase or decrease, within the FPN and within the DMN, CON and motor networks.

Example: fpnpower-cli share "Band5-HG Results - Band5-HG Results.csv" --band "High Gamma"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			band, err := electrode.ParseBand(bandName)
			if err != nil {
				return errors.WithCode(errors.CodeInvalidInput, err)
			}
			c, err := opts.container()
			if err != nil {
				return err
			}
			table, _ := c.Loader.Load(args[0], band)
			return writeJSON(cmd.OutOrStdout(), c.Aggregator.Share(table))
		},
	}

	cmd.Flags().StringVar(&bandName, "band", "High Gamma", "Band the file was computed in")
	return cmd
}

func newNetChangeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "netchange [data-dir]",
		Short: "Net change of significant electrodes per network type and band",
		Long: `Combine the High Gamma, Low Gamma and Beta files of a directory and compute,
for FPN and non-FPN electrodes with p < alpha, mean(increase) + mean(decrease).

Example: fpnpower-cli netchange ./results`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.container()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				c.Config.Data.Dir = args[0]
			}

			tables := make([]electrode.Table, 0, len(electrode.ChartBands))
			for _, band := range electrode.ChartBands {
				table, _ := c.Loader.Load(c.Config.BandPath(band), band)
				tables = append(tables, table)
			}
			return writeJSON(cmd.OutOrStdout(), c.Aggregator.NetChange(tables...))
		},
	}
	return cmd
}

func newAverageCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "average [results-file]",
		Short: "Mean power change of all electrodes per network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.container()
			if err != nil {
				return err
			}
			table, _ := c.Loader.Load(args[0], c.Config.Analysis.AverageBand)
			return writeJSON(cmd.OutOrStdout(), c.Aggregator.AverageChange(table))
		},
	}
	return cmd
}

func newReportCmd(opts *rootOptions) *cobra.Command {
	var render bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build the full report from the configured band files",
		Long: `Load all six band files from DATA_DIR and print every aggregate as JSON.
With --render the configured report formats are also written to OUTPUT_DIR.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.container()
			if err != nil {
				return err
			}

			var report *electrode.Report
			if render {
				report, err = c.Run()
				if err != nil {
					return err
				}
			} else {
				report = c.ReportService.Run(container.Sources(c.Config))
			}
			return writeJSON(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().BoolVar(&render, "render", false, "Also write the XLSX/HTML/Markdown outputs")
	return cmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

