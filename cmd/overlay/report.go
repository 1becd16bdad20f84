package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/newthinker/overlay/internal/backtest"
	"github.com/newthinker/overlay/internal/report"
	"github.com/spf13/cobra"
)

var (
	reportBundle string
	reportOut    string
	reportPlain  bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the report payload of a result bundle file",
	Long: `Render a result bundle produced by the backtest engine into the JSON payload
served by /run_backtest, without starting the server.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportBundle, "bundle", "", "result bundle JSON file (required)")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "output file (default stdout)")
	reportCmd.Flags().BoolVar(&reportPlain, "plain", false, "omit HTML markup from table cells")

	reportCmd.MarkFlagRequired("bundle")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(reportBundle)
	if err != nil {
		return fmt.Errorf("reading bundle: %w", err)
	}

	bundle, err := backtest.Decode(data)
	if err != nil {
		return err
	}

	rep, err := report.Build(bundle)
	if err != nil {
		return fmt.Errorf("building report: %w", err)
	}

	var rend report.Renderer = report.HTMLRenderer{}
	if reportPlain {
		rend = report.PlainRenderer{}
	}

	payload, err := report.Encode(rep, rend)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	if reportOut == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}
	if err := os.WriteFile(reportOut, out, 0644); err != nil {
		return fmt.Errorf("writing payload: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote report for %s to %s\n", rep.Symbol, reportOut)
	return nil
}
