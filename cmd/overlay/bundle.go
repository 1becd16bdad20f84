package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/newthinker/overlay/internal/backtest"
	"github.com/spf13/cobra"
)

var (
	bundleFile    string
	bundleSymbol  string
	bundleDelta   float64
	bundleHolding string
	bundleStart   string
	bundleEnd     string
)

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Manage result bundles in archive storage",
}

var bundlePutCmd = &cobra.Command{
	Use:   "put",
	Short: "Validate a result bundle file and store it under its run key",
	RunE:  runBundlePut,
}

var bundleListCmd = &cobra.Command{
	Use:   "list [prefix]",
	Short: "List stored result bundles",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBundleList,
}

func init() {
	bundlePutCmd.Flags().StringVar(&bundleFile, "file", "", "result bundle JSON file (required)")
	bundlePutCmd.Flags().StringVar(&bundleSymbol, "symbol", "", "ETF code (required)")
	bundlePutCmd.Flags().Float64Var(&bundleDelta, "delta", 0, "option delta (required)")
	bundlePutCmd.Flags().StringVar(&bundleHolding, "holding", string(backtest.HoldingPhysical), "holding type (physical or synthetic)")
	bundlePutCmd.Flags().StringVar(&bundleStart, "start", "", "start date YYYY-MM-DD")
	bundlePutCmd.Flags().StringVar(&bundleEnd, "end", "", "end date YYYY-MM-DD")

	bundlePutCmd.MarkFlagRequired("file")
	bundlePutCmd.MarkFlagRequired("symbol")
	bundlePutCmd.MarkFlagRequired("delta")

	bundleCmd.AddCommand(bundlePutCmd)
	bundleCmd.AddCommand(bundleListCmd)
	rootCmd.AddCommand(bundleCmd)
}

func runBundlePut(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	if !cfg.Options.HasInstrument(bundleSymbol) {
		return fmt.Errorf("unknown symbol %q", bundleSymbol)
	}
	if !cfg.Options.HasHoldingType(bundleHolding) {
		return fmt.Errorf("unknown holding type %q", bundleHolding)
	}
	if bundleDelta <= 0 || bundleDelta >= 1 {
		return fmt.Errorf("delta must be between 0 and 1, got %g", bundleDelta)
	}

	runCfg := backtest.Config{
		Symbol:      bundleSymbol,
		Delta:       bundleDelta,
		HoldingType: backtest.HoldingType(bundleHolding),
	}
	if runCfg.StartDate, err = parseFlagDate(bundleStart); err != nil {
		return fmt.Errorf("invalid start date (expected YYYY-MM-DD): %w", err)
	}
	if runCfg.EndDate, err = parseFlagDate(bundleEnd); err != nil {
		return fmt.Errorf("invalid end date (expected YYYY-MM-DD): %w", err)
	}

	data, err := os.ReadFile(bundleFile)
	if err != nil {
		return fmt.Errorf("reading bundle: %w", err)
	}
	bundle, err := backtest.Decode(data)
	if err != nil {
		return err
	}
	if err := bundle.Validate(); err != nil {
		return fmt.Errorf("bundle rejected: %w", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening bundle storage: %w", err)
	}

	encoded, err := backtest.Encode(bundle)
	if err != nil {
		return fmt.Errorf("encoding bundle: %w", err)
	}

	key := backtest.BundleKey(runCfg)
	if err := store.Write(context.Background(), key, encoded); err != nil {
		return fmt.Errorf("storing bundle: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Stored %s (%d days, %d trades)\n",
		key, len(bundle.Portfolio), len(bundle.UniqueTrades()))
	return nil
}

func runBundleList(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening bundle storage: %w", err)
	}

	prefix := ""
	if len(args) == 1 {
		prefix = args[0]
	}

	keys, err := store.List(context.Background(), prefix)
	if err != nil {
		return fmt.Errorf("listing bundles: %w", err)
	}

	if len(keys) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No bundles stored")
		return nil
	}
	for _, k := range keys {
		fmt.Fprintln(cmd.OutOrStdout(), k)
	}
	return nil
}

func parseFlagDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(backtest.DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
