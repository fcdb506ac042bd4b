package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codetray/codetray/internal/config"
	"github.com/codetray/codetray/internal/ticker"
)

var tickerCmd = &cobra.Command{
	Use:   "ticker [code]",
	Short: "Print the current buy price of a currency in BRL",
	Long: `Print the current buy price of a currency in BRL.

The code defaults to the first configured ticker code (BTC).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTicker,
}

func runTicker(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	code := "BTC"
	if len(args) == 1 {
		code = args[0]
	} else if len(settings.Ticker.Codes) > 0 {
		code = settings.Ticker.Codes[0]
	}

	q, err := ticker.NewClient(settings.Ticker.Endpoint).Fetch(cmd.Context(), code)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", paint(styleLabel, q.Code), paint(styleValue, ticker.FormatBRL(q.Buy)))
	return nil
}
