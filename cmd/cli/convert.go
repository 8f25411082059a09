package main

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"travel-planner/internal/app"
	"travel-planner/internal/currency"
	"travel-planner/pkg/money"
)

var convertCmd = &cobra.Command{
	Use:   "convert <amount> <from> <to>",
	Short: "Convert an amount between currencies",
	Long: `Converts with the current rate table. Live rates are fetched when an
access key is configured; otherwise the built-in table is used.

Example:
  travel convert 100 usd jpy`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

var ratesCmd = &cobra.Command{
	Use:   "rates [code...]",
	Short: "Print exchange rates per 1 USD",
	RunE:  runRates,
}

// rateTable builds the engine and refreshes it unless --offline is set.
func rateTable(cmd *cobra.Command) currency.Service {
	ctx := cmd.Context()
	svc := app.NewCurrency(ctx, cfg, logger)

	if offline, _ := cmd.Flags().GetBool("offline"); offline {
		return svc
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if res := svc.RefreshIfStale(ctx, time.Now()); res.Attempted && res.Err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "live rates unavailable, using built-in table: %v\n", res.Err)
	}
	return svc
}

func runConvert(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(strings.ReplaceAll(args[0], ",", ""), 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[0])
	}

	svc := rateTable(cmd)
	c := svc.Convert(cmd.Context(), amount, args[1], args[2])

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s = %s\n", money.Format(c.OriginalAmount, c.From), money.Format(c.Amount, c.To))
	if len(c.UnknownCodes) > 0 {
		fmt.Fprintf(w, "note: no rate for %s, used 1.0\n", strings.Join(c.UnknownCodes, ", "))
	}
	if !c.Live {
		fmt.Fprintln(w, "note: offline rates")
	}
	return nil
}

func runRates(cmd *cobra.Command, args []string) error {
	svc := rateTable(cmd)
	table := svc.Rates()

	codes := make([]string, 0, len(args))
	for _, a := range args {
		codes = append(codes, strings.ToUpper(a))
	}
	if len(codes) == 0 {
		codes = slices.Sorted(maps.Keys(table))
	}

	w := cmd.OutOrStdout()
	status := svc.Status()
	source := "built-in"
	if status.Live {
		source = "live, fetched " + status.FetchedAt.Format(time.RFC3339)
	}
	fmt.Fprintf(w, "1 %s (%s)\n", currency.BaseCurrency, source)
	for _, code := range codes {
		if rate, ok := table[code]; ok {
			fmt.Fprintf(w, "%s %s\n", code, strconv.FormatFloat(rate, 'f', -1, 64))
		} else {
			fmt.Fprintf(w, "%s unknown\n", code)
		}
	}
	return nil
}
