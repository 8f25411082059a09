package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"travel-planner/internal/router"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [message]",
	Short: "Show how a message is routed",
	Long: `Prints the intent, confidence, extracted fields and per-intent scores
for a message, without calling any tool or model.

Example:
  travel classify "book a hotel in Lisbon for 3 nights"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	out := router.New(logger).Classify(cmd.Context(), strings.Join(args, " "))

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "intent:     %s\n", out.Intent)
	fmt.Fprintf(w, "confidence: %.3f\n", out.Confidence)
	for _, k := range slices.Sorted(maps.Keys(out.Fields)) {
		fmt.Fprintf(w, "field:      %s=%s\n", k, out.Fields[k])
	}
	for _, c := range router.DefaultCategories() {
		if score, ok := out.Scores[c.Intent]; ok {
			fmt.Fprintf(w, "score:      %-14s %.3f\n", c.Intent, score)
		}
	}
	return nil
}
