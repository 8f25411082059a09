package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"travel-planner/config"
	"travel-planner/pkg/log"
)

var (
	verbose bool
	userID  string
	tripID  string
	timeout time.Duration

	cfg    *config.Config
	logger log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "travel",
	Short: "Travel planner assistant on the command line",
	Long: `Talk to the travel assistant, classify messages, convert currencies and
authorize Google Calendar without running the API server.

Configuration is read from config/config.yaml and the environment, like the API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger = log.NewNop()
		if verbose {
			logger = log.Init(log.ZapConfig{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true})
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log to stderr")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Timeout for network calls")

	chatCmd.Flags().StringVar(&userID, "user", "cli", "User the session belongs to")
	chatCmd.Flags().StringVar(&tripID, "trip", "", "Trip used by expense, itinerary and packing tools")
	convertCmd.Flags().Bool("offline", false, "Skip fetching live rates")
	ratesCmd.Flags().Bool("offline", false, "Skip fetching live rates")
	calendarAuthCmd.Flags().StringVar(&calendarOut, "out", "", "Credentials file to write (default google_calendar.credentials_path)")

	rootCmd.AddCommand(chatCmd, classifyCmd, convertCmd, ratesCmd, calendarAuthCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
