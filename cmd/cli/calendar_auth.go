package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

const defaultCalendarCredentials = "google-credentials.json"

var calendarOut string

var calendarAuthCmd = &cobra.Command{
	Use:   "calendar-auth <oauth-client.json>",
	Short: "Authorize Google Calendar and write credentials for itinerary sync",
	Long: `Runs the OAuth consent flow for a desktop OAuth client and writes an
authorized_user credentials file. Point google_calendar.credentials_path at it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read OAuth client %q: %w", args[0], err)
		}
		conf, err := google.ConfigFromJSON(data, calendar.CalendarEventsScope)
		if err != nil {
			return fmt.Errorf("failed to parse OAuth client, expected a desktop app client: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Open this URL, sign in and allow calendar access:")
		fmt.Fprintln(out)
		fmt.Fprintln(out, conf.AuthCodeURL("travel-planner", oauth2.AccessTypeOffline, oauth2.ApprovalForce))
		fmt.Fprintln(out)
		fmt.Fprint(out, "Authorization code: ")

		code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && code == "" {
			return fmt.Errorf("failed to read authorization code: %w", err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		tok, err := conf.Exchange(ctx, strings.TrimSpace(code))
		if err != nil {
			return fmt.Errorf("failed to exchange authorization code: %w", err)
		}

		creds, err := authorizedUserJSON(conf, tok)
		if err != nil {
			return err
		}

		path := calendarOut
		if path == "" {
			path = cfg.GoogleCalendar.CredentialsPath
		}
		if path == "" {
			path = defaultCalendarCredentials
		}
		if err := os.WriteFile(path, creds, 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Fprintf(out, "\nCredentials written to %s\n", path)
		return nil
	},
}

type authorizedUser struct {
	Type         string `json:"type"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RefreshToken string `json:"refresh_token"`
}

// authorizedUserJSON renders the file format google.CredentialsFromJSON accepts.
func authorizedUserJSON(conf *oauth2.Config, tok *oauth2.Token) ([]byte, error) {
	if tok.RefreshToken == "" {
		return nil, errors.New("no refresh token returned, revoke the app's access and retry")
	}
	return json.MarshalIndent(authorizedUser{
		Type:         "authorized_user",
		ClientID:     conf.ClientID,
		ClientSecret: conf.ClientSecret,
		RefreshToken: tok.RefreshToken,
	}, "", "  ")
}
