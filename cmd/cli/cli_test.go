package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"travel-planner/internal/agent"
	"travel-planner/internal/model"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestClassifyCommand(t *testing.T) {
	out := execute(t, "classify", "book", "a", "hotel", "in", "Lisbon")
	assert.Contains(t, out, "intent:     HOTEL_SEARCH")
	assert.Contains(t, out, "score:      HOTEL_SEARCH")
}

func TestConvertCommand_Offline(t *testing.T) {
	out := execute(t, "convert", "100", "usd", "eur", "--offline")
	assert.Contains(t, out, "100.00 USD = 92.00 EUR")
	assert.Contains(t, out, "offline rates")

	out = execute(t, "convert", "5", "xyz", "usd", "--offline")
	assert.Contains(t, out, "no rate for XYZ")
}

func TestRatesCommand_Offline(t *testing.T) {
	out := execute(t, "rates", "eur", "zzz", "--offline")
	assert.Contains(t, out, "1 USD (built-in)")
	assert.Contains(t, out, "EUR 0.92")
	assert.Contains(t, out, "ZZZ unknown")
}

type scriptedAssistant struct {
	agent.Assistant
	cleared  int
	messages []string
}

func (s *scriptedAssistant) Process(ctx context.Context, in agent.ProcessInput) (agent.Reply, error) {
	s.messages = append(s.messages, in.Message)
	return agent.Reply{Text: "re: " + in.Message}, nil
}

func (s *scriptedAssistant) Clear(ctx context.Context, sc model.Scope, sessionID string) error {
	s.cleared++
	return nil
}

func TestChatLoop(t *testing.T) {
	a := &scriptedAssistant{}
	in := strings.NewReader("hello\n\n/clear\nweather in Oslo\n/quit\nignored\n")
	var out bytes.Buffer

	require.NoError(t, chatLoop(context.Background(), a, model.Scope{UserID: "u"}, "s1", in, &out))

	assert.Equal(t, []string{"hello", "weather in Oslo"}, a.messages)
	assert.Equal(t, 1, a.cleared)
	assert.Contains(t, out.String(), "re: hello")
	assert.Contains(t, out.String(), "(conversation cleared)")
}

func TestCalendarAuthCommand(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		assert.Equal(t, "code-123", r.Form.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","token_type":"Bearer","refresh_token":"rt","expires_in":3600}`))
	}))
	defer tokenSrv.Close()

	dir := t.TempDir()
	client := filepath.Join(dir, "client.json")
	require.NoError(t, os.WriteFile(client, []byte(`{"installed":{
		"client_id":"cid.apps.googleusercontent.com",
		"client_secret":"csecret",
		"redirect_uris":["http://localhost"],
		"auth_uri":"https://accounts.google.com/o/oauth2/auth",
		"token_uri":"`+tokenSrv.URL+`"}}`), 0o600))
	out := filepath.Join(dir, "creds.json")

	rootCmd.SetIn(strings.NewReader("code-123\n"))
	defer rootCmd.SetIn(nil)
	printed := execute(t, "calendar-auth", client, "--out", out)
	assert.Contains(t, printed, "access_type=offline")
	assert.Contains(t, printed, "Credentials written to "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var creds authorizedUser
	require.NoError(t, json.Unmarshal(data, &creds))
	assert.Equal(t, authorizedUser{
		Type:         "authorized_user",
		ClientID:     "cid.apps.googleusercontent.com",
		ClientSecret: "csecret",
		RefreshToken: "rt",
	}, creds)
}

func TestAuthorizedUserJSON_NeedsRefreshToken(t *testing.T) {
	_, err := authorizedUserJSON(&oauth2.Config{ClientID: "c"}, &oauth2.Token{AccessToken: "a"})
	assert.ErrorContains(t, err, "no refresh token")
}
