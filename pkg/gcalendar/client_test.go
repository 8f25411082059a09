package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-planner/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	httpClient := ts.Client()
	httpClient.Transport = &rewriteTransport{
		Transport: httpClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), httpClient)
	require.NoError(t, err)
	return client
}

func TestNewClientFromCredentials(t *testing.T) {
	t.Run("broken json", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		assert.Error(t, err)
	})

	t.Run("authorized user", func(t *testing.T) {
		creds := `{"type":"authorized_user","client_id":"id.apps.googleusercontent.com","client_secret":"s","refresh_token":"r"}`
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(creds))
		assert.NoError(t, err)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "creds.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"broken":true}`), 0o600))

		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), path)
		assert.Error(t, err)

		_, err = gcalendar.NewClientFromCredentialsFile(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)

		_, err = gcalendar.NewClientFromCredentialsFile(context.Background(), "")
		assert.ErrorIs(t, err, gcalendar.ErrCredentialsRequired)
	})
}

func TestCreateEvent(t *testing.T) {
	start := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/v3/calendars/trips/events" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var body struct {
			Summary  string `json:"summary"`
			Location string `json:"location"`
			Start    struct {
				DateTime string `json:"dateTime"`
			} `json:"start"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Start.DateTime != "2026-05-02T10:00:00Z" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"id":"event-123","summary":"` + body.Summary + `","location":"` + body.Location + `","htmlLink":"https://calendar.google.com/event-uri"}`))
	})

	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		CalendarID: "trips",
		Summary:    "Belem Tower",
		Location:   "Lisbon",
		StartTime:  start,
		EndTime:    start.Add(2 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "event-123", event.ID)
	assert.Equal(t, "Lisbon", event.Location)
	assert.Equal(t, "https://calendar.google.com/event-uri", event.HtmlLink)
}

func TestCreateEvent_Errors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	start := time.Now()

	_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{StartTime: start, EndTime: start})
	assert.ErrorIs(t, err, gcalendar.ErrInvalidTimeRange)

	_, err = client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{StartTime: start, EndTime: start.Add(time.Hour)})
	assert.Error(t, err)
}

func TestDeleteEvent(t *testing.T) {
	var deleted string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deleted = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	require.NoError(t, client.DeleteEvent(context.Background(), "", "event-123"))
	assert.Equal(t, "/calendar/v3/calendars/primary/events/event-123", deleted)
}
