package booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetchSchedule(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/schedules/acct-123", r.URL.Path)
		require.Equal(t, "sekret", r.URL.Query().Get("apiKey"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sekret")
	body, err := client.FetchSchedule(context.Background(), "acct-123")
	require.NoError(t, err)
	require.JSONEq(t, `{"result":[]}`, string(body))
}

func TestFetchSchedule_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "account not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "sekret")
	_, err := client.FetchSchedule(context.Background(), "missing")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=404")
}

func TestFetchSchedule_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "sekret")
	_, err := client.FetchSchedule(context.Background(), "acct-123")
	require.Error(t, err)
}
