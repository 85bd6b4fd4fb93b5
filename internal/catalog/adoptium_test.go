package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdoptium_AvailableVersions(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v3/info/available_releases", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"available_releases":[8,11,17,21],"most_recent_lts":21}`))
	}))
	defer srv.Close()

	client := NewAdoptium(srv.URL)
	defer client.Close()

	// --- Act ---
	versions, err := client.AvailableVersions(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{"8", "11", "17", "21"}, versions)
}

func TestAdoptium_ErrorStatus(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewAdoptium(srv.URL)
	defer client.Close()

	// --- Act ---
	versions, err := client.AvailableVersions(context.Background())

	// --- Assert ---
	require.Error(t, err)
	require.Nil(t, versions)
	require.Contains(t, err.Error(), "500")
}

func TestAdoptium_TransportFailure(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A server that is already closed guarantees a connection error.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewAdoptium(srv.URL)
	defer client.Close()

	// --- Act ---
	_, err := client.AvailableVersions(context.Background())

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to fetch available releases")
}

func TestNewAdoptium_DefaultBaseURL(t *testing.T) {
	t.Parallel()

	// --- Act ---
	client := NewAdoptium("")
	defer client.Close()

	// --- Assert ---
	require.NotNil(t, client)
}
