package catalog

import (
	"context"
	"fmt"
	"strconv"

	"resty.dev/v3"
)

// DefaultBaseURL is the public Adoptium API endpoint.
const DefaultBaseURL = "https://api.adoptium.net"

// availableReleases mirrors the relevant part of the Adoptium
// /v3/info/available_releases response.
type availableReleases struct {
	AvailableReleases []int `json:"available_releases"`
	MostRecentLTS     int   `json:"most_recent_lts"`
}

// Adoptium fetches available JVM feature versions from the Adoptium API.
type Adoptium struct {
	client *resty.Client
}

// NewAdoptium creates a client against baseURL. An empty baseURL selects
// the public Adoptium endpoint.
func NewAdoptium(baseURL string) *Adoptium {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Adoptium{
		client: resty.New().SetBaseURL(baseURL),
	}
}

// Close releases the underlying HTTP client resources.
func (a *Adoptium) Close() error {
	return a.client.Close()
}

// AvailableVersions performs a single fetch of the available release list.
// No retry: a failure surfaces directly to the caller.
func (a *Adoptium) AvailableVersions(ctx context.Context) ([]string, error) {
	var payload availableReleases

	resp, err := a.client.R().
		SetContext(ctx).
		SetResult(&payload).
		Get("/v3/info/available_releases")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch available releases: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("catalog request failed with status: %s", resp.Status())
	}

	versions := make([]string, 0, len(payload.AvailableReleases))
	for _, release := range payload.AvailableReleases {
		versions = append(versions, strconv.Itoa(release))
	}
	return versions, nil
}
