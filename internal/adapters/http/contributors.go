// Package http provides the HTTP adapters: the contributor-list client and
// the debug state server.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lattice-dev/lattice/pkg/ports"
)

// DefaultContributorsURL is the static contributor list location.
const DefaultContributorsURL = "https://raw.githubusercontent.com/lattice-dev/lattice/main/.all-contributorsrc"

// Contributors implements ports.ContributorSource over HTTP GET.
type Contributors struct {
	url    string
	client *http.Client
}

var _ ports.ContributorSource = (*Contributors)(nil)

type ContributorsOption func(*Contributors)

// WithURL overrides the contributor list location.
func WithURL(url string) ContributorsOption {
	return func(c *Contributors) {
		c.url = url
	}
}

// WithClient overrides the HTTP client.
func WithClient(client *http.Client) ContributorsOption {
	return func(c *Contributors) {
		c.client = client
	}
}

// NewContributors creates the client with a short timeout; the fetch is
// display data, not worth waiting long for.
func NewContributors(opts ...ContributorsOption) *Contributors {
	c := &Contributors{
		url:    DefaultContributorsURL,
		client: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves the list and returns the normalized login names.
func (c *Contributors) Fetch(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch contributors: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch contributors: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Contributors []struct {
			Login string `json:"login"`
		} `json:"contributors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("parse contributors: %w", err)
	}

	names := make([]string, 0, len(body.Contributors))
	for _, c := range body.Contributors {
		if c.Login != "" {
			names = append(names, c.Login)
		}
	}
	return names, nil
}
