// Package github lists the repositories of a user through the GitHub REST API.
package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"repogrip/internal/domain"
)

// DefaultBaseURL is the public GitHub API endpoint
const DefaultBaseURL = "https://api.github.com"

// Client fetches repository listings
type Client struct {
	BaseURL    string
	PerPage    int // 0 keeps the API default page size
	UserAgent  string
	HTTPClient *http.Client
}

// NewClient creates a client for baseURL. An empty baseURL uses DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		UserAgent:  "repogrip",
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// StatusError is returned when the API answers with a non-success status
type StatusError struct {
	User       string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("listing repositories for %s: %s", e.User, e.Status)
}

// NotFound reports whether the user does not exist
func (e *StatusError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// ReposURL returns the listing endpoint for user
func (c *Client) ReposURL(user string) string {
	u := fmt.Sprintf("%s/users/%s/repos", c.BaseURL, url.PathEscape(user))
	if c.PerPage > 0 {
		u += "?per_page=" + strconv.Itoa(c.PerPage)
	}
	return u
}

// ListRepoNames returns the full names of the user's repositories in the
// order the API returns them.
func (c *Client) ListRepoNames(ctx context.Context, user string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ReposURL(user), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", user, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repositories for %s: %w", user, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{User: user, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var repos []domain.Repository
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("failed to decode repositories for %s: %w", user, err)
	}

	names := make([]string, 0, len(repos))
	for _, r := range repos {
		names = append(names, r.FullName)
	}
	return names, nil
}
