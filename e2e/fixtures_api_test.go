//go:build e2e && unix

package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

type repoJSON struct {
	FullName string `json:"full_name"`
}

// fakeAPI serves /users/{user}/repos like the GitHub REST API
type fakeAPI struct {
	server *httptest.Server

	mu     sync.Mutex
	repos  map[string][]string
	delays map[string]time.Duration
	hits   map[string]int
}

// APIOption configures the fake API
type APIOption func(*fakeAPI)

// WithUserRepos registers the repositories returned for user
func WithUserRepos(user string, names ...string) APIOption {
	return func(a *fakeAPI) {
		a.repos[user] = names
	}
}

// WithDelay holds responses for user before answering
func WithDelay(user string, d time.Duration) APIOption {
	return func(a *fakeAPI) {
		a.delays[user] = d
	}
}

func newFakeAPI(options ...APIOption) *fakeAPI {
	a := &fakeAPI{
		repos:  make(map[string][]string),
		delays: make(map[string]time.Duration),
		hits:   make(map[string]int),
	}
	for _, opt := range options {
		opt(a)
	}
	a.server = httptest.NewServer(http.HandlerFunc(a.serve))
	return a
}

func (a *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 3 || parts[0] != "users" || parts[2] != "repos" {
		http.NotFound(w, r)
		return
	}
	user := parts[1]

	a.mu.Lock()
	a.hits[user]++
	names, ok := a.repos[user]
	delay := a.delays[user]
	a.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		return
	}

	out := make([]repoJSON, 0, len(names))
	for _, n := range names {
		out = append(out, repoJSON{FullName: n})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

// Hits returns how many requests were made for user
func (a *fakeAPI) Hits(user string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hits[user]
}

func (a *fakeAPI) URL() string {
	return a.server.URL
}

func (a *fakeAPI) Close() {
	a.server.Close()
}

// CreateTestWorkspace creates a temporary directory the app runs in
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// StartAPI starts the fake GitHub API for this test
func (tf *TUITestFramework) StartAPI(options ...APIOption) *fakeAPI {
	tf.api = newFakeAPI(options...)
	return tf.api
}

// WriteConfig writes a config.toml pointing at the fake API and returns its path
func (tf *TUITestFramework) WriteConfig(extra string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	if tf.api == nil {
		return "", fmt.Errorf("fake API not started")
	}
	content := fmt.Sprintf(`version = 1

[api]
base_url = %q
timeout_seconds = 5

%s
`, tf.api.URL(), extra)

	path := filepath.Join(tf.workspace, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return path, nil
}
