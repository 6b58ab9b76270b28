// Package relcheck checks GitHub for a newer released version.
package relcheck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/mod/semver"
)

// ErrDevBuild indicates the running binary has no release version to
// compare against.
var ErrDevBuild = errors.New("cannot check a development build")

const defaultAPIBaseURL = "https://api.github.com"

// Checker queries the GitHub releases API for the latest version.
type Checker struct {
	owner      string
	repo       string
	apiBaseURL string
	client     *http.Client
}

// Option configures a Checker.
type Option func(*Checker)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) {
		c.client.Timeout = d
	}
}

// WithBaseURL overrides the GitHub API base URL. Used in tests.
func WithBaseURL(url string) Option {
	return func(c *Checker) {
		c.apiBaseURL = url
	}
}

// NewChecker creates a Checker for the given GitHub repository.
func NewChecker(owner, repo string, opts ...Option) *Checker {
	c := &Checker{
		owner:      owner,
		repo:       repo,
		apiBaseURL: defaultAPIBaseURL,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Result describes the outcome of a version check.
type Result struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
}

// Check compares the given version against the repository's latest
// release tag.
func (c *Checker) Check(ctx context.Context, version string) (*Result, error) {
	if version == "" || version == "(devel)" {
		return nil, ErrDevBuild
	}
	current := canonical(version)
	if !semver.IsValid(current) {
		return nil, fmt.Errorf("current version %q is not a semantic version", version)
	}

	latest, err := c.latestTag(ctx)
	if err != nil {
		return nil, err
	}
	latestCanonical := canonical(latest)
	if !semver.IsValid(latestCanonical) {
		return nil, fmt.Errorf("latest release tag %q is not a semantic version", latest)
	}

	return &Result{
		CurrentVersion:  version,
		LatestVersion:   latest,
		UpdateAvailable: semver.Compare(latestCanonical, current) > 0,
	}, nil
}

func (c *Checker) latestTag(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.apiBaseURL, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("query latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("query latest release: unexpected status %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("decode release response: %w", err)
	}
	if release.TagName == "" {
		return "", errors.New("release response has no tag name")
	}
	return release.TagName, nil
}

// canonical normalizes a version or tag to the "vX.Y.Z" form semver
// expects.
func canonical(v string) string {
	if len(v) > 0 && v[0] != 'v' {
		v = "v" + v
	}
	return v
}
