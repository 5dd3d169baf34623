// Package feed reads the upstream dining feed and the static
// external-eatery dataset.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"

	"eatery-blue/internal/domain"

	"go.uber.org/zap"
)

var ErrUpstream = errors.New("upstream feed unavailable")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	HTTP       HTTPClient
	URL        string
	StaticPath string
	Logger     *zap.Logger
}

func NewClient(httpClient HTTPClient, url, staticPath string, logger *zap.Logger) *Client {
	return &Client{HTTP: httpClient, URL: url, StaticPath: staticPath, Logger: logger}
}

// Fetch downloads the feed. Network errors, non-2xx statuses and bodies
// without data.eateries are all reported as ErrUpstream.
func (c *Client) Fetch(ctx context.Context) ([]domain.FeedEatery, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: HTTP %d", ErrUpstream, resp.StatusCode)
	}

	var payload domain.FeedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: malformed body: %v", ErrUpstream, err)
	}
	if payload.Data == nil || payload.Data.Eateries == nil {
		return nil, fmt.Errorf("%w: response has no data.eateries", ErrUpstream)
	}
	return payload.Data.Eateries, nil
}

// LoadStatic reads the static dataset. A missing file is not an error.
// The file may hold {"eateries": [...]} or a bare array.
func (c *Client) LoadStatic() ([]domain.FeedEatery, error) {
	if c.StaticPath == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(c.StaticPath)
	if errors.Is(err, fs.ErrNotExist) {
		if c.Logger != nil {
			c.Logger.Info("no static eateries file, skipping", zap.String("path", c.StaticPath))
		}
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var wrapped domain.FeedStatic
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		return wrapped.Eateries, nil
	}
	var bare []domain.FeedEatery
	if err := json.Unmarshal(raw, &bare); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", c.StaticPath, err)
	}
	return bare, nil
}
