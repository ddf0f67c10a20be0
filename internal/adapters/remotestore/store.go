// Package remotestore pushes build result entries to a remote build cache
// over HTTP.
package remotestore

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.trai.ch/zerr"
)

// ErrUnexpectedStatus indicates the remote cache answered outside the 2xx
// range.
var ErrUnexpectedStatus = zerr.New("unexpected remote cache status")

// HTTPStore implements ports.ArtifactStore against an HTTP build cache.
// Entries are addressed as PUT <base>/<key>.
type HTTPStore struct {
	base   *url.URL
	client *http.Client
}

// NewHTTPStore creates a store for the cache at the given base URL.
func NewHTTPStore(base string) (*HTTPStore, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, zerr.Wrap(err, "invalid remote cache url")
	}

	// Custom transport with HTTP/2 disabled and a small idle pool.
	transport := &http.Transport{
		ForceAttemptHTTP2: false,
		MaxIdleConns:      10,
		IdleConnTimeout:   90 * time.Second,
	}

	return &HTTPStore{
		base: u,
		client: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
	}, nil
}

// Put uploads one entry. Transport failures and non-2xx answers are
// returned to the caller, which decides whether they are fatal.
func (s *HTTPStore) Put(ctx context.Context, key string, artifact []byte) error {
	target := s.base.JoinPath(key).String()

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, bytes.NewReader(artifact))
	if err != nil {
		return zerr.Wrap(err, "failed to build remote cache request")
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := s.client.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "remote cache request failed"), "key", key)
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	// Drain the body so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zerr.With(zerr.With(ErrUnexpectedStatus, "status", resp.Status), "key", key)
	}
	return nil
}
