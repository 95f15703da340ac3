// Package assets talks to the object store holding the 3D garment models.
// The store is an external collaborator reached over plain HTTP; folder
// layout is role-derived ("clients/<email>/..." or fixed category names).
package assets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/modista/modista-go/internal/ports"
)

// Config captures the subset of object-store behaviour we need.
type Config struct {
	// BaseURL is the store endpoint, e.g. "https://models.modista.example".
	BaseURL string
	// Timeout bounds each request. Defaults to 30s (model binaries are large).
	Timeout time.Duration
	// Client overrides the underlying HTTP client. Intended for tests.
	Client *http.Client
}

// Store implements ports.AssetStore over the object-store HTTP API.
type Store struct {
	baseURL string
	client  *http.Client
}

var _ ports.AssetStore = (*Store)(nil)

// NewStore builds a Store. Callers should pass a validated config.
func NewStore(cfg Config) (*Store, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("asset store url is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Store{baseURL: baseURL, client: hc}, nil
}

// ClientFolder derives the private model folder for a client account.
func ClientFolder(email string) string {
	return "clients/" + email
}

// listEnvelope is the store's listing response shape.
type listEnvelope struct {
	Objects []struct {
		Name string `json:"name"`
		Size int64  `json:"size"`
	} `json:"objects"`
}

// List returns the objects under a folder. An empty folder is a valid empty
// result, not an error.
func (s *Store) List(ctx context.Context, folder string) ([]ports.Object, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.objectURL(folder, ""), nil)
	if err != nil {
		return nil, fmt.Errorf("create list request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", folder, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("list %s: %s", folder, resp.Status)
	}

	var env listEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode listing: %w", err)
	}
	out := make([]ports.Object, 0, len(env.Objects))
	for _, o := range env.Objects {
		out = append(out, ports.Object{Name: o.Name, Size: o.Size})
	}
	return out, nil
}

// Upload streams a model binary into the folder under the given name.
func (s *Store) Upload(ctx context.Context, folder, name string, body io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.objectURL(folder, name), body)
	if err != nil {
		return fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("upload %s/%s: %w", folder, name, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("upload %s/%s: %s", folder, name, resp.Status)
	}
	return nil
}

// Download streams a model binary. The caller owns the returned body.
func (s *Store) Download(ctx context.Context, folder, name string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.objectURL(folder, name), nil)
	if err != nil {
		return nil, fmt.Errorf("create download request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %s/%s: %w", folder, name, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		drainAndClose(resp.Body)
		return nil, fmt.Errorf("download %s/%s: %s", folder, name, resp.Status)
	}
	return resp.Body, nil
}

// Delete removes one object.
func (s *Store) Delete(ctx context.Context, folder, name string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.objectURL(folder, name), nil)
	if err != nil {
		return fmt.Errorf("create delete request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", folder, name, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("delete %s/%s: %s", folder, name, resp.Status)
	}
	return nil
}

// objectURL builds the store URL for a folder (name empty) or an object.
func (s *Store) objectURL(folder, name string) string {
	path := folder
	if name != "" {
		path += "/" + name
	}
	segments := strings.Split(path, "/")
	escaped := make([]string, 0, len(segments))
	for _, seg := range segments {
		escaped = append(escaped, url.PathEscape(seg))
	}
	return s.baseURL + "/" + strings.Join(escaped, "/")
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
