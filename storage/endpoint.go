package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nascentdigital/scene/env"
)

// ErrNoEndpoint is returned by ReadEndpoint when no endpoint file exists.
var ErrNoEndpoint = errors.New("browser server endpoint not found")

// DefaultEndpointFile returns the path the global setup process writes the
// browser server endpoint to: SCENE_ENDPOINT_FILE when set, otherwise
// scene-data/endpoint-server.txt in the temporary directory.
func DefaultEndpointFile(lookup env.LookupFunc) string {
	if p, ok := lookup(env.EndpointFile); ok && p != "" {
		return p
	}
	return filepath.Join(os.TempDir(), "scene-data", "endpoint-server.txt")
}

// WriteEndpoint stores endpoint at path.
func WriteEndpoint(ctx context.Context, p FilePersister, path, endpoint string) error {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return errors.New("writing endpoint: empty endpoint")
	}
	if err := p.Persist(ctx, path, strings.NewReader(endpoint)); err != nil {
		return fmt.Errorf("writing endpoint: %w", err)
	}
	return nil
}

// ReadEndpoint returns the endpoint stored at path.
func ReadEndpoint(path string) (string, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w in %q, did you start the tests through scene-server?", ErrNoEndpoint, path)
	}
	if err != nil {
		return "", fmt.Errorf("reading endpoint: %w", err)
	}

	endpoint := strings.TrimSpace(string(b))
	if endpoint == "" {
		return "", fmt.Errorf("reading endpoint: %q is empty", path)
	}

	return endpoint, nil
}

// RemoveEndpoint deletes the endpoint file at path. A missing file is not
// an error.
func RemoveEndpoint(path string) error {
	err := os.Remove(filepath.Clean(path))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing endpoint: %w", err)
	}
	return nil
}
