package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nascentdigital/scene/env"
)

func TestEndpointRoundTrip(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "scene-data", "endpoint-server.txt")

	_, err := ReadEndpoint(p)
	require.ErrorIs(t, err, ErrNoEndpoint)

	err = WriteEndpoint(context.Background(), &LocalFilePersister{}, p, " ws://127.0.0.1:41234/4f1c\n")
	require.NoError(t, err)

	got, err := ReadEndpoint(p)
	require.NoError(t, err)
	assert.Equal(t, "ws://127.0.0.1:41234/4f1c", got)

	require.NoError(t, RemoveEndpoint(p))
	require.NoError(t, RemoveEndpoint(p), "removing twice is fine")
	_, err = ReadEndpoint(p)
	assert.ErrorIs(t, err, ErrNoEndpoint)
}

func TestEndpointErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	err := WriteEndpoint(context.Background(), &LocalFilePersister{}, filepath.Join(dir, "a.txt"), "  ")
	require.ErrorContains(t, err, "empty endpoint")

	blank := filepath.Join(dir, "blank.txt")
	require.NoError(t, os.WriteFile(blank, []byte("\n"), 0o600))
	_, err = ReadEndpoint(blank)
	assert.ErrorContains(t, err, "is empty")
}

func TestDefaultEndpointFile(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		filepath.Join(os.TempDir(), "scene-data", "endpoint-server.txt"),
		DefaultEndpointFile(env.EmptyLookup))
	assert.Equal(t,
		"/run/scene/endpoint",
		DefaultEndpointFile(env.ConstLookup(env.EndpointFile, "/run/scene/endpoint")))
}
