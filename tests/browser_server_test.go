package tests

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nascentdigital/scene/api"
	"github.com/nascentdigital/scene/browserprocess"
	"github.com/nascentdigital/scene/engine"
	"github.com/nascentdigital/scene/env"
	"github.com/nascentdigital/scene/storage"
)

func TestBrowserServerHandOff(t *testing.T) {
	t.Parallel()

	e := environment(t)
	ctx := browserprocess.WithRunID(context.Background(), uuid.NewString())

	pw, err := engine.Run(ctx, e.Logger())
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, pw.Stop()) })

	bt, err := pw.BrowserType(engine.ResolveBrowserType(env.Lookup, e.Logger()))
	require.NoError(t, err)

	srv, err := bt.LaunchServer(api.NewLaunchOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{srv.Pid()}, browserprocess.Registered(ctx))

	// global setup side
	path := filepath.Join(t.TempDir(), "endpoint-server.txt")
	var p storage.LocalFilePersister
	require.NoError(t, storage.WriteEndpoint(ctx, &p, path, srv.WSEndpoint()))

	// worker side
	endpoint, err := storage.ReadEndpoint(path)
	require.NoError(t, err)
	b, err := bt.Connect(endpoint)
	require.NoError(t, err)
	assert.True(t, b.IsConnected())
	assert.NotEmpty(t, b.Version())

	bctx, err := b.NewContext(nil)
	require.NoError(t, err)
	page, err := bctx.NewPage()
	require.NoError(t, err)
	require.NoError(t, page.SetContent("<title>hand-off</title>"))
	title, err := page.Title()
	require.NoError(t, err)
	assert.Equal(t, "hand-off", title)

	require.NoError(t, b.Close())
	require.NoError(t, srv.Close())
	assert.Empty(t, browserprocess.Registered(ctx))
}
