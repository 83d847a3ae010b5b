// Package tests runs scene against a real browser. The tests are skipped
// unless SCENE_INTEGRATION is set.
package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/mccutchen/go-httpbin/httpbin"
	"github.com/stretchr/testify/require"

	"github.com/nascentdigital/scene/env"
	"github.com/nascentdigital/scene/scenetest"
)

var (
	sharedEnv     *scenetest.Environment //nolint:gochecknoglobals
	sharedEnvErr  error                  //nolint:gochecknoglobals
	sharedEnvOnce sync.Once              //nolint:gochecknoglobals
)

// environment returns the browser environment shared by the tests of this
// package, opening it on first use.
func environment(t testing.TB) *scenetest.Environment {
	t.Helper()

	if !integrationEnabled(env.Lookup) {
		t.Skipf("set %s=1 to run browser tests", env.Integration)
	}
	sharedEnvOnce.Do(func() {
		sharedEnv, sharedEnvErr = scenetest.NewEnvironment(context.Background(), env.Lookup)
	})
	require.NoError(t, sharedEnvErr, "opening the browser environment")

	return sharedEnv
}

func closeEnvironment() error {
	if sharedEnv == nil {
		return nil
	}
	return sharedEnv.Close()
}

func integrationEnabled(lookup env.LookupFunc) bool {
	v, ok := lookup(env.Integration)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// testServer serves httpbin plus the handlers a test adds.
type testServer struct {
	*httptest.Server
	mux *http.ServeMux
}

func newTestServer(t testing.TB) *testServer {
	t.Helper()

	mux := http.NewServeMux()
	mux.Handle("/", httpbin.New().Handler())
	s := &testServer{Server: httptest.NewServer(mux), mux: mux}
	t.Cleanup(s.Close)

	return s
}

// withHandler adds a handler for pattern.
func (s *testServer) withHandler(pattern string, handler http.HandlerFunc) *testServer {
	s.mux.HandleFunc(pattern, handler)
	return s
}

// url returns the absolute URL of path on the server.
func (s *testServer) url(path string) string {
	return s.Server.URL + path
}

// host returns the host:port credentials for the server are keyed on.
func (s *testServer) host(t testing.TB) string {
	t.Helper()

	u, err := url.Parse(s.Server.URL)
	require.NoError(t, err)
	return u.Host
}
