package scenetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nascentdigital/scene/hooks"
)

// BindSuite fires the suite setup of r now and its teardown when t
// finishes. Call it once in the parent test, after every handle has been
// declared.
func BindSuite(t testing.TB, r *hooks.Registry) {
	t.Helper()

	t.Cleanup(func() {
		assert.NoError(t, r.AfterAll(), "suite teardown")
	})
	require.NoError(t, r.BeforeAll(), "suite setup")
}

// BindTest fires the test setup of r now and its teardown when t finishes.
// Call it at the start of every subtest.
func BindTest(t testing.TB, r *hooks.Registry) {
	t.Helper()

	t.Cleanup(func() {
		assert.NoError(t, r.AfterEach(), "test teardown")
	})
	require.NoError(t, r.BeforeEach(), "test setup")
}
