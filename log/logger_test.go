package log

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nascentdigital/scene/env"
)

func newBufferLogger(debug bool, filter *regexp.Regexp) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return New(l, debug, filter), &buf
}

func TestLoggerLevels(t *testing.T) {
	t.Parallel()

	t.Run("info_by_default", func(t *testing.T) {
		t.Parallel()

		l, buf := newBufferLogger(false, nil)
		l.Debugf("Page:navigate", "hidden")
		l.Infof("Page:navigate", "shown %d", 1)

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown 1")
		assert.Contains(t, buf.String(), "category=\"Page:navigate\"")
		assert.False(t, l.DebugMode())
	})

	t.Run("debug", func(t *testing.T) {
		t.Parallel()

		l, buf := newBufferLogger(true, nil)
		l.Debugf("Registry:setup", "visible")

		assert.Contains(t, buf.String(), "visible")
		assert.True(t, l.DebugMode())
	})

	t.Run("set_level", func(t *testing.T) {
		t.Parallel()

		l, buf := newBufferLogger(false, nil)
		require.NoError(t, l.SetLevel("error"))
		l.Warnf("x", "dropped")
		l.Errorf("x", "kept")

		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
		assert.Error(t, l.SetLevel("loud"))
	})
}

func TestLoggerCategoryFilter(t *testing.T) {
	t.Parallel()

	l, buf := newBufferLogger(true, regexp.MustCompile(`^Page:`))
	l.Debugf("Page:navigate", "page entry")
	l.Debugf("Registry:setup", "registry entry")

	assert.Contains(t, buf.String(), "page entry")
	assert.NotContains(t, buf.String(), "registry entry")
}

func TestNilLogger(t *testing.T) {
	t.Parallel()

	var l *Logger
	assert.NotPanics(t, func() { l.Debugf("x", "y") })
}

func TestNewFromEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		env       map[string]string
		wantDebug bool
		wantErr   string
	}{
		{name: "unset"},
		{name: "debug", env: map[string]string{env.Debug: "true"}, wantDebug: true},
		{name: "debug_off", env: map[string]string{env.Debug: "0"}},
		{name: "bad_debug", env: map[string]string{env.Debug: "yes please"}, wantErr: "parsing SCENE_DEBUG"},
		{name: "filter", env: map[string]string{env.LogCategoryFilter: "^Page"}},
		{name: "bad_filter", env: map[string]string{env.LogCategoryFilter: "("}, wantErr: "compiling SCENE_LOG_CATEGORY_FILTER"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, err := NewFromEnv(env.MapLookup(tt.env))
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDebug, l.DebugMode())
		})
	}
}
