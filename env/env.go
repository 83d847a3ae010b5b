// Package env provides types to interact with environment setup.
package env

import "os"

// LookupFunc defines a function to look up a key from the environment.
type LookupFunc func(key string) (string, bool)

// Lookup looks up keys in the process environment.
func Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// EmptyLookup is a LookupFunc that always returns "" and false.
func EmptyLookup(_ string) (string, bool) { return "", false }

// ConstLookup is a LookupFunc that returns the given value if the given key
// matches the given key.
func ConstLookup(k, v string) LookupFunc {
	return func(key string) (string, bool) {
		if key == k {
			return v, true
		}
		return "", false
	}
}

// MapLookup returns a LookupFunc backed by m.
func MapLookup(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// Environment variables recognised by scene.
const (
	// BrowserType selects the browser engine: chromium, firefox or webkit.
	BrowserType = "SCENE_BROWSER"

	// ConfigPath points at the configuration file.
	ConfigPath = "SCENE_CONFIG"

	// EndpointFile points at the file that carries the browser server
	// endpoint from the global setup process to the test binaries.
	EndpointFile = "SCENE_ENDPOINT_FILE"

	// Debug enables debug logging.
	Debug = "SCENE_DEBUG"

	// LogCategoryFilter is a regular expression that log categories must
	// match to be written.
	LogCategoryFilter = "SCENE_LOG_CATEGORY_FILTER"

	// Integration enables the browser backed tests.
	Integration = "SCENE_INTEGRATION"
)
