package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dop251/goja"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nascentdigital/scene/env"
	"github.com/nascentdigital/scene/sceneerror"
)

// Names searched by Find, in order.
var fileNames = []string{ //nolint:gochecknoglobals
	"scene.config.js",
	"scene.yaml",
	"scene.yml",
	"scene.json",
}

// Find returns the configuration file to load: the SCENE_CONFIG path when
// set, otherwise the first well-known file present in dir. It reports false
// when there is none.
func Find(dir string, lookup env.LookupFunc) (string, bool) {
	if p, ok := lookup(env.ConfigPath); ok && p != "" {
		return p, true
	}
	for _, name := range fileNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}

	return "", false
}

// LoadDefault loads the configuration found by Find in dir. A missing file
// yields an empty configuration.
func LoadDefault(dir string, lookup env.LookupFunc) (*Configuration, error) {
	p, ok := Find(dir, lookup)
	if !ok {
		return &Configuration{}, nil
	}
	return Load(p)
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Configuration, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrapf(err, "reading configuration %q", path)
	}
	return Parse(path, data, environ())
}

// Parse decodes data according to the extension of name. JavaScript files
// are evaluated and must assign module.exports; environ is exposed to them
// as process.env.
func Parse(name string, data []byte, environ map[string]string) (*Configuration, error) {
	var (
		raw interface{}
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".js", ".cjs":
		raw, err = decodeJS(name, data, environ)
	case ".yaml", ".yml":
		raw, err = decodeYAML(data)
	case ".json":
		raw, err = decodeJSON(data)
	default:
		return nil, fmt.Errorf("%w: unsupported configuration file type %q", sceneerror.ErrConfiguration, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", sceneerror.ErrConfiguration, errors.Wrapf(err, "parsing %q", name))
	}

	cfg, err := normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", sceneerror.ErrConfiguration, errors.Wrapf(err, "decoding %q", name))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func decodeJS(name string, src []byte, environ map[string]string) (interface{}, error) {
	rt := goja.New()
	module := rt.NewObject()
	exports := rt.NewObject()
	if err := module.Set("exports", exports); err != nil {
		return nil, err
	}

	process := rt.NewObject()
	if err := process.Set("env", environ); err != nil {
		return nil, err
	}

	global := rt.GlobalObject()
	for k, v := range map[string]interface{}{
		"module":  module,
		"exports": exports,
		"process": process,
	} {
		if err := global.Set(k, v); err != nil {
			return nil, err
		}
	}

	if _, err := rt.RunScript(name, string(src)); err != nil {
		return nil, errors.Wrap(err, "evaluating script")
	}

	v := module.Get("exports")
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return map[string]interface{}{}, nil
	}

	return v.Export(), nil
}

func decodeYAML(data []byte) (interface{}, error) {
	var v map[string]interface{}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeJSON(data []byte) (interface{}, error) {
	var v map[string]interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// normalize routes every decoder's output through JSON so the optional
// value types behave the same regardless of the file format.
func normalize(raw interface{}) (*Configuration, error) {
	if raw == nil {
		return &Configuration{}, nil
	}
	if _, ok := raw.(map[string]interface{}); !ok {
		return nil, fmt.Errorf("configuration must be an object, got %T", raw)
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	// Unknown top-level keys are rejected; unknown browserOptions keys are
	// kept by api.LaunchOptions for the engine.
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()

	var cfg Configuration
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func environ() map[string]string {
	m := make(map[string]string)
	for _, kv := range os.Environ() {
		if i := strings.IndexByte(kv, '='); i > 0 {
			m[kv[:i]] = kv[i+1:]
		}
	}
	return m
}
