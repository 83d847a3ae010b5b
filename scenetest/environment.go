// Package scenetest binds scene handles to Go test runners.
package scenetest

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/nascentdigital/scene/api"
	"github.com/nascentdigital/scene/common"
	"github.com/nascentdigital/scene/config"
	"github.com/nascentdigital/scene/engine"
	"github.com/nascentdigital/scene/env"
	"github.com/nascentdigital/scene/hooks"
	"github.com/nascentdigital/scene/log"
	"github.com/nascentdigital/scene/storage"
)

// SceneBuilder builds scenes whose hooks are registered with registrar.
type SceneBuilder interface {
	Scene(registrar hooks.Registrar) *common.Scene
}

// Environment is the browser shared by the tests of one test binary.
//
// When scene-server published a browser server endpoint the environment
// connects to it; otherwise it launches a browser of its own.
type Environment struct {
	cfg      *config.Configuration
	browser  api.Browser
	endpoint string
	stop     func() error
	logger   *log.Logger
}

// Ensure Environment implements the SceneBuilder interface.
var _ SceneBuilder = &Environment{}

// NewEnvironment starts playwright and opens the browser described by the
// configuration file and environment variables found through lookup.
func NewEnvironment(ctx context.Context, lookup env.LookupFunc) (*Environment, error) {
	logger, err := log.NewFromEnv(lookup)
	if err != nil {
		return nil, err
	}
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}
	cfg, err := config.LoadDefault(dir, lookup)
	if err != nil {
		return nil, err
	}

	pw, err := engine.Run(ctx, logger)
	if err != nil {
		return nil, err
	}
	bt, err := pw.BrowserType(engine.ResolveBrowserType(lookup, logger))
	if err != nil {
		_ = pw.Stop()
		return nil, err
	}

	e, err := open(cfg, bt, storage.DefaultEndpointFile(lookup), logger)
	if err != nil {
		_ = pw.Stop()
		return nil, err
	}
	e.stop = pw.Stop

	return e, nil
}

// open connects to the endpoint published in endpointFile, or launches a
// browser when there is none.
func open(cfg *config.Configuration, bt api.BrowserType, endpointFile string, logger *log.Logger) (*Environment, error) {
	e := &Environment{cfg: cfg, logger: logger}

	endpoint, err := storage.ReadEndpoint(endpointFile)
	switch {
	case errors.Is(err, storage.ErrNoEndpoint):
		logger.Infof("Environment:open", "no browser server endpoint, launching %s", bt.Name())
		e.browser, err = bt.Launch(cfg.LaunchOptions())
	case err != nil:
		return nil, err
	default:
		e.endpoint = endpoint
		e.browser, err = bt.Connect(endpoint)
	}
	if err != nil {
		return nil, err
	}

	return e, nil
}

// Browser returns the shared browser.
func (e *Environment) Browser() api.Browser {
	return e.browser
}

// Config returns the loaded configuration.
func (e *Environment) Config() *config.Configuration {
	return e.cfg
}

// Endpoint returns the browser server endpoint, or "" when the browser was
// launched by this process.
func (e *Environment) Endpoint() string {
	return e.endpoint
}

// Logger returns the environment logger.
func (e *Environment) Logger() *log.Logger {
	return e.logger
}

// Scene returns a scene creating its resources on the shared browser.
func (e *Environment) Scene(registrar hooks.Registrar) *common.Scene {
	return common.NewScene(e.browser, registrar, e.cfg, e.logger)
}

// Close closes or disconnects the browser and stops playwright.
func (e *Environment) Close() error {
	var errs []error
	if err := e.browser.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing browser: %w", err))
	}
	if e.stop != nil {
		if err := e.stop(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
