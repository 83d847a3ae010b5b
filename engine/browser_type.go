// Package engine implements the api interfaces on top of playwright-go.
package engine

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/nascentdigital/scene/api"
	"github.com/nascentdigital/scene/env"
	"github.com/nascentdigital/scene/log"
	"github.com/nascentdigital/scene/sceneerror"
)

// Browser engine names.
const (
	Chromium = "chromium"
	Firefox  = "firefox"
	WebKit   = "webkit"
)

// BrowserTypes lists the supported browser engines.
var BrowserTypes = []string{Chromium, Firefox, WebKit} //nolint:gochecknoglobals

// IsBrowserType reports whether name is a supported browser engine.
func IsBrowserType(name string) bool {
	for _, bt := range BrowserTypes {
		if bt == name {
			return true
		}
	}
	return false
}

// ParseBrowserType validates name and returns it.
func ParseBrowserType(name string) (string, error) {
	if !IsBrowserType(name) {
		return "", fmt.Errorf("%w: unknown browser type %q, want one of %s",
			sceneerror.ErrConfiguration, name, strings.Join(BrowserTypes, ", "))
	}
	return name, nil
}

// ResolveBrowserType returns the browser engine named by SCENE_BROWSER.
// Unset and unknown values fall back to chromium.
func ResolveBrowserType(lookup env.LookupFunc, logger *log.Logger) string {
	v, ok := lookup(env.BrowserType)
	if !ok || v == "" {
		return Chromium
	}
	if !IsBrowserType(v) {
		logger.Warnf("BrowserType:resolve", "unknown %s %q, using %s", env.BrowserType, v, Chromium)
		return Chromium
	}
	return v
}

// Ensure BrowserType implements the api.BrowserType interface.
var _ api.BrowserType = &BrowserType{}

// BrowserType launches or connects to one browser engine.
type BrowserType struct {
	pw     *Playwright
	bt     playwright.BrowserType
	name   string
	logger *log.Logger
}

// Name returns the engine name: chromium, firefox or webkit.
func (t *BrowserType) Name() string {
	return t.name
}

// Launch starts a browser owned by this process.
func (t *BrowserType) Launch(opts *api.LaunchOptions) (api.Browser, error) {
	if opts == nil {
		opts = api.NewLaunchOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", sceneerror.ErrConfiguration, err)
	}

	lopts, err := launchOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", sceneerror.ErrConfiguration, err)
	}

	t.logger.Debugf("BrowserType:Launch", "browser:%s headless:%v", t.name, opts.Headless.ValueOrZero())
	b, err := t.bt.Launch(lopts)
	if err != nil {
		return nil, fmt.Errorf("launching %s: %w", t.name, err)
	}

	return newBrowser(b, t.logger), nil
}

// Connect attaches to a browser server listening on wsEndpoint.
func (t *BrowserType) Connect(wsEndpoint string) (api.Browser, error) {
	t.logger.Debugf("BrowserType:Connect", "browser:%s endpoint:%s", t.name, wsEndpoint)

	b, err := t.bt.Connect(wsEndpoint)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s at %q: %w", t.name, wsEndpoint, err)
	}

	return newBrowser(b, t.logger), nil
}
