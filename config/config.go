// Package config loads the scene configuration file.
package config

import (
	"fmt"

	"github.com/nascentdigital/scene/api"
	"github.com/nascentdigital/scene/auth"
	"github.com/nascentdigital/scene/sceneerror"
)

// Configuration is the value a scene configuration file describes.
type Configuration struct {
	// BrowserOptions are used when the browser is launched. Nil means
	// engine defaults.
	BrowserOptions *api.LaunchOptions `json:"browserOptions"`

	// Credentials maps hosts to the basic auth credentials attached when
	// navigating to them.
	Credentials auth.Registry `json:"credentials"`
}

// Validate validates the configuration. Errors wrap
// sceneerror.ErrConfiguration.
func (c *Configuration) Validate() error {
	if c == nil {
		return nil
	}
	if err := c.BrowserOptions.Validate(); err != nil {
		return fmt.Errorf("%w: browserOptions: %w", sceneerror.ErrConfiguration, err)
	}
	for host, cred := range c.Credentials {
		if host == "" {
			return fmt.Errorf("%w: credentials: empty host", sceneerror.ErrConfiguration)
		}
		if cred.Username == "" {
			return fmt.Errorf("%w: credentials for %q: empty username", sceneerror.ErrConfiguration, host)
		}
	}

	return nil
}

// LaunchOptions returns the configured launch options, or headless
// defaults when none are configured.
func (c *Configuration) LaunchOptions() *api.LaunchOptions {
	if c == nil || c.BrowserOptions == nil {
		return api.NewLaunchOptions()
	}
	return c.BrowserOptions
}
