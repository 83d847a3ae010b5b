package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gopkg.in/guregu/null.v3"
)

// LaunchOptions stores the options used to start a browser.
// Unset values leave the engine defaults in place.
type LaunchOptions struct {
	Args            []string          `json:"args"`
	Channel         null.String       `json:"channel"`
	ChromiumSandbox null.Bool         `json:"chromiumSandbox"`
	Devtools        null.Bool         `json:"devtools"`
	DownloadsPath   null.String       `json:"downloadsPath"`
	Env             map[string]string `json:"env"`
	ExecutablePath  null.String       `json:"executablePath"`
	Headless        null.Bool         `json:"headless"`
	Proxy           *ProxyOptions     `json:"proxy"`
	SlowMo          null.Int          `json:"slowMo"`
	Timeout         null.Int          `json:"timeout"`

	// Extra holds the engine launch options not modelled above. They are
	// handed to the engine as decoded.
	Extra map[string]interface{} `json:"-"`
}

// ProxyOptions routes the browser's traffic through a proxy.
type ProxyOptions struct {
	Server   string `json:"server"`
	Bypass   string `json:"bypass"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// launchOptionKeys are the keys decoded into LaunchOptions fields.
var launchOptionKeys = []string{ //nolint:gochecknoglobals
	"args", "channel", "chromiumSandbox", "devtools", "downloadsPath", "env",
	"executablePath", "headless", "proxy", "slowMo", "timeout",
}

// NewLaunchOptions returns launch options that start a headless browser.
func NewLaunchOptions() *LaunchOptions {
	return &LaunchOptions{
		Headless: null.BoolFrom(true),
	}
}

// UnmarshalJSON decodes the modelled options and keeps the rest in Extra.
func (l *LaunchOptions) UnmarshalJSON(data []byte) error {
	type plain LaunchOptions
	var opts plain
	if err := json.Unmarshal(data, &opts); err != nil {
		return err
	}

	var rest map[string]interface{}
	if err := json.Unmarshal(data, &rest); err != nil {
		return err
	}
	for _, k := range launchOptionKeys {
		delete(rest, k)
	}
	if len(rest) > 0 {
		opts.Extra = rest
	}

	*l = LaunchOptions(opts)
	return nil
}

// SlowMoDuration returns the SlowMo option as a duration.
func (l *LaunchOptions) SlowMoDuration() time.Duration {
	return time.Duration(l.SlowMo.ValueOrZero()) * time.Millisecond
}

// TimeoutDuration returns the Timeout option as a duration.
func (l *LaunchOptions) TimeoutDuration() time.Duration {
	return time.Duration(l.Timeout.ValueOrZero()) * time.Millisecond
}

// Validate validates the launch options.
func (l *LaunchOptions) Validate() error {
	if l == nil {
		return nil
	}
	if l.SlowMo.Valid && l.SlowMo.Int64 < 0 {
		return fmt.Errorf(`invalid slowMo "%d": precondition 0 <= SLOWMO failed`, l.SlowMo.Int64)
	}
	if l.Timeout.Valid && l.Timeout.Int64 < 0 {
		return fmt.Errorf(`invalid timeout "%d": precondition 0 <= TIMEOUT failed`, l.Timeout.Int64)
	}
	if l.Proxy != nil && l.Proxy.Server == "" {
		return errors.New("invalid proxy: server is required")
	}
	return nil
}
