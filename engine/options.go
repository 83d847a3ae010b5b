package engine

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/nascentdigital/scene/api"
)

// milliseconds converts d to the float milliseconds playwright expects.
func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func launchOptions(opts *api.LaunchOptions) (playwright.BrowserTypeLaunchOptions, error) {
	var lopts playwright.BrowserTypeLaunchOptions
	if opts == nil {
		return lopts, nil
	}

	if len(opts.Extra) > 0 {
		b, err := json.Marshal(opts.Extra)
		if err != nil {
			return lopts, fmt.Errorf("encoding extra launch options: %w", err)
		}
		if err := json.Unmarshal(b, &lopts); err != nil {
			return lopts, fmt.Errorf("decoding extra launch options: %w", err)
		}
	}

	if opts.Args != nil {
		lopts.Args = opts.Args
	}
	if opts.Env != nil {
		lopts.Env = opts.Env
	}
	if opts.Headless.Valid {
		lopts.Headless = playwright.Bool(opts.Headless.Bool)
	}
	if opts.Devtools.Valid {
		lopts.Devtools = playwright.Bool(opts.Devtools.Bool)
	}
	if opts.ChromiumSandbox.Valid {
		lopts.ChromiumSandbox = playwright.Bool(opts.ChromiumSandbox.Bool)
	}
	if opts.DownloadsPath.Valid {
		lopts.DownloadsPath = playwright.String(opts.DownloadsPath.String)
	}
	if opts.ExecutablePath.Valid {
		lopts.ExecutablePath = playwright.String(opts.ExecutablePath.String)
	}
	if opts.Channel.Valid {
		lopts.Channel = playwright.String(opts.Channel.String)
	}
	if opts.SlowMo.Valid {
		lopts.SlowMo = playwright.Float(milliseconds(opts.SlowMoDuration()))
	}
	if opts.Timeout.Valid {
		lopts.Timeout = playwright.Float(milliseconds(opts.TimeoutDuration()))
	}
	if p := opts.Proxy; p != nil {
		lopts.Proxy = &playwright.Proxy{Server: p.Server}
		if p.Bypass != "" {
			lopts.Proxy.Bypass = playwright.String(p.Bypass)
		}
		if p.Username != "" {
			lopts.Proxy.Username = playwright.String(p.Username)
			lopts.Proxy.Password = playwright.String(p.Password)
		}
	}

	return lopts, nil
}

// serverConfig is the launch-server configuration file read by the
// playwright driver.
type serverConfig struct {
	Args            []string          `json:"args,omitempty"`
	Channel         *string           `json:"channel,omitempty"`
	ChromiumSandbox *bool             `json:"chromiumSandbox,omitempty"`
	Devtools        *bool             `json:"devtools,omitempty"`
	DownloadsPath   *string           `json:"downloadsPath,omitempty"`
	Env             map[string]string `json:"env,omitempty"`
	ExecutablePath  *string           `json:"executablePath,omitempty"`
	Headless        *bool             `json:"headless,omitempty"`
	Proxy           *serverProxy      `json:"proxy,omitempty"`
	SlowMo          *float64          `json:"slowMo,omitempty"`
	Timeout         *float64          `json:"timeout,omitempty"`
}

type serverProxy struct {
	Server   string  `json:"server"`
	Bypass   *string `json:"bypass,omitempty"`
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
}

// newServerConfig encodes opts for the launch-server command. Extra options
// are passed through unchanged; modelled ones take precedence over them.
func newServerConfig(opts *api.LaunchOptions) ([]byte, error) {
	lopts, err := launchOptions(opts)
	if err != nil {
		return nil, err
	}
	sc := serverConfig{
		Args:            lopts.Args,
		Channel:         lopts.Channel,
		ChromiumSandbox: lopts.ChromiumSandbox,
		Devtools:        lopts.Devtools,
		DownloadsPath:   lopts.DownloadsPath,
		Env:             lopts.Env,
		ExecutablePath:  lopts.ExecutablePath,
		Headless:        lopts.Headless,
		SlowMo:          lopts.SlowMo,
		Timeout:         lopts.Timeout,
	}
	if p := lopts.Proxy; p != nil {
		sc.Proxy = &serverProxy{Server: p.Server, Bypass: p.Bypass, Username: p.Username, Password: p.Password}
	}

	modelled, err := json.Marshal(sc)
	if err != nil {
		return nil, err
	}
	if opts == nil || len(opts.Extra) == 0 {
		return modelled, nil
	}

	merged := make(map[string]interface{}, len(opts.Extra))
	for k, v := range opts.Extra {
		merged[k] = v
	}
	if err := json.Unmarshal(modelled, &merged); err != nil {
		return nil, err
	}
	return json.Marshal(merged)
}

func contextOptions(opts *api.BrowserContextOptions) playwright.BrowserNewContextOptions {
	if opts == nil {
		opts = api.NewBrowserContextOptions()
	}

	copts := playwright.BrowserNewContextOptions{
		ExtraHttpHeaders:  opts.ExtraHTTPHeaders,
		IgnoreHttpsErrors: playwright.Bool(opts.IgnoreHTTPSErrors),
		Offline:           playwright.Bool(opts.Offline),
		Permissions:       opts.Permissions,
	}
	if opts.BaseURL != "" {
		copts.BaseURL = playwright.String(opts.BaseURL)
	}
	if opts.JavaScriptEnabled.Valid {
		copts.JavaScriptEnabled = playwright.Bool(opts.JavaScriptEnabled.Bool)
	}
	if opts.Locale != "" {
		copts.Locale = playwright.String(opts.Locale)
	}
	if opts.UserAgent != "" {
		copts.UserAgent = playwright.String(opts.UserAgent)
	}
	if v := opts.Viewport; v != nil {
		copts.Viewport = &playwright.Size{Width: v.Width, Height: v.Height}
	}
	if g := opts.Geolocation; g != nil {
		copts.Geolocation = &playwright.Geolocation{
			Latitude:  g.Latitude,
			Longitude: g.Longitude,
			Accuracy:  playwright.Float(g.Accuracy),
		}
	}

	return copts
}

func gotoOptions(opts *api.GotoOptions) playwright.PageGotoOptions {
	var gopts playwright.PageGotoOptions
	if opts == nil {
		return gopts
	}

	if opts.WaitUntil != "" {
		w := playwright.WaitUntilState(opts.WaitUntil)
		gopts.WaitUntil = &w
	}
	if opts.Timeout > 0 {
		gopts.Timeout = playwright.Float(milliseconds(opts.Timeout))
	}
	if opts.Referer != "" {
		gopts.Referer = playwright.String(opts.Referer)
	}

	return gopts
}

func toCookies(cookies []playwright.Cookie) []api.Cookie {
	out := make([]api.Cookie, 0, len(cookies))
	for _, c := range cookies {
		out = append(out, api.Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     c.Path,
			Expires:  c.Expires,
			HTTPOnly: c.HttpOnly,
			Secure:   c.Secure,
		})
	}
	return out
}

func fromCookies(cookies []api.Cookie) []playwright.OptionalCookie {
	out := make([]playwright.OptionalCookie, 0, len(cookies))
	for _, c := range cookies {
		oc := playwright.OptionalCookie{
			Name:     c.Name,
			Value:    c.Value,
			HttpOnly: playwright.Bool(c.HTTPOnly),
			Secure:   playwright.Bool(c.Secure),
		}
		if c.URL != "" {
			oc.URL = playwright.String(c.URL)
		}
		if c.Domain != "" {
			oc.Domain = playwright.String(c.Domain)
		}
		if c.Path != "" {
			oc.Path = playwright.String(c.Path)
		}
		if c.Expires != 0 {
			oc.Expires = playwright.Float(c.Expires)
		}
		out = append(out, oc)
	}
	return out
}
