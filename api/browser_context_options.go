package api

import (
	"fmt"

	"gopkg.in/guregu/null.v3"
)

// Defaults applied by NewBrowserContextOptions.
const (
	DefaultLocale         = "en-US"
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
)

// BrowserContextOptions stores browser context options.
// A null JavaScriptEnabled leaves JavaScript on.
type BrowserContextOptions struct {
	BaseURL           string            `json:"baseURL"`
	ExtraHTTPHeaders  map[string]string `json:"extraHTTPHeaders"`
	Geolocation       *Geolocation      `json:"geolocation"`
	IgnoreHTTPSErrors bool              `json:"ignoreHTTPSErrors"`
	JavaScriptEnabled null.Bool         `json:"javaScriptEnabled"`
	Locale            string            `json:"locale"`
	Offline           bool              `json:"offline"`
	Permissions       []string          `json:"permissions"`
	UserAgent         string            `json:"userAgent"`
	Viewport          *Viewport         `json:"viewport"`
}

// NewBrowserContextOptions creates a default set of browser context options.
func NewBrowserContextOptions() *BrowserContextOptions {
	return &BrowserContextOptions{
		ExtraHTTPHeaders:  make(map[string]string),
		JavaScriptEnabled: null.BoolFrom(true),
		Locale:            DefaultLocale,
		Permissions:       []string{},
		Viewport:          &Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight},
	}
}

// Validate validates the browser context options.
func (b *BrowserContextOptions) Validate() error {
	if b == nil {
		return nil
	}
	if err := b.Geolocation.Validate(); err != nil {
		return fmt.Errorf("validating geolocation option: %w", err)
	}
	if err := b.Viewport.Validate(); err != nil {
		return fmt.Errorf("validating viewport option: %w", err)
	}

	return nil
}

// Viewport is the visible area of a page, in CSS pixels.
type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Validate validates the viewport.
func (v *Viewport) Validate() error {
	if v == nil {
		return nil
	}
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf(`invalid viewport "%dx%d": precondition 0 < WIDTH, 0 < HEIGHT failed`, v.Width, v.Height)
	}

	return nil
}

// Geolocation represents a geolocation.
type Geolocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
}

// Validate validates the geolocation.
func (g *Geolocation) Validate() error {
	if g == nil {
		return nil // nothing to validate
	}

	if g.Accuracy < 0 {
		return fmt.Errorf(`invalid accuracy "%.2f": precondition 0 <= ACCURACY failed`, g.Accuracy)
	}
	if g.Latitude < -90 || g.Latitude > 90 {
		return fmt.Errorf(`invalid latitude "%.2f": precondition -90 <= LATITUDE <= 90 failed`, g.Latitude)
	}
	if g.Longitude < -180 || g.Longitude > 180 {
		return fmt.Errorf(`invalid longitude "%.2f": precondition -180 <= LONGITUDE <= 180 failed`, g.Longitude)
	}

	return nil
}
