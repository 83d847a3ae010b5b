package api

import "time"

// BrowserContext is the public interface of an isolated browser session.
type BrowserContext interface {
	AddCookies(cookies []Cookie) error
	ClearCookies() error
	Close() error
	Cookies(urls ...string) ([]Cookie, error)
	NewPage() (Page, error)
	SetDefaultNavigationTimeout(timeout time.Duration) error
	SetDefaultTimeout(timeout time.Duration) error
	SetExtraHTTPHeaders(headers map[string]string) error
	SetOffline(offline bool) error
}

// Cookie is a browser cookie.
type Cookie struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	URL      string  `json:"url,omitempty"`
	Domain   string  `json:"domain,omitempty"`
	Path     string  `json:"path,omitempty"`
	Expires  float64 `json:"expires,omitempty"`
	HTTPOnly bool    `json:"httpOnly,omitempty"`
	Secure   bool    `json:"secure,omitempty"`
}
