package common

import (
	"time"

	"github.com/nascentdigital/scene/api"
)

// Ensure BrowserContext implements the api.BrowserContext interface.
var _ api.BrowserContext = &BrowserContext{}

// BrowserContext forwards to whichever browser context its handle currently
// holds. Pages created through it are wrapped in a Page.
type BrowserContext struct {
	scene *Scene
	ref   *Ref[api.BrowserContext]
}

func newBrowserContext(s *Scene, ref *Ref[api.BrowserContext]) *BrowserContext {
	return &BrowserContext{
		scene: s,
		ref:   ref,
	}
}

// Bound reports whether a browser context currently backs b.
func (b *BrowserContext) Bound() bool {
	return b.ref.HasValue()
}

// NewPage creates a page in the bound context. The result is a *Page whose
// Context method returns b.
func (b *BrowserContext) NewPage() (api.Page, error) {
	raw, err := forward(b.ref, kindBrowserContext)
	if err != nil {
		return nil, err
	}
	page, err := raw.NewPage()
	if err != nil {
		return nil, err
	}
	b.scene.logger.Debugf("BrowserContext:NewPage", "wrapping page")

	return newPage(b.scene, NewRefOf(page), b), nil
}

// AddCookies adds cookies to the bound context.
func (b *BrowserContext) AddCookies(cookies []api.Cookie) error {
	return dispatchErr(b.ref, kindBrowserContext, func(bctx api.BrowserContext) error {
		return bctx.AddCookies(cookies)
	})
}

// ClearCookies removes every cookie of the bound context.
func (b *BrowserContext) ClearCookies() error {
	return dispatchErr(b.ref, kindBrowserContext, api.BrowserContext.ClearCookies)
}

// Close closes the bound context. The handle stays bound until teardown.
func (b *BrowserContext) Close() error {
	return dispatchErr(b.ref, kindBrowserContext, api.BrowserContext.Close)
}

// Cookies returns the cookies of the bound context.
func (b *BrowserContext) Cookies(urls ...string) ([]api.Cookie, error) {
	return dispatch(b.ref, kindBrowserContext, func(bctx api.BrowserContext) ([]api.Cookie, error) {
		return bctx.Cookies(urls...)
	})
}

// SetDefaultNavigationTimeout sets the navigation timeout of the bound context.
func (b *BrowserContext) SetDefaultNavigationTimeout(timeout time.Duration) error {
	return dispatchErr(b.ref, kindBrowserContext, func(bctx api.BrowserContext) error {
		return bctx.SetDefaultNavigationTimeout(timeout)
	})
}

// SetDefaultTimeout sets the default timeout of the bound context.
func (b *BrowserContext) SetDefaultTimeout(timeout time.Duration) error {
	return dispatchErr(b.ref, kindBrowserContext, func(bctx api.BrowserContext) error {
		return bctx.SetDefaultTimeout(timeout)
	})
}

// SetExtraHTTPHeaders sets headers sent with every request of the bound context.
func (b *BrowserContext) SetExtraHTTPHeaders(headers map[string]string) error {
	return dispatchErr(b.ref, kindBrowserContext, func(bctx api.BrowserContext) error {
		return bctx.SetExtraHTTPHeaders(headers)
	})
}

// SetOffline toggles network emulation of the bound context.
func (b *BrowserContext) SetOffline(offline bool) error {
	return dispatchErr(b.ref, kindBrowserContext, func(bctx api.BrowserContext) error {
		return bctx.SetOffline(offline)
	})
}
