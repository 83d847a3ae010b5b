package engine

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/nascentdigital/scene/api"
	"github.com/nascentdigital/scene/log"
)

// Ensure BrowserContext implements the api.BrowserContext interface.
var _ api.BrowserContext = &BrowserContext{}

// BrowserContext is a playwright browser context.
type BrowserContext struct {
	c      playwright.BrowserContext
	logger *log.Logger
}

func (b *BrowserContext) AddCookies(cookies []api.Cookie) error {
	return b.c.AddCookies(fromCookies(cookies))
}

func (b *BrowserContext) ClearCookies() error {
	return b.c.ClearCookies()
}

func (b *BrowserContext) Close() error {
	b.logger.Debugf("BrowserContext:Close", "")
	return b.c.Close()
}

// Cookies returns the cookies of the context, limited to those that apply
// to urls when any are given.
func (b *BrowserContext) Cookies(urls ...string) ([]api.Cookie, error) {
	cookies, err := b.c.Cookies(urls...)
	if err != nil {
		return nil, err
	}
	return toCookies(cookies), nil
}

// NewPage opens a page in the context.
func (b *BrowserContext) NewPage() (api.Page, error) {
	p, err := b.c.NewPage()
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}
	return &Page{p: p, bctx: b, logger: b.logger}, nil
}

func (b *BrowserContext) SetDefaultNavigationTimeout(timeout time.Duration) error {
	b.c.SetDefaultNavigationTimeout(milliseconds(timeout))
	return nil
}

func (b *BrowserContext) SetDefaultTimeout(timeout time.Duration) error {
	b.c.SetDefaultTimeout(milliseconds(timeout))
	return nil
}

func (b *BrowserContext) SetExtraHTTPHeaders(headers map[string]string) error {
	return b.c.SetExtraHTTPHeaders(headers)
}

func (b *BrowserContext) SetOffline(offline bool) error {
	return b.c.SetOffline(offline)
}
