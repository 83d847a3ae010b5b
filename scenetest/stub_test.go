package scenetest

import (
	"errors"
	"net/url"
	"sync"
	"time"

	"github.com/nascentdigital/scene/api"
	"github.com/nascentdigital/scene/common"
	"github.com/nascentdigital/scene/hooks"
)

type stubBrowserType struct {
	launched  []*api.LaunchOptions
	connected []string
	browser   *stubBrowser
}

func (bt *stubBrowserType) Name() string { return "stub" }

func (bt *stubBrowserType) Launch(opts *api.LaunchOptions) (api.Browser, error) {
	bt.launched = append(bt.launched, opts)
	return bt.browser, nil
}

func (bt *stubBrowserType) Connect(wsEndpoint string) (api.Browser, error) {
	bt.connected = append(bt.connected, wsEndpoint)
	return bt.browser, nil
}

func (bt *stubBrowserType) LaunchServer(*api.LaunchOptions) (api.BrowserServer, error) {
	return nil, errors.New("not supported")
}

type stubBrowser struct {
	mu       sync.Mutex
	open     int
	created  int
	closed   bool
	closeErr error
}

func (b *stubBrowser) IsConnected() bool { return !b.closed }
func (b *stubBrowser) Version() string   { return "stub/1.0" }

func (b *stubBrowser) Close() error {
	b.closed = true
	return b.closeErr
}

func (b *stubBrowser) NewContext(*api.BrowserContextOptions) (api.BrowserContext, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.open++
	b.created++
	return &stubContext{browser: b}, nil
}

func (b *stubBrowser) counts() (open, created int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.open, b.created
}

// Scene makes stubBrowser a SceneBuilder.
func (b *stubBrowser) Scene(registrar hooks.Registrar) *common.Scene {
	return common.NewScene(b, registrar, nil, nil)
}

type stubContext struct {
	browser *stubBrowser
}

func (c *stubContext) AddCookies([]api.Cookie) error                   { return nil }
func (c *stubContext) ClearCookies() error                             { return nil }
func (c *stubContext) Cookies(...string) ([]api.Cookie, error)         { return nil, nil }
func (c *stubContext) NewPage() (api.Page, error)                      { return &stubPage{context: c}, nil }
func (c *stubContext) SetDefaultNavigationTimeout(time.Duration) error { return nil }
func (c *stubContext) SetDefaultTimeout(time.Duration) error           { return nil }
func (c *stubContext) SetExtraHTTPHeaders(map[string]string) error     { return nil }
func (c *stubContext) SetOffline(bool) error                           { return nil }

func (c *stubContext) Close() error {
	c.browser.mu.Lock()
	defer c.browser.mu.Unlock()

	c.browser.open--
	return nil
}

type stubPage struct {
	context *stubContext
	url     string
}

func (p *stubPage) Click(string) error                                   { return nil }
func (p *stubPage) Close() error                                         { return nil }
func (p *stubPage) Content() (string, error)                             { return "", nil }
func (p *stubPage) Context() (api.BrowserContext, error)                 { return p.context, nil }
func (p *stubPage) Evaluate(string, ...interface{}) (interface{}, error) { return nil, nil }
func (p *stubPage) Fill(string, string) error                            { return nil }
func (p *stubPage) IsClosed() (bool, error)                              { return false, nil }
func (p *stubPage) NavigateTo(u *url.URL) (api.Response, error)          { return p.Goto(u.String(), nil) }
func (p *stubPage) Reload() (api.Response, error)                        { return nil, nil }
func (p *stubPage) Screenshot() ([]byte, error)                          { return nil, nil }
func (p *stubPage) SetContent(string) error                              { return nil }
func (p *stubPage) SetDefaultNavigationTimeout(time.Duration) error      { return nil }
func (p *stubPage) SetDefaultTimeout(time.Duration) error                { return nil }
func (p *stubPage) SetViewportSize(int, int) error                       { return nil }
func (p *stubPage) TextContent(string) (string, error)                   { return "", nil }
func (p *stubPage) Title() (string, error)                               { return "stub", nil }
func (p *stubPage) URL() (string, error)                                 { return p.url, nil }
func (p *stubPage) WaitForSelector(string) error                         { return nil }

func (p *stubPage) Goto(u string, _ *api.GotoOptions) (api.Response, error) {
	p.url = u
	return nil, nil
}
