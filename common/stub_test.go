package common

import (
	"errors"
	"net/url"
	"sync"
	"time"

	"github.com/nascentdigital/scene/api"
)

// stubBrowser is a deterministic in-memory engine. It counts every
// resource it creates and closes.
type stubBrowser struct {
	mu sync.Mutex

	contexts      []*stubContext
	closedCtx     int
	newContextErr error
	// loadSignal, when set, is handed to every page so that load waits
	// block until it is closed.
	loadSignal chan struct{}
}

func (b *stubBrowser) Close() error      { return nil }
func (b *stubBrowser) IsConnected() bool { return true }
func (b *stubBrowser) Version() string   { return "stub/1.0" }

func (b *stubBrowser) NewContext(opts *api.BrowserContextOptions) (api.BrowserContext, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.newContextErr != nil {
		return nil, b.newContextErr
	}
	c := &stubContext{browser: b, id: len(b.contexts) + 1, opts: opts}
	b.contexts = append(b.contexts, c)
	return c, nil
}

func (b *stubBrowser) pages() []*stubPage {
	b.mu.Lock()
	defer b.mu.Unlock()

	var pages []*stubPage
	for _, c := range b.contexts {
		pages = append(pages, c.pages...)
	}
	return pages
}

func (b *stubBrowser) closedPages() int {
	n := 0
	for _, p := range b.pages() {
		if p.closed {
			n++
		}
	}
	return n
}

type stubContext struct {
	browser  *stubBrowser
	id       int
	opts     *api.BrowserContextOptions
	pages    []*stubPage
	closed   bool
	closeErr error
	offline  bool
	cookies  []api.Cookie
	headers  map[string]string
	timeout  time.Duration
}

func (c *stubContext) NewPage() (api.Page, error) {
	c.browser.mu.Lock()
	defer c.browser.mu.Unlock()

	p := &stubPage{context: c, id: len(c.pages) + 1, load: c.browser.loadSignal}
	c.pages = append(c.pages, p)
	return p, nil
}

func (c *stubContext) Close() error {
	c.closed = true
	c.browser.mu.Lock()
	c.browser.closedCtx++
	c.browser.mu.Unlock()
	return c.closeErr
}

func (c *stubContext) AddCookies(cookies []api.Cookie) error {
	c.cookies = append(c.cookies, cookies...)
	return nil
}

func (c *stubContext) ClearCookies() error {
	c.cookies = nil
	return nil
}

func (c *stubContext) Cookies(...string) ([]api.Cookie, error) { return c.cookies, nil }

func (c *stubContext) SetDefaultNavigationTimeout(d time.Duration) error {
	c.timeout = d
	return nil
}

func (c *stubContext) SetDefaultTimeout(d time.Duration) error {
	c.timeout = d
	return nil
}

func (c *stubContext) SetExtraHTTPHeaders(h map[string]string) error {
	c.headers = h
	return nil
}

func (c *stubContext) SetOffline(offline bool) error {
	c.offline = offline
	return nil
}

// gotoCall records one navigation issued to a stubPage.
type gotoCall struct {
	url  string
	opts api.GotoOptions
}

type stubPage struct {
	context  *stubContext
	id       int
	load     chan struct{}
	closed   bool
	closeErr error
	url      string
	gotos    []gotoCall
	gotoErr  error
	content  string
}

type stubResponse struct{ url string }

func (r *stubResponse) Ok() bool    { return true }
func (r *stubResponse) Status() int { return 200 }
func (r *stubResponse) URL() string { return r.url }

func (p *stubPage) Goto(u string, opts *api.GotoOptions) (api.Response, error) {
	var o api.GotoOptions
	if opts != nil {
		o = *opts
	}
	p.gotos = append(p.gotos, gotoCall{url: u, opts: o})
	if p.gotoErr != nil {
		return nil, p.gotoErr
	}
	if o.WaitUntil == api.LifecycleEventLoad && p.load != nil {
		<-p.load
	}
	p.url = u
	return &stubResponse{url: u}, nil
}

func (p *stubPage) NavigateTo(u *url.URL) (api.Response, error) {
	return p.Goto(u.String(), nil)
}

func (p *stubPage) Context() (api.BrowserContext, error) { return p.context, nil }

func (p *stubPage) Close() error {
	p.closed = true
	return p.closeErr
}

func (p *stubPage) Click(string) error                 { return nil }
func (p *stubPage) Content() (string, error)           { return p.content, nil }
func (p *stubPage) Fill(string, string) error          { return nil }
func (p *stubPage) IsClosed() (bool, error)            { return p.closed, nil }
func (p *stubPage) Reload() (api.Response, error)      { return &stubResponse{url: p.url}, nil }
func (p *stubPage) Screenshot() ([]byte, error)        { return []byte("png"), nil }
func (p *stubPage) SetViewportSize(int, int) error     { return nil }
func (p *stubPage) TextContent(string) (string, error) { return "text", nil }
func (p *stubPage) Title() (string, error)             { return "stub", nil }
func (p *stubPage) URL() (string, error)               { return p.url, nil }
func (p *stubPage) WaitForSelector(string) error       { return nil }

func (p *stubPage) Evaluate(expr string, _ ...interface{}) (interface{}, error) {
	if expr == "" {
		return nil, errors.New("empty expression")
	}
	return expr, nil
}

func (p *stubPage) SetContent(html string) error {
	p.content = html
	return nil
}

func (p *stubPage) SetDefaultNavigationTimeout(time.Duration) error { return nil }
func (p *stubPage) SetDefaultTimeout(time.Duration) error           { return nil }
