package engine

import (
	"net/url"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/nascentdigital/scene/api"
	"github.com/nascentdigital/scene/log"
)

// Ensure Page implements the api.Page interface.
var _ api.Page = &Page{}

// Page is a playwright page. Navigation errors are playwright's own.
type Page struct {
	p      playwright.Page
	bctx   *BrowserContext
	logger *log.Logger
}

func (p *Page) Click(selector string) error {
	return p.p.Click(selector)
}

func (p *Page) Close() error {
	return p.p.Close()
}

func (p *Page) Content() (string, error) {
	return p.p.Content()
}

// Context returns the browser context the page belongs to.
func (p *Page) Context() (api.BrowserContext, error) {
	return p.bctx, nil
}

func (p *Page) Evaluate(expression string, args ...interface{}) (interface{}, error) {
	return p.p.Evaluate(expression, args...)
}

func (p *Page) Fill(selector string, value string) error {
	return p.p.Fill(selector, value)
}

// Goto navigates to rawURL. The response is nil when the navigation did not
// produce one, e.g. for about:blank or a same-document navigation.
func (p *Page) Goto(rawURL string, opts *api.GotoOptions) (api.Response, error) {
	resp, err := p.p.Goto(rawURL, gotoOptions(opts))
	if err != nil {
		return nil, err
	}
	return newResponse(resp), nil
}

func (p *Page) IsClosed() (bool, error) {
	return p.p.IsClosed(), nil
}

func (p *Page) NavigateTo(u *url.URL) (api.Response, error) {
	return p.Goto(u.String(), &api.GotoOptions{WaitUntil: api.LifecycleEventLoad})
}

func (p *Page) Reload() (api.Response, error) {
	resp, err := p.p.Reload()
	if err != nil {
		return nil, err
	}
	return newResponse(resp), nil
}

// Screenshot captures the viewport as PNG.
func (p *Page) Screenshot() ([]byte, error) {
	return p.p.Screenshot()
}

func (p *Page) SetContent(html string) error {
	return p.p.SetContent(html)
}

func (p *Page) SetDefaultNavigationTimeout(timeout time.Duration) error {
	p.p.SetDefaultNavigationTimeout(milliseconds(timeout))
	return nil
}

func (p *Page) SetDefaultTimeout(timeout time.Duration) error {
	p.p.SetDefaultTimeout(milliseconds(timeout))
	return nil
}

func (p *Page) SetViewportSize(width, height int) error {
	return p.p.SetViewportSize(width, height)
}

func (p *Page) TextContent(selector string) (string, error) {
	return p.p.TextContent(selector)
}

func (p *Page) Title() (string, error) {
	return p.p.Title()
}

func (p *Page) URL() (string, error) {
	return p.p.URL(), nil
}

// WaitForSelector waits until selector is attached and visible.
func (p *Page) WaitForSelector(selector string) error {
	_, err := p.p.WaitForSelector(selector)
	return err
}

// Ensure Response implements the api.Response interface.
var _ api.Response = &Response{}

// Response is the main resource response of a navigation.
type Response struct {
	r playwright.Response
}

func newResponse(r playwright.Response) api.Response {
	if r == nil {
		return nil
	}
	return &Response{r: r}
}

func (r *Response) Ok() bool    { return r.r.Ok() }
func (r *Response) Status() int { return r.r.Status() }
func (r *Response) URL() string { return r.r.URL() }
