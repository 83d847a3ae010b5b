/*
 *
 * scene - lifecycle-bound browser handles for Go tests
 * Copyright (C) 2021 Nascent Digital
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package common

import (
	"errors"
	"net/url"
	"time"

	"github.com/nascentdigital/scene/api"
)

// Ensure Page implements the api.Page interface.
var _ api.Page = &Page{}

// Page forwards to whichever page its handle currently holds.
//
// Context returns the BrowserContext wrapper the page came from, and
// navigation attaches registered credentials and waits for the load event.
type Page struct {
	scene          *Scene
	ref            *Ref[api.Page]
	browserContext *BrowserContext
}

func newPage(s *Scene, ref *Ref[api.Page], bctx *BrowserContext) *Page {
	return &Page{
		scene:          s,
		ref:            ref,
		browserContext: bctx,
	}
}

// Bound reports whether a page currently backs p.
func (p *Page) Bound() bool {
	return p.ref.HasValue()
}

// Context returns the BrowserContext wrapper that produced p.
func (p *Page) Context() (api.BrowserContext, error) {
	if _, err := forward(p.ref, kindPage); err != nil {
		return nil, err
	}
	return p.browserContext, nil
}

// Goto navigates to rawURL, attaching registered credentials. It resolves
// after the load event regardless of opts.WaitUntil; the timeout and
// referer of opts are honoured.
func (p *Page) Goto(rawURL string, opts *api.GotoOptions) (api.Response, error) {
	page, err := forward(p.ref, kindPage)
	if err != nil {
		return nil, err
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	return p.navigate(page, u, opts)
}

// NavigateTo navigates to u, attaching registered credentials, and waits
// until the page and all its resources are loaded. u is not modified.
func (p *Page) NavigateTo(u *url.URL) (api.Response, error) {
	page, err := forward(p.ref, kindPage)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.New("navigating to a nil URL")
	}
	return p.navigate(page, u, nil)
}

// Click clicks the element matching selector.
func (p *Page) Click(selector string) error {
	return dispatchErr(p.ref, kindPage, func(page api.Page) error {
		return page.Click(selector)
	})
}

// Close closes the bound page. The handle stays bound until teardown.
func (p *Page) Close() error {
	return dispatchErr(p.ref, kindPage, api.Page.Close)
}

// Content returns the HTML of the bound page.
func (p *Page) Content() (string, error) {
	return dispatch(p.ref, kindPage, api.Page.Content)
}

// Evaluate runs expression in the bound page.
func (p *Page) Evaluate(expression string, args ...interface{}) (interface{}, error) {
	return dispatch(p.ref, kindPage, func(page api.Page) (interface{}, error) {
		return page.Evaluate(expression, args...)
	})
}

// Fill fills the input matching selector with value.
func (p *Page) Fill(selector, value string) error {
	return dispatchErr(p.ref, kindPage, func(page api.Page) error {
		return page.Fill(selector, value)
	})
}

// IsClosed reports whether the bound page was closed.
func (p *Page) IsClosed() (bool, error) {
	return dispatch(p.ref, kindPage, api.Page.IsClosed)
}

// Reload reloads the bound page.
func (p *Page) Reload() (api.Response, error) {
	return dispatch(p.ref, kindPage, api.Page.Reload)
}

// Screenshot captures the viewport of the bound page as PNG.
func (p *Page) Screenshot() ([]byte, error) {
	return dispatch(p.ref, kindPage, api.Page.Screenshot)
}

// SetContent replaces the document of the bound page.
func (p *Page) SetContent(html string) error {
	return dispatchErr(p.ref, kindPage, func(page api.Page) error {
		return page.SetContent(html)
	})
}

// SetDefaultNavigationTimeout sets the navigation timeout of the bound page.
func (p *Page) SetDefaultNavigationTimeout(timeout time.Duration) error {
	return dispatchErr(p.ref, kindPage, func(page api.Page) error {
		return page.SetDefaultNavigationTimeout(timeout)
	})
}

// SetDefaultTimeout sets the default timeout of the bound page.
func (p *Page) SetDefaultTimeout(timeout time.Duration) error {
	return dispatchErr(p.ref, kindPage, func(page api.Page) error {
		return page.SetDefaultTimeout(timeout)
	})
}

// SetViewportSize resizes the bound page.
func (p *Page) SetViewportSize(width, height int) error {
	return dispatchErr(p.ref, kindPage, func(page api.Page) error {
		return page.SetViewportSize(width, height)
	})
}

// TextContent returns the text of the element matching selector.
func (p *Page) TextContent(selector string) (string, error) {
	return dispatch(p.ref, kindPage, func(page api.Page) (string, error) {
		return page.TextContent(selector)
	})
}

// Title returns the document title of the bound page.
func (p *Page) Title() (string, error) {
	return dispatch(p.ref, kindPage, api.Page.Title)
}

// URL returns the current URL of the bound page.
func (p *Page) URL() (string, error) {
	return dispatch(p.ref, kindPage, api.Page.URL)
}

// WaitForSelector waits for an element matching selector to be attached.
func (p *Page) WaitForSelector(selector string) error {
	return dispatchErr(p.ref, kindPage, func(page api.Page) error {
		return page.WaitForSelector(selector)
	})
}
