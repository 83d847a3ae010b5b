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
	"fmt"

	"github.com/nascentdigital/scene/api"
	"github.com/nascentdigital/scene/auth"
	"github.com/nascentdigital/scene/config"
	"github.com/nascentdigital/scene/hooks"
	"github.com/nascentdigital/scene/log"
	"github.com/nascentdigital/scene/sceneerror"
)

// Scene hands out browser contexts and pages whose lifetime follows the
// hooks of a test runner.
//
// Nothing is created when UseBrowserContext or UsePage is called. The
// returned wrapper is bound when the runner fires the matching setup hook
// and unbound by the matching teardown hook; using it outside that window
// fails with sceneerror.ErrIllegalState.
type Scene struct {
	browser   api.Browser
	registrar hooks.Registrar
	auth      *auth.BasicAuthProvider
	logger    *log.Logger
}

// NewScene returns a Scene that creates resources on browser and registers
// their lifecycle with registrar. cfg may be nil.
func NewScene(browser api.Browser, registrar hooks.Registrar, cfg *config.Configuration, logger *log.Logger) *Scene {
	if cfg == nil {
		cfg = &config.Configuration{}
	}
	if logger == nil {
		logger = log.NullLogger()
	}
	return &Scene{
		browser:   browser,
		registrar: registrar,
		auth:      auth.NewBasicAuthProvider(cfg.Credentials),
		logger:    logger,
	}
}

// Browser returns the browser resources are created on.
func (s *Scene) Browser() api.Browser {
	return s.browser
}

// UseBrowserContext returns a browser context that is created before every
// test (PerTest) or once before the suite (PerSuite), and closed at the
// matching teardown.
func (s *Scene) UseBrowserContext(opts *api.BrowserContextOptions, mode SharingMode) *BrowserContext {
	ref := NewRef[api.BrowserContext]()
	bctx := newBrowserContext(s, ref)

	s.registrar.Register(hooks.Record{
		Name:  kindBrowserContext,
		Scope: mode.scope(),
		Setup: func() error {
			return s.bindBrowserContext(ref, opts, mode)
		},
		Teardown: func() error {
			return unbind(ref, kindBrowserContext, s.logger)
		},
	})

	return bctx
}

// UsePage returns a page that is created before every test (PerTest) or
// once before the suite (PerSuite), and closed at the matching teardown.
//
// The page lives in a browser context that is always shared by the whole
// suite, so only cookies and storage leak between tests, never the page.
func (s *Scene) UsePage(opts *api.BrowserContextOptions, mode SharingMode) *Page {
	bctx := s.UseBrowserContext(opts, PerSuite)
	ref := NewRef[api.Page]()
	p := newPage(s, ref, bctx)

	s.registrar.Register(hooks.Record{
		Name:  kindPage,
		Scope: mode.scope(),
		Setup: func() error {
			return s.bindPage(ref, bctx, mode)
		},
		Teardown: func() error {
			return unbind(ref, kindPage, s.logger)
		},
	})

	return p
}

func (s *Scene) bindBrowserContext(ref *Ref[api.BrowserContext], opts *api.BrowserContextOptions, mode SharingMode) error {
	if ref.HasValue() {
		return fmt.Errorf("%w: %s is already bound", sceneerror.ErrIllegalState, kindBrowserContext)
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("%w: %w", sceneerror.ErrConfiguration, err)
	}

	bctx, err := s.browser.NewContext(opts)
	if err != nil {
		return fmt.Errorf("creating browser context: %w", err)
	}
	ref.Set(bctx)
	s.logger.Debugf("BrowserContext:bind", "sharing:%s", mode)

	return nil
}

func (s *Scene) bindPage(ref *Ref[api.Page], bctx *BrowserContext, mode SharingMode) error {
	if ref.HasValue() {
		return fmt.Errorf("%w: %s is already bound", sceneerror.ErrIllegalState, kindPage)
	}

	raw, err := forward(bctx.ref, kindBrowserContext)
	if err != nil {
		return err
	}
	page, err := raw.NewPage()
	if err != nil {
		return fmt.Errorf("creating page: %w", err)
	}
	ref.Set(page)
	s.logger.Debugf("Page:bind", "sharing:%s", mode)

	return nil
}
