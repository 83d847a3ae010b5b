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

package engine

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/nascentdigital/scene/api"
	"github.com/nascentdigital/scene/log"
)

// Ensure Browser implements the api.Browser interface.
var _ api.Browser = &Browser{}

// Browser is a playwright browser, launched or connected.
type Browser struct {
	b      playwright.Browser
	logger *log.Logger
}

func newBrowser(b playwright.Browser, logger *log.Logger) *Browser {
	return &Browser{b: b, logger: logger}
}

// Close closes the browser, or disconnects from it when it was connected.
func (b *Browser) Close() error {
	b.logger.Debugf("Browser:Close", "version:%s", b.b.Version())
	return b.b.Close()
}

// IsConnected reports whether the browser is still reachable.
func (b *Browser) IsConnected() bool {
	return b.b.IsConnected()
}

// NewContext creates an isolated browser context. A nil opts uses
// api.NewBrowserContextOptions.
func (b *Browser) NewContext(opts *api.BrowserContextOptions) (api.BrowserContext, error) {
	c, err := b.b.NewContext(contextOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("creating browser context: %w", err)
	}
	b.logger.Debugf("Browser:NewContext", "created")

	return &BrowserContext{c: c, logger: b.logger}, nil
}

// Version returns the browser version.
func (b *Browser) Version() string {
	return b.b.Version()
}
