package common

import (
	"net/url"

	"github.com/nascentdigital/scene/api"
)

// navigate sends page to u. Credentials registered for u.Host are set on a
// copy of u, never on u itself. Errors from the engine are returned as is.
//
// Only this initial navigation is credentialed; redirects the page follows
// on its own are not.
func (p *Page) navigate(page api.Page, u *url.URL, opts *api.GotoOptions) (api.Response, error) {
	logger := p.scene.logger

	target := u
	if c, ok := p.scene.auth.Credentials(u); ok {
		clone := *u
		clone.User = url.UserPassword(c.Username, c.Password)
		target = &clone

		logger.Debugf("Page:navigate", "attached credentials %s for host %q", c.Redacted(), u.Host)
	}

	gopts := &api.GotoOptions{WaitUntil: api.LifecycleEventLoad}
	if opts != nil {
		gopts.Referer = opts.Referer
		gopts.Timeout = opts.Timeout
	}
	logger.Debugf("Page:navigate", "navigating to %s", target.Redacted())

	return page.Goto(target.String(), gopts)
}
