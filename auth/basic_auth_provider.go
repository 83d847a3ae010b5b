package auth

import (
	"net/url"
	"strings"
)

var defaultPorts = map[string]string{ //nolint:gochecknoglobals
	"http":  "80",
	"https": "443",
	"ws":    "80",
	"wss":   "443",
	"ftp":   "21",
}

// BasicAuthProvider provides credentials for the pages a test navigates to.
// The registry it is built with is treated as read-only.
type BasicAuthProvider struct {
	registry Registry
}

// NewBasicAuthProvider returns a provider over registry. A nil registry
// behaves as an empty one.
func NewBasicAuthProvider(registry Registry) *BasicAuthProvider {
	copied := make(Registry, len(registry))
	for host, c := range registry {
		copied[host] = c
	}
	return &BasicAuthProvider{registry: copied}
}

// Credentials returns the credentials required to access u, or false if
// the page allows anonymous access.
func (p *BasicAuthProvider) Credentials(u *url.URL) (Credentials, bool) {
	if p == nil || u == nil {
		return Credentials{}, false
	}
	return Resolve(p.registry, canonicalHost(u))
}

// canonicalHost returns the host of u as a browser reports it: the name in
// lower case and the port omitted when it is the scheme's default.
func canonicalHost(u *url.URL) string {
	name := strings.ToLower(u.Hostname())
	if strings.Contains(name, ":") {
		name = "[" + name + "]"
	}

	port := u.Port()
	if port == "" || port == defaultPorts[strings.ToLower(u.Scheme)] {
		return name
	}
	return name + ":" + port
}
