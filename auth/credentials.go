// Package auth resolves the credentials scene attaches to navigations.
package auth

import "strings"

// Credentials is a username and password pair used for HTTP basic
// authentication.
type Credentials struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// Redacted returns a representation of c that is safe to log.
func (c Credentials) Redacted() string {
	if c.Password == "" {
		return c.Username
	}
	return c.Username + ":" + strings.Repeat("*", 3)
}

// Registry maps a host (domain plus optional port, exactly as it appears
// in url.URL.Host) to the credentials required to access it.
type Registry map[string]Credentials

// Resolve returns the credentials registered for host. Hosts are matched
// exactly: there is no case folding, wildcarding or default entry.
func Resolve(registry Registry, host string) (Credentials, bool) {
	c, ok := registry[host]
	return c, ok
}
