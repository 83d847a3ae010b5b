package auth

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	registry := Registry{
		"example.com":      {Username: "u", Password: "p"},
		"example.com:8443": {Username: "port", Password: "secret"},
	}

	tests := []struct {
		name   string
		host   string
		want   Credentials
		wantOK bool
	}{
		{name: "exact_match", host: "example.com", want: Credentials{Username: "u", Password: "p"}, wantOK: true},
		{name: "port_is_part_of_host", host: "example.com:8443", want: Credentials{Username: "port", Password: "secret"}, wantOK: true},
		{name: "other_port", host: "example.com:8080"},
		{name: "no_case_folding", host: "EXAMPLE.com"},
		{name: "no_subdomain_match", host: "www.example.com"},
		{name: "empty_host", host: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Resolve(registry, tt.host)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveNilRegistry(t *testing.T) {
	t.Parallel()

	_, ok := Resolve(nil, "example.com")
	assert.False(t, ok)
}

func TestBasicAuthProvider(t *testing.T) {
	t.Parallel()

	registry := Registry{"example.com": {Username: "u", Password: "p"}}
	p := NewBasicAuthProvider(registry)

	// later changes to the caller's map are not observed
	registry["other.com"] = Credentials{Username: "x"}

	u, err := url.Parse("https://example.com/login?next=1")
	require.NoError(t, err)
	c, ok := p.Credentials(u)
	require.True(t, ok)
	assert.Equal(t, "u", c.Username)
	assert.Equal(t, "p", c.Password)

	u, err = url.Parse("https://other.com/")
	require.NoError(t, err)
	_, ok = p.Credentials(u)
	assert.False(t, ok)

	_, ok = NewBasicAuthProvider(nil).Credentials(u)
	assert.False(t, ok)
}

func TestCredentialsRedacted(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "u:***", Credentials{Username: "u", Password: "p"}.Redacted())
	assert.Equal(t, "u", Credentials{Username: "u"}.Redacted())
}

func TestBasicAuthProviderCanonicalHost(t *testing.T) {
	t.Parallel()

	p := NewBasicAuthProvider(Registry{
		"example.com":      {Username: "u", Password: "p"},
		"example.com:8443": {Username: "port", Password: "secret"},
		"[::1]:8080":       {Username: "v6", Password: "secret"},
	})

	tests := []struct {
		name     string
		url      string
		wantUser string
	}{
		{name: "upper_case_host", url: "https://EXAMPLE.com/a", wantUser: "u"},
		{name: "explicit_https_port", url: "https://example.com:443/a", wantUser: "u"},
		{name: "explicit_http_port", url: "http://Example.COM:80/a", wantUser: "u"},
		{name: "non_default_port", url: "https://EXAMPLE.com:8443/a", wantUser: "port"},
		{name: "default_port_of_other_scheme", url: "http://example.com:443/a"},
		{name: "ipv6", url: "http://[::1]:8080/", wantUser: "v6"},
		{name: "unknown_host", url: "https://example.org/"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u, err := url.Parse(tt.url)
			require.NoError(t, err)

			c, ok := p.Credentials(u)
			if tt.wantUser == "" {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantUser, c.Username)
		})
	}
}
