package api

// Browser is the public interface of a launched or connected browser.
type Browser interface {
	Close() error
	IsConnected() bool
	NewContext(opts *BrowserContextOptions) (BrowserContext, error)
	Version() string
}
