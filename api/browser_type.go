package api

// BrowserType is the public interface of a browser engine flavour
// (chromium, firefox or webkit).
type BrowserType interface {
	Connect(wsEndpoint string) (Browser, error)
	Launch(opts *LaunchOptions) (Browser, error)
	LaunchServer(opts *LaunchOptions) (BrowserServer, error)
	Name() string
}

// BrowserServer is a browser process that accepts remote connections on a
// websocket endpoint.
type BrowserServer interface {
	Close() error
	Pid() int
	WSEndpoint() string
}
