package api

import (
	"net/url"
	"time"
)

// Page is the public interface of a single browser tab.
//
// Every member reports an error, including plain accessors, so that
// implementations which are not always backed by a live tab can refuse
// access instead of panicking.
type Page interface {
	Click(selector string) error
	Close() error
	Content() (string, error)
	Context() (BrowserContext, error)
	Evaluate(expression string, args ...interface{}) (interface{}, error)
	Fill(selector, value string) error
	Goto(url string, opts *GotoOptions) (Response, error)
	IsClosed() (bool, error)
	NavigateTo(u *url.URL) (Response, error)
	Reload() (Response, error)
	Screenshot() ([]byte, error)
	SetContent(html string) error
	SetDefaultNavigationTimeout(timeout time.Duration) error
	SetDefaultTimeout(timeout time.Duration) error
	SetViewportSize(width, height int) error
	TextContent(selector string) (string, error)
	Title() (string, error)
	URL() (string, error)
	WaitForSelector(selector string) error
}

// Response is the main resource response of a navigation.
type Response interface {
	Ok() bool
	Status() int
	URL() string
}
