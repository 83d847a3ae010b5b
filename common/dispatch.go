package common

import (
	"fmt"
	"io"

	"github.com/nascentdigital/scene/log"
	"github.com/nascentdigital/scene/sceneerror"
)

const (
	kindBrowserContext = "BrowserContext"
	kindPage           = "Page"
)

// forward returns the instance bound to ref or an ErrIllegalState naming
// the kind of resource that was expected.
func forward[T any](ref *Ref[T], kind string) (T, error) {
	v, ok := ref.Current()
	if !ok {
		return v, fmt.Errorf("%w: attempt to use uninitialized %s", sceneerror.ErrIllegalState, kind)
	}
	return v, nil
}

// dispatch calls fn on the instance bound to ref.
func dispatch[T, R any](ref *Ref[T], kind string, fn func(T) (R, error)) (R, error) {
	v, err := forward(ref, kind)
	if err != nil {
		var zero R
		return zero, err
	}
	return fn(v)
}

// dispatchErr calls fn on the instance bound to ref.
func dispatchErr[T any](ref *Ref[T], kind string, fn func(T) error) error {
	v, err := forward(ref, kind)
	if err != nil {
		return err
	}
	return fn(v)
}

// unbind closes the instance bound to ref and clears it. The ref is cleared
// even when closing fails so the wrapper does not stay bound to a dead
// resource.
func unbind[T io.Closer](ref *Ref[T], kind string, logger *log.Logger) error {
	v, err := ref.Value()
	if err != nil {
		return err
	}
	defer ref.Clear()

	logger.Debugf(kind+":unbind", "closing")
	if err := v.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %w", sceneerror.ErrResourceRelease, kind, err)
	}

	return nil
}
