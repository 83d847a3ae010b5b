package common

import (
	"fmt"

	"github.com/nascentdigital/scene/sceneerror"
)

// Ref holds at most one instance of T.
//
// Clearing a Ref does not release the instance it held; closing it is the
// caller's job.
type Ref[T any] struct {
	current T
	set     bool
}

// NewRef returns an empty Ref.
func NewRef[T any]() *Ref[T] {
	return &Ref[T]{}
}

// NewRefOf returns a Ref holding v.
func NewRefOf[T any](v T) *Ref[T] {
	r := &Ref[T]{}
	r.Set(v)
	return r
}

// HasValue reports whether an instance is bound.
func (r *Ref[T]) HasValue() bool {
	return r.set
}

// Current returns the bound instance and whether there is one.
func (r *Ref[T]) Current() (T, bool) {
	return r.current, r.set
}

// Value dereferences the Ref. It fails with sceneerror.ErrIllegalState when
// nothing is bound.
func (r *Ref[T]) Value() (T, error) {
	if !r.set {
		var zero T
		return zero, fmt.Errorf("%w: attempt to dereference unset value", sceneerror.ErrIllegalState)
	}
	return r.current, nil
}

// Set binds v.
func (r *Ref[T]) Set(v T) {
	r.current = v
	r.set = true
}

// Clear unbinds the current instance.
func (r *Ref[T]) Clear() {
	var zero T
	r.current = zero
	r.set = false
}
