// Package hooks records setup and teardown callbacks and fires them at the
// suite and test boundaries of a test runner.
package hooks

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Scope is the runner boundary a record is attached to.
type Scope int

const (
	// TestScope records run before and after every test.
	TestScope Scope = iota
	// SuiteScope records run once before the first and after the last
	// test of a suite.
	SuiteScope
)

func (s Scope) String() string {
	switch s {
	case TestScope:
		return "test"
	case SuiteScope:
		return "suite"
	}
	return fmt.Sprintf("Scope(%d)", int(s))
}

// ErrHookOrder is returned when a runner fires hooks out of order, for
// example two BeforeEach calls without an AfterEach in between.
var ErrHookOrder = errors.New("hooks fired out of order")

// Record is a setup and teardown pair registered for a scope.
type Record struct {
	ID       uuid.UUID
	Name     string
	Scope    Scope
	Setup    func() error
	Teardown func() error
}

// Registrar accepts lifecycle records.
type Registrar interface {
	Register(rec Record) uuid.UUID
}
