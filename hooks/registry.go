package hooks

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nascentdigital/scene/log"
)

// Registry stores records and fires them when the runner reaches a suite or
// test boundary.
//
// A Registry is driven by a single runner goroutine and is not safe for
// concurrent use.
type Registry struct {
	records []*entry
	inSuite bool
	inTest  bool
	logger  *log.Logger
}

type entry struct {
	Record
	active bool
}

// NewRegistry returns an empty registry.
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.NullLogger()
	}
	return &Registry{logger: logger}
}

// Register adds rec and returns its id, generating one when rec.ID is zero.
// Nil callbacks are treated as no-ops.
func (r *Registry) Register(rec Record) uuid.UUID {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.Setup == nil {
		rec.Setup = noop
	}
	if rec.Teardown == nil {
		rec.Teardown = noop
	}
	r.records = append(r.records, &entry{Record: rec})
	r.logger.Debugf("Registry:Register", "id:%s name:%q scope:%s", rec.ID, rec.Name, rec.Scope)

	return rec.ID
}

// Records returns a copy of the registered records in registration order.
func (r *Registry) Records() []Record {
	recs := make([]Record, 0, len(r.records))
	for _, e := range r.records {
		recs = append(recs, e.Record)
	}
	return recs
}

// BeforeAll runs the setup of every suite scoped record.
func (r *Registry) BeforeAll() error {
	if r.inSuite {
		return fmt.Errorf("%w: BeforeAll called twice without AfterAll", ErrHookOrder)
	}
	r.inSuite = true
	return r.setup(SuiteScope)
}

// AfterAll runs the teardown of every suite scoped record whose setup
// succeeded.
func (r *Registry) AfterAll() error {
	if !r.inSuite {
		return fmt.Errorf("%w: AfterAll called without BeforeAll", ErrHookOrder)
	}
	r.inSuite = false
	return r.teardown(SuiteScope)
}

// BeforeEach runs the setup of every test scoped record.
func (r *Registry) BeforeEach() error {
	if r.inTest {
		return fmt.Errorf("%w: BeforeEach called twice without AfterEach", ErrHookOrder)
	}
	r.inTest = true
	return r.setup(TestScope)
}

// AfterEach runs the teardown of every test scoped record whose setup
// succeeded.
func (r *Registry) AfterEach() error {
	if !r.inTest {
		return fmt.Errorf("%w: AfterEach called without BeforeEach", ErrHookOrder)
	}
	r.inTest = false
	return r.teardown(TestScope)
}

// setup runs setups in registration order and stops at the first failure,
// so later records may rely on earlier ones.
func (r *Registry) setup(scope Scope) error {
	for _, e := range r.records {
		if e.Scope != scope {
			continue
		}
		r.logger.Debugf("Registry:setup", "id:%s name:%q scope:%s", e.ID, e.Name, scope)
		if err := e.Setup(); err != nil {
			r.logger.Errorf("Registry:setup", "id:%s name:%q: %v", e.ID, e.Name, err)
			return fmt.Errorf("setting up %s %q: %w", scope, e.Name, err)
		}
		e.active = true
	}
	return nil
}

// teardown runs teardowns in reverse registration order. A failing
// teardown does not prevent the remaining ones from running.
func (r *Registry) teardown(scope Scope) error {
	var errs []error
	for i := len(r.records) - 1; i >= 0; i-- {
		e := r.records[i]
		if e.Scope != scope || !e.active {
			continue
		}
		e.active = false
		r.logger.Debugf("Registry:teardown", "id:%s name:%q scope:%s", e.ID, e.Name, scope)
		if err := e.Teardown(); err != nil {
			r.logger.Errorf("Registry:teardown", "id:%s name:%q: %v", e.ID, e.Name, err)
			errs = append(errs, fmt.Errorf("tearing down %s %q: %w", scope, e.Name, err))
		}
	}
	return errors.Join(errs...)
}

func noop() error { return nil }
