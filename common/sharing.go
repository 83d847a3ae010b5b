package common

import (
	"fmt"

	"github.com/nascentdigital/scene/hooks"
)

// SharingMode decides how long a resource handed out by a Scene lives.
type SharingMode int

const (
	// PerTest creates a fresh resource before every test and closes it
	// after.
	PerTest SharingMode = iota
	// PerSuite creates one resource before the first test of the suite
	// and closes it after the last one. Every test in the suite sees the
	// same instance.
	PerSuite
)

func (m SharingMode) String() string {
	switch m {
	case PerTest:
		return "per-test"
	case PerSuite:
		return "per-suite"
	}
	return fmt.Sprintf("SharingMode(%d)", int(m))
}

func (m SharingMode) scope() hooks.Scope {
	if m == PerSuite {
		return hooks.SuiteScope
	}
	return hooks.TestScope
}
