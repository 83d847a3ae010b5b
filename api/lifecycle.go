package api

import (
	"fmt"
	"time"
)

// LifecycleEvent is a page load milestone a navigation can wait for.
type LifecycleEvent string

// Navigation milestones, in the order the browser reaches them.
const (
	LifecycleEventCommit         LifecycleEvent = "commit"
	LifecycleEventDOMContentLoad LifecycleEvent = "domcontentloaded"
	LifecycleEventLoad           LifecycleEvent = "load"
	LifecycleEventNetworkIdle    LifecycleEvent = "networkidle"
)

func (l LifecycleEvent) String() string {
	return string(l)
}

// Valid returns an error if l is not a known lifecycle event.
func (l LifecycleEvent) Valid() error {
	switch l {
	case LifecycleEventCommit, LifecycleEventDOMContentLoad,
		LifecycleEventLoad, LifecycleEventNetworkIdle:
		return nil
	}
	return fmt.Errorf("invalid lifecycle event %q", string(l))
}

// GotoOptions are the options of Page.Goto.
type GotoOptions struct {
	Referer   string
	Timeout   time.Duration
	WaitUntil LifecycleEvent
}
