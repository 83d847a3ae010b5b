//go:build !linux

package engine

import "os/exec"

// killAfterParent is a no-op outside linux. scene-server relies on
// browserprocess.ForceProcessShutdown instead.
func killAfterParent(_ *exec.Cmd) {}
