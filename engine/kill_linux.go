package engine

import (
	"os/exec"
	"syscall"
)

// killAfterParent asks the kernel to kill cmd when this process dies.
func killAfterParent(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Pdeathsig = syscall.SIGKILL
}
