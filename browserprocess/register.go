// Package browserprocess keeps track of the browser server processes
// launched by this process so they can be killed on abnormal shutdown.
package browserprocess

import (
	"context"
	"os"
	"sort"
	"strconv"
	"sync"

	"github.com/nascentdigital/scene/log"
)

type processState struct {
	pid   int
	runID string
}

var (
	browserProcessRegister   = map[string]*processState{} //nolint:gochecknoglobals
	browserProcessRegisterMu = sync.Mutex{}               //nolint:gochecknoglobals
)

func key(ctx context.Context, pid int) string {
	return strconv.Itoa(pid) + "/" + GetRunID(ctx)
}

// Register records pid as a browser process owned by the run in ctx.
func Register(ctx context.Context, logger *log.Logger, pid int) {
	browserProcessRegisterMu.Lock()
	defer browserProcessRegisterMu.Unlock()

	logger.Debugf("BrowserProcess:register", "registered browser process pid %d", pid)

	browserProcessRegister[key(ctx, pid)] = &processState{pid: pid, runID: GetRunID(ctx)}
}

// Unregister forgets pid once it has exited normally.
func Unregister(ctx context.Context, logger *log.Logger, pid int) {
	browserProcessRegisterMu.Lock()
	defer browserProcessRegisterMu.Unlock()

	logger.Debugf("BrowserProcess:unregister", "unregistered browser process pid %d", pid)

	delete(browserProcessRegister, key(ctx, pid))
}

// Registered returns the pids owned by the run in ctx, or every pid when
// ctx carries no run id.
func Registered(ctx context.Context) []int {
	browserProcessRegisterMu.Lock()
	defer browserProcessRegisterMu.Unlock()

	runID := GetRunID(ctx)
	var pids []int
	for _, v := range browserProcessRegister {
		if runID != "" && v.runID != runID {
			continue
		}
		pids = append(pids, v.pid)
	}
	sort.Ints(pids)

	return pids
}

// ForceProcessShutdown should be called when scene-server is shutting down
// abnormally, e.g. on a signal, and the browser servers it started may
// outlive it.
func ForceProcessShutdown(ctx context.Context) {
	browserProcessRegisterMu.Lock()
	defer browserProcessRegisterMu.Unlock()

	runID := GetRunID(ctx)

	for k, v := range browserProcessRegister {
		if runID != "" && v.runID != runID {
			continue
		}
		delete(browserProcessRegister, k)

		p, err := os.FindProcess(v.pid)
		if err != nil {
			// optimistically continue and don't kill the process
			continue
		}
		// the process may already be gone, nothing to do about errors here.
		_ = p.Kill()
		_ = p.Release()
	}
}
