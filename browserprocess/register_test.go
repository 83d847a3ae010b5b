package browserprocess

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	// shares the package register with the other tests
	ctxA := WithRunID(context.Background(), "run-a")
	ctxB := WithRunID(context.Background(), "run-b")

	Register(ctxA, nil, 1001)
	Register(ctxA, nil, 1000)
	Register(ctxB, nil, 2000)
	t.Cleanup(func() {
		Unregister(ctxA, nil, 1000)
		Unregister(ctxA, nil, 1001)
		Unregister(ctxB, nil, 2000)
	})

	assert.Equal(t, "run-a", GetRunID(ctxA))
	assert.Equal(t, []int{1000, 1001}, Registered(ctxA))
	assert.Equal(t, []int{2000}, Registered(ctxB))
	assert.Subset(t, Registered(context.Background()), []int{1000, 1001, 2000})

	Unregister(ctxA, nil, 1000)
	assert.Equal(t, []int{1001}, Registered(ctxA))
}

func TestForceProcessShutdown(t *testing.T) {
	path, err := exec.LookPath("sleep")
	if err != nil {
		t.Skip("sleep is not available")
	}

	cmd := exec.Command(path, "60")
	require.NoError(t, cmd.Start())

	ctx := WithRunID(context.Background(), "shutdown")
	Register(ctx, nil, cmd.Process.Pid)

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	ForceProcessShutdown(ctx)
	assert.Empty(t, Registered(ctx))

	select {
	case err := <-done:
		assert.Error(t, err, "process should have been killed")
	case <-time.After(10 * time.Second):
		t.Fatal("process was not killed")
	}
}
