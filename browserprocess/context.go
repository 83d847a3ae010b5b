package browserprocess

import (
	"context"
)

type ctxKey int

const (
	ctxKeyRunID ctxKey = iota
)

// WithRunID saves the id of the scene-server run that owns the browser
// processes started with ctx.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, ctxKeyRunID, runID)
}

// GetRunID returns the current run id from the context.
func GetRunID(ctx context.Context) string {
	runID, _ := ctx.Value(ctxKeyRunID).(string)
	return runID
}
