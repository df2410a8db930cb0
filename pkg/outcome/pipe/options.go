package pipe

import "context"

type optionKey string

const (
	workerKey optionKey = "pipe_workers"
	drainKey  optionKey = "pipe_drain"
)

// WithWorkers stores a worker-count preference on the context.
func WithWorkers(ctx context.Context, workers int) context.Context {
	return context.WithValue(ctx, workerKey, workers)
}

// Workers reads the context worker count, falling back to def.
func Workers(ctx context.Context, def int) int {
	if n, ok := ctx.Value(workerKey).(int); ok {
		return n
	}
	return def
}

// WithDrain controls whether a cancelled pipeline flushes in-flight items
// as ErrCancelled failures or drops them.
func WithDrain(ctx context.Context, drain bool) context.Context {
	return context.WithValue(ctx, drainKey, drain)
}

// DrainEnabled reads the context drain setting, falling back to def.
func DrainEnabled(ctx context.Context, def bool) bool {
	if d, ok := ctx.Value(drainKey).(bool); ok {
		return d
	}
	return def
}
