package state

import "context"

// Store holds the durable bits of registry state: the counter used to name
// blank-named saves, and recorded completion flags keyed by topic name and
// group index.
type Store interface {
	// Counter returns the current save counter (0 when never used).
	Counter(ctx context.Context) (int64, error)
	// IncrementCounter bumps the save counter by one.
	IncrementCounter(ctx context.Context) error
	// Completions returns every recorded flag, keyed by topic then group.
	Completions(ctx context.Context) (map[string]map[int]bool, error)
	// SetCompletion records one flag.
	SetCompletion(ctx context.Context, topic string, group int, done bool) error
}
