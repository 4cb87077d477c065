package activity

import "context"

// Emitter publishes activity events. Implementations must never fail a
// caller's operation: publishing problems are logged and swallowed.
type Emitter interface {
	Emit(ctx context.Context, ev Event)
}
