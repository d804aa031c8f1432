package beacon

import "context"

// Observer reacts to events delivered for a single (source, event type)
// registration. Observers are compared by interface identity when
// unsubscribing: registering the same observer value twice creates two
// independent entries that each receive their own delivery.
//
// Observers should be pointer values (or wrapped with ObserverFunc) so that
// identity comparison is well defined.
type Observer[E any] interface {
	// Name identifies the observer. It is informational only and carries no
	// uniqueness requirement.
	Name() string

	// Observe handles a single event. Returning an error fails the enclosing
	// delivery.
	Observe(ctx context.Context, eventType string, event E) error
}

// ObserverFunc adapts fn into an Observer. Each call allocates a distinct
// observer identity, so wrapping the same function twice yields two
// observers that subscribe and unsubscribe independently.
func ObserverFunc[E any](name string, fn func(ctx context.Context, eventType string, event E) error) Observer[E] {
	return &funcObserver[E]{name: name, fn: fn}
}

type funcObserver[E any] struct {
	name string
	fn   func(context.Context, string, E) error
}

func (o *funcObserver[E]) Name() string { return o.name }

func (o *funcObserver[E]) Observe(ctx context.Context, eventType string, event E) error {
	return o.fn(ctx, eventType, event)
}
