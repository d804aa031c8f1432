package beacon

import (
	"context"

	"github.com/fogfish/opts"
)

// Observable is a facade over a fixed (hub, source) pair. It re-exposes the
// hub operations without the source argument, for callers that want an
// object-oriented "this object is observable" view. The observable itself is
// stateless delegation; the hub holds all state.
type Observable[S any, E any] struct {
	source *S
	hub    *Hub[S, E]
}

// New constructs an Observable. Without options the handle owns a freshly
// constructed private hub and a fresh synthetic source, making it a
// self-contained observable. Supply WithHub to share registrations across
// handles, and WithSource to bind an existing source object.
func New[S any, E any](options ...opts.Option[Observable[S, E]]) *Observable[S, E] {
	o := &Observable[S, E]{
		source: new(S),
		hub:    NewHub[S, E](),
	}
	if err := opts.Apply(o, options); err != nil {
		panic(err)
	}
	return o
}

// Source returns the source object this handle is bound to.
func (o *Observable[S, E]) Source() *S { return o.source }

// Hub returns the underlying hub.
func (o *Observable[S, E]) Hub() *Hub[S, E] { return o.hub }

// Observers returns the observers registered for eventType on the bound
// source, in subscription order.
func (o *Observable[S, E]) Observers(eventType string) []Observer[E] {
	return o.hub.Observers(o.source, eventType)
}

// Subscribe registers observer for eventType on the bound source.
func (o *Observable[S, E]) Subscribe(eventType string, observer Observer[E]) (Subscription, error) {
	return o.hub.Subscribe(o.source, eventType, observer)
}

// Unsubscribe removes the first matching registration of observer for
// eventType on the bound source.
func (o *Observable[S, E]) Unsubscribe(eventType string, observer Observer[E]) bool {
	return o.hub.Unsubscribe(o.source, eventType, observer)
}

// Publish delivers event concurrently to the observers registered for
// eventType on the bound source.
func (o *Observable[S, E]) Publish(ctx context.Context, eventType string, event E) *Delivery {
	return o.hub.Publish(ctx, o.source, eventType, event)
}

// Notify delivers event sequentially, in subscription order, to the
// observers registered for eventType on the bound source.
func (o *Observable[S, E]) Notify(ctx context.Context, eventType string, event E) *Delivery {
	return o.hub.Notify(ctx, o.source, eventType, event)
}
