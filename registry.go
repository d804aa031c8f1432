package beacon

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"weak"

	"github.com/alphadose/haxmap"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Hub owns the mapping from (source, event type) pairs to ordered observer
// registrations, and delivers events to them. The zero value is not usable;
// construct hubs with NewHub.
//
// Sources are keyed weakly by pointer identity: holding a registration never
// extends the source's lifetime, and once a source becomes unreachable its
// bucket and every registration under it are dropped without any explicit
// cleanup call. The hub never reads or writes source contents.
//
// Event payloads are opaque to the hub and passed through to observers
// unmodified.
type Hub[S any, E any] struct {
	mu      sync.RWMutex
	sources map[weak.Pointer[S]]*sourceTopics[E]
}

// sourceTopics is the per-source bucket: event type label to observer list.
type sourceTopics[E any] struct {
	topics *haxmap.Map[string, *observerList[E]]
}

// NewHub creates an empty hub.
func NewHub[S any, E any]() *Hub[S, E] {
	return &Hub[S, E]{
		sources: make(map[weak.Pointer[S]]*sourceTopics[E]),
	}
}

// Observers returns the observers currently registered for (source,
// eventType) in subscription order. It returns an empty sequence, never an
// error, when the source is unknown or the event type has no subscribers,
// and it never mutates hub state.
func (h *Hub[S, E]) Observers(source *S, eventType string) []Observer[E] {
	if source == nil {
		return nil
	}

	h.mu.RLock()
	st, ok := h.sources[weak.Make(source)]
	h.mu.RUnlock()
	if !ok {
		return nil
	}

	list, ok := st.topics.Get(eventType)
	if !ok {
		return nil
	}
	return list.snapshot()
}

// Subscribe appends observer to the end of the list for (source, eventType),
// creating intermediate structures lazily. The returned Subscription removes
// exactly the equivalent of Unsubscribe(source, eventType, observer).
// Subscribing the same observer value twice yields two independent entries.
func (h *Hub[S, E]) Subscribe(source *S, eventType string, observer Observer[E]) (Subscription, error) {
	if source == nil {
		return nil, errors.New("source is required")
	}
	if observer == nil {
		return nil, errors.New("observer is required")
	}

	st := h.topicsFor(source)
	list, _ := st.topics.GetOrCompute(eventType, func() *observerList[E] {
		return &observerList[E]{}
	})
	list.add(observer)

	// The handle closes over the list only, never the source, so a live
	// subscription cannot keep the source reachable.
	return &subscription{
		id:      uuid.Must(uuid.NewV7()).String(),
		onClose: func() { list.remove(observer) },
	}, nil
}

// Unsubscribe removes the first entry for (source, eventType) matching
// observer by identity. It reports whether a match was removed; a missing
// source, event type, or observer is a no-op, not an error.
func (h *Hub[S, E]) Unsubscribe(source *S, eventType string, observer Observer[E]) bool {
	if source == nil || observer == nil {
		return false
	}

	h.mu.RLock()
	st, ok := h.sources[weak.Make(source)]
	h.mu.RUnlock()
	if !ok {
		return false
	}

	list, ok := st.topics.Get(eventType)
	if !ok {
		return false
	}
	return list.remove(observer)
}

// Publish delivers event to every observer registered for (source,
// eventType) at call time, concurrently: every observer is started before
// any is awaited, so completion order depends only on how long each observer
// takes. The returned Delivery settles once all observers in the snapshot
// have finished, failing with the first error the join observes. Publishing
// to a pair with no subscribers settles successfully.
func (h *Hub[S, E]) Publish(ctx context.Context, source *S, eventType string, event E) *Delivery {
	observers := h.Observers(source, eventType)
	if len(observers) == 0 {
		return settled(nil)
	}

	d := newDelivery()
	var g errgroup.Group
	for _, o := range observers {
		g.Go(func() error {
			return o.Observe(ctx, eventType, event)
		})
	}
	go func() {
		d.settle(g.Wait())
	}()
	return d
}

// Notify delivers event to each registered observer strictly in subscription
// order, awaiting each observer before starting the next. Delivery aborts on
// the first observer failure: remaining observers in the snapshot are not
// invoked and the Delivery fails with that error. The snapshot rule from
// Publish applies here as well.
func (h *Hub[S, E]) Notify(ctx context.Context, source *S, eventType string, event E) *Delivery {
	observers := h.Observers(source, eventType)
	if len(observers) == 0 {
		return settled(nil)
	}

	d := newDelivery()
	go func() {
		for _, o := range observers {
			if err := o.Observe(ctx, eventType, event); err != nil {
				d.settle(err)
				return
			}
		}
		d.settle(nil)
	}()
	return d
}

// Observable returns a handle bound to this hub and the given source.
func (h *Hub[S, E]) Observable(source *S) *Observable[S, E] {
	return &Observable[S, E]{source: source, hub: h}
}

// topicsFor returns the bucket for source, creating it lazily. A freshly
// created bucket registers a cleanup keyed on the source: when the source is
// collected, the bucket is deleted from the hub.
func (h *Hub[S, E]) topicsFor(source *S) *sourceTopics[E] {
	key := weak.Make(source)

	h.mu.RLock()
	st, ok := h.sources[key]
	h.mu.RUnlock()
	if ok {
		return st
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if st, ok := h.sources[key]; ok {
		return st
	}

	st = &sourceTopics[E]{topics: haxmap.New[string, *observerList[E]]()}
	h.sources[key] = st
	runtime.AddCleanup(source, func(k weak.Pointer[S]) {
		h.mu.Lock()
		delete(h.sources, k)
		h.mu.Unlock()
	}, key)
	return st
}

// sourceCount reports the number of live source buckets. Used by tests to
// verify reclamation.
func (h *Hub[S, E]) sourceCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sources)
}
