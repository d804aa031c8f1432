/*
Package beacon is an in-process event notification primitive. It associates
arbitrary source objects with interested observers, keyed by an event-type
label, and delivers events to them under one of two concurrency contracts:

  - Publish: concurrent fan-out. Every observer is started before any is
    awaited; the returned Delivery settles once all of them have finished.
  - Notify: strictly sequential. Each observer is awaited before the next
    one starts, in subscription order.

# Core concepts

  - Hub: owns all state. It maps (source, event type) pairs to ordered
    observer lists and implements subscribe, unsubscribe, query, and both
    delivery modes.
  - Observable: a facade bound to a single (hub, source) pair, re-exposing
    the same operations without the source argument.
  - Observer: an asynchronous listener with an informational name and a
    single Observe operation that may fail.
  - Subscription: a cancellable handle for one registration. Cancellation
    is idempotent and equivalent to Unsubscribe.
  - Delivery: the completion of one Publish or Notify call.

# Weak source keys

Sources are identity keys, nothing more: the hub never inspects them, and
the outer mapping holds them weakly. Registering observers under a source
does not extend that source's lifetime; once nothing else references the
source, its bucket and every registration in it are reclaimed with no
explicit cleanup call. Repeated subscribe-and-drop cycles therefore do not
grow the hub without bound.

# Basic usage

A component that wants to be observable wraps itself in an Observable and
lets interested parties subscribe before triggering deliveries:

	type server struct{ addr string }

	srv := &server{addr: ":8080"}
	obs := beacon.New(beacon.WithSource[server, string](srv))

	sub, err := obs.Subscribe("starting", beacon.ObserverFunc("logger",
		func(ctx context.Context, eventType string, event string) error {
			fmt.Println(eventType, event)
			return nil
		}))
	if err != nil {
		// observer was nil
	}
	defer sub.Unsubscribe()

	if err := obs.Notify(ctx, "starting", "1").Wait(); err != nil {
		// an observer failed
	}

Handles constructed without options own a private hub and a fresh synthetic
source, which makes them self-contained. Pass WithHub to share one hub, and
its registrations, across several handles.

# Failure semantics

The hub raises no errors of its own during delivery; failures are
pass-through from observer code. Publish waits for every observer in the
snapshot to settle and then fails with the first error the join observed.
Notify aborts on the first failing observer and does not invoke the rest of
the snapshot. Unsubscribing an absent entry and cancelling twice are no-ops,
reported as false rather than failures.

The lifecycle subpackage builds the conventional "starting"/"stopping"
host-framework events on top of this primitive.
*/
package beacon
