package lifecycle

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/beaconkit/beacon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type host struct {
	name string
}

func TestEmitterDeliversPhasesInOrder(t *testing.T) {
	em := NewEmitter[host]("httpd", nil)
	ctx := context.Background()

	var mu sync.Mutex
	var seen []string
	record := func(name string) beacon.Observer[Event] {
		return beacon.ObserverFunc(name, func(ctx context.Context, eventType string, event Event) error {
			mu.Lock()
			seen = append(seen, name+":"+event.Phase)
			mu.Unlock()
			return nil
		})
	}

	for _, phase := range []string{Starting, Stopping} {
		for _, name := range []string{"first", "second"} {
			_, err := em.Observable().Subscribe(phase, record(name))
			require.NoError(t, err)
		}
	}

	require.NoError(t, em.Starting(ctx).Wait())
	require.NoError(t, em.Stopping(ctx).Wait())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"first:starting", "second:starting",
		"first:stopping", "second:stopping",
	}, seen)
}

func TestEmitterStampsEvents(t *testing.T) {
	em := NewEmitter[host]("scheduler", nil)

	var got Event
	_, err := em.Observable().Subscribe(Started, beacon.ObserverFunc("capture",
		func(ctx context.Context, eventType string, event Event) error {
			got = event
			return nil
		}))
	require.NoError(t, err)

	require.NoError(t, em.Started(context.Background()).Wait())
	assert.Equal(t, Started, got.Phase)
	assert.Equal(t, "scheduler", got.Sender)
	assert.NotZero(t, got.ID)
	assert.False(t, got.Timestamp.IsZero())
}

func TestEmitterSurfacesObserverFailure(t *testing.T) {
	em := NewEmitter[host]("worker", nil)
	boom := errors.New("not ready")

	_, err := em.Observable().Subscribe(Starting, beacon.ObserverFunc("guard",
		func(ctx context.Context, eventType string, event Event) error {
			return boom
		}))
	require.NoError(t, err)

	require.ErrorIs(t, em.Starting(context.Background()).Wait(), boom)
}

func TestEmitterUsesSuppliedObservable(t *testing.T) {
	hub := beacon.NewHub[host, Event]()
	src := &host{name: "api"}
	obs := beacon.New(beacon.WithHub(hub), beacon.WithSource[host, Event](src))

	em := NewEmitter("api", obs)
	assert.Same(t, obs, em.Observable())

	delivered := false
	_, err := hub.Subscribe(src, Stopping, beacon.ObserverFunc("direct",
		func(ctx context.Context, eventType string, event Event) error {
			delivered = true
			return nil
		}))
	require.NoError(t, err)

	require.NoError(t, em.Stopping(context.Background()).Wait())
	assert.True(t, delivered)
}
