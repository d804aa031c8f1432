package lifecycle

import (
	"context"
	"time"

	"github.com/beaconkit/beacon"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
)

// Emitter drives the lifecycle phases of a host component through an
// observable. Phases are delivered with Notify so observers see each
// transition strictly in subscription order.
type Emitter[S any] struct {
	sender     string
	observable *beacon.Observable[S, Event]
}

// NewEmitter creates an emitter that stamps events with sender and delivers
// them through observable. A nil observable gets a self-contained handle
// with its own private hub and source.
func NewEmitter[S any](sender string, observable *beacon.Observable[S, Event]) *Emitter[S] {
	if observable == nil {
		observable = beacon.New[S, Event]()
	}
	return &Emitter[S]{sender: sender, observable: observable}
}

// Observable returns the handle observers should subscribe on.
func (e *Emitter[S]) Observable() *beacon.Observable[S, Event] {
	return e.observable
}

// Starting announces the starting phase.
func (e *Emitter[S]) Starting(ctx context.Context) *beacon.Delivery {
	return e.emit(ctx, Starting)
}

// Started announces the started phase.
func (e *Emitter[S]) Started(ctx context.Context) *beacon.Delivery {
	return e.emit(ctx, Started)
}

// Stopping announces the stopping phase.
func (e *Emitter[S]) Stopping(ctx context.Context) *beacon.Delivery {
	return e.emit(ctx, Stopping)
}

// Stopped announces the stopped phase.
func (e *Emitter[S]) Stopped(ctx context.Context) *beacon.Delivery {
	return e.emit(ctx, Stopped)
}

func (e *Emitter[S]) emit(ctx context.Context, phase string) *beacon.Delivery {
	ev := Event{
		ID:        uuid.Must(uuid.NewV7()),
		Phase:     phase,
		Sender:    e.sender,
		Timestamp: strfmt.DateTime(time.Now()),
	}
	return e.observable.Notify(ctx, phase, ev)
}
