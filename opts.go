package beacon

import (
	"errors"

	"github.com/fogfish/opts"
)

// WithHub binds the observable to an existing hub so that multiple handles,
// and direct hub callers, share one set of registrations.
func WithHub[S any, E any](hub *Hub[S, E]) opts.Option[Observable[S, E]] {
	return opts.Type[Observable[S, E]](func(o *Observable[S, E]) error {
		if hub == nil {
			return errors.New("hub is required")
		}
		o.hub = hub
		return nil
	})
}

// WithSource pins the observable to source instead of the default synthetic
// one, so events are delivered under that object's identity.
func WithSource[S any, E any](source *S) opts.Option[Observable[S, E]] {
	return opts.Type[Observable[S, E]](func(o *Observable[S, E]) error {
		if source == nil {
			return errors.New("source is required")
		}
		o.source = source
		return nil
	})
}
