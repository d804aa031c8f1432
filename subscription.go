package beacon

import "sync"

// Subscription is a cancellable handle representing one observer
// registration.
type Subscription interface {
	// ID returns the unique identifier of this registration.
	ID() string

	// Unsubscribe removes the registration. It is idempotent: cancelling an
	// already-removed registration is a no-op and never disturbs other
	// entries. Cancellation takes effect for subsequent deliveries only; a
	// snapshot already taken by an in-flight delivery is unaffected.
	Unsubscribe()
}

type subscription struct {
	id        string
	closeOnce sync.Once
	onClose   func()
}

func (s *subscription) ID() string { return s.id }

func (s *subscription) Unsubscribe() {
	s.closeOnce.Do(func() {
		if s.onClose != nil {
			s.onClose()
		}
	})
}
