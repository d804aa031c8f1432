package beacon

import "sync"

// Delivery is the completion handle for a single Publish or Notify call.
// It settles once every observer in the delivery snapshot has finished,
// carrying the first observer failure if any.
type Delivery struct {
	ch   chan error
	once sync.Once
	mu   sync.Mutex
	err  error
	done bool
}

func newDelivery() *Delivery {
	return &Delivery{ch: make(chan error, 1)}
}

// settle resolves the delivery. Only the first call has any effect.
func (d *Delivery) settle(err error) {
	d.once.Do(func() { d.ch <- err })
}

// Wait blocks until the delivery settles and returns its outcome. The result
// is memoized, so Wait can be called any number of times.
func (d *Delivery) Wait() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.done {
		return d.err
	}
	d.err = <-d.ch
	d.done = true
	return d.err
}

// Done reports whether the delivery has settled, without blocking.
func (d *Delivery) Done() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.done {
		return true
	}
	select {
	case err := <-d.ch:
		d.err = err
		d.done = true
		return true
	default:
		return false
	}
}

// settled returns an already-resolved delivery.
func settled(err error) *Delivery {
	d := newDelivery()
	d.settle(err)
	return d
}
