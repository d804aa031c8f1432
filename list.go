package beacon

import "sync"

// observerList holds the registrations for one (source, event type) pair in
// insertion order. Duplicates are permitted and count as independent entries.
type observerList[E any] struct {
	mu      sync.Mutex
	entries []Observer[E]
}

// snapshot copies the current entries. Deliveries iterate the copy, so
// subscriptions added or cancelled mid-flight never affect a delivery whose
// snapshot was already taken.
func (l *observerList[E]) snapshot() []Observer[E] {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.entries) == 0 {
		return nil
	}
	out := make([]Observer[E], len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *observerList[E]) add(o Observer[E]) {
	l.mu.Lock()
	l.entries = append(l.entries, o)
	l.mu.Unlock()
}

// remove drops the first entry matching o by identity and reports whether a
// match was found.
func (l *observerList[E]) remove(o Observer[E]) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, entry := range l.entries {
		if entry == o {
			copy(l.entries[i:], l.entries[i+1:])
			l.entries[len(l.entries)-1] = nil
			l.entries = l.entries[:len(l.entries)-1]
			return true
		}
	}
	return false
}
