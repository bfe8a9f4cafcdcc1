package beauty

import "github.com/google/uuid"

// Subscription is the handle returned by Subscribe.
type Subscription struct{ id uuid.UUID }

// ID returns the handle's string form, handy for logging.
func (s Subscription) ID() string { return s.id.String() }

type subscriber struct {
	id uuid.UUID
	fn func()
}

// Subscribe registers fn to be called after the facade's enable or template
// state changes outside direct item interaction. Callbacks run synchronously
// in registration order on the caller's goroutine.
func (f *Facade) Subscribe(fn func()) Subscription {
	if f == nil || fn == nil {
		return Subscription{}
	}
	s := subscriber{id: uuid.New(), fn: fn}
	f.subs = append(f.subs, s)
	f.debug("subscriber added", "id", s.id.String(), "count", len(f.subs))
	return Subscription{id: s.id}
}

// Unsubscribe removes the subscriber behind sub. It reports whether one was
// removed.
func (f *Facade) Unsubscribe(sub Subscription) bool {
	if f == nil || sub.id == uuid.Nil {
		return false
	}
	for i, s := range f.subs {
		if s.id == sub.id {
			f.subs = append(f.subs[:i:i], f.subs[i+1:]...)
			f.debug("subscriber removed", "id", sub.id.String(), "count", len(f.subs))
			return true
		}
	}
	return false
}

// Subscribers reports how many callbacks are registered.
func (f *Facade) Subscribers() int {
	if f == nil {
		return 0
	}
	return len(f.subs)
}

func (f *Facade) notify() {
	if f == nil || len(f.subs) == 0 {
		return
	}
	// Callbacks may unsubscribe while we iterate.
	snapshot := make([]subscriber, len(f.subs))
	copy(snapshot, f.subs)
	for _, s := range snapshot {
		s.fn()
	}
}
