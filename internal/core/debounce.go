package core

import "github.com/kamstrup/intmap"

// Debouncer turns held keys into repeat counters. A key's counter is 0 while
// it is up, becomes 1 on Press and grows by one on every Poll while it stays
// down. Callers compare the counter with a delay to decide when a held key
// repeats. Unknown keys read as 0.
type Debouncer struct {
	keys *intmap.Map[Action, int]
}

// NewDebouncer creates an empty debouncer.
func NewDebouncer() *Debouncer {
	return &Debouncer{keys: intmap.New[Action, int](16)}
}

// Press marks k as freshly pressed.
func (d *Debouncer) Press(k Action) {
	d.keys.Put(k, 1)
}

// Release marks k as up.
func (d *Debouncer) Release(k Action) {
	d.keys.Put(k, 0)
}

// Poll returns the counter of k and advances it when the key is down.
func (d *Debouncer) Poll(k Action) int {
	v, ok := d.keys.Get(k)
	switch {
	case v > 0:
		d.keys.Put(k, v+1)
	case !ok:
		d.keys.Put(k, 0)
	}
	return v
}

// PollOnce returns the counter of k and resets it, so a held key reports a
// positive value only once per press.
func (d *Debouncer) PollOnce(k Action) int {
	v, _ := d.keys.Get(k)
	d.keys.Put(k, 0)
	return v
}

// Clear forgets every key.
func (d *Debouncer) Clear() {
	d.keys.Clear()
}

// Len returns the number of keys pressed, released or polled since the
// last Clear.
func (d *Debouncer) Len() int {
	return d.keys.Len()
}
