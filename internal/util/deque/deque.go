// Package deque provides a minimal double-ended queue on a growable ring buffer.
// Both ends support constant-time amortized push and pop, which is the access
// shape abacus wires need: symbols are prepended in bulk and consumed from the
// front one at a time.
package deque

// Deque is a double-ended queue. The zero value is empty and ready to use.
type Deque[T any] struct {
	buf  []T
	head int
	size int
}

// From builds a deque holding the items in order, front first.
func From[T any](items []T) *Deque[T] {
	d := &Deque[T]{}
	for _, it := range items {
		d.PushBack(it)
	}
	return d
}

// Len is the number of items held.
func (d *Deque[T]) Len() int { return d.size }

// PushFront inserts an item before the current front.
func (d *Deque[T]) PushFront(item T) {
	d.grow()
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = item
	d.size++
}

// PushBack appends an item after the current back.
func (d *Deque[T]) PushBack(item T) {
	d.grow()
	d.buf[(d.head+d.size)%len(d.buf)] = item
	d.size++
}

// PopFront removes and returns the front item; ok is false when the deque is empty.
func (d *Deque[T]) PopFront() (item T, ok bool) {
	if d.size == 0 {
		return item, false
	}
	item = d.buf[d.head]
	var zero T
	d.buf[d.head] = zero
	d.head = (d.head + 1) % len(d.buf)
	d.size--
	return item, true
}

func (d *Deque[T]) grow() {
	if d.size < len(d.buf) {
		return
	}
	next := make([]T, max(4, 2*len(d.buf)))
	for i := 0; i < d.size; i++ {
		next[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = next
	d.head = 0
}
