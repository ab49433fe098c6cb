// Copyright 2025 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package digitqueue

import (
	"github.com/juju/errors"
)

// Iterator references a position within a single queue: either one of
// the queue's digits or the end sentinel, the logical position one
// step past either end. Obtain iterators from Begin, Last or End.
//
// An iterator is invalidated by any mutation of its queue other than
// its own traversal; using an invalidated iterator is undefined.
type Iterator struct {
	queue *Queue
	cur   *node
}

// Begin returns an iterator on the first digit, or the end sentinel
// if the queue is empty.
func (q *Queue) Begin() *Iterator {
	return &Iterator{queue: q, cur: q.head}
}

// Last returns an iterator on the last digit, or the end sentinel if
// the queue is empty.
func (q *Queue) Last() *Iterator {
	return &Iterator{queue: q, cur: q.tail}
}

// End returns the end sentinel iterator. Advancing past the back or
// retreating past the front arrives at a position equal to this one.
func (q *Queue) End() *Iterator {
	return &Iterator{queue: q}
}

// Valid reports whether the iterator references a digit rather than
// the end sentinel.
func (it *Iterator) Valid() bool {
	return it.cur != nil
}

// Next advances to the following digit. Advancing from the last digit
// lands on the end sentinel; advancing from the sentinel fails with
// ErrInvalidPosition.
func (it *Iterator) Next() error {
	if it.cur == nil {
		return errors.Trace(ErrInvalidPosition)
	}
	it.cur = it.cur.next
	return nil
}

// Prev retreats to the preceding digit. Retreating from the first
// digit lands on the end sentinel; retreating from the sentinel fails
// with ErrInvalidPosition.
func (it *Iterator) Prev() error {
	if it.cur == nil {
		return errors.Trace(ErrInvalidPosition)
	}
	it.cur = it.cur.prev
	return nil
}

// Value returns the digit at the current position, or
// ErrInvalidPosition at the end sentinel.
func (it *Iterator) Value() (int, error) {
	if it.cur == nil {
		return 0, errors.Trace(ErrInvalidPosition)
	}
	return it.cur.digit, nil
}

// Equal reports whether both iterators reference the same queue
// instance and the same position. Two sentinel iterators on the same
// queue are equal.
func (it *Iterator) Equal(other *Iterator) bool {
	return it.queue == other.queue && it.cur == other.cur
}
