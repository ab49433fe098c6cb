// Copyright 2025 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package digitqueue implements a doubly linked double-ended queue of
// decimal digits. The queue supports constant-time insertion, removal
// and inspection at both ends, bidirectional iteration, and deep-copy
// semantics: a queue owns its nodes exclusively and never shares
// storage with another queue.
package digitqueue

import (
	"strconv"
	"strings"

	"github.com/juju/errors"
)

const (
	// ErrEmpty is returned by Front, Back, PopFront and PopBack when
	// the queue holds no digits.
	ErrEmpty = errors.ConstError("queue is empty")

	// ErrInvalidPosition is returned when an iterator at the end
	// sentinel is dereferenced or moved.
	ErrInvalidPosition = errors.ConstError("invalid iterator position")
)

type node struct {
	digit int
	prev  *node
	next  *node
}

// Queue is an ordered, mutable sequence of digits with access at both
// ends. The zero value is an empty queue ready for use.
type Queue struct {
	head *node
	tail *node
	size int
}

// New returns a queue holding the given digits in order, front first.
func New(digits ...int) *Queue {
	q := &Queue{}
	for _, d := range digits {
		q.PushBack(d)
	}
	return q
}

// PushFront inserts d at the front of the queue.
func (q *Queue) PushFront(d int) {
	n := &node{digit: d, next: q.head}
	if q.head == nil {
		q.tail = n
	} else {
		q.head.prev = n
	}
	q.head = n
	q.size++
}

// PushBack inserts d at the back of the queue.
func (q *Queue) PushBack(d int) {
	n := &node{digit: d, prev: q.tail}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.size++
}

// Front returns the first digit without removing it.
func (q *Queue) Front() (int, error) {
	if q.head == nil {
		return 0, errors.Trace(ErrEmpty)
	}
	return q.head.digit, nil
}

// Back returns the last digit without removing it.
func (q *Queue) Back() (int, error) {
	if q.tail == nil {
		return 0, errors.Trace(ErrEmpty)
	}
	return q.tail.digit, nil
}

// PopFront removes and returns the first digit.
func (q *Queue) PopFront() (int, error) {
	if q.head == nil {
		return 0, errors.Trace(ErrEmpty)
	}
	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	} else {
		q.head.prev = nil
	}
	q.size--
	return n.digit, nil
}

// PopBack removes and returns the last digit.
func (q *Queue) PopBack() (int, error) {
	if q.tail == nil {
		return 0, errors.Trace(ErrEmpty)
	}
	n := q.tail
	q.tail = n.prev
	if q.tail == nil {
		q.head = nil
	} else {
		q.tail.next = nil
	}
	q.size--
	return n.digit, nil
}

// Len returns the number of digits currently held.
func (q *Queue) Len() int {
	return q.size
}

// Clear removes every digit, leaving the queue empty.
func (q *Queue) Clear() {
	q.head = nil
	q.tail = nil
	q.size = 0
}

// Copy returns a queue holding the same digits in the same order,
// sharing no nodes with q.
func (q *Queue) Copy() *Queue {
	c := &Queue{}
	for n := q.head; n != nil; n = n.next {
		c.PushBack(n.digit)
	}
	return c
}

// String renders the digits from front to back, each followed by a
// single space.
func (q *Queue) String() string {
	var sb strings.Builder
	for n := q.head; n != nil; n = n.next {
		sb.WriteString(strconv.Itoa(n.digit))
		sb.WriteByte(' ')
	}
	return sb.String()
}
