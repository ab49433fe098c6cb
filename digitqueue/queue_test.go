// Copyright 2025 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package digitqueue_test

import (
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/infiniteint/digitqueue"
)

type QueueSuite struct{}

var _ = gc.Suite(&QueueSuite{})

func (s *QueueSuite) TestZeroValueIsEmpty(c *gc.C) {
	var q digitqueue.Queue
	c.Check(q.Len(), gc.Equals, 0)
	c.Check(q.String(), gc.Equals, "")

	_, err := q.Front()
	c.Check(err, jc.ErrorIs, digitqueue.ErrEmpty)
	_, err = q.Back()
	c.Check(err, jc.ErrorIs, digitqueue.ErrEmpty)
	_, err = q.PopFront()
	c.Check(err, jc.ErrorIs, digitqueue.ErrEmpty)
	_, err = q.PopBack()
	c.Check(err, jc.ErrorIs, digitqueue.ErrEmpty)
}

func (s *QueueSuite) TestNew(c *gc.C) {
	q := digitqueue.New(1, 2, 3)
	c.Check(q.Len(), gc.Equals, 3)
	c.Check(q.String(), gc.Equals, "1 2 3 ")
}

func (s *QueueSuite) TestPushFront(c *gc.C) {
	q := digitqueue.New()
	for _, d := range []int{1, 2, 3} {
		q.PushFront(d)
	}
	c.Check(q.Len(), gc.Equals, 3)
	c.Check(q.String(), gc.Equals, "3 2 1 ")

	front, err := q.Front()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(front, gc.Equals, 3)
	back, err := q.Back()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(back, gc.Equals, 1)
}

func (s *QueueSuite) TestPushBack(c *gc.C) {
	q := digitqueue.New()
	for _, d := range []int{1, 2, 3} {
		q.PushBack(d)
	}
	c.Check(q.Len(), gc.Equals, 3)
	c.Check(q.String(), gc.Equals, "1 2 3 ")

	front, err := q.Front()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(front, gc.Equals, 1)
	back, err := q.Back()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(back, gc.Equals, 3)
}

func (s *QueueSuite) TestPopFront(c *gc.C) {
	q := digitqueue.New(1, 2, 3)
	for _, expect := range []int{1, 2, 3} {
		got, err := q.PopFront()
		c.Assert(err, jc.ErrorIsNil)
		c.Check(got, gc.Equals, expect)
	}
	c.Check(q.Len(), gc.Equals, 0)
	_, err := q.PopFront()
	c.Check(err, jc.ErrorIs, digitqueue.ErrEmpty)
}

func (s *QueueSuite) TestPopBack(c *gc.C) {
	q := digitqueue.New(1, 2, 3)
	for _, expect := range []int{3, 2, 1} {
		got, err := q.PopBack()
		c.Assert(err, jc.ErrorIsNil)
		c.Check(got, gc.Equals, expect)
	}
	c.Check(q.Len(), gc.Equals, 0)
	_, err := q.PopBack()
	c.Check(err, jc.ErrorIs, digitqueue.ErrEmpty)
}

func (s *QueueSuite) TestPopLastDigitResetsBothEnds(c *gc.C) {
	q := digitqueue.New(7)
	_, err := q.PopFront()
	c.Assert(err, jc.ErrorIsNil)

	// The queue must be reusable from either end afterwards.
	q.PushBack(5)
	c.Check(q.String(), gc.Equals, "5 ")

	_, err = q.PopBack()
	c.Assert(err, jc.ErrorIsNil)
	q.PushFront(9)
	c.Check(q.String(), gc.Equals, "9 ")
}

func (s *QueueSuite) TestClear(c *gc.C) {
	q := digitqueue.New(1, 2, 3)
	q.Clear()
	c.Check(q.Len(), gc.Equals, 0)
	_, err := q.Front()
	c.Check(err, jc.ErrorIs, digitqueue.ErrEmpty)

	q.PushBack(4)
	c.Check(q.String(), gc.Equals, "4 ")
}

func (s *QueueSuite) TestCopyIsDeep(c *gc.C) {
	q := digitqueue.New(1, 2, 3)
	dup := q.Copy()
	c.Check(dup.String(), gc.Equals, "1 2 3 ")

	// Mutating either queue leaves the other untouched.
	_, err := q.PopFront()
	c.Assert(err, jc.ErrorIsNil)
	dup.PushBack(4)
	c.Check(q.String(), gc.Equals, "2 3 ")
	c.Check(dup.String(), gc.Equals, "1 2 3 4 ")
}

func (s *QueueSuite) TestCopyEmpty(c *gc.C) {
	dup := digitqueue.New().Copy()
	c.Check(dup.Len(), gc.Equals, 0)
	dup.PushFront(1)
	c.Check(dup.String(), gc.Equals, "1 ")
}
