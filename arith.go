// Copyright 2025 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package infiniteint

import (
	"github.com/juju/infiniteint/digitqueue"
)

// Add returns the sum of ii and other.
func (ii *InfiniteInt) Add(other *InfiniteInt) *InfiniteInt {
	if ii.negative == other.negative {
		// Same sign: add the magnitudes and keep the shared sign.
		return &InfiniteInt{
			digits:   addAbs(ii.digits, other.digits),
			negative: ii.negative,
		}
	}
	// Differing signs: a + (-b) is a - b.
	return subSigned(ii, other)
}

// Sub returns the difference ii - other.
func (ii *InfiniteInt) Sub(other *InfiniteInt) *InfiniteInt {
	if ii.negative != other.negative {
		// Differing signs: a - (-b) is a + b, keeping ii's sign.
		return &InfiniteInt{
			digits:   addAbs(ii.digits, other.digits),
			negative: ii.negative,
		}
	}
	return subSigned(ii, other)
}

// Mul returns the product of ii and other, by schoolbook long
// multiplication of the magnitudes. The sign of the product is
// negative exactly when the operand signs differ.
func (ii *InfiniteInt) Mul(other *InfiniteInt) *InfiniteInt {
	if ii.isZero() || other.isZero() {
		return New()
	}

	total := digitqueue.New()
	shift := 0
	for rc := other.digits.Last(); rc.Valid(); rc.Prev() {
		rd, _ := rc.Value()

		// Multiply the current digit of other against every digit
		// of ii, least significant first.
		partial := digitqueue.New()
		carry := 0
		for lc := ii.digits.Last(); lc.Valid(); lc.Prev() {
			ld, _ := lc.Value()
			t := ld*rd + carry
			partial.PushFront(t % 10)
			carry = t / 10
		}
		if carry > 0 {
			partial.PushFront(carry)
		}

		// Append positional zeroes to multiply by the power of ten
		// of the current digit of other.
		for i := 0; i < shift; i++ {
			partial.PushBack(0)
		}

		total = addAbs(total, partial)
		shift++
	}
	return &InfiniteInt{
		digits:   total,
		negative: ii.negative != other.negative,
	}
}

// subSigned implements the subtract path shared by Add and Sub: the
// difference of the operands' magnitudes, signed according to which
// operand supplied the larger one. Ties treat left as larger, which
// yields canonical zero.
func subSigned(left, right *InfiniteInt) *InfiniteInt {
	leftMag := &InfiniteInt{digits: left.digits}
	rightMag := &InfiniteInt{digits: right.digits}
	leftIsLarger := !leftMag.Less(rightMag)

	var diff *digitqueue.Queue
	if leftIsLarger {
		diff = subAbs(left.digits, right.digits)
	} else {
		diff = subAbs(right.digits, left.digits)
	}

	result := &InfiniteInt{digits: diff}
	if result.isZero() {
		return result
	}
	// The result is negative when the larger magnitude came from a
	// negative left operand, or from the right operand while the
	// left was non-negative.
	if (left.negative && leftIsLarger) || (!left.negative && !leftIsLarger) {
		result.negative = true
	}
	return result
}

// addAbs sums two magnitudes digit-wise from the least significant
// end, propagating the carry. Either queue may be empty, in which
// case it contributes nothing.
func addAbs(a, b *digitqueue.Queue) *digitqueue.Queue {
	sum := digitqueue.New()
	carry := 0

	ac, bc := a.Last(), b.Last()
	for ac.Valid() && bc.Valid() {
		ad, _ := ac.Value()
		bd, _ := bc.Value()
		t := ad + bd + carry
		sum.PushFront(t % 10)
		carry = t / 10
		ac.Prev()
		bc.Prev()
	}

	// One operand may be exhausted; keep propagating the carry
	// through the other.
	for ac.Valid() {
		ad, _ := ac.Value()
		t := ad + carry
		sum.PushFront(t % 10)
		carry = t / 10
		ac.Prev()
	}
	for bc.Valid() {
		bd, _ := bc.Value()
		t := bd + carry
		sum.PushFront(t % 10)
		carry = t / 10
		bc.Prev()
	}

	if carry > 0 {
		sum.PushFront(carry)
	}
	return sum
}

// subAbs computes larger minus smaller digit-wise with borrow
// propagation, then strips leading zeroes. Precondition: larger's
// magnitude is at least smaller's.
func subAbs(larger, smaller *digitqueue.Queue) *digitqueue.Queue {
	diff := digitqueue.New()
	borrow := 0

	lc, sc := larger.Last(), smaller.Last()
	for lc.Valid() && sc.Valid() {
		ld, _ := lc.Value()
		sd, _ := sc.Value()
		d := ld - sd - borrow
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		diff.PushFront(d)
		lc.Prev()
		sc.Prev()
	}

	for lc.Valid() {
		ld, _ := lc.Value()
		d := ld - borrow
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		diff.PushFront(d)
		lc.Prev()
	}

	stripLeadingZeroes(diff)
	return diff
}

// stripLeadingZeroes removes leading zero digits, always keeping the
// ones digit.
func stripLeadingZeroes(q *digitqueue.Queue) {
	for q.Len() > 1 {
		d, err := q.Front()
		if err != nil || d != 0 {
			return
		}
		q.PopFront()
	}
}
