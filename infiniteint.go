// Copyright 2025 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package infiniteint

import (
	"math"

	"github.com/juju/errors"

	"github.com/juju/infiniteint/digitqueue"
)

// ErrRange is returned by Int when the value lies outside the range
// representable by a machine int.
const ErrRange = errors.ConstError("value out of range for int")

// InfiniteInt is a signed integer with arbitrarily many decimal
// digits.
//
// Representation invariant: the magnitude holds at least one digit,
// most significant first, with no leading zeroes; the value zero is
// always the single digit 0 with a non-negative sign. The zero value
// of the struct is not useful: construct values with New, FromInt,
// Parse or Scan.
type InfiniteInt struct {
	digits   *digitqueue.Queue
	negative bool
}

// New returns the canonical zero.
func New() *InfiniteInt {
	return &InfiniteInt{digits: digitqueue.New(0)}
}

// FromInt returns the InfiniteInt representing n.
func FromInt(n int) *InfiniteInt {
	ii := &InfiniteInt{digits: digitqueue.New()}

	// The magnitude of the minimum int exceeds the maximum, so peel
	// off the lowest digit before it is safe to negate the rest.
	if n == math.MinInt {
		ii.digits.PushFront(-(n % 10))
		n /= 10
	}
	if n < 0 {
		ii.negative = true
		n = -n
	}
	for {
		ii.digits.PushFront(n % 10)
		n /= 10
		if n == 0 {
			break
		}
	}
	return ii
}

// Int converts the value to a machine int, failing with ErrRange when
// it lies outside the representable range.
func (ii *InfiniteInt) Int() (int, error) {
	if FromInt(math.MaxInt).Less(ii) || ii.Less(FromInt(math.MinInt)) {
		return 0, errors.Trace(ErrRange)
	}

	// Accumulate negated: the minimum int has no positive
	// counterpart, so building the magnitude below zero cannot
	// overflow for any in-range value.
	result := 0
	for it := ii.digits.Begin(); it.Valid(); it.Next() {
		d, err := it.Value()
		if err != nil {
			return 0, errors.Trace(err)
		}
		result = result*10 - d
	}
	if !ii.negative {
		result = -result
	}
	return result, nil
}

// NumDigits returns the number of decimal digits in the magnitude.
func (ii *InfiniteInt) NumDigits() int {
	return ii.digits.Len()
}

// Negative reports whether the value is strictly less than zero.
func (ii *InfiniteInt) Negative() bool {
	return ii.negative
}

// SetNegative sets the sign of the value. Zero admits no negative
// form, so the sign of a zero value is always left non-negative.
func (ii *InfiniteInt) SetNegative(negative bool) {
	if ii.isZero() {
		ii.negative = false
		return
	}
	ii.negative = negative
}

// Neg returns a copy of the value with the opposite sign. The
// negation of zero is zero.
func (ii *InfiniteInt) Neg() *InfiniteInt {
	result := ii.Copy()
	result.SetNegative(!ii.negative)
	return result
}

// Copy returns a deep copy sharing no state with ii.
func (ii *InfiniteInt) Copy() *InfiniteInt {
	return &InfiniteInt{digits: ii.digits.Copy(), negative: ii.negative}
}

func (ii *InfiniteInt) isZero() bool {
	if ii.digits.Len() != 1 {
		return false
	}
	d, err := ii.digits.Front()
	return err == nil && d == 0
}
