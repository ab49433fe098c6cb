// Copyright 2025 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package infiniteint

// Less reports whether ii is strictly less than other.
func (ii *InfiniteInt) Less(other *InfiniteInt) bool {
	// Differing signs decide outright: canonical zero is never
	// negative, so a negative value is always smaller.
	if ii.negative != other.negative {
		return ii.negative
	}

	// Same sign, differing digit counts: more digits means a larger
	// magnitude, which inverts for negative values.
	if ii.NumDigits() != other.NumDigits() {
		if ii.negative {
			return ii.NumDigits() > other.NumDigits()
		}
		return ii.NumDigits() < other.NumDigits()
	}

	// Same sign and digit count: the first differing digit decides,
	// scanning from the most significant end.
	l, r := ii.digits.Begin(), other.digits.Begin()
	for l.Valid() && r.Valid() {
		ld, _ := l.Value()
		rd, _ := r.Value()
		if ld != rd {
			if ii.negative {
				return ld > rd
			}
			return ld < rd
		}
		l.Next()
		r.Next()
	}
	return false
}

// Equal reports whether ii and other represent the same integer:
// identical signs and identical digit sequences.
func (ii *InfiniteInt) Equal(other *InfiniteInt) bool {
	if ii.negative != other.negative || ii.NumDigits() != other.NumDigits() {
		return false
	}
	l, r := ii.digits.Begin(), other.digits.Begin()
	for l.Valid() && r.Valid() {
		ld, _ := l.Value()
		rd, _ := r.Value()
		if ld != rd {
			return false
		}
		l.Next()
		r.Next()
	}
	return true
}

// NotEqual is the negation of Equal.
func (ii *InfiniteInt) NotEqual(other *InfiniteInt) bool {
	return !ii.Equal(other)
}

// Compare returns -1, 0 or 1 according to whether ii is less than,
// equal to or greater than other.
func (ii *InfiniteInt) Compare(other *InfiniteInt) int {
	switch {
	case ii.Less(other):
		return -1
	case ii.Equal(other):
		return 0
	}
	return 1
}
