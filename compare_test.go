// Copyright 2025 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package infiniteint_test

import (
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/infiniteint"
)

type CompareSuite struct{}

var _ = gc.Suite(&CompareSuite{})

var orderedValues = []int{
	-1000, -999, -100, -99, -12, -11, -1, 0, 1, 9, 12, 99, 100, 999, 1000,
}

func (s *CompareSuite) TestTotalOrderAgreesWithInts(c *gc.C) {
	for _, x := range orderedValues {
		for _, y := range orderedValues {
			a := infiniteint.FromInt(x)
			b := infiniteint.FromInt(y)
			c.Check(a.Less(b), gc.Equals, x < y, gc.Commentf("%d < %d", x, y))
			c.Check(a.Equal(b), gc.Equals, x == y, gc.Commentf("%d == %d", x, y))
			c.Check(a.NotEqual(b), gc.Equals, x != y, gc.Commentf("%d != %d", x, y))
		}
	}
}

func (s *CompareSuite) TestTrichotomy(c *gc.C) {
	for _, x := range orderedValues {
		for _, y := range orderedValues {
			a := infiniteint.FromInt(x)
			b := infiniteint.FromInt(y)
			holds := 0
			if a.Less(b) {
				holds++
			}
			if b.Less(a) {
				holds++
			}
			if a.Equal(b) {
				holds++
			}
			c.Check(holds, gc.Equals, 1, gc.Commentf("%d vs %d", x, y))
		}
	}
}

func (s *CompareSuite) TestCompare(c *gc.C) {
	a := infiniteint.FromInt(-3)
	b := infiniteint.FromInt(4)
	c.Check(a.Compare(b), gc.Equals, -1)
	c.Check(b.Compare(a), gc.Equals, 1)
	c.Check(a.Compare(infiniteint.FromInt(-3)), gc.Equals, 0)
}

func (s *CompareSuite) TestBeyondMachineRange(c *gc.C) {
	big, err := infiniteint.Parse("123456789012345678901234567890")
	c.Assert(err, jc.ErrorIsNil)
	bigger, err := infiniteint.Parse("123456789012345678901234567891")
	c.Assert(err, jc.ErrorIsNil)

	c.Check(big.Less(bigger), jc.IsTrue)
	c.Check(bigger.Less(big), jc.IsFalse)
	c.Check(big.Neg().Less(big), jc.IsTrue)
	c.Check(bigger.Neg().Less(big.Neg()), jc.IsTrue)
}

func (s *CompareSuite) TestEqualChecksSign(c *gc.C) {
	c.Check(infiniteint.FromInt(7).Equal(infiniteint.FromInt(-7)), jc.IsFalse)
	c.Check(infiniteint.FromInt(-7).Equal(infiniteint.FromInt(-7)), jc.IsTrue)
}

func (s *CompareSuite) TestEqualChecksLength(c *gc.C) {
	c.Check(infiniteint.FromInt(7).Equal(infiniteint.FromInt(77)), jc.IsFalse)
	c.Check(infiniteint.FromInt(77).Equal(infiniteint.FromInt(7)), jc.IsFalse)
}
