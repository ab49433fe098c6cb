// Copyright 2025 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package infiniteint

import (
	"strings"
)

// String renders the value as an optional leading minus sign followed
// by the decimal digits, most significant first. There are no leading
// zeroes except for the standalone digit of zero itself.
func (ii *InfiniteInt) String() string {
	var sb strings.Builder
	if ii.negative {
		sb.WriteByte('-')
	}
	for it := ii.digits.Begin(); it.Valid(); it.Next() {
		d, _ := it.Value()
		sb.WriteByte(byte('0' + d))
	}
	return sb.String()
}
