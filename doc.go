// Copyright 2025 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package infiniteint implements a signed decimal integer with
// arbitrarily many digits, backed by a double-ended queue of digits.
//
// Values are constructed with New, FromInt, Parse or Scan, converted
// back to a machine int with Int, and combined with Add, Sub and Mul.
// Arithmetic results are always newly allocated; existing values are
// never modified by an operation.
package infiniteint
