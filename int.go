// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdec

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// An Int represents a non-negative integer of arbitrary size as a sequence of
// decimal digits.
//
// The zero value for an Int represents the value 0.
//
// Ints are values: operations never modify their receiver or arguments and
// the result never shares memory with them. Copying an Int is cheap and safe.
type Int struct {
	abs nat
}

// Zero returns an Int set to 0.
func Zero() Int {
	return Int{nat(nil).set(natZero)}
}

// One returns an Int set to 1.
func One() Int {
	return Int{nat(nil).set(natOne)}
}

// FromDigits returns an Int with the given digits, least significant first.
// Leading zeros (at the end of ds) are dropped. FromDigits panics if any
// value is outside [0, 9].
//
// For instance FromDigits(0, 0, 1) returns 100.
func FromDigits[T constraints.Integer](ds ...T) Int {
	z := nat(nil).make(len(ds))
	for i, d := range ds {
		if d < 0 || d >= 10 {
			panic(fmt.Sprintf("%d is not a digit", d))
		}
		z[i] = NewDigit(uint8(d))
	}
	return Int{z.norm()}
}

// nat returns the digits of x, mapping the zero value Int{} to {0}.
func (x Int) nat() nat {
	if len(x.abs) == 0 {
		return natZero
	}
	return x.abs
}

// Digits returns a copy of the digits of x, least significant first. The
// result holds at least one digit and its last digit is never 0 unless x == 0.
func (x Int) Digits() []Digit {
	return []Digit(nat(nil).set(x.nat()))
}

// DigitCount returns the number of decimal digits of x. The result is >= 1.
func (x Int) DigitCount() int {
	return len(x.nat())
}

// Digit returns the i-th digit of x, starting at 0 for the least significant
// digit. It returns 0 for i >= x.DigitCount() and panics for i < 0.
func (x Int) Digit(i int) Digit {
	if i < 0 {
		panic("negative digit index")
	}
	if a := x.nat(); i < len(a) {
		return a[i]
	}
	return 0
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool {
	a := x.nat()
	return len(a) == 1 && a[0] == 0
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x Int) Cmp(y Int) int {
	return x.nat().cmp(y.nat())
}

// Equal reports whether x and y represent the same value.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}
