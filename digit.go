// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdec

import "fmt"

// debugDigits enables internal consistency checks: carry bounds in the digit
// kernels and normal form of nat values returned by arithmetic operations.
const debugDigits = true

// A Digit is a single decimal digit in the range [0, 9].
type Digit uint8

// NewDigit returns v as a Digit. It panics if v >= 10.
func NewDigit(v uint8) Digit {
	if v >= 10 {
		panic(fmt.Sprintf("%d is not a digit", v))
	}
	return Digit(v)
}

// Plus returns the least significant digit of a+b and the carry. The carry
// is either 0 or 1.
func (a Digit) Plus(b Digit) (sum, carry Digit) {
	s := a + b
	if s >= 10 {
		s -= 10
		carry = 1
	}
	if debugDigits && s >= 10 {
		panic(fmt.Sprintf("BUG: %d + %d overflows a single carry", a, b))
	}
	return s, carry
}

// Times returns the least significant digit of a*b and the carry. The carry
// is in the range [0, 8].
func (a Digit) Times(b Digit) (prod, carry Digit) {
	p := a * b // at most 81, fits a uint8
	return p % 10, p / 10
}

// mulAdd returns the least significant digit of a*b + c and the carry. With
// a, b, c <= 9 the result is at most 90 and the carry fits a single digit.
func (a Digit) mulAdd(b, c Digit) (z, carry Digit) {
	p, c1 := a.Times(b)
	z, c2 := p.Plus(c)
	carry, c3 := c1.Plus(c2)
	if debugDigits && c3 != 0 {
		panic(fmt.Sprintf("BUG: %d * %d + %d carries past one digit", a, b, c))
	}
	return z, carry
}

// String returns the ASCII representation of d.
func (d Digit) String() string {
	return string(rune('0' + d))
}
