// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversions from native integers to Ints and Int to
// string conversions.

package bigdec

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

var pow10tab = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000, 10000000000000000000,
}

// pow2digitsTab[n] is the number of decimal digits of 2**n - 1, rounded up.
var pow2digitsTab = [...]int{
	1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5,
	5, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10,
	10, 10, 11, 11, 11, 12, 12, 12, 13, 13, 13, 13, 14, 14, 14, 15,
	15, 15, 16, 16, 16, 16, 17, 17, 17, 18, 18, 18, 19, 19, 19, 20, 20,
}

// decDigits returns n such that 10**(n-1) <= x < 10**n. In other words, the
// number of decimal digits required to represent x. Returns 0 for x == 0.
func decDigits(x uint64) (n int) {
	n = pow2digitsTab[bits.Len64(x)]
	if x < pow10tab[n-1] {
		n--
	}
	return n
}

// FromUint returns an Int set to v, for any native unsigned integer type.
func FromUint[T constraints.Unsigned](v T) Int {
	z := nat(nil).make(decDigits(uint64(v)))[:0]
	for v > 0 {
		// v%10 is always a valid digit
		z = append(z, NewDigit(uint8(v%10)))
		v /= 10
	}
	// the digit loop yields an empty nat for v == 0; norm turns it into {0}
	return Int{z.norm()}
}

// FromUint64 returns an Int set to v.
func FromUint64(v uint64) Int { return FromUint(v) }

// FromUint32 returns an Int set to v.
func FromUint32(v uint32) Int { return FromUint(v) }

// FromUint16 returns an Int set to v.
func FromUint16(v uint16) Int { return FromUint(v) }

// FromUint8 returns an Int set to v.
func FromUint8(v uint8) Int { return FromUint(v) }

// FromUint128 returns an Int set to the 128 bits unsigned integer hi<<64 | lo.
func FromUint128(hi, lo uint64) Int {
	z := make(nat, 0, 39) // 2**128-1 has 39 digits
	for hi != 0 || lo != 0 {
		var r uint64
		hi, r = hi/10, hi%10
		lo, r = bits.Div64(r, lo, 10)
		z = append(z, NewDigit(uint8(r)))
	}
	return Int{z.norm()}
}

// Append appends the plain decimal representation of x, without separators,
// to buf and returns the extended buffer.
func (x Int) Append(buf []byte) []byte {
	a := x.nat()
	for i := len(a) - 1; i >= 0; i-- {
		buf = append(buf, '0'+byte(a[i]))
	}
	return buf
}

// appendGrouped is like Append but inserts a ',' after every digit whose
// position, counted from the least significant digit 0, is a non-zero
// multiple of 3.
func (x Int) appendGrouped(buf []byte) []byte {
	a := x.nat()
	for i := len(a) - 1; i >= 0; i-- {
		buf = append(buf, '0'+byte(a[i]))
		if i != 0 && i%3 == 0 {
			buf = append(buf, ',')
		}
	}
	return buf
}

// Text returns the plain decimal representation of x, without separators.
func (x Int) Text() string {
	return string(x.Append(nil))
}

// String returns the decimal representation of x with digits grouped by three
// and separated by commas, as in "1,073,741,824".
func (x Int) String() string {
	return string(x.appendGrouped(nil))
}

// write count copies of text to s
func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			s.Write(b)
		}
	}
}

var _ fmt.Formatter = Int{} // Int must implement fmt.Formatter

// Format implements fmt.Formatter. It accepts the verbs 'v' and 's' for the
// grouped representation returned by String and 'd' for the plain decimal
// representation. Width and the '-' and '0' flags are supported, zero padding
// only applies to 'd'.
func (x Int) Format(s fmt.State, ch rune) {
	var buf []byte
	switch ch {
	case 'd':
		buf = x.Append(nil)
	case 's', 'v':
		buf = x.appendGrouped(nil)
	default:
		fmt.Fprintf(s, "%%!%c(bigdec.Int=%s)", ch, x.String())
		return
	}

	var left, zeros, right int
	if w, ok := s.Width(); ok && len(buf) < w {
		d := w - len(buf)
		switch {
		case s.Flag('-'):
			right = d
		case s.Flag('0') && ch == 'd':
			zeros = d
		default:
			left = d
		}
	}

	writeMultiple(s, " ", left)
	writeMultiple(s, "0", zeros)
	s.Write(buf)
	writeMultiple(s, " ", right)
}
