// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigdec implements arbitrary-precision non-negative integer arithmetic
over a decimal digit representation.

Unlike math/big, an Int is stored as a little-endian slice of single decimal
Digits and all arithmetic is performed digit by digit in base 10, using the
two carry-producing primitives Digit.Plus and Digit.Times. There is no
conversion to or from binary: rendering an Int as text is a simple walk over
its digits.

The zero value for an Int corresponds to 0:

	var x bigdec.Int // x is an Int of value 0

New values are created from native unsigned integers of any width or from an
explicit digit sequence, least significant digit first:

	x := bigdec.FromUint(uint16(65535))  // x = 65535
	y := bigdec.FromDigits(4, 2, 8)      // y = 824
	z := bigdec.FromUint128(1, 0)        // z = 2**64

Ints are immutable values. Operations are methods of the form

	func (x Int) Binary(y Int) Int    // z = x binary y
	func (x Int) Pred() P             // p = pred(x)

which never modify x or y, and whose result never shares memory with them.
Arithmetic expressions are written as chains of method calls:

	z := x.Mul(y).Add(bigdec.One()).Pow(3) // z = (x*y + 1)**3

Add, Mul and Pow are total: they neither fail nor panic for any Int values.
The only contract violation in the package is building a Digit from a value
outside [0, 9], which panics.

Int implements the Stringer interface: String groups digits by three with
commas, as in "1,073,741,824", while Text returns the plain digits. Int also
satisfies the fmt package's Formatter interface, with %d printing plain digits
and %s or %v printing grouped digits.
*/
package bigdec
