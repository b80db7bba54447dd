// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdec

// alias reports whether x and y share the same base array.
func alias(x, y nat) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// add sets z to x+y and returns z. z may alias x or y.
func (z nat) add(x, y nat) nat {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	// padTo copies the shorter operand, so neither x nor y is written to.
	x, y = x.padTo(n), y.padTo(n)
	z = z.make(n + 1)

	var c Digit
	for i := 0; i < n; i++ {
		s, c1 := x[i].Plus(y[i])
		s, c2 := s.Plus(c)
		if debugDigits && c1 != 0 && c2 != 0 {
			// x[i] + y[i] + c <= 19
			panic("BUG: double carry in add")
		}
		z[i] = s
		c = max(c1, c2)
	}
	z[n] = c

	z = z.norm()
	if debugDigits {
		z.validate()
	}
	return z
}

// mulDigit sets z to x*d*10^shift and returns z: shift zero digits followed by
// the digits of x*d. z must not alias x.
func (z nat) mulDigit(x nat, d Digit, shift int) nat {
	n := len(x)
	z = z.make(shift + n + 1)
	for i := 0; i < shift; i++ {
		z[i] = 0
	}
	var c Digit
	for j := 0; j < n; j++ {
		z[shift+j], c = d.mulAdd(x[j], c)
	}
	z[shift+n] = c
	return z.norm()
}

// mul sets z to x*y using schoolbook long multiplication: one shifted partial
// product per digit of y, summed with add.
func (z nat) mul(x, y nat) nat {
	if alias(z, x) || alias(z, y) {
		z = nil // z is an alias for x or y - cannot reuse
	}
	z = z.make(1).setZero()

	var p nat
	for i, d := range y {
		p = p.mulDigit(x, d, i)
		z = z.add(z, p)
	}
	return z
}
