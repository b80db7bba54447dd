// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdec

import "fmt"

// nat is an unsigned integer x of the form
//
//	x = x[n-1]*10^(n-1) + x[n-2]*10^(n-2) + ... + x[1]*10 + x[0]
//
// with 0 <= x[i] < 10 and 0 <= i < n, stored in a slice of length n, with the
// digits x[i] as the slice elements.
//
// A number is normalized if the slice contains no leading 0 digits, except for
// the value 0 whose normalized representation is the single digit slice {0}.
// During arithmetic operations, denormalized values may occur but are always
// normalized before returning the final result. The empty slice is never a
// valid result.
type nat []Digit

var (
	natZero = nat{0}
	natOne  = nat{1}
)

func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most nats start small and stay that way; don't over-allocate.
		return make(nat, 1)
	}
	// one extra digit for the final carry of add and mulDigit
	const e = 1
	return make(nat, n, n+e)
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// msd returns the index of the most significant non-zero digit plus one,
// such that x == x[:x.msd()] in value. Returns 0 if x == 0.
func (x nat) msd() int {
	i := len(x)
	for i != 0 && x[i-1] == 0 {
		i--
	}
	return i
}

// norm truncates leading zero digits. The result is never empty: the
// normalized value of 0 is {0}.
func (z nat) norm() nat {
	i := z.msd()
	if i == 0 {
		return z.make(1).setZero()
	}
	return z[:i]
}

func (z nat) setZero() nat {
	z[0] = 0
	return z[:1]
}

// padTo returns x extended with zero digits up to length n. x is returned
// unchanged if it already holds n digits or more, otherwise the result is a
// new slice: the spare capacity of x may be shared by copies of an Int.
func (x nat) padTo(n int) nat {
	if len(x) >= n {
		return x
	}
	z := make(nat, n, n+1)
	copy(z, x)
	return z
}

func (x nat) cmp(y nat) (r int) {
	x, y = x[:x.msd()], y[:y.msd()]
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}
	switch {
	case m == 0:
		// both zero
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return
}

// validate panics if x is not in normal form.
func (x nat) validate() {
	if !debugDigits {
		// avoid performance bugs
		panic("validate called but debugDigits is not set")
	}
	n := len(x)
	if n == 0 {
		panic("empty digit sequence")
	}
	for i, d := range x {
		if d >= 10 {
			panic(fmt.Sprintf("digit %d of %v is %d", i, []Digit(x), d))
		}
	}
	if n > 1 && x[n-1] == 0 {
		panic(fmt.Sprintf("most significant digit of %v is zero", []Digit(x)))
	}
}
