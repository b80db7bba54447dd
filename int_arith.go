// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdec

// Add returns the sum x+y.
func (x Int) Add(y Int) Int {
	return Int{nat(nil).add(x.nat(), y.nat())}
}

// Mul returns the product x*y.
//
// Mul uses schoolbook long multiplication and takes O(n*m) digit operations
// for operands of n and m digits.
func (x Int) Mul(y Int) Int {
	return Int{nat(nil).mul(x.nat(), y.nat())}
}

// Pow returns x**n. Pow(0) returns 1 for any x, including 0.
//
// The result is computed as a chain of n-1 multiplications. See
// bigdec/math.Pow for a square-and-multiply implementation.
func (x Int) Pow(n uint) Int {
	if n == 0 {
		return One()
	}
	a := x.nat()
	z := nat(nil).set(a)
	for i := uint(1); i < n; i++ {
		z = z.mul(z, a)
	}
	return Int{z}
}

// Sum returns the sum of xs. It returns 0 if xs is empty.
func Sum(xs ...Int) Int {
	z := nat(nil).set(natZero)
	for _, x := range xs {
		z = z.add(z, x.nat())
	}
	return Int{z}
}

// Product returns the product of xs. It returns 1 if xs is empty.
func Product(xs ...Int) Int {
	z := nat(nil).set(natOne)
	for _, x := range xs {
		z = z.mul(z, x.nat())
	}
	return Int{z}
}
