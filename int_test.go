// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdec

import (
	"math/big"
	"reflect"
	"testing"
)

// toBig returns x as a *big.Int. It is used as an independent oracle for Int
// arithmetic.
func (x Int) toBig() *big.Int {
	z, ok := new(big.Int).SetString(x.Text(), 10)
	if !ok {
		panic("(*big.Int).SetString failed on " + x.Text())
	}
	return z
}

// fromBig returns an Int set to the value of x >= 0.
func fromBig(x *big.Int) Int {
	return Int{natFromString(x.String())}
}

// rndInt returns a random Int of 1 to n digits.
func rndInt(n int) Int {
	return Int{rndNat(1 + rnd.Intn(n))}
}

// checkNormal fails t if x is not in canonical form.
func checkNormal(t *testing.T, x Int) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("%v", r)
		}
	}()
	x.abs.validate()
}

func TestIntZeroValue(t *testing.T) {
	var x Int
	if !x.IsZero() || x.DigitCount() != 1 || x.String() != "0" {
		t.Fatalf("zero value = %v (%d digits); want 0", x, x.DigitCount())
	}
	if !x.Equal(Zero()) {
		t.Fatalf("Int{} != Zero()")
	}
	// the zero value can be used in any position of binary operations
	y := FromUint64(12345)
	for _, test := range []struct {
		op   string
		z    Int
		want Int
	}{
		{"0 + y", x.Add(y), y},
		{"y + 0", y.Add(x), y},
		{"0 * y", x.Mul(y), Zero()},
		{"y * 0", y.Mul(x), Zero()},
		{"0 ** 0", x.Pow(0), One()},
		{"0 ** 3", x.Pow(3), Zero()},
	} {
		if !test.z.Equal(test.want) {
			t.Errorf("%s = %v; want %v", test.op, test.z, test.want)
		}
		checkNormal(t, test.z)
	}
}

func TestFromDigits(t *testing.T) {
	for i, test := range []struct {
		ds   []int
		want []Digit
	}{
		{nil, []Digit{0}},
		{[]int{0}, []Digit{0}},
		{[]int{0, 0, 0}, []Digit{0}},
		{[]int{0, 5, 1, 0, 0}, []Digit{0, 5, 1}},
		{[]int{5, 5, 2}, []Digit{5, 5, 2}},
	} {
		x := FromDigits(test.ds...)
		if got := x.Digits(); !reflect.DeepEqual(got, test.want) {
			t.Errorf("#%d FromDigits(%v) = %v; want %v", i, test.ds, got, test.want)
		}
		if n := x.DigitCount(); n != len(test.want) {
			t.Errorf("#%d DigitCount() = %d; want %d", i, n, len(test.want))
		}
	}

	if !FromDigits(0, 5, 1, 0, 0).Equal(FromDigits(0, 5, 1)) {
		t.Errorf("FromDigits does not remove leading zeros")
	}
}

func TestFromDigitsPanics(t *testing.T) {
	for _, ds := range [][]int{{10}, {1, 2, 11}, {-1}, {3, 256}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("FromDigits(%v) did not panic", ds)
				}
			}()
			FromDigits(ds...)
		}()
	}
}

func TestIntDigitsCopy(t *testing.T) {
	x := FromDigits(1, 2, 3)
	ds := x.Digits()
	ds[0] = 9
	if x.Digit(0) != 1 {
		t.Fatalf("modifying Digits() result changed x to %v", x)
	}
	if d := x.Digit(10); d != 0 {
		t.Fatalf("x.Digit(10) = %d; want 0", d)
	}
}

func TestIntCmp(t *testing.T) {
	for i, test := range []struct {
		x, y Int
		r    int
	}{
		{Int{}, Zero(), 0},
		{Zero(), One(), -1},
		{FromUint64(100), FromUint64(99), 1},
		{FromUint64(123), FromDigits(3, 2, 1), 0},
		{FromUint64(1000), FromUint64(1001), -1},
	} {
		if r := test.x.Cmp(test.y); r != test.r {
			t.Errorf("#%d %v.Cmp(%v) = %d; want %d", i, test.x, test.y, r, test.r)
		}
		if r := test.y.Cmp(test.x); r != -test.r {
			t.Errorf("#%d %v.Cmp(%v) = %d; want %d", i, test.y, test.x, r, -test.r)
		}
	}
}

func TestIntAdd(t *testing.T) {
	for i, test := range []struct {
		x, y, want Int
	}{
		{FromDigits(3, 6), FromDigits(6, 3), FromDigits(9, 9)},
		{FromDigits(4, 6), FromDigits(6, 3), FromDigits(0, 0, 1)},
		{FromDigits(2, 9, 4, 5), FromDigits(9, 9), FromDigits(1, 9, 5, 5)},
		{FromDigits(7, 8, 5), FromDigits(4, 7, 0, 3, 9), FromDigits(1, 6, 6, 3, 9)},
	} {
		if z := test.x.Add(test.y); !z.Equal(test.want) {
			t.Errorf("#%d %v + %v = %v; want %v", i, test.x, test.y, z, test.want)
		}
	}
}

func TestIntMul(t *testing.T) {
	x, y := FromDigits(8, 3, 6, 7), FromDigits(4, 3, 2)
	want := []Digit{2, 9, 2, 7, 8, 7, 1}
	if z := x.Mul(y); !reflect.DeepEqual(z.Digits(), want) {
		t.Fatalf("%v * %v = %v; want %v", x, y, z.Digits(), want)
	}
}

func TestIntPow(t *testing.T) {
	two := FromDigits(2)
	for _, test := range []struct {
		n    uint
		want []Digit
	}{
		{0, []Digit{1}},
		{1, []Digit{2}},
		{2, []Digit{4}},
		{30, []Digit{4, 2, 8, 1, 4, 7, 3, 7, 0, 1}},
	} {
		if z := two.Pow(test.n); !reflect.DeepEqual(z.Digits(), test.want) {
			t.Errorf("2**%d = %v; want %v", test.n, z.Digits(), test.want)
		}
	}
	for _, x := range []Int{Zero(), One(), FromUint64(7), rndInt(50)} {
		if z := x.Pow(0); !z.Equal(One()) {
			t.Errorf("%v**0 = %v; want 1", x, z)
		}
		if z := x.Pow(1); !z.Equal(x) {
			t.Errorf("%v**1 = %v; want %v", x, z, x)
		}
	}
}

// TestIntPowRecurrence checks x**(n+1) == x**n * x.
func TestIntPowRecurrence(t *testing.T) {
	for i := 0; i < 20; i++ {
		x := rndInt(8)
		p := One()
		for n := uint(0); n < 12; n++ {
			z := x.Pow(n)
			if !z.Equal(p) {
				t.Fatalf("%v**%d = %v; want %v", x, n, z, p)
			}
			checkNormal(t, z)
			p = p.Mul(x)
		}
	}
}

func TestIntAddLaws(t *testing.T) {
	for i := 0; i < 500; i++ {
		a, b, c := rndInt(40), rndInt(40), rndInt(40)
		if z := a.Add(Zero()); !z.Equal(a) {
			t.Fatalf("%v + 0 = %v", a, z)
		}
		ab, ba := a.Add(b), b.Add(a)
		if !ab.Equal(ba) {
			t.Fatalf("%v + %v = %v, %v + %v = %v", a, b, ab, b, a, ba)
		}
		if l, r := ab.Add(c), a.Add(b.Add(c)); !l.Equal(r) {
			t.Fatalf("(a + b) + c = %v, a + (b + c) = %v", l, r)
		}
		if want := new(big.Int).Add(a.toBig(), b.toBig()); ab.toBig().Cmp(want) != 0 {
			t.Fatalf("%v + %v = %v; want %v", a, b, ab, want)
		}
		checkNormal(t, ab)
	}
}

func TestIntMulLaws(t *testing.T) {
	for i := 0; i < 200; i++ {
		a, b, c := rndInt(30), rndInt(30), rndInt(30)
		if z := a.Mul(One()); !z.Equal(a) {
			t.Fatalf("%v * 1 = %v", a, z)
		}
		if z := a.Mul(Zero()); !z.Equal(Zero()) || z.DigitCount() != 1 {
			t.Fatalf("%v * 0 = %v", a, z)
		}
		ab, ba := a.Mul(b), b.Mul(a)
		if !ab.Equal(ba) {
			t.Fatalf("%v * %v = %v, %v * %v = %v", a, b, ab, b, a, ba)
		}
		if l, r := ab.Mul(c), a.Mul(b.Mul(c)); !l.Equal(r) {
			t.Fatalf("(a * b) * c = %v, a * (b * c) = %v", l, r)
		}
		if l, r := a.Mul(b.Add(c)), ab.Add(a.Mul(c)); !l.Equal(r) {
			t.Fatalf("a * (b + c) = %v, a*b + a*c = %v", l, r)
		}
		if want := new(big.Int).Mul(a.toBig(), b.toBig()); ab.toBig().Cmp(want) != 0 {
			t.Fatalf("%v * %v = %v; want %v", a, b, ab, want)
		}
		checkNormal(t, ab)
	}
}

// TestIntOperandsUnchanged checks that operations leave their operands and
// copies of them untouched.
func TestIntOperandsUnchanged(t *testing.T) {
	x := FromUint64(999999)
	y := x // shares x's digits
	xs, ys := x.Text(), y.Text()

	_ = x.Add(One())
	_ = x.Mul(x)
	_ = x.Pow(3)
	_ = Sum(x, y, x)
	_ = Product(x, y)
	_ = One().Add(y)

	if x.Text() != xs || y.Text() != ys {
		t.Fatalf("operands modified: x = %s, y = %s; want %s, %s", x.Text(), y.Text(), xs, ys)
	}
}

func TestSumProduct(t *testing.T) {
	if z := Sum(); !z.Equal(Zero()) {
		t.Errorf("Sum() = %v; want 0", z)
	}
	if z := Product(); !z.Equal(One()) {
		t.Errorf("Product() = %v; want 1", z)
	}
	xs := []Int{FromUint64(7638), FromUint64(234), FromUint64(1000)}
	if z, want := Sum(xs...), FromUint64(8872); !z.Equal(want) {
		t.Errorf("Sum(%v) = %v; want %v", xs, z, want)
	}
	if z, want := Product(xs...), FromUint64(1787292000); !z.Equal(want) {
		t.Errorf("Product(%v) = %v; want %v", xs, z, want)
	}
}

func TestIntBigOracle(t *testing.T) {
	for i := 0; i < 50; i++ {
		x := rndInt(200)
		b := x.toBig()
		if y := fromBig(b); !y.Equal(x) {
			t.Fatalf("fromBig(%v.toBig()) = %v", x, y)
		}
		want := new(big.Int).Exp(b, big.NewInt(3), nil)
		if z := x.Pow(3); z.toBig().Cmp(want) != 0 {
			t.Fatalf("%v**3 = %v; want %v", x, z, want)
		}
	}
}

func BenchmarkIntAdd(b *testing.B) {
	x := FromUint128(^uint64(0), ^uint64(0))
	y := FromUint128(^uint64(0), ^uint64(0))
	for i := 0; i < b.N; i++ {
		_ = x.Add(y)
	}
}

func BenchmarkIntMul(b *testing.B) {
	x := FromUint128(^uint64(0), ^uint64(0))
	y := FromUint128(^uint64(0), ^uint64(0))
	for i := 0; i < b.N; i++ {
		_ = x.Mul(y)
	}
}

func BenchmarkIntPow(b *testing.B) {
	x := FromUint128(^uint64(0), ^uint64(0))
	for i := 0; i < b.N; i++ {
		_ = x.Pow(32)
	}
}
