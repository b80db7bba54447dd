// Package math provides functions computing large exact integer results, such
// as factorials and binomial coefficients, on top of bigdec.Int.
package math

import (
	"math/bits"

	"github.com/db47h/bigdec"
)

// Pow returns x**n, computed by repeated squaring. The result is identical to
// x.Pow(n) but takes O(log n) multiplications instead of O(n).
func Pow(x bigdec.Int, n uint64) bigdec.Int {
	if n == 0 {
		return bigdec.One()
	}
	z := x
	y := bigdec.One()
	for n > 1 {
		if n%2 != 0 {
			y = y.Mul(z)
		}
		z = z.Mul(z)
		if z.IsZero() {
			return z
		}
		n /= 2
	}
	if y.Cmp(bigdec.One()) == 0 {
		return z
	}
	return z.Mul(y)
}

// accumulator computes products of many small factors. Factors are collected
// in a native word until it would overflow, then flushed into z, keeping the
// number of digit-level multiplications low.
type accumulator struct {
	z bigdec.Int
	w uint64
}

func newAccumulator() *accumulator {
	return &accumulator{z: bigdec.One(), w: 1}
}

func (a *accumulator) mul(v uint64) {
	hi, lo := bits.Mul64(a.w, v)
	if hi != 0 {
		a.z = a.z.Mul(bigdec.FromUint64(a.w))
		a.w = v
		return
	}
	a.w = lo
}

func (a *accumulator) result() bigdec.Int {
	if a.w == 1 {
		return a.z
	}
	return a.z.Mul(bigdec.FromUint64(a.w))
}
