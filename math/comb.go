package math

import (
	"github.com/db47h/bigdec"
)

// MulRange returns the product of all integers in the range [a, b]. If a > b
// (empty range), the result is 1.
func MulRange(a, b uint64) bigdec.Int {
	switch {
	case a > b:
		return bigdec.One() // empty range
	case a == 0:
		return bigdec.Zero() // range includes 0
	}
	acc := newAccumulator()
	for i := a; ; i++ {
		acc.mul(i)
		if i == b {
			break
		}
	}
	return acc.result()
}

// Factorial returns n!. 0! is 1.
func Factorial(n uint64) bigdec.Int {
	return MulRange(1, n)
}

// Binomial returns the binomial coefficient C(n, k). The result is 0 if
// k > n.
//
// Since Ints do not support division, the factors of k! are cancelled out of
// the numerator n*(n-1)*...*(n-k+1) one prime at a time before multiplying.
// Memory use is O(min(k, n-k)).
func Binomial(n, k uint64) bigdec.Int {
	if k > n {
		return bigdec.Zero()
	}
	if k > n-k {
		k = n - k
	}
	if k == 0 {
		return bigdec.One()
	}

	primes := primesTo(k)
	// exponent of each prime in k! (Legendre's formula)
	exps := make([]uint64, len(primes))
	for i, p := range primes {
		for q := k / p; q > 0; q /= p {
			exps[i] += q
		}
	}

	acc := newAccumulator()
	for m := n - k + 1; ; m++ {
		v := m
		for i, p := range primes {
			for exps[i] > 0 && v%p == 0 {
				v /= p
				exps[i]--
			}
		}
		acc.mul(v)
		if m == n {
			break
		}
	}
	return acc.result()
}

// primesTo returns the primes <= n in increasing order.
func primesTo(n uint64) []uint64 {
	if n < 2 {
		return nil
	}
	composite := make([]bool, n+1)
	var ps []uint64
	for i := uint64(2); i <= n; i++ {
		if composite[i] {
			continue
		}
		ps = append(ps, i)
		for j := i * i; j <= n && j >= i; j += i {
			composite[j] = true
		}
	}
	return ps
}

// Fibonacci returns the n-th Fibonacci number, with F(0) = 0 and F(1) = 1.
func Fibonacci(n uint64) bigdec.Int {
	a, b := bigdec.Zero(), bigdec.One()
	for ; n > 0; n-- {
		a, b = b, a.Add(b)
	}
	return a
}
