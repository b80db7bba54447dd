// Package commands defines the bigdec CLI.
//
// Commands
//
//   - pow     Raise a base to a power
//   - fact    Compute a factorial
//   - binom   Compute a binomial coefficient
//   - fib     Compute a Fibonacci number
//   - bench   Time addition, multiplication and exponentiation
//
// # Implementation
//
// Operands are native unsigned integers; results are bigdec.Ints printed with
// grouped digits, plain digits (--plain) or as JSON objects (--json).
package commands
