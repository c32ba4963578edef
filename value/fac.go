// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"
	"math/big"
)

// Implementation of factorial using the "swinging factorial" algorithm
// for integers. From Peter Luschny, https://oeis.org/A000142/a000142.pdf.
// The product is exact; it is rounded to float64 once, at the end.

// maxFactorial is the largest n for which n! is a finite float64.
const maxFactorial = 170

// primeGen returns a function that generates primes from 2...n on successive calls.
func primeGen(n int) func() int {
	marked := make([]bool, n+1) // Starts at 0 for indexing simplicity.
	i := 2
	return func() int {
		for ; i <= n; i++ {
			if marked[i] {
				continue
			}
			for j := i; j <= n; j += i {
				marked[j] = true
			}
			return i
		}
		return 0
	}
}

// swing calculates the "swinging factorial" function of n,
// which is n!/⌊n/2⌋!².
//
//	n  0 1 2 3 4  5  6   7  8   9  10   11
//	n𝜎 1 1 2 6 6 30 20 140 70 630 252 2772
func swing(n int) *big.Int {
	nextPrime := primeGen(n)
	var factors []int
	for {
		prime := nextPrime()
		if prime == 0 {
			break
		}
		q := n
		p := 1
		for q != 0 {
			q = q / prime
			if q&1 == 1 {
				p *= prime
			}
		}
		if p > 1 {
			factors = append(factors, p)
		}
	}
	return product(factors)
}

// product multiplies the elements of f, splitting the list in half
// so the big multiplications stay balanced.
func product(f []int) *big.Int {
	switch len(f) {
	case 0:
		return big.NewInt(1)
	case 1:
		return big.NewInt(int64(f[0]))
	}
	n := len(f) / 2
	left := product(f[:n])
	right := product(f[n:])
	return left.Mul(left, right)
}

// intFactorial returns n! for natural n.
func intFactorial(n int) *big.Int {
	if n < 2 {
		return big.NewInt(1)
	}
	f2 := intFactorial(n / 2)
	f2.Mul(f2, f2)
	return f2.Mul(f2, swing(n))
}

// factorial truncates x toward zero and returns the factorial of the result.
func factorial(x float64) (float64, error) {
	if math.IsNaN(x) {
		return 0, Errorf(FactorialDomainError, "factorial of NaN")
	}
	n := math.Trunc(x)
	switch {
	case n < 0:
		return 0, Errorf(FactorialDomainError, "factorial of negative number %s", Format(n))
	case n > maxFactorial:
		return 0, Errorf(FactorialDomainError, "factorial of %s is too large", Format(n))
	}
	f, _ := new(big.Float).SetInt(intFactorial(int(n))).Float64()
	return f, nil
}
