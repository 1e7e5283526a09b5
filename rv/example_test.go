package rv_test

import (
	"fmt"

	"github.com/katalvlaran/ssta/rv"
)

// ExampleSpace_Max shows the Clark-approximation moments of a two-input
// max: the result is pulled above either operand's mean.
func ExampleSpace_Max() {
	s := rv.NewSpace()
	a, _ := s.Normal(10.0, 4.0)
	b, _ := s.Normal(10.0, 4.0)
	m := s.Max(a, b)

	mean, _ := s.Mean(m)
	fmt.Printf("mean(max) = %.3f\n", mean)
	// Output:
	// mean(max) = 11.128
}

// ExampleSpace_Covariance demonstrates correlation through a shared
// operand: two sums over one input are positively correlated.
func ExampleSpace_Covariance() {
	s := rv.NewSpace()
	shared, _ := s.Normal(0.0, 1.0)
	d0, _ := s.Normal(10.0, 1.0)
	d1, _ := s.Normal(12.0, 1.0)

	p := s.Add(shared, d0)
	q := s.Add(shared, d1)

	cov, _ := s.Covariance(p, q)
	fmt.Printf("cov = %.3f\n", cov)
	// Output:
	// cov = 1.000
}
