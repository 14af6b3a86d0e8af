/*
Copyright 2025 The plantfinance Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package dual implements forward-mode automatic differentiation with
// dual numbers carrying a dense gradient.
//
// A Number holds a value together with its partial derivatives with respect
// to a fixed, ordered set of independent variables. Independent variables are
// created with Var, constants with Const, and every arithmetic operation
// propagates the gradient by the usual sum, product and quotient rules:
//
//	n := dual.Var(100, 0, 2)    // d/dx0 = 1
//	r := dual.Var(5, 1, 2)      // d/dx1 = 1
//	npr := n.Mul(r)             // value 500, grad [5, 100]
//
// All operands of a binary operation must share the same dimension;
// mixing dimensions is a programming error and panics.
//
// Numbers are values: operations never modify their receivers or arguments.
package dual

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Number is a value with its gradient.
type Number struct {
	// Value is the primal value.
	Value float64

	// Grad holds the partial derivative of Value with respect to each
	// independent variable, indexed by variable position.
	Grad []float64
}

// Const returns a constant of dimension n (all partials zero).
func Const(v float64, n int) Number {
	return Number{Value: v, Grad: make([]float64, n)}
}

// Var returns the i-th independent variable of dimension n.
func Var(v float64, i, n int) Number {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("dual: variable index %d out of range [0,%d)", i, n))
	}
	g := make([]float64, n)
	g[i] = 1
	return Number{Value: v, Grad: g}
}

// Dim returns the number of independent variables tracked by a.
func (a Number) Dim() int {
	return len(a.Grad)
}

// Partial returns the partial derivative of a with respect to variable i.
func (a Number) Partial(i int) float64 {
	return a.Grad[i]
}

// Add returns a + b.
func (a Number) Add(b Number) Number {
	mustMatch(a, b)
	g := make([]float64, len(a.Grad))
	floats.AddTo(g, a.Grad, b.Grad)
	return Number{Value: a.Value + b.Value, Grad: g}
}

// Sub returns a - b.
func (a Number) Sub(b Number) Number {
	mustMatch(a, b)
	g := make([]float64, len(a.Grad))
	floats.SubTo(g, a.Grad, b.Grad)
	return Number{Value: a.Value - b.Value, Grad: g}
}

// Mul returns a * b.
func (a Number) Mul(b Number) Number {
	mustMatch(a, b)
	g := make([]float64, len(a.Grad))
	floats.ScaleTo(g, b.Value, a.Grad)
	floats.AddScaled(g, a.Value, b.Grad)
	return Number{Value: a.Value * b.Value, Grad: g}
}

// Div returns a / b. Division by a zero-valued b yields IEEE infinities or
// NaNs, exactly as float64 division does.
func (a Number) Div(b Number) Number {
	mustMatch(a, b)
	q := a.Value / b.Value
	g := make([]float64, len(a.Grad))
	// (a/b)' = a'/b - (a/b) * b'/b
	floats.ScaleTo(g, 1/b.Value, a.Grad)
	floats.AddScaled(g, -q/b.Value, b.Grad)
	return Number{Value: q, Grad: g}
}

// Scale returns k * a for a constant k.
func (a Number) Scale(k float64) Number {
	g := make([]float64, len(a.Grad))
	floats.ScaleTo(g, k, a.Grad)
	return Number{Value: k * a.Value, Grad: g}
}

// String implements fmt.Stringer.
func (a Number) String() string {
	return fmt.Sprintf("%g%v", a.Value, a.Grad)
}

func mustMatch(a, b Number) {
	if len(a.Grad) != len(b.Grad) {
		panic(fmt.Sprintf("dual: dimension mismatch %d != %d", len(a.Grad), len(b.Grad)))
	}
}
