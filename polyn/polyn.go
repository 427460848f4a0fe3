// Package polyn is for arithmetic with polynomials in a single curve
// parameter t, as used for the coordinate functions of spline segments.
/*
BSD 3-Clause License

Copyright (c) 2017–21, Norbert Pillmayer.

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package polyn

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinepath"
)

// T traces to the polynomials tracer.
func T() tracing.Trace {
	return tracing.Select("polyn")
}

// ErrNegativeExponent indicates a term with an exponent below 0.
var ErrNegativeExponent = errors.New("term exponent must not be negative")

// X is a helper for quick construction of polynomials.
// It denotes a term
//
//	C⋅tⁱ
//
// I > 0
type X struct {
	I int     // exponent of t
	C float64 // coefficient
}

// New creates a polynomial, given the term coefficients and exponents
//
// Use it as
//
//	polyn.New(8, polyn.X{2,5}, polyn.X{1,2/3} )
//
// to get
//
//	P(t) = 8 + 2/3t + 5t²
func New(c float64, tms ...X) (Polynomial, error) {
	p := NewConstantPolynomial(c)
	var err error
	for _, t := range tms {
		if t.I < 1 {
			err = fmt.Errorf("%w: skipping term with exponent %d", ErrNegativeExponent, t.I)
		} else {
			p.SetTerm(t.I, t.C)
		}
	}
	return p, err
}

// Cubic creates the polynomial a + b⋅t + c⋅t² + d⋅t³. Coefficients are
// stored as given, even if they are (close to) zero.
func Cubic(a, b, c, d float64) Polynomial {
	p := NewConstantPolynomial(a)
	p.SetTerm(1, b)
	p.SetTerm(2, c)
	p.SetTerm(3, d)
	return p
}

// Polynomial is a type for polynomials
//
//	c + a.1 t + a.2 t² + ... a.n tⁿ .
//
// We store the coefficients only. Index 0 is the constant term.
// We store the coefficients in a TreeMap (sorted map), keyed by exponent.
type Polynomial struct {
	Terms *treemap.Map
}

// NewConstantPolynomial creates a Polynomial consisting of just a constant term.
func NewConstantPolynomial(c float64) Polynomial {
	p := Polynomial{}
	p.checkTerms()
	p.Terms.Put(0, c) // initialize with constant term (at position 0)
	return p
}

func (p *Polynomial) checkTerms() {
	if p.Terms == nil {
		p.Terms = treemap.NewWithIntComparator()
	}
}

// SetTerm sets the coefficient for a term a.i within a Polynomial.
// For i=0, sets the constant term.
func (p Polynomial) SetTerm(i int, scale float64) Polynomial {
	p.checkTerms()
	p.Terms.Put(i, scale)
	return p
}

// GetCoeffForTerm gets the coefficient for term # i.
//
// Example:
//
//	p = t + 3t²
//
// ⇒
//
//	coeff(2) = 3
func (p Polynomial) GetCoeffForTerm(i int) float64 {
	p.checkTerms()
	if sc, found := p.Terms.Get(i); found {
		return sc.(float64)
	}
	return 0.0
}

// Exponents returns the exponents of all stored terms, in ascending order.
func (p Polynomial) Exponents() []int {
	p.checkTerms()
	keys := p.Terms.Keys()
	exps := make([]int, len(keys))
	for i, k := range keys {
		exps[i] = k.(int)
	}
	return exps
}

// TermCount returns the number of stored terms, including the constant term.
func (p Polynomial) TermCount() int {
	p.checkTerms()
	return p.Terms.Size()
}

// Degree returns the highest exponent with a non-zero coefficient.
// The zero polynomial has degree 0.
func (p Polynomial) Degree() int {
	p.checkTerms()
	deg := 0
	it := p.Terms.Iterator()
	for it.Next() {
		if i := it.Key().(int); it.Value().(float64) != 0 && i > deg {
			deg = i
		}
	}
	return deg
}

// CopyPolynomial makes a copy of a Polynomial.
func (p Polynomial) CopyPolynomial() Polynomial {
	p1 := NewConstantPolynomial(0.0)
	p.checkTerms()
	it := p.Terms.Iterator()
	for it.Next() {
		p1.SetTerm(it.Key().(int), it.Value().(float64))
	}
	return p1
}

// Internal method: add or subtract 2 polynomials. The high level methods
// are based on this one.
// Flag doAdd signals addition or subtraction.
func (p Polynomial) addOrSub(p2 Polynomial, doAdd bool) Polynomial {
	p.checkTerms()
	p2.checkTerms()
	p1 := p.CopyPolynomial() // will become our return value
	it2 := p2.Terms.Iterator()
	for it2.Next() {
		pos2 := it2.Key().(int)
		scale2 := it2.Value().(float64)
		scale1 := p1.GetCoeffForTerm(pos2)
		if doAdd {
			scale1 += scale2
		} else {
			scale1 -= scale2
		}
		p1.SetTerm(pos2, scale1)
	}
	return p1
}

// Add adds two Polynomials. Returns a new Polynomial.
func (p Polynomial) Add(p2 Polynomial) Polynomial {
	return p.addOrSub(p2, true)
}

// Subtract subtracts two Polynomials. Returns a new Polynomial.
func (p Polynomial) Subtract(p2 Polynomial) Polynomial {
	return p.addOrSub(p2, false)
}

// Scaled multiplies all coefficients by c. Returns a new Polynomial.
func (p Polynomial) Scaled(c float64) Polynomial {
	p1 := p.CopyPolynomial()
	it := p1.Terms.Iterator()
	for it.Next() {
		p1.SetTerm(it.Key().(int), it.Value().(float64)*c)
	}
	return p1
}

// Derivative returns dp/dt as a new Polynomial.
func (p Polynomial) Derivative() Polynomial {
	p.checkTerms()
	d := NewConstantPolynomial(0.0)
	it := p.Terms.Iterator()
	for it.Next() {
		i := it.Key().(int)
		if i == 0 {
			continue
		}
		d.SetTerm(i-1, float64(i)*it.Value().(float64))
	}
	return d
}

// Eval evaluates p at t, summing terms in ascending order of exponents.
func (p Polynomial) Eval(t float64) float64 {
	p.checkTerms()
	sum := 0.0
	it := p.Terms.Iterator()
	for it.Next() {
		i := it.Key().(int)
		c := it.Value().(float64)
		if i == 0 {
			sum += c
			continue
		}
		sum += c * math.Pow(t, float64(i))
	}
	return sum
}

// Zap eliminates all terms with coefficient=0 from a polynomial.
func (p Polynomial) Zap() Polynomial {
	p.checkTerms()
	for _, pos := range p.Terms.Keys() {
		if scale, _ := p.Terms.Get(pos); splinepath.Is0(scale.(float64)) {
			p.Terms.Remove(pos) // may lose constant term c
		}
	}
	if _, ok := p.Terms.Get(0); !ok {
		p.Terms.Put(0, 0.0) // set p = 0: re-introduce c
	}
	return p
}

// IsConstant checks wether
// a Polynomial is a constant, i.e. p = { c }? Returns the constant and a flag.
func (p Polynomial) IsConstant() (float64, bool) {
	p.checkTerms()
	return p.GetCoeffForTerm(0), p.Terms.Size() == 1
}

// IsValid checks if this a correctly initialized polynomial.
func (p Polynomial) IsValid() bool {
	return p.Terms != nil
}

// String creates a readable string representation for a Polynomial.
// Terms with coefficients below ε are omitted.
func (p Polynomial) String() string {
	var buffer bytes.Buffer
	p.checkTerms()
	it := p.Terms.Iterator()
	indent := false // no sign before first term
	for it.Next() {
		pos := it.Key().(int)
		scale := it.Value().(float64)
		if splinepath.Is0(scale) && !(pos == 0 && p.Terms.Size() == 1) {
			continue
		}
		if indent {
			if scale < 0.0 {
				buffer.WriteString(" - ")
			} else {
				buffer.WriteString(" + ")
			}
			scale = math.Abs(scale)
		}
		indent = true
		switch pos {
		case 0:
			buffer.WriteString(fmt.Sprintf("%g", scale))
		case 1:
			buffer.WriteString(fmt.Sprintf("%gt", scale))
		default:
			buffer.WriteString(fmt.Sprintf("%gt^%d", scale, pos))
		}
	}
	if !indent {
		return "0"
	}
	T().Debugf("polynomial = %s", buffer.String())
	return buffer.String()
}
