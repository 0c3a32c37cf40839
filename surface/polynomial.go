// Package surface provides the scalar fields drawn by the visualizer: a
// separable cubic polynomial z(x, y) and the tangent plane built from its
// partial derivatives.
package surface

import (
	"fmt"
	"strings"
)

// Polynomial is a cubic in x plus a cubic in y:
//
//	z = A3x³ + A2x² + A1x + A0 + B3y³ + B2y² + B1y + B0
//
// There are no mixed xy terms, so each partial derivative drops one axis
// entirely. Polynomial is a value type; derivative methods return copies.
type Polynomial struct {
	A3, A2, A1, A0 Scalar
	B3, B2, B1, B0 Scalar
}

// Scalar is the numeric type of the surface math.
type Scalar = float64

// NewPolynomial builds a polynomial from the x coefficients (highest power
// first) followed by the y coefficients.
func NewPolynomial(a3, a2, a1, a0, b3, b2, b1, b0 Scalar) Polynomial {
	return Polynomial{
		A3: a3, A2: a2, A1: a1, A0: a0,
		B3: b3, B2: b2, B1: b1, B0: b0,
	}
}

// Eval returns z at (x, y).
func (p Polynomial) Eval(x, y Scalar) Scalar {
	return p.A3*x*x*x + p.A2*x*x + p.A1*x + p.A0 +
		p.B3*y*y*y + p.B2*y*y + p.B1*y + p.B0
}

// Derivative returns the sum of both partial derivatives.
//
// Each axis keeps four slots; the cubic slot of the result is always zero.
func (p Polynomial) Derivative() Polynomial {
	return Polynomial{
		A3: 0, A2: 3 * p.A3, A1: 2 * p.A2, A0: p.A1,
		B3: 0, B2: 3 * p.B3, B1: 2 * p.B2, B0: p.B1,
	}
}

// PartialX returns ∂z/∂x. All y slots are zero.
func (p Polynomial) PartialX() Polynomial {
	return Polynomial{
		A3: 0, A2: 3 * p.A3, A1: 2 * p.A2, A0: p.A1,
	}
}

// PartialY returns ∂z/∂y. All x slots are zero.
func (p Polynomial) PartialY() Polynomial {
	return Polynomial{
		B3: 0, B2: 3 * p.B3, B1: 2 * p.B2, B0: p.B1,
	}
}

func (p Polynomial) String() string {
	var b strings.Builder
	b.WriteString("z =")
	n := 0
	term := func(c Scalar, v string, pow int) {
		if c == 0 {
			return
		}
		switch {
		case n == 0:
			fmt.Fprintf(&b, " %g", c)
		case c < 0:
			fmt.Fprintf(&b, " - %g", -c)
		default:
			fmt.Fprintf(&b, " + %g", c)
		}
		n++
		switch pow {
		case 0:
		case 1:
			b.WriteString(v)
		default:
			fmt.Fprintf(&b, "%s^%d", v, pow)
		}
	}
	term(p.A3, "x", 3)
	term(p.A2, "x", 2)
	term(p.A1, "x", 1)
	term(p.B3, "y", 3)
	term(p.B2, "y", 2)
	term(p.B1, "y", 1)
	term(p.A0+p.B0, "", 0)
	if n == 0 {
		b.WriteString(" 0")
	}
	return b.String()
}
