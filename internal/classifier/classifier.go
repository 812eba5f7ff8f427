// Package classifier assigns a shape label to a triangle given its three sides.
package classifier

import (
	"math"
	"slices"
	"triangle/pkg/domain"
)

// RightAngleTolerance bounds |x² + y² - z²| for the sorted sides of a right triangle.
const RightAngleTolerance = 1e-9

// Classify returns the label for the triangle with sides a, b and c.
//
// Rules are applied in order and the first match wins:
//   - any side <= 0: INVALID_NONPOSITIVE
//   - two shortest sides sum to at most the longest: INVALID_TRIANGLE_INEQUALITY
//   - a == b == c: EQUILATERAL
//   - any two sides equal: ISOSCELES
//   - sorted sides satisfy Pythagoras within RightAngleTolerance: RIGHT_SCALENE
//   - otherwise: SCALENE
//
// Side equality is exact, only the Pythagorean check is tolerance based.
// An isosceles right triangle is therefore ISOSCELES. Classify is defined for
// every input, NaN and infinities included, and never panics.
func Classify(a, b, c float64) domain.Label {
	if a <= 0 || b <= 0 || c <= 0 {
		return domain.LabelInvalidNonpositive
	}

	sides := []float64{a, b, c}
	slices.Sort(sides)
	x, y, z := sides[0], sides[1], sides[2]

	if x+y <= z {
		return domain.LabelInvalidTriangleInequality
	}

	if a == b && b == c {
		return domain.LabelEquilateral
	}

	isIsosceles := a == b || b == c || a == c
	isRight := math.Abs(x*x+y*y-z*z) < RightAngleTolerance

	switch {
	case isIsosceles:
		return domain.LabelIsosceles
	case isRight:
		return domain.LabelRightScalene
	default:
		return domain.LabelScalene
	}
}

// classifier is the stateless Classifier implementation backed by Classify.
type classifier struct{}

// New returns a Classifier. It is safe for concurrent use.
func New() Classifier {
	return classifier{}
}

func (classifier) Classify(t domain.Triangle) domain.Label {
	return Classify(t.A, t.B, t.C)
}
