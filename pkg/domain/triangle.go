package domain

import "fmt"

// Label is the shape category assigned to a triangle.
// The set of labels is closed; see Labels.
type Label string

const (
	// LabelInvalidNonpositive means at least one side is zero or negative.
	LabelInvalidNonpositive Label = "INVALID_NONPOSITIVE"
	// LabelInvalidTriangleInequality means the two shortest sides do not exceed the longest one.
	LabelInvalidTriangleInequality Label = "INVALID_TRIANGLE_INEQUALITY"
	// LabelEquilateral means all three sides are equal.
	LabelEquilateral Label = "EQUILATERAL"
	// LabelIsosceles means exactly two sides are equal.
	LabelIsosceles Label = "ISOSCELES"
	// LabelRightScalene means no sides are equal and the sides satisfy the Pythagorean identity.
	LabelRightScalene Label = "RIGHT_SCALENE"
	// LabelScalene means no sides are equal and the triangle has no right angle.
	LabelScalene Label = "SCALENE"
)

// Labels returns every label in decision order.
func Labels() []Label {
	return []Label{
		LabelInvalidNonpositive,
		LabelInvalidTriangleInequality,
		LabelEquilateral,
		LabelIsosceles,
		LabelRightScalene,
		LabelScalene,
	}
}

// Valid reports whether l is one of the known labels.
func (l Label) Valid() bool {
	for _, known := range Labels() {
		if l == known {
			return true
		}
	}

	return false
}

// ParseLabel converts a wire string into a Label.
func ParseLabel(s string) (Label, error) {
	l := Label(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown label %q", s)
	}

	return l, nil
}

// Triangle holds three side lengths. Order does not matter for classification.
type Triangle struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// Record pairs a test case identifier with the triangle to classify.
type Record struct {
	// CaseID identifies the case in input and expected tables.
	CaseID string `json:"caseId"`
	// Triangle is the input of the case.
	Triangle Triangle `json:"triangle"`
}

// Outcome is the label produced for one record.
type Outcome struct {
	CaseID string `json:"caseId"`
	Label  Label  `json:"label"`
}
