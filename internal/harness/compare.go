package harness

import (
	"fmt"
	"triangle/internal/classifier"
	"triangle/pkg/domain"
)

// MissingExpected stands in for the expected label of a case absent from the
// expected table.
const MissingExpected = "<missing>"

// Mismatch describes a case whose actual label differs from the expected one.
type Mismatch struct {
	CaseID   string       `json:"caseId"`
	Expected string       `json:"expected"`
	Actual   domain.Label `json:"actual"`
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: expected %s, got %s", m.CaseID, m.Expected, m.Actual)
}

// Summary is the result of comparing a batch of outcomes to expected labels.
type Summary struct {
	// Total is the number of classified cases.
	Total int `json:"total"`
	// Failures is the number of mismatching cases.
	Failures int `json:"failures"`
	// Mismatches lists failing cases in input order.
	Mismatches []Mismatch `json:"mismatches"`
}

// Passed reports whether every case matched its expected label.
func (s Summary) Passed() bool {
	return s.Failures == 0
}

// ClassifyBatch classifies every record in order. Duplicate case ids are
// classified independently.
func ClassifyBatch(c classifier.Classifier, records []domain.Record) []domain.Outcome {
	outcomes := make([]domain.Outcome, 0, len(records))
	for _, r := range records {
		outcomes = append(outcomes, domain.Outcome{CaseID: r.CaseID, Label: c.Classify(r.Triangle)})
	}

	return outcomes
}

// Compare checks each outcome against expected, keyed by case id. A case
// missing from expected is compared against MissingExpected and so always
// fails.
func Compare(outcomes []domain.Outcome, expected map[string]string) Summary {
	summary := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		exp, ok := expected[o.CaseID]
		if !ok {
			exp = MissingExpected
		}
		if string(o.Label) != exp {
			summary.Mismatches = append(summary.Mismatches, Mismatch{
				CaseID:   o.CaseID,
				Expected: exp,
				Actual:   o.Label,
			})
		}
	}
	summary.Failures = len(summary.Mismatches)

	return summary
}
