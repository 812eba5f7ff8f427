package harness

import (
	"fmt"
	"io"

	"github.com/go-faster/errors"
)

// WriteReport renders a plain text report:
//
//	Total cases: 6
//	Failures: 1
//
//	Mismatch details:
//	- P4: expected ISOSCELES, got SCALENE
//
// The mismatch section is omitted when every case passed.
func WriteReport(out io.Writer, s Summary) error {
	if _, err := fmt.Fprintf(out, "Total cases: %d\nFailures: %d\n", s.Total, s.Failures); err != nil {
		return errors.Wrap(err, "write totals")
	}
	if len(s.Mismatches) == 0 {
		return nil
	}

	if _, err := io.WriteString(out, "\nMismatch details:\n"); err != nil {
		return errors.Wrap(err, "write details header")
	}
	for _, m := range s.Mismatches {
		if _, err := fmt.Fprintf(out, "- %s\n", m); err != nil {
			return errors.Wrapf(err, "write mismatch %s", m.CaseID)
		}
	}

	return nil
}
