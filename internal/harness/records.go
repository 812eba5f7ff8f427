package harness

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"triangle/pkg/domain"
	"triangle/pkg/serrors"

	"github.com/go-faster/errors"
)

// Column names of the record files.
const (
	ColumnCaseID   = "case_id"
	ColumnA        = "a"
	ColumnB        = "b"
	ColumnC        = "c"
	ColumnExpected = "expected"
	ColumnActual   = "actual"
)

// table is a CSV file with a header. Columns are looked up by name so their
// order does not matter and unknown columns are ignored.
type table struct {
	r       *csv.Reader
	columns map[string]int
}

func newTable(in io.Reader, required ...string) (*table, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, dup := columns[name]; !dup {
			columns[name] = i
		}
	}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, serrors.With(serrors.ErrMissingColumn, "column %q not found in header", name)
		}
	}

	return &table{r: r, columns: columns}, nil
}

// next returns the next row and its line number, or io.EOF.
func (t *table) next() ([]string, int, error) {
	row, err := t.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, io.EOF
		}

		return nil, 0, errors.Wrap(err, "read row")
	}
	line, _ := t.r.FieldPos(0)

	return row, line, nil
}

func (t *table) value(row []string, column string) (string, bool) {
	i := t.columns[column]
	if i >= len(row) {
		return "", false
	}

	return row[i], true
}

// LoadRecords reads classification records from a CSV with case_id, a, b and c columns.
// Side values may be surrounded by whitespace.
func LoadRecords(in io.Reader) ([]domain.Record, error) {
	t, err := newTable(in, ColumnCaseID, ColumnA, ColumnB, ColumnC)
	if err != nil || t == nil {
		return nil, err
	}

	var records []domain.Record
	for {
		row, line, err := t.next()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}

		caseID, ok := t.value(row, ColumnCaseID)
		if !ok {
			return nil, serrors.With(serrors.ErrMalformedRecord, "line %d: missing case_id", line)
		}

		var sides [3]float64
		for i, column := range []string{ColumnA, ColumnB, ColumnC} {
			raw, ok := t.value(row, column)
			if !ok {
				return nil, serrors.With(serrors.ErrMalformedRecord,
					"line %d: case %s: missing side %s", line, caseID, column)
			}
			sides[i], err = strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return nil, serrors.Wrap(serrors.ErrMalformedRecord, err,
					"line %d: case %s: side %s", line, caseID, column)
			}
		}

		records = append(records, domain.Record{
			CaseID:   caseID,
			Triangle: domain.Triangle{A: sides[0], B: sides[1], C: sides[2]},
		})
	}
}

// LoadExpected reads the expected label table from a CSV with case_id and
// expected columns. When a case appears more than once the last row wins.
// Expected values are kept verbatim, unknown labels simply never match.
func LoadExpected(in io.Reader) (map[string]string, error) {
	expected := map[string]string{}

	t, err := newTable(in, ColumnCaseID, ColumnExpected)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return expected, nil
	}

	for {
		row, line, err := t.next()
		if errors.Is(err, io.EOF) {
			return expected, nil
		}
		if err != nil {
			return nil, err
		}

		caseID, okID := t.value(row, ColumnCaseID)
		label, okLabel := t.value(row, ColumnExpected)
		if !okID || !okLabel {
			return nil, serrors.With(serrors.ErrMalformedRecord, "line %d: incomplete expected row", line)
		}
		expected[caseID] = label
	}
}

// WriteActual writes outcomes as a CSV with case_id and actual columns.
func WriteActual(out io.Writer, outcomes []domain.Outcome) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{ColumnCaseID, ColumnActual}); err != nil {
		return errors.Wrap(err, "write header")
	}
	for _, o := range outcomes {
		if err := w.Write([]string{o.CaseID, string(o.Label)}); err != nil {
			return errors.Wrapf(err, "write case %s", o.CaseID)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrap(err, "flush")
	}

	return nil
}
