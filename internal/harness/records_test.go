package harness_test

import (
	"bytes"
	"strings"
	"testing"
	"triangle/internal/harness"
	"triangle/pkg/domain"
	"triangle/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestLoadRecords(t *testing.T) {
	in := "case_id,a,b,c\nP1,0,4,5\nP5, 3 ,4,5.0\n"

	records, err := harness.LoadRecords(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []domain.Record{
		{CaseID: "P1", Triangle: domain.Triangle{A: 0, B: 4, C: 5}},
		{CaseID: "P5", Triangle: domain.Triangle{A: 3, B: 4, C: 5}},
	}, records)
}

func TestLoadRecords_ColumnsByName(t *testing.T) {
	in := "\ufeffnote,c,b,a,case_id\nhello,5,4,3,R1\n"

	records, err := harness.LoadRecords(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []domain.Record{{CaseID: "R1", Triangle: domain.Triangle{A: 3, B: 4, C: 5}}}, records)
}

func TestLoadRecords_Empty(t *testing.T) {
	records, err := harness.LoadRecords(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, records)

	records, err = harness.LoadRecords(strings.NewReader("case_id,a,b,c\n"))
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestLoadRecords_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind serrors.Kind
		msg  string
	}{
		{
			name: "missing column",
			in:   "case_id,a,b\nP1,1,2\n",
			kind: serrors.ErrMissingColumn,
			msg:  `column "c" not found in header`,
		},
		{
			name: "non numeric side",
			in:   "case_id,a,b,c\nP1,1,2,3\nP2,1,two,3\n",
			kind: serrors.ErrMalformedRecord,
			msg:  "line 3: case P2: side b",
		},
		{
			name: "short row",
			in:   "case_id,a,b,c\nP1,1,2\n",
			kind: serrors.ErrMalformedRecord,
			msg:  "line 2: case P1: missing side c",
		},
		{
			name: "empty side",
			in:   "case_id,a,b,c\nP1,,2,3\n",
			kind: serrors.ErrMalformedRecord,
			msg:  "line 2: case P1: side a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := harness.LoadRecords(strings.NewReader(tt.in))
			require.ErrorIs(t, err, tt.kind)
			require.Equal(t, tt.msg, serrors.MessageOf(err))
		})
	}
}

func TestLoadRecords_BrokenCSV(t *testing.T) {
	_, err := harness.LoadRecords(strings.NewReader("case_id,a,b,c\n\"P1,1,2,3\n"))
	require.Error(t, err)
}

func TestLoadExpected(t *testing.T) {
	in := "expected,case_id\nSCALENE,P6\nISOSCELES,P4\nEQUILATERAL,P4\n"

	expected, err := harness.LoadExpected(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, map[string]string{"P6": "SCALENE", "P4": "EQUILATERAL"}, expected)
}

func TestLoadExpected_Errors(t *testing.T) {
	_, err := harness.LoadExpected(strings.NewReader("case_id,label\nP1,SCALENE\n"))
	require.ErrorIs(t, err, serrors.ErrMissingColumn)

	_, err = harness.LoadExpected(strings.NewReader("case_id,expected\nP1\n"))
	require.ErrorIs(t, err, serrors.ErrMalformedRecord)

	expected, err := harness.LoadExpected(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, expected)
}

func TestWriteActual(t *testing.T) {
	var buf bytes.Buffer
	err := harness.WriteActual(&buf, []domain.Outcome{
		{CaseID: "P1", Label: domain.LabelInvalidNonpositive},
		{CaseID: "with,comma", Label: domain.LabelScalene},
	})
	require.NoError(t, err)
	require.Equal(t, "case_id,actual\nP1,INVALID_NONPOSITIVE\n\"with,comma\",SCALENE\n", buf.String())

	buf.Reset()
	require.NoError(t, harness.WriteActual(&buf, nil))
	require.Equal(t, "case_id,actual\n", buf.String())
}
