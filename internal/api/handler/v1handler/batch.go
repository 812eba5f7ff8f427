package v1handler

import (
	"net/http"
	"time"
	"triangle/internal/harness"
	"triangle/pkg/domain"
	"triangle/pkg/serrors"

	"github.com/go-faster/jx"
)

type batchRequest struct {
	records  []domain.Record
	expected map[string]string
	hasCases bool
}

// decodeCase reads {"id": "P1", "a": 1, "b": 2, "c": 3, "expected": "SCALENE"}.
func (req *batchRequest) decodeCase(d *jx.Decoder) error {
	var (
		s        sides
		id       string
		hasID    bool
		expected *string
	)

	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch k := string(key); k {
		case "id":
			v, err := d.Str()
			if err != nil {
				return serrors.Wrap(serrors.ErrBadRequest, err, "case id must be a string")
			}
			id, hasID = v, true

			return nil
		case "expected":
			v, err := d.Str()
			if err != nil {
				return serrors.Wrap(serrors.ErrBadRequest, err, "expected must be a string")
			}
			expected = &v

			return nil
		default:
			ok, err := s.decodeField(d, k)
			if !ok {
				return d.Skip()
			}

			return err
		}
	})
	if err != nil {
		return err //nolint: wrapcheck
	}

	n := len(req.records)
	if !hasID {
		return serrors.With(serrors.ErrBadRequest, "case %d: missing id", n)
	}
	if err := s.complete(); err != nil {
		return serrors.With(serrors.ErrBadRequest, "case %s: %s", id, serrors.MessageOf(err))
	}

	req.records = append(req.records, domain.Record{CaseID: id, Triangle: s.t})
	if expected != nil {
		req.expected[id] = *expected
	}

	return nil
}

func (h *Handler) decodeBatch(d *jx.Decoder) (*batchRequest, error) {
	req := &batchRequest{expected: map[string]string{}}

	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != "cases" {
			return d.Skip()
		}
		req.hasCases = true

		return d.Arr(func(d *jx.Decoder) error {
			if len(req.records) >= h.deps.MaxBatchSize {
				return serrors.With(serrors.ErrBadRequest, "batch exceeds %d cases", h.deps.MaxBatchSize)
			}

			return req.decodeCase(d)
		})
	})
	if err != nil {
		return nil, badJSON(err)
	}
	if !req.hasCases {
		return nil, serrors.With(serrors.ErrBadRequest, "missing cases")
	}

	return req, nil
}

// Batch handles POST /v1/batch: it classifies every case and compares it to
// the optional expected label. Cases without one compare against "<missing>".
//
//	request:  {"cases": [{"id": "P5", "a": 3, "b": 4, "c": 5, "expected": "RIGHT_SCALENE"}]}
//	response: {"total": 1, "failures": 0, "results": [{"id": "P5", "label": "RIGHT_SCALENE"}], "mismatches": []}
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	req, err := h.decodeBatch(jx.Decode(http.MaxBytesReader(w, r.Body, h.deps.MaxBodyBytes), 4096)) //nolint: mnd
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	outcomes := harness.ClassifyBatch(h.deps.Classifier, req.records)
	summary := harness.Compare(outcomes, req.expected)

	for _, o := range outcomes {
		h.deps.Metrics.Classified(ctx, o.Label)
	}
	h.deps.Metrics.BatchDone(ctx, summary.Total, summary.Failures, time.Since(start))

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("total")
	e.Int(summary.Total)
	e.FieldStart("failures")
	e.Int(summary.Failures)
	e.FieldStart("results")
	e.ArrStart()
	for _, o := range outcomes {
		e.ObjStart()
		e.FieldStart("id")
		e.Str(o.CaseID)
		e.FieldStart("label")
		e.Str(string(o.Label))
		e.ObjEnd()
	}
	e.ArrEnd()
	e.FieldStart("mismatches")
	e.ArrStart()
	for _, m := range summary.Mismatches {
		e.ObjStart()
		e.FieldStart("id")
		e.Str(m.CaseID)
		e.FieldStart("expected")
		e.Str(m.Expected)
		e.FieldStart("actual")
		e.Str(string(m.Actual))
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()

	writeJSON(w, http.StatusOK, e.Bytes())
}
