package v1handler

import (
	"net/http"

	"github.com/go-faster/jx"
)

// Classify handles POST /v1/classify.
//
//	request:  {"a": 3, "b": 4, "c": 5}
//	response: {"label": "RIGHT_SCALENE"}
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	var s sides

	d := jx.Decode(http.MaxBytesReader(w, r.Body, h.deps.MaxBodyBytes), 512) //nolint: mnd
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		ok, err := s.decodeField(d, string(key))
		if !ok {
			return d.Skip()
		}

		return err
	})
	if err != nil {
		h.writeError(w, r, badJSON(err))

		return
	}
	if err := s.complete(); err != nil {
		h.writeError(w, r, err)

		return
	}

	label := h.deps.Classifier.Classify(s.t)
	h.deps.Metrics.Classified(r.Context(), label)

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("label")
	e.Str(string(label))
	e.ObjEnd()

	writeJSON(w, http.StatusOK, e.Bytes())
}
