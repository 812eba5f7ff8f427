// Package v1handler implements the version 1 HTTP endpoints of the
// classifier service.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"triangle/internal/classifier"
	"triangle/pkg/logger"
	"triangle/pkg/metrics"
	"triangle/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// DefaultMaxBatchSize is used when Deps.MaxBatchSize is not positive.
const DefaultMaxBatchSize = 10000

// DefaultMaxBodyBytes is used when Deps.MaxBodyBytes is not positive.
const DefaultMaxBodyBytes = 1 << 20

type Deps struct {
	Classifier classifier.Classifier
	// Metrics may be nil.
	Metrics *metrics.Recorder

	MaxBatchSize int
	MaxBodyBytes int64
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	if deps.Classifier == nil {
		deps.Classifier = classifier.New()
	}
	if deps.MaxBatchSize <= 0 {
		deps.MaxBatchSize = DefaultMaxBatchSize
	}
	if deps.MaxBodyBytes <= 0 {
		deps.MaxBodyBytes = DefaultMaxBodyBytes
	}

	return &Handler{deps: deps}
}

// Register mounts the v1 routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/classify", h.Classify)
	mux.HandleFunc("POST /v1/batch", h.Batch)
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Code    string
	Message string
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

// NewError maps err to a status code and a client-safe body. Internal
// failures are logged and their details are not exposed.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return &ErrorStatusCode{
			StatusCode: http.StatusRequestEntityTooLarge,
			Response:   ErrorResponse{Code: serrors.ErrBadRequest.Error(), Message: "request body too large"},
		}
	}

	status := http.StatusInternalServerError
	kind := serrors.KindOf(err)
	switch kind {
	case serrors.ErrBadRequest, serrors.ErrMalformedRecord, serrors.ErrMissingColumn:
		status = http.StatusBadRequest
	case serrors.ErrNotFound:
		status = http.StatusNotFound
	default:
		kind = serrors.ErrInternal
	}

	msg := serrors.MessageOf(err)
	switch {
	case status == http.StatusInternalServerError:
		logger.Error(ctx, "request failed", zap.Error(err))
		msg = "internal error"
	case msg == "" && status == http.StatusNotFound:
		msg = "resource not found"
	case msg == "":
		msg = "invalid request"
	}

	return &ErrorStatusCode{
		StatusCode: status,
		Response:   ErrorResponse{Code: kind.Error(), Message: msg},
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("code")
	e.Str(res.Response.Code)
	e.FieldStart("message")
	e.Str(res.Response.Message)
	e.ObjEnd()

	writeJSON(w, res.StatusCode, e.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
