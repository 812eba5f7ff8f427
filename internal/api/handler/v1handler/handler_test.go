package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"triangle/internal/api/handler/v1handler"
	"triangle/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// serve sends body to path through a mux with the v1 routes registered.
func serve(t *testing.T, h *v1handler.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	mux := http.NewServeMux()
	h.Register(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))

	return rec
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), errors.New("disk on fire"))
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_Kinds(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "bad request with message",
			err:     serrors.With(serrors.ErrBadRequest, "missing side a"),
			status:  http.StatusBadRequest,
			code:    "BAD_REQUEST",
			message: "missing side a",
		},
		{
			name:    "bad request kind only",
			err:     serrors.KindOnly(serrors.ErrBadRequest),
			status:  http.StatusBadRequest,
			code:    "BAD_REQUEST",
			message: "invalid request",
		},
		{
			name:    "malformed record wrapped twice",
			err:     fmt.Errorf("load: %w", serrors.Wrap(serrors.ErrMalformedRecord, errors.New("x"), "line 2")),
			status:  http.StatusBadRequest,
			code:    "MALFORMED_RECORD",
			message: "line 2",
		},
		{
			name:    "missing column",
			err:     serrors.With(serrors.ErrMissingColumn, `column "a" not found`),
			status:  http.StatusBadRequest,
			code:    "MISSING_COLUMN",
			message: `column "a" not found`,
		},
		{
			name:    "not found sentinel",
			err:     serrors.ErrNotFound,
			status:  http.StatusNotFound,
			code:    "NOT_FOUND",
			message: "resource not found",
		},
		{
			name:    "internal kind hides message",
			err:     serrors.With(serrors.ErrInternal, "secret detail"),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL",
			message: "internal error",
		},
		{
			name:    "body too large",
			err:     fmt.Errorf("read: %w", &http.MaxBytesError{Limit: 10}),
			status:  http.StatusRequestEntityTooLarge,
			code:    "BAD_REQUEST",
			message: "request body too large",
		},
	}

	h := v1handler.New(v1handler.Deps{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := h.NewError(context.Background(), tt.err)
			require.Equal(t, tt.status, res.StatusCode)
			require.Equal(t, tt.code, res.Response.Code)
			require.Equal(t, tt.message, res.Response.Message)
		})
	}
}

func TestRegister_MethodNotAllowed(t *testing.T) {
	rec := serve(t, v1handler.New(v1handler.Deps{}), http.MethodGet, "/v1/classify", "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
