package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"triangle/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestPprof(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{name: "index", method: http.MethodGet, path: "/debug/pprof/", status: http.StatusOK},
		{name: "cmdline", method: http.MethodGet, path: "/debug/pprof/cmdline", status: http.StatusOK},
		{name: "named profile", method: http.MethodGet, path: "/debug/pprof/goroutine?debug=1", status: http.StatusOK},
		{name: "unknown profile", method: http.MethodGet, path: "/debug/pprof/nope", status: http.StatusNotFound},
		{name: "outside prefix", method: http.MethodGet, path: "/pprof/", status: http.StatusNotFound},
	}

	mux := controller.Pprof()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			require.Equal(t, tt.status, rec.Code)
		})
	}
}
