package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is the path under which Pprof serves profiles.
const PprofPrefix = "/debug/pprof/"

// Pprof returns a ServeMux exposing net/http/pprof handlers under PprofPrefix.
// Named profiles (heap, goroutine, allocs...) are served by the index handler.
func Pprof() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET "+PprofPrefix, pprof.Index)
	mux.HandleFunc("GET "+PprofPrefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc("GET "+PprofPrefix+"profile", pprof.Profile)
	mux.HandleFunc(PprofPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc("GET "+PprofPrefix+"trace", pprof.Trace)

	return mux
}
