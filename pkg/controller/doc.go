// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithLogger: attaches a request-scoped logger and request ID and logs access info.
//   - WithRecover: turns handler panics into a 500 JSON response.
//   - WithCORS: adds CORS headers and answers OPTIONS preflight requests.
//
// Provided helpers:
//   - Pprof: serves net/http/pprof handlers under a path prefix.
package controller
