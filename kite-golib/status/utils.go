package status

import (
	"net/http"
	"strconv"
)

// RecordStatusCode wraps an HTTP handler and records the status code of
// each response in the breakdown
func RecordStatusCode(wrapped http.HandlerFunc, codes *Breakdown) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wrapped.ServeHTTP(&codeRecorder{ResponseWriter: w, codes: codes}, r)
	}
}

// codeRecorder records the first status code written
type codeRecorder struct {
	http.ResponseWriter
	codes   *Breakdown
	written bool
}

// Write implements http.ResponseWriter
func (w *codeRecorder) Write(body []byte) (int, error) {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(body)
}

// WriteHeader implements http.ResponseWriter
func (w *codeRecorder) WriteHeader(code int) {
	w.ResponseWriter.WriteHeader(code)
	if w.written {
		return
	}
	w.written = true
	w.codes.HitAndAdd(strconv.Itoa(code))
}
