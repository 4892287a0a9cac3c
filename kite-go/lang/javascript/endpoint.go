package javascript

import (
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kiteco/jsmin/kite-go/lang/javascript/jsscanner"
	"github.com/kiteco/jsmin/kite-golib/errors"
	"github.com/kiteco/jsmin/kite-golib/kitelog"
	"github.com/kiteco/jsmin/kite-golib/status"
)

// maxBodySize bounds the size of the source accepted by the endpoint
const maxBodySize = 4 << 20

// Endpoint serves the minifier over HTTP. Each request takes the source
// as its body and responds with the transformed text.
type Endpoint struct {
	minifier *Minifier
	router   *mux.Router
}

// NewEndpoint creates an endpoint backed by m
func NewEndpoint(m *Minifier) *Endpoint {
	e := &Endpoint{
		minifier: m,
		router:   mux.NewRouter(),
	}

	e.router.HandleFunc("/minify", status.RecordStatusCode(e.handleMinify, minifyStatusCode)).Methods("POST")
	e.router.HandleFunc("/prettify", status.RecordStatusCode(e.handlePrettify, prettifyStatusCode)).Methods("POST")
	e.router.HandleFunc("/check", status.RecordStatusCode(e.handleCheck, checkStatusCode)).Methods("POST")
	e.router.HandleFunc("/debug/status", status.HandleJSON).Methods("GET")
	e.router.HandleFunc("/debug/status.txt", status.HandleText).Methods("GET")

	return e
}

// ServeHTTP implements http.Handler
func (e *Endpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e.router.ServeHTTP(w, r)
}

// handleMinify minifies the body. The query flags mangle, toplevel and
// elide map to the corresponding Options.
func (e *Endpoint) handleMinify(w http.ResponseWriter, r *http.Request) {
	src, ok := readBody(w, r)
	if !ok {
		return
	}
	opts := Options{
		Minify:          true,
		Mangle:          flag(r, "mangle"),
		MangleToplevel:  flag(r, "toplevel"),
		ElideSemicolons: flag(r, "elide"),
	}
	e.respond(w, r, src, opts)
}

func (e *Endpoint) handlePrettify(w http.ResponseWriter, r *http.Request) {
	src, ok := readBody(w, r)
	if !ok {
		return
	}
	e.respond(w, r, src, Options{Indent: r.URL.Query().Get("indent")})
}

// handleCheck verifies the round trip of the body under the options given
// by the query, and responds with "ok" or the mismatch
func (e *Endpoint) handleCheck(w http.ResponseWriter, r *http.Request) {
	src, ok := readBody(w, r)
	if !ok {
		return
	}
	opts := Options{
		Minify:         flag(r, "minify"),
		Mangle:         flag(r, "mangle"),
		MangleToplevel: flag(r, "toplevel"),
	}
	if err := e.minifier.Check(src, opts); err != nil {
		if writeSyntaxError(w, err) {
			return
		}
		kitelog.Basic.Printf("check %s failed: %v", r.URL, err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}

func (e *Endpoint) respond(w http.ResponseWriter, r *http.Request, src []byte, opts Options) {
	out, err := e.minifier.Transform(src, opts)
	if err != nil {
		if writeSyntaxError(w, err) {
			return
		}
		kitelog.Basic.Printf("%s failed: %v", r.URL.Path, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Write([]byte(out))
}

// writeSyntaxError responds with a 400 and the error as JSON if err is a
// lexical or syntax error in the request body
func writeSyntaxError(w http.ResponseWriter, err error) bool {
	var jsErr *jsscanner.Error
	if !errors.As(err, &jsErr) {
		return false
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(jsErr)
	return true
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	src, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		http.Error(w, errors.Wrapf(err, "error reading body").Error(), http.StatusBadRequest)
		return nil, false
	}
	return src, true
}

func flag(r *http.Request, name string) bool {
	switch r.URL.Query().Get(name) {
	case "1", "true":
		return true
	}
	return false
}
