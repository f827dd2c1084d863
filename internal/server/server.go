// Package server exposes the diagram engine over a small HTTP API:
// cross-notation conversion, wire-format export/import, SVG rendering and
// snapshot persistence.
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/flowcanvas/flowcanvas/pkg/bpmn"
	"github.com/flowcanvas/flowcanvas/pkg/diagram"
	"github.com/flowcanvas/flowcanvas/pkg/errors"
	"github.com/flowcanvas/flowcanvas/pkg/lift"
	"github.com/flowcanvas/flowcanvas/pkg/render"
	"github.com/flowcanvas/flowcanvas/pkg/store"
)

// maxBodyBytes bounds request bodies; diagrams are small documents.
const maxBodyBytes = 4 << 20

// Server wires the engine packages to HTTP handlers.
type Server struct {
	logger *log.Logger
	store  store.Store
	router chi.Router
}

// New creates a server around the given snapshot store.
func New(logger *log.Logger, st store.Store) *Server {
	s := &Server{logger: logger, store: st}

	r := chi.NewRouter()
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/convert/{lift}", s.handleConvert)
		r.Post("/export", s.handleExport)
		r.Post("/import", s.handleImport)
		r.Post("/render", s.handleRender)
		r.Get("/snapshot", s.handleSnapshotGet)
		r.Put("/snapshot", s.handleSnapshotPut)
	})
	s.router = r
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

// logRequests logs method, path, status and duration per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// readBody reads a bounded request body.
func readBody(r *http.Request) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps structured errors to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidNotation,
		errors.ErrCodeInvalidFormat, errors.ErrCodeParseFailed:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeSnapshotNotFound:
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}

// handleConvert runs one pipeline lift. Scope lifts take a scope JSON
// body; the value-stream lift takes a diagram JSON body.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading body"))
		return
	}

	var out diagram.Diagram
	switch name := chi.URLParam(r, "lift"); name {
	case "scope-to-vsm":
		var sc lift.Scope
		if err := json.Unmarshal(body, &sc); err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "parsing scope"))
			return
		}
		out = lift.ScopeToValueStream(sc)
	case "scope-to-flow":
		var sc lift.Scope
		if err := json.Unmarshal(body, &sc); err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "parsing scope"))
			return
		}
		out = lift.ScopeToFlow(sc)
	case "vsm-to-flow":
		src, err := diagram.Unmarshal(body)
		if err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "parsing diagram"))
			return
		}
		out = lift.ValueStreamToFlow(src)
	default:
		writeError(w, errors.New(errors.ErrCodeInvalidNotation, "unknown lift %q", name))
		return
	}

	writeJSON(w, http.StatusOK, out)
}

// handleExport converts a diagram JSON body to BPMN XML.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading body"))
		return
	}
	d, err := diagram.Unmarshal(body)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "parsing diagram"))
		return
	}
	data, err := bpmn.Export(d)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "exporting"))
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleImport converts a BPMN XML body to a diagram. Import is total, so
// malformed input degrades to an empty diagram rather than an error.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading body"))
		return
	}
	writeJSON(w, http.StatusOK, bpmn.Import(body, nil))
}

// handleRender converts a diagram JSON body to SVG.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading body"))
		return
	}
	d, err := diagram.Unmarshal(body)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "parsing diagram"))
		return
	}
	svg, err := render.RenderSVG(render.ToDOT(d, render.Options{LeftToRight: true}))
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeRenderFailed, err, "rendering"))
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

// handleSnapshotGet returns the stored snapshot blob.
func (s *Server) handleSnapshotGet(w http.ResponseWriter, r *http.Request) {
	data, ok, err := s.store.Load(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		writeError(w, errors.New(errors.ErrCodeSnapshotNotFound, "no snapshot saved"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleSnapshotPut validates and stores a snapshot blob.
func (s *Server) handleSnapshotPut(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading body"))
		return
	}
	if _, err := store.DecodeSnapshot(body); err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.Save(r.Context(), body); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
