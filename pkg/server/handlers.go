package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/nodescape/pkg/buildinfo"
	"github.com/matzehuels/nodescape/pkg/core/axis"
	"github.com/matzehuels/nodescape/pkg/errors"
	"github.com/matzehuels/nodescape/pkg/graph"
	"github.com/matzehuels/nodescape/pkg/pipeline"
)

var validate = validator.New()

// =============================================================================
// Request / Response Types
// =============================================================================

// LayoutRequest is the body of POST /v1/layout. Options fields left out of
// the request keep the server's configured values.
type LayoutRequest struct {
	Graph   *graph.Graph     `json:"graph" validate:"required"`
	Options pipeline.Options `json:"options"`
}

// LayoutResponse is the body returned by POST /v1/layout.
type LayoutResponse struct {
	Layout graph.Layout `json:"layout"`
	Status []string     `json:"status,omitempty"`
}

// AxesRequest is the body of POST /v1/axes. A missing viewport frames the
// whole world.
type AxesRequest struct {
	Axis     *axis.Info     `json:"axis" validate:"required"`
	Viewport *axis.Viewport `json:"viewport,omitempty"`
	MaxTicks int            `json:"max_ticks,omitempty" validate:"gte=0"`
}

// HealthResponse is the body returned by GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Uptime  string `json:"uptime"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: buildinfo.Version,
		Commit:  buildinfo.Commit,
		Uptime:  time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	req := LayoutRequest{Options: s.cfg.LayoutOptions()}
	if err := s.decode(w, r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}
	if limit := s.cfg.Layout.MaxNodes; limit > 0 && (req.Options.MaxNodes == 0 || req.Options.MaxNodes > limit) {
		req.Options.MaxNodes = limit
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.Server.RequestTimeout)
	defer cancel()

	var status []string
	logger := s.logger.With("request_id", middleware.GetReqID(r.Context()))
	runner := pipeline.NewRunner(logger, pipeline.StatusFunc(func(msg string) {
		status = append(status, msg)
	}), nil)
	req.Options.Logger = logger

	res, err := runner.Layout(ctx, req.Graph, req.Options)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, LayoutResponse{Layout: res.Layout, Status: status})
}

func (s *Server) handleAxes(w http.ResponseWriter, r *http.Request) {
	var req AxesRequest
	if err := s.decode(w, r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}
	if req.Axis.Spread <= 0 {
		s.respondError(w, r, errors.New(errors.ErrCodeInvalidInput, "axis spread must be positive"))
		return
	}

	vp := axis.ViewportFor(req.Axis.Spread)
	if req.Viewport != nil {
		vp = *req.Viewport
	}
	maxTicks := req.MaxTicks
	if maxTicks == 0 || maxTicks > s.cfg.Axis.MaxTicks {
		maxTicks = s.cfg.Axis.MaxTicks
	}

	p := axis.NewProjector(*req.Axis)
	p.MaxTicks = maxTicks
	axes, _ := p.Project(vp)
	s.respondJSON(w, http.StatusOK, axes)
}

// =============================================================================
// Helpers
// =============================================================================

// decode reads a size-limited JSON body into v and validates it.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid request JSON")
	}
	if err := validate.Struct(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request")
	}
	return nil
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	msg := errors.UserMessage(err)
	if code == "" {
		code = errors.ErrCodeInternal
		msg = "internal error"
	}
	status := errors.HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	} else {
		s.logger.Debug("request rejected", "path", r.URL.Path, "code", code, "error", err)
	}
	s.respondJSON(w, status, ErrorResponse{
		Code:      code,
		Message:   msg,
		RequestID: middleware.GetReqID(r.Context()),
	})
}

func errNotFound(r *http.Request) error {
	return errors.New(errors.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path)
}
