package server

import (
	"encoding/json"
	"net/http"

	"github.com/coverforge/coverforge/pkg/errors"
	"github.com/coverforge/coverforge/pkg/pipeline"
)

// coverRequest is the JSON body of POST /covers. Omitted fields fall
// back to the server's configuration, then to pipeline defaults.
type coverRequest struct {
	Text      string  `json:"text"`
	Width     float64 `json:"width,omitempty"`
	Height    float64 `json:"height,omitempty"`
	Format    string  `json:"format,omitempty"`
	Title     string  `json:"title,omitempty"`
	Tagline   string  `json:"tagline,omitempty"`
	Sentiment string  `json:"sentiment,omitempty"`
	NoOverlay bool    `json:"no_overlay,omitempty"`
	Seed      uint32  `json:"seed,omitempty"`
}

// errorResponse is the JSON body of every non-2xx response.
type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleCover(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req coverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid request body: %v", err))
		return
	}

	opts := s.pipelineOptions(req)
	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	format := opts.Formats[0]
	w.Header().Set("Content-Type", contentTypeFor(format))
	w.Header().Set("X-Content-Hash", result.Features.Hash)
	if result.CacheInfo.EncodeHit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	_, _ = w.Write(result.Artifacts[format])
}

// pipelineOptions merges a request with the server configuration.
func (s *Server) pipelineOptions(req coverRequest) pipeline.Options {
	opts := pipeline.Options{
		Text:      req.Text,
		Width:     req.Width,
		Height:    req.Height,
		Title:     req.Title,
		Tagline:   req.Tagline,
		Sentiment: req.Sentiment,
		NoOverlay: req.NoOverlay,
		Seed:      req.Seed,
	}

	if opts.Width == 0 {
		opts.Width = s.cfg.Render.Width
	}
	if opts.Height == 0 {
		opts.Height = s.cfg.Render.Height
	}
	if opts.Title == "" && opts.Tagline == "" {
		opts.Title = s.cfg.Site.Title
		opts.Tagline = s.cfg.Site.Tagline
	}
	if !s.cfg.Render.Overlay {
		opts.NoOverlay = true
	}
	if opts.Sentiment == "" {
		opts.Sentiment = s.cfg.Sentiment
	}

	format := req.Format
	if format == "" {
		format = pipeline.FormatPNG
	}
	opts.Formats = []string{format}

	return opts
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := statusForCode(code)

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error:     errors.UserMessage(err),
		Code:      string(code),
		RequestID: requestIDFrom(r.Context()),
	})
}

func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidSize, errors.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func contentTypeFor(format string) string {
	switch format {
	case pipeline.FormatSVG:
		return "image/svg+xml"
	case pipeline.FormatPNG:
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
