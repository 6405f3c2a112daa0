package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/eulertour/pkg/buildinfo"
	apperrors "github.com/matzehuels/eulertour/pkg/errors"
	"github.com/matzehuels/eulertour/pkg/graph"
	"github.com/matzehuels/eulertour/pkg/pipeline"
	"github.com/matzehuels/eulertour/pkg/render"
)

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type circuitResponse struct {
	RequestID string             `json:"request_id"`
	Outcome   string             `json:"outcome"`
	Message   string             `json:"message"`
	Circuit   []int              `json:"circuit,omitempty"`
	Graph     graph.Document     `json:"graph"`
	GraphHash string             `json:"graph_hash"`
	Artifacts map[string]string  `json:"artifacts,omitempty"`
	Cache     pipeline.CacheInfo `json:"cache"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code      apperrors.Code `json:"code"`
	Message   string         `json:"message"`
	RequestID string         `json:"request_id,omitempty"`
}

var contentTypes = map[string]string{
	render.FormatDOT:  "text/vnd.graphviz; charset=utf-8",
	render.FormatSVG:  "image/svg+xml",
	render.FormatPNG:  "image/png",
	render.FormatJSON: "application/json",
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	s.run(w, r, opts)
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.run(w, r, opts)
}

func (s *Server) handleArtifact(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	opts, err := optionsFromQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}

	res, err := s.execute(r, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Eulertour-Outcome", string(res.Outcome))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

func (s *Server) run(w http.ResponseWriter, r *http.Request, opts pipeline.Options) {
	res, err := s.execute(r, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := circuitResponse{
		RequestID: RequestID(r.Context()),
		Outcome:   string(res.Outcome),
		Message:   res.Message(),
		Circuit:   res.Circuit,
		Graph:     graph.ToDocument(res.Graph),
		GraphHash: res.GraphHash,
		Cache:     res.CacheInfo,
	}
	if len(res.Artifacts) > 0 {
		resp.Artifacts = make(map[string]string, len(res.Artifacts))
		for format, data := range res.Artifacts {
			resp.Artifacts[format] = encodeArtifact(format, data)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) execute(r *http.Request, opts pipeline.Options) (*pipeline.Result, error) {
	if opts.Vertices > MaxVertices {
		return nil, apperrors.New(apperrors.ErrCodeInvalidVertices, "vertices must be <= %d, got %d", MaxVertices, opts.Vertices)
	}
	if opts.Edges > MaxEdges {
		return nil, apperrors.New(apperrors.ErrCodeInvalidEdges, "edges must be <= %d, got %d", MaxEdges, opts.Edges)
	}
	opts.Logger = s.logger.With("request_id", RequestID(r.Context()))
	return s.runner.Execute(r.Context(), opts)
}

// encodeArtifact keeps text formats readable and base64-encodes PNG.
func encodeArtifact(format string, data []byte) string {
	if format == render.FormatPNG {
		return base64.StdEncoding.EncodeToString(data)
	}
	return string(data)
}

// optionsFromQuery reads vertices, edges, seed, balance, engine and any
// number of format parameters.
func optionsFromQuery(q url.Values) (pipeline.Options, error) {
	var opts pipeline.Options
	var err error

	if opts.Vertices, err = intParam(q, "vertices", apperrors.ErrCodeInvalidVertices); err != nil {
		return opts, err
	}
	if opts.Edges, err = intParam(q, "edges", apperrors.ErrCodeInvalidEdges); err != nil {
		return opts, err
	}
	if v := q.Get("seed"); v != "" {
		if opts.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return opts, apperrors.Wrap(apperrors.ErrCodeInvalidSeed, err, "seed must be an unsigned integer")
		}
	}
	if v := q.Get("balance"); v != "" {
		if opts.Balance, err = strconv.ParseBool(v); err != nil {
			return opts, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "balance must be a boolean")
		}
	}
	opts.Engine = q.Get("engine")
	opts.Title = q.Get("title")
	opts.Formats = q["format"]
	return opts, nil
}

func intParam(q url.Values, name string, code apperrors.Code) (int, error) {
	v := q.Get(name)
	if v == "" {
		return 0, apperrors.New(code, "%s is required", name)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, apperrors.Wrap(code, err, "%s must be an integer", name)
	}
	return n, nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	code := apperrors.GetCode(err)
	switch {
	case apperrors.IsValidation(err):
		status = http.StatusBadRequest
	case errors.Is(err, r.Context().Err()) && r.Context().Err() != nil:
		status = http.StatusServiceUnavailable
	}
	if code == "" {
		code = apperrors.ErrCodeInternal
	}

	msg := apperrors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("pipeline failed", "err", err, "id", RequestID(r.Context()))
		msg = "internal error"
	}
	writeJSON(w, status, errorBody{Error: errorDetail{
		Code:      code,
		Message:   msg,
		RequestID: RequestID(r.Context()),
	}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
