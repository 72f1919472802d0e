package rest

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/flowport/flowport/autofix"
	"github.com/flowport/flowport/expr"
	"github.com/flowport/flowport/logger"
	"github.com/flowport/flowport/model"
	"github.com/flowport/flowport/transform"
	"go.uber.org/zap"
)

func (s *Server) HandleDetect(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "error reading request body")
		return
	}
	defer r.Body.Close()
	format := s.exchangeService.Detect(payload)
	respondWithJSON(w, http.StatusOK, map[string]string{"format": string(format)})
}

type importRequest struct {
	Payload json.RawMessage `json:"payload"`
	Format  string          `json:"format,omitempty"`
}

func (s *Server) HandleImport(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid import request")
		return
	}
	defer r.Body.Close()
	result := s.exchangeService.Import(req.Payload, transform.Format(req.Format))
	respondWithJSON(w, http.StatusOK, result)
}

type exportRequest struct {
	Graph  model.WorkflowGraph `json:"graph"`
	Target string              `json:"target"`
}

func (s *Server) HandleExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid export request")
		return
	}
	defer r.Body.Close()
	data, err := s.exchangeService.Export(&req.Graph, transform.Format(req.Target))
	if err != nil {
		logger.Error("error exporting workflow", zap.String("target", req.Target), zap.Error(err))
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

type validateRequest struct {
	Graph    model.WorkflowGraph `json:"graph"`
	Platform string              `json:"platform"`
}

func (s *Server) HandleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid validate request")
		return
	}
	defer r.Body.Close()
	result := s.exchangeService.Validate(r.Context(), &req.Graph, transform.Format(req.Platform))
	respondWithJSON(w, http.StatusOK, result)
}

type autoFixRequest struct {
	Scenario model.MakeScenario `json:"scenario"`
	Options  autofix.FixOptions `json:"options"`
}

func (s *Server) HandleAutoFix(w http.ResponseWriter, r *http.Request) {
	var req autoFixRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid autofix request")
		return
	}
	defer r.Body.Close()
	result := s.exchangeService.AutoFix(&req.Scenario, req.Options)
	respondWithJSON(w, http.StatusOK, result)
}

type convergeRequest struct {
	Scenario  model.MakeScenario `json:"scenario"`
	Options   autofix.FixOptions `json:"options"`
	MaxRounds int                `json:"maxRounds,omitempty"`
}

func (s *Server) HandleAutoFixConverge(w http.ResponseWriter, r *http.Request) {
	var req convergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid converge request")
		return
	}
	defer r.Body.Close()
	fixed, reports, err := s.exchangeService.FixUntilClean(&req.Scenario, req.Options, req.MaxRounds)
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"scenario": fixed,
		"reports":  reports,
	})
}

type mapperPreviewRequest struct {
	Mapper  map[string]any `json:"mapper"`
	Outputs map[string]any `json:"outputs"`
}

func (s *Server) HandleMapperPreview(w http.ResponseWriter, r *http.Request) {
	var req mapperPreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid preview request")
		return
	}
	defer r.Body.Close()
	respondWithJSON(w, http.StatusOK, map[string]any{
		"mapper": expr.ResolveMapper(req.Mapper, req.Outputs),
	})
}
