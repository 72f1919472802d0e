package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/flowport/flowport/logger"
	"github.com/flowport/flowport/model"
	"github.com/flowport/flowport/persistence"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type saveWorkflowRequest struct {
	Id    string              `json:"id,omitempty"`
	Name  string              `json:"name"`
	Graph model.WorkflowGraph `json:"graph"`
}

func (s *Server) HandleSaveWorkflow(w http.ResponseWriter, r *http.Request) {
	var req saveWorkflowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid workflow")
		return
	}
	defer r.Body.Close()
	now := time.Now().UTC()
	wf := &model.StoredWorkflow{
		Id:        req.Id,
		Name:      req.Name,
		Graph:     req.Graph,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if wf.Id == "" {
		wf.Id = uuid.NewString()
	} else if existing, err := s.storage.Get(r.Context(), wf.Id); err == nil {
		wf.CreatedAt = existing.CreatedAt
	}
	if err := s.storage.Save(r.Context(), wf); err != nil {
		logger.Error("error saving workflow", zap.String("id", wf.Id), zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "error saving workflow")
		return
	}
	respondWithJSON(w, http.StatusOK, wf)
}

func (s *Server) HandleGetWorkflow(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	wf, err := s.storage.Get(r.Context(), id)
	if err != nil {
		var notFound persistence.WorkflowNotFoundError
		if errors.As(err, &notFound) {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		logger.Error("error loading workflow", zap.String("id", id), zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "error loading workflow")
		return
	}
	respondWithJSON(w, http.StatusOK, wf)
}

func (s *Server) HandleListWorkflows(w http.ResponseWriter, r *http.Request) {
	workflows, err := s.storage.List(r.Context())
	if err != nil {
		logger.Error("error listing workflows", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "error listing workflows")
		return
	}
	respondWithJSON(w, http.StatusOK, workflows)
}

func (s *Server) HandleDeleteWorkflow(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.storage.Delete(r.Context(), id); err != nil {
		var notFound persistence.WorkflowNotFoundError
		if errors.As(err, &notFound) {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		logger.Error("error deleting workflow", zap.String("id", id), zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "error deleting workflow")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"id": id})
}
