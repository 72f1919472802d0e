package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/flowport/flowport/logger"
	"github.com/flowport/flowport/persistence"
	"github.com/flowport/flowport/service"
	"go.uber.org/zap"
)

type Server struct {
	http.Server
	Port            int
	exchangeService *service.ExchangeService
	storage         persistence.WorkflowStorage
}

func NewServer(httpPort int, exchangeService *service.ExchangeService, storage persistence.WorkflowStorage) (*Server, error) {
	s := &Server{
		Server: http.Server{
			Addr: fmt.Sprintf(":%d", httpPort),
		},
		Port:            httpPort,
		exchangeService: exchangeService,
		storage:         storage,
	}

	router := mux.NewRouter()
	router.HandleFunc("/format/detect", s.HandleDetect).Methods(http.MethodPost)
	router.HandleFunc("/workflow/import", s.HandleImport).Methods(http.MethodPost)
	router.HandleFunc("/workflow/export", s.HandleExport).Methods(http.MethodPost)
	router.HandleFunc("/workflow/validate", s.HandleValidate).Methods(http.MethodPost)
	router.HandleFunc("/scenario/autofix", s.HandleAutoFix).Methods(http.MethodPost)
	router.HandleFunc("/scenario/autofix/converge", s.HandleAutoFixConverge).Methods(http.MethodPost)
	router.HandleFunc("/scenario/mapper/preview", s.HandleMapperPreview).Methods(http.MethodPost)
	router.HandleFunc("/workflow", s.HandleSaveWorkflow).Methods(http.MethodPost)
	router.HandleFunc("/workflow", s.HandleListWorkflows).Methods(http.MethodGet)
	router.HandleFunc("/workflow/{id}", s.HandleGetWorkflow).Methods(http.MethodGet)
	router.HandleFunc("/workflow/{id}", s.HandleDeleteWorkflow).Methods(http.MethodDelete)
	router.Use(loggingMiddleware)
	s.Handler = router
	return s, nil
}

func (s *Server) Start() error {
	logger.Info("starting http server on", zap.Int("port", s.Port))
	if err := s.ListenAndServe(); err != nil {
		return err
	}
	return nil
}

func (s *Server) Stop() error {
	logger.Info("stopping http server")
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := s.Shutdown(ctx)
	if err != nil {
		logger.Error("error shutting down http server")
	}
	return nil
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info(r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
