/*
 Ondemand, a controller for on-demand Minecraft servers.
 Copyright (C) 2024 Yannic Rieger <oss@76k.io>

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as published by
 the Free Software Foundation, either version 3 of the License, or
 (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	cperrs "github.com/spacechunks/ondemand/controlplane/errors"
	"github.com/spacechunks/ondemand/controlplane/lifecycle"
	"github.com/spacechunks/ondemand/controlplane/metrics"
)

const internalErrorMessage = "internal service error occurred"

// Info describes the deployment of the game server.
type Info struct {
	ServerSize  string `json:"serverSize"`
	Description string `json:"description"`
	CPU         int    `json:"cpu"`
	Memory      int    `json:"memory"`
	Cluster     string `json:"cluster"`
	Bucket      string `json:"bucket"`
	DomainName  string `json:"domainName,omitempty"`
}

type Server struct {
	logger   *slog.Logger
	service  lifecycle.Service
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	info     Info
}

func NewServer(
	logger *slog.Logger,
	service lifecycle.Service,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	info Info,
) *Server {
	return &Server{
		logger:   logger.With("component", "api"),
		service:  service,
		metrics:  m,
		gatherer: gatherer,
		info:     info,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	r.Get("/info", s.handleInfo)
	r.Get("/backups", s.handleBackups)
	r.Get("/executions/{id}", s.handleExecution)
	r.Post("/executions/{id}/abort", s.handleAbort)

	r.Get("/{action}", s.handleAction)
	r.Post("/{action}", s.handleAction)

	// anything that is not routed is an unknown action
	r.NotFound(s.handleInvalid)
	r.MethodNotAllowed(s.handleInvalid)

	return r
}

func (s *Server) handleInvalid(w http.ResponseWriter, r *http.Request) {
	// do not use the path as label, it is user controlled
	s.writeError(w, r, "invalid", cperrs.ErrInvalidAction)
}

type actionResponse struct {
	Message      string `json:"message"`
	ExecutionArn string `json:"executionArn"`
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var (
		ctx    = r.Context()
		action = chi.URLParam(r, "action")
	)

	switch action {
	case "start":
		e, err := s.service.StartServer(ctx)
		if err != nil {
			s.writeError(w, r, action, err)
			return
		}
		s.writeJSON(w, action, http.StatusOK, actionResponse{
			Message:      "Server starting",
			ExecutionArn: e.ID,
		})
	case "stop":
		e, err := s.service.StopServer(ctx)
		if err != nil {
			s.writeError(w, r, action, err)
			return
		}
		s.writeJSON(w, action, http.StatusOK, actionResponse{
			Message:      "Server stopping",
			ExecutionArn: e.ID,
		})
	case "status":
		status, err := s.service.Status(ctx)
		if err != nil {
			s.writeError(w, r, action, err)
			return
		}
		s.writeJSON(w, action, http.StatusOK, status)
	default:
		s.handleInvalid(w, r)
	}
}

func (s *Server) handleExecution(w http.ResponseWriter, r *http.Request) {
	e, err := s.service.Execution(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, "execution", err)
		return
	}
	s.writeJSON(w, "execution", http.StatusOK, e)
}

func (s *Server) handleAbort(w http.ResponseWriter, r *http.Request) {
	e, err := s.service.AbortExecution(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, "abort", err)
		return
	}
	s.writeJSON(w, "abort", http.StatusOK, e)
}

func (s *Server) handleBackups(w http.ResponseWriter, r *http.Request) {
	backups, err := s.service.Backups(r.Context())
	if err != nil {
		s.writeError(w, r, "backups", err)
		return
	}
	s.writeJSON(w, "backups", http.StatusOK, map[string]any{
		"backups": backups,
	})
}

func (s *Server) handleInfo(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, "info", http.StatusOK, s.info)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, action string, err error) {
	var e cperrs.Error
	if errors.As(err, &e) {
		s.writeJSON(w, action, e.HTTPStatus(), map[string]string{"error": e.Message})
		return
	}

	s.logger.ErrorContext(r.Context(),
		"request failed",
		"action", action,
		"request_id", middleware.GetReqID(r.Context()),
		"err", err,
	)

	s.writeJSON(w, action, http.StatusInternalServerError, map[string]string{"error": internalErrorMessage})
}

func (s *Server) writeJSON(w http.ResponseWriter, action string, code int, body any) {
	s.metrics.APIRequests.WithLabelValues(action, strconv.Itoa(code)).Inc()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to write response", "err", err)
	}
}
