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

package api_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spacechunks/ondemand/controlplane/api"
	"github.com/spacechunks/ondemand/controlplane/backup"
	cperrs "github.com/spacechunks/ondemand/controlplane/errors"
	"github.com/spacechunks/ondemand/controlplane/lifecycle"
	"github.com/spacechunks/ondemand/controlplane/metrics"
	"github.com/spacechunks/ondemand/controlplane/workflow"
	"github.com/spacechunks/ondemand/internal/mock"
	mocky "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const execID = "01900000-0000-7000-8000-000000000001"

func TestActions(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		prep     func(*mock.MockLifecycleService)
		code     int
		expected map[string]any
	}{
		{
			name:   "start",
			method: http.MethodPost,
			path:   "/start",
			prep: func(m *mock.MockLifecycleService) {
				m.EXPECT().StartServer(mocky.Anything).Return(workflow.Execution{ID: execID}, nil)
			},
			code: http.StatusOK,
			expected: map[string]any{
				"message":      "Server starting",
				"executionArn": execID,
			},
		},
		{
			name:   "start with get",
			method: http.MethodGet,
			path:   "/start",
			prep: func(m *mock.MockLifecycleService) {
				m.EXPECT().StartServer(mocky.Anything).Return(workflow.Execution{ID: execID}, nil)
			},
			code: http.StatusOK,
			expected: map[string]any{
				"message":      "Server starting",
				"executionArn": execID,
			},
		},
		{
			name:   "stop",
			method: http.MethodPost,
			path:   "/stop",
			prep: func(m *mock.MockLifecycleService) {
				m.EXPECT().StopServer(mocky.Anything).Return(workflow.Execution{ID: execID}, nil)
			},
			code: http.StatusOK,
			expected: map[string]any{
				"message":      "Server stopping",
				"executionArn": execID,
			},
		},
		{
			name:   "stop without running server",
			method: http.MethodPost,
			path:   "/stop",
			prep: func(m *mock.MockLifecycleService) {
				m.EXPECT().StopServer(mocky.Anything).Return(workflow.Execution{}, cperrs.ErrNoRunningServer)
			},
			code: http.StatusNotFound,
			expected: map[string]any{
				"error": "No running server found",
			},
		},
		{
			name:   "status stopped",
			method: http.MethodGet,
			path:   "/status",
			prep: func(m *mock.MockLifecycleService) {
				m.EXPECT().Status(mocky.Anything).Return(lifecycle.ServerStatus{Status: "stopped"}, nil)
			},
			code: http.StatusOK,
			expected: map[string]any{
				"status": "stopped",
			},
		},
		{
			name:   "status running",
			method: http.MethodGet,
			path:   "/status",
			prep: func(m *mock.MockLifecycleService) {
				m.EXPECT().Status(mocky.Anything).Return(lifecycle.ServerStatus{Status: "running", TaskCount: 1}, nil)
			},
			code: http.StatusOK,
			expected: map[string]any{
				"status":    "running",
				"taskCount": float64(1),
			},
		},
		{
			name:   "invalid action",
			method: http.MethodPost,
			path:   "/restart",
			prep:   func(*mock.MockLifecycleService) {},
			code:   http.StatusBadRequest,
			expected: map[string]any{
				"error": "Invalid action. Use /start, /stop, or /status",
			},
		},
		{
			name:   "nested path is an invalid action",
			method: http.MethodGet,
			path:   "/start/now",
			prep:   func(*mock.MockLifecycleService) {},
			code:   http.StatusBadRequest,
			expected: map[string]any{
				"error": "Invalid action. Use /start, /stop, or /status",
			},
		},
		{
			name:   "unsupported method is an invalid action",
			method: http.MethodPut,
			path:   "/start",
			prep:   func(*mock.MockLifecycleService) {},
			code:   http.StatusBadRequest,
			expected: map[string]any{
				"error": "Invalid action. Use /start, /stop, or /status",
			},
		},
		{
			name:   "unknown errors are hidden",
			method: http.MethodPost,
			path:   "/start",
			prep: func(m *mock.MockLifecycleService) {
				m.EXPECT().StartServer(mocky.Anything).Return(workflow.Execution{}, errors.New("db down"))
			},
			code: http.StatusInternalServerError,
			expected: map[string]any{
				"error": "internal service error occurred",
			},
		},
		{
			name:   "execution",
			method: http.MethodGet,
			path:   "/executions/" + execID,
			prep: func(m *mock.MockLifecycleService) {
				m.EXPECT().Execution(mocky.Anything, execID).Return(workflow.Execution{
					ID:       execID,
					Workflow: "start",
					State:    "GetIP",
					Status:   workflow.StatusRunning,
					Payload:  json.RawMessage(`{}`),
				}, nil)
			},
			code: http.StatusOK,
			expected: map[string]any{
				"executionArn": execID,
				"workflow":     "start",
				"state":        "GetIP",
				"cursor":       float64(0),
				"status":       "RUNNING",
				"payload":      map[string]any{},
				"startedAt":    "0001-01-01T00:00:00Z",
				"updatedAt":    "0001-01-01T00:00:00Z",
				"deadline":     "0001-01-01T00:00:00Z",
			},
		},
		{
			name:   "abort finished execution",
			method: http.MethodPost,
			path:   "/executions/" + execID + "/abort",
			prep: func(m *mock.MockLifecycleService) {
				m.EXPECT().AbortExecution(mocky.Anything, execID).Return(workflow.Execution{}, cperrs.ErrExecutionNotRunning)
			},
			code: http.StatusConflict,
			expected: map[string]any{
				"error": "execution is not running",
			},
		},
		{
			name:   "backups",
			method: http.MethodGet,
			path:   "/backups",
			prep: func(m *mock.MockLifecycleService) {
				m.EXPECT().Backups(mocky.Anything).Return([]backup.Backup{}, nil)
			},
			code: http.StatusOK,
			expected: map[string]any{
				"backups": []any{},
			},
		},
		{
			name:   "info",
			method: http.MethodGet,
			path:   "/info",
			prep:   func(*mock.MockLifecycleService) {},
			code:   http.StatusOK,
			expected: map[string]any{
				"serverSize":  "small",
				"description": "1-5 players",
				"cpu":         float64(2048),
				"memory":      float64(4096),
				"cluster":     "mc",
				"bucket":      "backups",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				logger      = slog.New(slog.NewTextHandler(os.Stdout, nil))
				reg         = prometheus.NewRegistry()
				mockService = mock.NewMockLifecycleService(t)
				srv         = api.NewServer(logger, mockService, metrics.New(reg), reg, api.Info{
					ServerSize:  "small",
					Description: "1-5 players",
					CPU:         2048,
					Memory:      4096,
					Cluster:     "mc",
					Bucket:      "backups",
				})
			)

			tt.prep(mockService)

			rec := httptest.NewRecorder()
			srv.Router().ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			require.Equal(t, tt.code, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var actual map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &actual))
			require.Equal(t, tt.expected, actual)
		})
	}
}

func TestRequestsAreCounted(t *testing.T) {
	var (
		logger      = slog.New(slog.NewTextHandler(os.Stdout, nil))
		reg         = prometheus.NewRegistry()
		m           = metrics.New(reg)
		mockService = mock.NewMockLifecycleService(t)
		router      = api.NewServer(logger, mockService, m, reg, api.Info{}).Router()
	)

	mockService.EXPECT().Status(mocky.Anything).Return(lifecycle.ServerStatus{Status: "stopped"}, nil)

	for _, path := range []string{"/status", "/status", "/nope"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Equal(t, float64(2), testutil.ToFloat64(m.APIRequests.WithLabelValues("status", "200")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.APIRequests.WithLabelValues("invalid", "400")))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(
		rec.Body.String(),
		fmt.Sprintf(`ondemand_api_requests_total{action="status",code="%d"} 2`, http.StatusOK),
	))
}
