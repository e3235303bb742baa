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

package worker_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	cperrs "github.com/spacechunks/ondemand/controlplane/errors"
	"github.com/spacechunks/ondemand/controlplane/job"
	"github.com/spacechunks/ondemand/controlplane/lifecycle"
	"github.com/spacechunks/ondemand/controlplane/worker"
	"github.com/spacechunks/ondemand/controlplane/workflow"
	"github.com/spacechunks/ondemand/internal/mock"
	"github.com/spacechunks/ondemand/test"
	mocky "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLifecycleWorker(t *testing.T) {
	infraErr := errors.New("connection refused")

	tests := []struct {
		name     string
		workflow string
		status   workflow.Status
		runErr   error
		cancel   bool
		err      error
	}{
		{
			name:     "succeeded",
			workflow: lifecycle.WorkflowStart,
			status:   workflow.StatusSucceeded,
		},
		{
			name:     "aborted",
			workflow: lifecycle.WorkflowStop,
			status:   workflow.StatusAborted,
		},
		{
			name:     "failed executions are not retried",
			workflow: lifecycle.WorkflowStop,
			status:   workflow.StatusFailed,
			cancel:   true,
		},
		{
			name:     "timed out executions are not retried",
			workflow: lifecycle.WorkflowStart,
			status:   workflow.StatusTimedOut,
			cancel:   true,
		},
		{
			name:     "infrastructure errors are retried",
			workflow: lifecycle.WorkflowStart,
			runErr:   infraErr,
			err:      infraErr,
		},
		{
			name:     "missing execution",
			workflow: lifecycle.WorkflowStart,
			runErr:   cperrs.ErrExecutionNotFound,
			cancel:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				ctx        = context.Background()
				logger     = slog.New(slog.NewTextHandler(os.Stdout, nil))
				mockRunner = mock.NewMockWorkerRunner(t)
				workflows  = lifecycle.Workflows{
					Start: workflow.Definition[lifecycle.Payload]{Name: lifecycle.WorkflowStart, Timeout: time.Minute},
					Stop:  workflow.Definition[lifecycle.Payload]{Name: lifecycle.WorkflowStop, Timeout: 2 * time.Minute},
				}
				id = test.NewUUIDv7(t)
				w  = worker.NewLifecycleWorker(logger, mockRunner, workflows, worker.LifecycleWorkerConfig{
					Grace: 30 * time.Second,
				})
			)

			mockRunner.EXPECT().
				Run(mocky.Anything, mocky.MatchedBy(func(def workflow.Definition[lifecycle.Payload]) bool {
					return def.Name == tt.workflow
				}), id).
				Return(workflow.Execution{ID: id, Status: tt.status}, tt.runErr)

			riverJob := &river.Job[job.RunExecution]{
				JobRow: &rivertype.JobRow{
					Attempt:     1,
					MaxAttempts: 5,
				},
				Args: job.RunExecution{
					ExecutionID: id,
					Workflow:    tt.workflow,
				},
			}

			err := w.Work(ctx, riverJob)

			if tt.cancel {
				var cancelErr *rivertype.JobCancelError
				require.ErrorAs(t, err, &cancelErr)
				return
			}

			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestLifecycleWorkerCancelsInvalidJobs(t *testing.T) {
	var (
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
		w      = worker.NewLifecycleWorker(logger, mock.NewMockWorkerRunner(t), lifecycle.Workflows{}, worker.LifecycleWorkerConfig{})
	)

	for _, args := range []job.RunExecution{
		{ExecutionID: "nope", Workflow: lifecycle.WorkflowStart},
		{ExecutionID: test.NewUUIDv7(t), Workflow: "restart"},
	} {
		err := w.Work(context.Background(), &river.Job[job.RunExecution]{
			JobRow: &rivertype.JobRow{},
			Args:   args,
		})

		var cancelErr *rivertype.JobCancelError
		require.ErrorAs(t, err, &cancelErr)
	}
}

func TestLifecycleWorkerTimeout(t *testing.T) {
	var (
		logger    = slog.New(slog.NewTextHandler(os.Stdout, nil))
		workflows = lifecycle.Workflows{
			Start: workflow.Definition[lifecycle.Payload]{Name: lifecycle.WorkflowStart, Timeout: 10 * time.Minute},
			Stop:  workflow.Definition[lifecycle.Payload]{Name: lifecycle.WorkflowStop, Timeout: 5 * time.Minute},
		}
		w = worker.NewLifecycleWorker(logger, mock.NewMockWorkerRunner(t), workflows, worker.LifecycleWorkerConfig{
			Grace: time.Minute,
		})
	)

	require.Equal(t, 11*time.Minute, w.Timeout(&river.Job[job.RunExecution]{
		Args: job.RunExecution{Workflow: lifecycle.WorkflowStart},
	}))
	require.Equal(t, 6*time.Minute, w.Timeout(&river.Job[job.RunExecution]{
		Args: job.RunExecution{Workflow: lifecycle.WorkflowStop},
	}))
}
