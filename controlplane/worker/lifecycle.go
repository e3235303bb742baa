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

package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/riverqueue/river"
	cperrs "github.com/spacechunks/ondemand/controlplane/errors"
	"github.com/spacechunks/ondemand/controlplane/job"
	"github.com/spacechunks/ondemand/controlplane/lifecycle"
	"github.com/spacechunks/ondemand/controlplane/workflow"
)

type Runner interface {
	Run(ctx context.Context, def workflow.Definition[lifecycle.Payload], id string) (workflow.Execution, error)
}

type LifecycleWorkerConfig struct {
	// Grace is added to the timeout of the workflow, so the workflow
	// can record that it timed out before the job is cancelled.
	Grace time.Duration
}

type LifecycleWorker struct {
	river.WorkerDefaults[job.RunExecution]

	logger    *slog.Logger
	runner    Runner
	workflows lifecycle.Workflows
	cfg       LifecycleWorkerConfig
}

func NewLifecycleWorker(
	logger *slog.Logger,
	runner Runner,
	workflows lifecycle.Workflows,
	cfg LifecycleWorkerConfig,
) *LifecycleWorker {
	return &LifecycleWorker{
		logger:    logger.With("component", "lifecycle-worker"),
		runner:    runner,
		workflows: workflows,
		cfg:       cfg,
	}
}

func (w *LifecycleWorker) Work(ctx context.Context, riverJob *river.Job[job.RunExecution]) error {
	if err := riverJob.Args.Validate(); err != nil {
		return river.JobCancel(fmt.Errorf("validate args: %w", err))
	}

	def, err := w.workflows.Get(riverJob.Args.Workflow)
	if err != nil {
		return river.JobCancel(err)
	}

	e, err := w.runner.Run(ctx, def, riverJob.Args.ExecutionID)
	if err != nil {
		// retrying does not help here
		if errors.Is(err, cperrs.ErrExecutionNotFound) || errors.Is(err, workflow.ErrWorkflowMismatch) {
			return river.JobCancel(err)
		}

		w.logger.WarnContext(ctx,
			"execution interrupted, will be resumed",
			"execution_id", riverJob.Args.ExecutionID,
			"attempt", riverJob.Attempt,
			"err", err,
		)

		return fmt.Errorf("run execution: %w", err)
	}

	switch e.Status {
	case workflow.StatusFailed, workflow.StatusTimedOut:
		return river.JobCancel(fmt.Errorf("execution %s %s: %s", e.ID, e.Status, e.Error))
	default:
		return nil
	}
}

func (w *LifecycleWorker) Timeout(riverJob *river.Job[job.RunExecution]) time.Duration {
	def, err := w.workflows.Get(riverJob.Args.Workflow)
	if err != nil {
		return w.cfg.Grace
	}
	return def.Timeout + w.cfg.Grace
}
