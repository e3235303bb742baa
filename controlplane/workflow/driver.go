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

package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	cperrs "github.com/spacechunks/ondemand/controlplane/errors"
	"github.com/spacechunks/ondemand/controlplane/events"
	"github.com/spacechunks/ondemand/controlplane/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var ErrWorkflowMismatch = errors.New("execution belongs to a different workflow")

// Driver runs executions of workflow definitions. it is safe to call
// Run multiple times for the same execution. the execution is resumed
// from the last checkpoint and terminal executions are never run again.
type Driver[P any] struct {
	logger    *slog.Logger
	repo      Repository
	publisher events.Publisher
	metrics   *metrics.Metrics
	tracer    trace.Tracer
	now       func() time.Time
}

func NewDriver[P any](
	logger *slog.Logger,
	repo Repository,
	publisher events.Publisher,
	m *metrics.Metrics,
) *Driver[P] {
	return &Driver[P]{
		logger:    logger.With("component", "workflow-driver"),
		repo:      repo,
		publisher: publisher,
		metrics:   m,
		tracer:    otel.Tracer("github.com/spacechunks/ondemand/controlplane/workflow"),
		now:       time.Now,
	}
}

// Run executes all remaining steps of the execution. the returned error
// is only non-nil if the execution could not make progress for reasons
// outside the workflow, like an unavailable database. failed, timed out
// or aborted executions are returned without error.
func (d *Driver[P]) Run(ctx context.Context, def Definition[P], id string) (Execution, error) {
	e, err := d.repo.GetExecution(ctx, id)
	if err != nil {
		return Execution{}, fmt.Errorf("get execution: %w", err)
	}

	if e.Workflow != def.Name {
		return Execution{}, fmt.Errorf("%w: %s != %s", ErrWorkflowMismatch, e.Workflow, def.Name)
	}

	if e.Status.Terminal() {
		d.logger.InfoContext(ctx, "execution already finished", "execution_id", id, "status", e.Status)
		return e, nil
	}

	in, err := Output[P](e)
	if err != nil {
		return Execution{}, err
	}

	ctx, span := d.tracer.Start(ctx, def.Name, trace.WithAttributes(
		attribute.String("execution_id", e.ID),
		attribute.Int("cursor", e.Cursor),
	))
	defer span.End()

	// the deadline is bound to the execution, not to this particular
	// run, so resuming an execution does not extend it.
	runCtx, cancel := context.WithDeadline(ctx, e.Deadline)
	defer cancel()

	for e.Cursor < len(def.Steps) {
		if !d.now().Before(e.Deadline) {
			return d.finish(ctx, e, StatusTimedOut, "execution timed out")
		}

		step := def.Steps[e.Cursor]

		out, err := d.runStep(runCtx, def.Name, e.ID, step, in)
		if err != nil {
			// the parent context is gone, we neither know whether the
			// step failed nor whether it succeeded. leave the execution
			// as is, so it can be resumed.
			if ctx.Err() != nil {
				return e, fmt.Errorf("run step %s: %w", step.Name, ctx.Err())
			}

			if runCtx.Err() != nil {
				return d.finish(ctx, e, StatusTimedOut, fmt.Sprintf("%s: %v", step.Name, err))
			}

			d.logger.ErrorContext(ctx,
				"workflow step failed",
				"execution_id", e.ID,
				"workflow", def.Name,
				"state", step.Name,
				"err", err,
			)

			return d.finish(ctx, e, StatusFailed, fmt.Sprintf("%s: %v", step.Name, err))
		}

		in = out

		payload, err := json.Marshal(out)
		if err != nil {
			return d.finish(ctx, e, StatusFailed, fmt.Sprintf("%s: marshal output: %v", step.Name, err))
		}

		e.Cursor++
		e.Payload = payload
		e.State = def.Terminal
		if e.Cursor < len(def.Steps) {
			e.State = def.Steps[e.Cursor].Name
		}

		if e.Cursor == len(def.Steps) {
			return d.finish(ctx, e, StatusSucceeded, "")
		}

		updated, err := d.checkpoint(ctx, e)
		if err != nil {
			return updated, err
		}

		if updated.Status.Terminal() {
			return updated, nil
		}

		e = updated
	}

	return d.finish(ctx, e, StatusSucceeded, "")
}

func (d *Driver[P]) runStep(ctx context.Context, workflow, id string, step Step[P], in P) (P, error) {
	ctx, span := d.tracer.Start(ctx, step.Name, trace.WithAttributes(
		attribute.String("execution_id", id),
		attribute.String("workflow", workflow),
	))
	defer span.End()

	d.logger.InfoContext(ctx, "running workflow step", "execution_id", id, "workflow", workflow, "state", step.Name)

	start := d.now()
	out, err := step.Run(ctx, in)
	d.metrics.StepDuration.WithLabelValues(workflow, step.Name).Observe(d.now().Sub(start).Seconds())

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return out, err
}

// checkpoint persists the progress of a running execution. if the
// execution has been aborted in the meantime, the stored execution
// is returned.
func (d *Driver[P]) checkpoint(ctx context.Context, e Execution) (Execution, error) {
	e.UpdatedAt = d.now().UTC()

	updated, err := d.repo.UpdateExecution(ctx, e)
	if err != nil {
		if errors.Is(err, cperrs.ErrExecutionNotRunning) {
			stored, getErr := d.repo.GetExecution(ctx, e.ID)
			if getErr != nil {
				return e, fmt.Errorf("get execution: %w", getErr)
			}
			d.logger.InfoContext(ctx, "execution stopped externally", "execution_id", e.ID, "status", stored.Status)
			return stored, nil
		}
		return e, fmt.Errorf("update execution: %w", err)
	}

	d.publish(ctx, updated)

	return updated, nil
}

func (d *Driver[P]) finish(ctx context.Context, e Execution, status Status, msg string) (Execution, error) {
	e.Status = status
	e.Error = msg

	updated, err := d.checkpoint(ctx, e)
	if err != nil {
		return updated, err
	}

	// only count executions this driver actually finished
	if updated.Status == status {
		d.metrics.Executions.WithLabelValues(e.Workflow, string(status)).Inc()
	}

	d.logger.InfoContext(ctx,
		"execution finished",
		"execution_id", updated.ID,
		"workflow", updated.Workflow,
		"status", updated.Status,
		"state", updated.State,
	)

	return updated, nil
}

func (d *Driver[P]) publish(ctx context.Context, e Execution) {
	if err := d.publisher.Publish(ctx, events.Event{
		ExecutionID: e.ID,
		Workflow:    e.Workflow,
		State:       e.State,
		Status:      string(e.Status),
		Time:        e.UpdatedAt,
		Error:       e.Error,
	}); err != nil {
		d.logger.WarnContext(ctx, "failed to publish event", "execution_id", e.ID, "err", err)
	}
}
