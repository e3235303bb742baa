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

package workflow_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	cperrs "github.com/spacechunks/ondemand/controlplane/errors"
	"github.com/spacechunks/ondemand/controlplane/events"
	"github.com/spacechunks/ondemand/controlplane/metrics"
	"github.com/spacechunks/ondemand/controlplane/workflow"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Trace []string `json:"trace"`
}

type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recorder) Publish(_ context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func traceStep(name string, calls *[]string) workflow.Step[payload] {
	return workflow.Step[payload]{
		Name: name,
		Run: func(_ context.Context, in payload) (payload, error) {
			*calls = append(*calls, name)
			in.Trace = append(in.Trace, name)
			return in, nil
		},
	}
}

func failingStep(name string, err error) workflow.Step[payload] {
	return workflow.Step[payload]{
		Name: name,
		Run: func(_ context.Context, in payload) (payload, error) {
			return in, err
		},
	}
}

func setup(t *testing.T, def workflow.Definition[payload]) (*workflow.Driver[payload], *workflow.MemStore, *recorder, string) {
	var (
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
		store  = workflow.NewMemStore()
		rec    = &recorder{}
		driver = workflow.NewDriver[payload](logger, store, rec, metrics.New(prometheus.NewRegistry()))
	)

	e, err := workflow.NewExecution(def, "exec-1", payload{}, time.Now())
	require.NoError(t, err)

	_, err = store.CreateExecution(context.Background(), e)
	require.NoError(t, err)

	return driver, store, rec, e.ID
}

func TestRunExecutesStepsInOrder(t *testing.T) {
	var (
		ctx   = context.Background()
		calls []string
		def   = workflow.Definition[payload]{
			Name:     "start",
			Timeout:  time.Minute,
			Terminal: "Done",
			Steps: []workflow.Step[payload]{
				traceStep("a", &calls),
				workflow.Wait[payload]("wait", 5*time.Millisecond),
				traceStep("b", &calls),
				traceStep("c", &calls),
			},
		}
	)

	driver, _, rec, id := setup(t, def)

	e, err := driver.Run(ctx, def, id)
	require.NoError(t, err)

	require.Equal(t, workflow.StatusSucceeded, e.Status)
	require.Equal(t, "Done", e.State)
	require.Equal(t, 4, e.Cursor)
	require.Equal(t, []string{"a", "b", "c"}, calls)

	out, err := workflow.Output[payload](e)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, out.Trace)

	// one event per checkpoint, the last one is the terminal one
	require.Len(t, rec.events, 4)
	require.Equal(t, "wait", rec.events[0].State)
	require.Equal(t, string(workflow.StatusSucceeded), rec.events[3].Status)
}

func TestRunStopsAtFailingStep(t *testing.T) {
	var (
		ctx     = context.Background()
		calls   []string
		stepErr = errors.New("boom")
		def     = workflow.Definition[payload]{
			Name:     "stop",
			Timeout:  time.Minute,
			Terminal: "Done",
			Steps: []workflow.Step[payload]{
				traceStep("a", &calls),
				failingStep("b", stepErr),
				traceStep("c", &calls),
			},
		}
	)

	driver, store, _, id := setup(t, def)

	e, err := driver.Run(ctx, def, id)
	require.NoError(t, err)

	require.Equal(t, workflow.StatusFailed, e.Status)
	require.Equal(t, "b", e.State)
	require.Equal(t, 1, e.Cursor)
	require.Contains(t, e.Error, "boom")
	require.Equal(t, []string{"a"}, calls)

	stored, err := store.GetExecution(ctx, id)
	require.NoError(t, err)
	require.Equal(t, workflow.StatusFailed, stored.Status)
}

func TestRunTimesOut(t *testing.T) {
	var (
		ctx   = context.Background()
		calls []string
		def   = workflow.Definition[payload]{
			Name:     "start",
			Timeout:  30 * time.Millisecond,
			Terminal: "Done",
			Steps: []workflow.Step[payload]{
				workflow.Wait[payload]("wait", time.Minute),
				traceStep("a", &calls),
			},
		}
	)

	driver, _, _, id := setup(t, def)

	e, err := driver.Run(ctx, def, id)
	require.NoError(t, err)

	require.Equal(t, workflow.StatusTimedOut, e.Status)
	require.Equal(t, "wait", e.State)
	require.Empty(t, calls)
}

func TestRunResumesFromCursor(t *testing.T) {
	var (
		ctx   = context.Background()
		calls []string
		def   = workflow.Definition[payload]{
			Name:     "start",
			Timeout:  time.Minute,
			Terminal: "Done",
			Steps: []workflow.Step[payload]{
				traceStep("a", &calls),
				traceStep("b", &calls),
				traceStep("c", &calls),
			},
		}
	)

	driver, store, _, id := setup(t, def)

	e, err := store.GetExecution(ctx, id)
	require.NoError(t, err)

	// simulate a previous run that crashed after the first checkpoint
	e.Cursor = 1
	e.State = "b"
	e.Payload = []byte(`{"trace":["a"]}`)

	_, err = store.UpdateExecution(ctx, e)
	require.NoError(t, err)

	e, err = driver.Run(ctx, def, id)
	require.NoError(t, err)

	require.Equal(t, workflow.StatusSucceeded, e.Status)
	require.Equal(t, []string{"b", "c"}, calls)

	out, err := workflow.Output[payload](e)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, out.Trace)
}

func TestRunStopsAbortedExecutionAtNextCheckpoint(t *testing.T) {
	var (
		ctx   = context.Background()
		calls []string
		store *workflow.MemStore
		def   workflow.Definition[payload]
	)

	def = workflow.Definition[payload]{
		Name:     "start",
		Timeout:  time.Minute,
		Terminal: "Done",
		Steps: []workflow.Step[payload]{
			{
				Name: "a",
				Run: func(ctx context.Context, in payload) (payload, error) {
					calls = append(calls, "a")
					_, err := store.AbortExecution(ctx, "exec-1")
					return in, err
				},
			},
			traceStep("b", &calls),
		},
	}

	driver, s, _, id := setup(t, def)
	store = s

	e, err := driver.Run(ctx, def, id)
	require.NoError(t, err)

	require.Equal(t, workflow.StatusAborted, e.Status)
	require.Equal(t, []string{"a"}, calls)
}

func TestRunDoesNotRerunTerminalExecutions(t *testing.T) {
	var (
		ctx   = context.Background()
		calls []string
		def   = workflow.Definition[payload]{
			Name:     "start",
			Timeout:  time.Minute,
			Terminal: "Done",
			Steps: []workflow.Step[payload]{
				traceStep("a", &calls),
			},
		}
	)

	driver, _, _, id := setup(t, def)

	_, err := driver.Run(ctx, def, id)
	require.NoError(t, err)

	e, err := driver.Run(ctx, def, id)
	require.NoError(t, err)

	require.Equal(t, workflow.StatusSucceeded, e.Status)
	require.Equal(t, []string{"a"}, calls)
}

func TestRunKeepsExecutionRunningIfContextIsCancelled(t *testing.T) {
	var (
		ctx, cancel = context.WithCancel(context.Background())
		def         = workflow.Definition[payload]{
			Name:     "start",
			Timeout:  time.Minute,
			Terminal: "Done",
			Steps: []workflow.Step[payload]{
				{
					Name: "a",
					Run: func(ctx context.Context, in payload) (payload, error) {
						cancel()
						<-ctx.Done()
						return in, ctx.Err()
					},
				},
			},
		}
	)

	driver, store, _, id := setup(t, def)

	_, err := driver.Run(ctx, def, id)
	require.ErrorIs(t, err, context.Canceled)

	e, err := store.GetExecution(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, workflow.StatusRunning, e.Status)
	require.Equal(t, 0, e.Cursor)
}

func TestRunRejectsOtherWorkflow(t *testing.T) {
	def := workflow.Definition[payload]{
		Name:     "start",
		Timeout:  time.Minute,
		Terminal: "Done",
		Steps:    []workflow.Step[payload]{failingStep("a", errors.New("unreachable"))},
	}

	driver, _, _, id := setup(t, def)

	def.Name = "stop"

	_, err := driver.Run(context.Background(), def, id)
	require.ErrorIs(t, err, workflow.ErrWorkflowMismatch)
}

func TestRunUnknownExecution(t *testing.T) {
	def := workflow.Definition[payload]{
		Name:     "start",
		Timeout:  time.Minute,
		Terminal: "Done",
		Steps:    []workflow.Step[payload]{failingStep("a", errors.New("unreachable"))},
	}

	driver, _, _, _ := setup(t, def)

	_, err := driver.Run(context.Background(), def, "missing")
	require.ErrorIs(t, err, cperrs.ErrExecutionNotFound)
}

func TestAbortTerminalExecution(t *testing.T) {
	var (
		ctx   = context.Background()
		calls []string
		def   = workflow.Definition[payload]{
			Name:     "start",
			Timeout:  time.Minute,
			Terminal: "Done",
			Steps:    []workflow.Step[payload]{traceStep("a", &calls)},
		}
	)

	driver, store, _, id := setup(t, def)

	_, err := driver.Run(ctx, def, id)
	require.NoError(t, err)

	_, err = store.AbortExecution(ctx, id)
	require.ErrorIs(t, err, cperrs.ErrExecutionNotRunning)
}
