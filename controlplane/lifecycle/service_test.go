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

package lifecycle_test

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/netip"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spacechunks/ondemand/controlplane/backup"
	"github.com/spacechunks/ondemand/controlplane/compute"
	"github.com/spacechunks/ondemand/controlplane/dns"
	cperrs "github.com/spacechunks/ondemand/controlplane/errors"
	"github.com/spacechunks/ondemand/controlplane/events"
	"github.com/spacechunks/ondemand/controlplane/lifecycle"
	"github.com/spacechunks/ondemand/controlplane/metrics"
	"github.com/spacechunks/ondemand/controlplane/poll"
	"github.com/spacechunks/ondemand/controlplane/workflow"
	"github.com/spacechunks/ondemand/internal/mock"
	"github.com/spacechunks/ondemand/test"
	"github.com/spacechunks/ondemand/test/fake"
	mocky "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type env struct {
	host      *fake.Host
	store     *workflow.MemStore
	svc       lifecycle.Service
	driver    *workflow.Driver[lifecycle.Payload]
	workflows lifecycle.Workflows
	backups   *mock.MockLifecycleBackupLister
}

func newEnv(t *testing.T, snapshotter lifecycle.Snapshotter) env {
	var (
		logger   = slog.New(slog.NewTextHandler(os.Stdout, nil))
		m        = metrics.New(prometheus.NewRegistry())
		host     = fake.NewHost(netip.MustParseAddr("203.0.113.10"))
		store    = workflow.NewMemStore()
		scaler   = compute.NewScaler(logger, host, m)
		resolver = compute.NewResolver(logger, host, poll.Policy{
			Interval:    time.Millisecond,
			MaxAttempts: 5,
		})
		updater     = dns.NewUpdater(logger, nil, dns.Config{})
		mockBackups = mock.NewMockLifecycleBackupLister(t)
	)

	if snapshotter == nil {
		snapshotter = backup.NewService(logger, nil, backup.DialRCON, m, backup.Config{})
	}

	workflows := lifecycle.NewWorkflows(scaler, resolver, updater, snapshotter, lifecycle.WorkflowConfig{
		StartWait: time.Millisecond,
		Timeout:   time.Minute,
	})

	return env{
		host:      host,
		store:     store,
		svc:       lifecycle.NewService(logger, store, host, mockBackups, workflows),
		driver:    workflow.NewDriver[lifecycle.Payload](logger, store, events.NewNoopPublisher(), m),
		workflows: workflows,
		backups:   mockBackups,
	}
}

func (e env) run(t *testing.T, exec workflow.Execution) workflow.Execution {
	def, err := e.workflows.Get(exec.Workflow)
	require.NoError(t, err)

	ret, err := e.driver.Run(context.Background(), def, exec.ID)
	require.NoError(t, err)

	return ret
}

func TestStartServer(t *testing.T) {
	var (
		ctx = context.Background()
		e   = newEnv(t, nil)
	)

	exec, err := e.svc.StartServer(ctx)
	require.NoError(t, err)

	require.Equal(t, lifecycle.WorkflowStart, exec.Workflow)
	require.Equal(t, workflow.StatusRunning, exec.Status)
	require.Equal(t, "StartTask", exec.State)
	require.Equal(t, time.Minute, exec.Deadline.Sub(exec.StartedAt))

	// nothing happens until the execution is run
	require.Empty(t, e.host.Calls())

	exec = e.run(t, exec)

	require.Equal(t, workflow.StatusSucceeded, exec.Status)
	require.Equal(t, "ServerReady", exec.State)
	require.Equal(t, 1, e.host.Desired())

	out, err := workflow.Output[lifecycle.Payload](exec)
	require.NoError(t, err)
	require.Equal(t, "fake-cluster", out.Cluster)
	require.Equal(t, "task-1", out.TaskArn)
	require.Equal(t, "203.0.113.10", out.PublicIP)
	require.Equal(t, &dns.Result{Message: "Route53 disabled"}, out.DNSInfo)
}

func TestStopServerWithoutRunningServer(t *testing.T) {
	var (
		ctx = context.Background()
		e   = newEnv(t, mock.NewMockLifecycleSnapshotter(t))
	)

	_, err := e.svc.StopServer(ctx)
	require.ErrorIs(t, err, cperrs.ErrNoRunningServer)

	// no execution was created, so nothing was invoked
	require.Empty(t, e.host.Calls())
}

func TestStopServer(t *testing.T) {
	var (
		ctx = context.Background()
		e   = newEnv(t, nil)
	)

	require.Equal(t, workflow.StatusSucceeded, e.run(t, mustStart(t, e)).Status)

	exec, err := e.svc.StopServer(ctx)
	require.NoError(t, err)

	in, err := workflow.Output[lifecycle.Payload](exec)
	require.NoError(t, err)
	require.Equal(t, lifecycle.Payload{
		Cluster:  "fake-cluster",
		TaskArn:  "task-1",
		PublicIP: "203.0.113.10",
	}, in)

	exec = e.run(t, exec)

	require.Equal(t, workflow.StatusSucceeded, exec.Status)
	require.Equal(t, "ServerStopped", exec.State)
	require.Equal(t, 0, e.host.Desired())

	out, err := workflow.Output[lifecycle.Payload](exec)
	require.NoError(t, err)
	require.NotNil(t, out.Backup)
	require.False(t, out.Backup.Durable)

	status, err := e.svc.Status(ctx)
	require.NoError(t, err)
	require.Equal(t, lifecycle.ServerStatus{Status: lifecycle.StatusStopped}, status)
}

func TestFailedBackupNeverScalesDown(t *testing.T) {
	var (
		ctx             = context.Background()
		mockSnapshotter = mock.NewMockLifecycleSnapshotter(t)
		e               = newEnv(t, mockSnapshotter)
		snapErr         = errors.New("bucket unavailable")
	)

	require.Equal(t, workflow.StatusSucceeded, e.run(t, mustStart(t, e)).Status)

	mockSnapshotter.EXPECT().
		Snapshot(mocky.Anything, mocky.Anything).
		Return(backup.Result{}, snapErr)

	exec, err := e.svc.StopServer(ctx)
	require.NoError(t, err)

	exec = e.run(t, exec)

	require.Equal(t, workflow.StatusFailed, exec.Status)
	require.Equal(t, "BackupWorld", exec.State)
	require.Contains(t, exec.Error, snapErr.Error())

	// scale down was never reached
	require.Equal(t, []int{1}, e.host.Calls())
	require.Equal(t, 1, e.host.Desired())

	status, err := e.svc.Status(ctx)
	require.NoError(t, err)
	require.Equal(t, lifecycle.ServerStatus{Status: lifecycle.StatusRunning, TaskCount: 1}, status)
}

func TestStopServerBacksUpAtTaskAddress(t *testing.T) {
	var (
		ctx             = context.Background()
		mockSnapshotter = mock.NewMockLifecycleSnapshotter(t)
		e               = newEnv(t, mockSnapshotter)
	)

	require.Equal(t, workflow.StatusSucceeded, e.run(t, mustStart(t, e)).Status)

	mockSnapshotter.EXPECT().
		Snapshot(mocky.Anything, backup.Request{
			Cluster: "fake-cluster",
			TaskID:  "task-1",
			Address: netip.MustParseAddr("203.0.113.10"),
		}).
		Return(backup.Result{Key: "backups/world-x.tar.gz", Durable: true}, nil)

	exec, err := e.svc.StopServer(ctx)
	require.NoError(t, err)

	exec = e.run(t, exec)
	require.Equal(t, workflow.StatusSucceeded, exec.Status)
	require.Equal(t, 0, e.host.Desired())
}

func TestTaskAddress(t *testing.T) {
	lookupErr := errors.New("describe tasks failed")

	tests := []struct {
		name     string
		addr     netip.Addr
		err      error
		expected netip.Addr
		wantErr  error
	}{
		{
			name:     "address found",
			addr:     netip.MustParseAddr("203.0.113.10"),
			expected: netip.MustParseAddr("203.0.113.10"),
		},
		{
			name: "no address is not an error",
			err:  cperrs.ErrNoAddressFound,
		},
		{
			name:    "lookup fails",
			err:     lookupErr,
			wantErr: lookupErr,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTasks := mock.NewMockLifecycleTasks(t)
			mockTasks.EXPECT().TaskAddress(mocky.Anything, "task-1").Return(tt.addr, tt.err)

			addr, err := lifecycle.TaskAddress(context.Background(), mockTasks, "task-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, addr)
		})
	}
}

func TestStartFailsIfTaskStops(t *testing.T) {
	var (
		ctx = context.Background()
		e   = newEnv(t, nil)
	)

	exec, err := e.svc.StartServer(ctx)
	require.NoError(t, err)

	// the task crashes right after it has been created
	def := e.workflows.Start
	def.Steps = append([]workflow.Step[lifecycle.Payload]{}, def.Steps...)
	def.Steps[1] = workflow.Step[lifecycle.Payload]{
		Name: "WaitForTask",
		Run: func(_ context.Context, in lifecycle.Payload) (lifecycle.Payload, error) {
			e.host.SetTaskStatus("task-1", compute.TaskStatusStopped)
			return in, nil
		},
	}

	exec, err = e.driver.Run(ctx, def, exec.ID)
	require.NoError(t, err)

	require.Equal(t, workflow.StatusFailed, exec.Status)
	require.Equal(t, "GetIP", exec.State)
}

// whatever sequence of start and stop operations is executed, the
// desired count always settles to the value of the last operation.
func TestDesiredCountSettlesToLastOperation(t *testing.T) {
	var (
		ctx = context.Background()
		r   = rand.New(rand.NewPCG(1, 2))
	)

	for i := 0; i < 20; i++ {
		var (
			e    = newEnv(t, nil)
			last = -1
			n    = 1 + r.IntN(8)
		)

		for range n {
			if r.IntN(2) == 0 {
				e.run(t, mustStart(t, e))
				last = 1
				continue
			}

			exec, err := e.svc.StopServer(ctx)
			if errors.Is(err, cperrs.ErrNoRunningServer) {
				continue
			}
			require.NoError(t, err)

			e.run(t, exec)
			last = 0
		}

		if last == -1 {
			require.Empty(t, e.host.Calls())
			continue
		}

		require.Equal(t, last, e.host.Desired())
	}
}

func TestExecution(t *testing.T) {
	var (
		ctx = context.Background()
		e   = newEnv(t, nil)
	)

	_, err := e.svc.Execution(ctx, "not-a-uuid")
	require.ErrorIs(t, err, cperrs.ErrInvalidExecutionID)

	_, err = e.svc.Execution(ctx, test.NewUUIDv7(t))
	require.ErrorIs(t, err, cperrs.ErrExecutionNotFound)

	exec := mustStart(t, e)

	got, err := e.svc.Execution(ctx, exec.ID)
	require.NoError(t, err)
	require.Equal(t, exec.ID, got.ID)
}

func TestAbortExecution(t *testing.T) {
	var (
		ctx = context.Background()
		e   = newEnv(t, nil)
	)

	exec := mustStart(t, e)

	aborted, err := e.svc.AbortExecution(ctx, exec.ID)
	require.NoError(t, err)
	require.Equal(t, workflow.StatusAborted, aborted.Status)

	// aborted executions are never run
	exec = e.run(t, exec)
	require.Equal(t, workflow.StatusAborted, exec.Status)
	require.Empty(t, e.host.Calls())

	_, err = e.svc.AbortExecution(ctx, exec.ID)
	require.ErrorIs(t, err, cperrs.ErrExecutionNotRunning)
}

func mustStart(t *testing.T, e env) workflow.Execution {
	exec, err := e.svc.StartServer(context.Background())
	require.NoError(t, err)
	return exec
}

func TestBackups(t *testing.T) {
	var (
		ctx      = context.Background()
		e        = newEnv(t, nil)
		ts       = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		expected = []backup.Backup{
			{Key: backup.Key(ts), Timestamp: ts, Size: 42},
		}
	)

	e.backups.EXPECT().List(mocky.Anything).Return(expected, nil)

	backups, err := e.svc.Backups(ctx)
	require.NoError(t, err)
	require.Equal(t, expected, backups)
}
