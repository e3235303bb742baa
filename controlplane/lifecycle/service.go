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

package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/netip"
	"time"

	"github.com/google/uuid"
	"github.com/spacechunks/ondemand/controlplane/backup"
	cperrs "github.com/spacechunks/ondemand/controlplane/errors"
	"github.com/spacechunks/ondemand/controlplane/workflow"
)

type Repository interface {
	workflow.Repository

	// CreateExecution stores the execution and schedules it to be run.
	CreateExecution(ctx context.Context, e workflow.Execution) (workflow.Execution, error)

	// AbortExecution marks a running execution as aborted. returns
	// [cperrs.ErrExecutionNotRunning] if it already finished.
	AbortExecution(ctx context.Context, id string) (workflow.Execution, error)
}

// Tasks reports the task instances of the game server.
type Tasks interface {
	RunningTasks(ctx context.Context) ([]string, error)
	TaskAddress(ctx context.Context, taskID string) (netip.Addr, error)
	Cluster() string
}

// TaskAddress returns the public address of the task. a task without an
// address yields the zero [netip.Addr] and no error.
func TaskAddress(ctx context.Context, tasks Tasks, taskID string) (netip.Addr, error) {
	addr, err := tasks.TaskAddress(ctx, taskID)
	if errors.Is(err, cperrs.ErrNoAddressFound) {
		return netip.Addr{}, nil
	}
	if err != nil {
		return netip.Addr{}, fmt.Errorf("task address: %w", err)
	}
	return addr, nil
}

type BackupLister interface {
	List(ctx context.Context) ([]backup.Backup, error)
}

type ServerStatus struct {
	Status    string `json:"status"`
	TaskCount int    `json:"taskCount,omitempty"`
}

const (
	StatusStopped = "stopped"
	StatusRunning = "running"
)

type Service interface {
	StartServer(ctx context.Context) (workflow.Execution, error)
	StopServer(ctx context.Context) (workflow.Execution, error)
	Status(ctx context.Context) (ServerStatus, error)
	Execution(ctx context.Context, id string) (workflow.Execution, error)
	AbortExecution(ctx context.Context, id string) (workflow.Execution, error)
	Backups(ctx context.Context) ([]backup.Backup, error)
}

type svc struct {
	logger    *slog.Logger
	repo      Repository
	tasks     Tasks
	backups   BackupLister
	workflows Workflows
	now       func() time.Time
}

func NewService(
	logger *slog.Logger,
	repo Repository,
	tasks Tasks,
	backups BackupLister,
	workflows Workflows,
) Service {
	return &svc{
		logger:    logger.With("component", "lifecycle-service"),
		repo:      repo,
		tasks:     tasks,
		backups:   backups,
		workflows: workflows,
		now:       time.Now,
	}
}

func (s *svc) StartServer(ctx context.Context) (workflow.Execution, error) {
	e, err := s.createExecution(ctx, s.workflows.Start, Payload{
		Cluster: s.tasks.Cluster(),
	})
	if err != nil {
		return workflow.Execution{}, err
	}

	s.logger.InfoContext(ctx, "server starting", "execution_id", e.ID)

	return e, nil
}

// StopServer starts a stop execution for the first running task. if no
// task is running, nothing is started and [cperrs.ErrNoRunningServer]
// is returned.
func (s *svc) StopServer(ctx context.Context) (workflow.Execution, error) {
	tasks, err := s.tasks.RunningTasks(ctx)
	if err != nil {
		return workflow.Execution{}, fmt.Errorf("running tasks: %w", err)
	}

	if len(tasks) == 0 {
		return workflow.Execution{}, cperrs.ErrNoRunningServer
	}

	addr, err := TaskAddress(ctx, s.tasks, tasks[0])
	if err != nil {
		return workflow.Execution{}, err
	}

	in := Payload{
		Cluster: s.tasks.Cluster(),
		TaskArn: tasks[0],
	}

	// the backup step needs the address to reach the server console.
	if addr.IsValid() {
		in.PublicIP = addr.String()
	}

	e, err := s.createExecution(ctx, s.workflows.Stop, in)
	if err != nil {
		return workflow.Execution{}, err
	}

	s.logger.InfoContext(ctx, "server stopping", "execution_id", e.ID, "task_id", tasks[0], "address", in.PublicIP)

	return e, nil
}

func (s *svc) Status(ctx context.Context) (ServerStatus, error) {
	tasks, err := s.tasks.RunningTasks(ctx)
	if err != nil {
		return ServerStatus{}, fmt.Errorf("running tasks: %w", err)
	}

	if len(tasks) == 0 {
		return ServerStatus{Status: StatusStopped}, nil
	}

	return ServerStatus{
		Status:    StatusRunning,
		TaskCount: len(tasks),
	}, nil
}

func (s *svc) Execution(ctx context.Context, id string) (workflow.Execution, error) {
	if _, err := uuid.Parse(id); err != nil {
		return workflow.Execution{}, cperrs.ErrInvalidExecutionID
	}

	e, err := s.repo.GetExecution(ctx, id)
	if err != nil {
		return workflow.Execution{}, fmt.Errorf("get execution: %w", err)
	}

	return e, nil
}

func (s *svc) AbortExecution(ctx context.Context, id string) (workflow.Execution, error) {
	if _, err := uuid.Parse(id); err != nil {
		return workflow.Execution{}, cperrs.ErrInvalidExecutionID
	}

	e, err := s.repo.AbortExecution(ctx, id)
	if err != nil {
		return workflow.Execution{}, fmt.Errorf("abort execution: %w", err)
	}

	s.logger.InfoContext(ctx, "execution aborted", "execution_id", id, "workflow", e.Workflow, "state", e.State)

	return e, nil
}

func (s *svc) Backups(ctx context.Context) ([]backup.Backup, error) {
	backups, err := s.backups.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list backups: %w", err)
	}
	return backups, nil
}

func (s *svc) createExecution(
	ctx context.Context,
	def workflow.Definition[Payload],
	input Payload,
) (workflow.Execution, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return workflow.Execution{}, fmt.Errorf("generate id: %w", err)
	}

	e, err := workflow.NewExecution(def, id.String(), input, s.now())
	if err != nil {
		return workflow.Execution{}, fmt.Errorf("new execution: %w", err)
	}

	created, err := s.repo.CreateExecution(ctx, e)
	if err != nil {
		return workflow.Execution{}, fmt.Errorf("create execution: %w", err)
	}

	return created, nil
}
