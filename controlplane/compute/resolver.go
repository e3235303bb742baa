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

package compute

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/netip"

	cperrs "github.com/spacechunks/ondemand/controlplane/errors"
	"github.com/spacechunks/ondemand/controlplane/poll"
)

var errTaskStopped = errors.New("task stopped")

// Resolver waits for task instances to come up and reads their
// public address.
type Resolver struct {
	logger *slog.Logger
	host   Host
	policy poll.Policy
}

func NewResolver(logger *slog.Logger, host Host, policy poll.Policy) *Resolver {
	return &Resolver{
		logger: logger.With("component", "resolver"),
		host:   host,
		policy: policy,
	}
}

// FindTask waits until the host reports a task that is desired to be
// running and returns its id. if there are multiple, the first one is
// returned.
func (r *Resolver) FindTask(ctx context.Context) (string, error) {
	var taskID string
	if err := poll.Until(ctx, r.policy, func(ctx context.Context) (bool, error) {
		tasks, err := r.host.RunningTasks(ctx)
		if err != nil {
			return false, fmt.Errorf("running tasks: %w", err)
		}
		if len(tasks) == 0 {
			return false, nil
		}
		taskID = tasks[0]
		return true, nil
	}); err != nil {
		if errors.Is(err, poll.ErrBudgetExhausted) {
			return "", cperrs.ErrNoTaskFound
		}
		return "", err
	}
	return taskID, nil
}

// Resolve blocks until the task reached the running state, then returns
// the public address of its network interface. fails with
// [cperrs.ErrTaskNotRunning] if the task did not become ready within
// the polling budget or stopped while waiting.
func (r *Resolver) Resolve(ctx context.Context, taskID string) (netip.Addr, error) {
	if err := poll.Until(ctx, r.policy, func(ctx context.Context) (bool, error) {
		status, err := r.host.TaskStatus(ctx, taskID)
		if err != nil {
			return false, fmt.Errorf("task status: %w", err)
		}

		r.logger.DebugContext(ctx, "task status", "task_id", taskID, "status", status)

		if status == TaskStatusStopped {
			return false, errTaskStopped
		}

		return status == TaskStatusRunning, nil
	}); err != nil {
		if errors.Is(err, poll.ErrBudgetExhausted) || errors.Is(err, errTaskStopped) {
			return netip.Addr{}, fmt.Errorf("%w: %w", cperrs.ErrTaskNotRunning, err)
		}
		return netip.Addr{}, err
	}

	addr, err := r.host.TaskAddress(ctx, taskID)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("task address: %w", err)
	}

	if !addr.IsValid() {
		return netip.Addr{}, cperrs.ErrNoAddressFound
	}

	r.logger.InfoContext(ctx, "resolved task address", "task_id", taskID, "address", addr.String())

	return addr, nil
}
