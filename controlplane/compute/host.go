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
	"net/netip"
)

// Host is the platform running the game server. it never runs more than
// one task instance, which is why the desired count is either 0 or 1.
type Host interface {
	// SetDesiredCount records the desired number of running task instances.
	// the transition itself happens asynchronously on the platform.
	SetDesiredCount(ctx context.Context, count int) error

	// RunningTasks returns the ids of all task instances that are
	// desired to be running.
	RunningTasks(ctx context.Context) ([]string, error)

	TaskStatus(ctx context.Context, taskID string) (TaskStatus, error)

	// TaskAddress returns the public address of the network interface
	// attached to the task. returns [errors.ErrNoAddressFound] if the
	// task has no interface or the interface has no public address.
	TaskAddress(ctx context.Context, taskID string) (netip.Addr, error)

	Cluster() string
}

type TaskStatus string

const (
	TaskStatusPending TaskStatus = "PENDING"
	TaskStatusRunning TaskStatus = "RUNNING"
	TaskStatusStopped TaskStatus = "STOPPED"
	TaskStatusUnknown TaskStatus = "UNKNOWN"
)

type Provider string

const (
	ProviderECS     Provider = "ecs"
	ProviderHetzner Provider = "hetzner"
)
