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

package fake

import (
	"context"
	"fmt"
	"net/netip"
	"sync"

	"github.com/spacechunks/ondemand/controlplane/compute"
	cperrs "github.com/spacechunks/ondemand/controlplane/errors"
)

// Host is an in-memory compute host. scaling up immediately creates a
// running task, scaling down removes it.
type Host struct {
	mu      sync.Mutex
	desired int
	seq     int
	tasks   map[string]compute.TaskStatus
	addr    netip.Addr
	calls   []int
}

func NewHost(addr netip.Addr) *Host {
	return &Host{
		tasks: make(map[string]compute.TaskStatus),
		addr:  addr,
	}
}

func (h *Host) Cluster() string {
	return "fake-cluster"
}

func (h *Host) SetDesiredCount(_ context.Context, count int) error {
	if count != 0 && count != 1 {
		return cperrs.ErrInvalidDesiredCount
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.desired = count
	h.calls = append(h.calls, count)

	if count == 1 && len(h.running()) == 0 {
		h.seq++
		h.tasks[fmt.Sprintf("task-%d", h.seq)] = compute.TaskStatusRunning
	}

	if count == 0 {
		for id := range h.tasks {
			h.tasks[id] = compute.TaskStatusStopped
		}
	}

	return nil
}

func (h *Host) RunningTasks(context.Context) ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.running(), nil
}

func (h *Host) TaskStatus(_ context.Context, taskID string) (compute.TaskStatus, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	status, ok := h.tasks[taskID]
	if !ok {
		return compute.TaskStatusStopped, nil
	}
	return status, nil
}

func (h *Host) TaskAddress(_ context.Context, taskID string) (netip.Addr, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.tasks[taskID]; !ok || !h.addr.IsValid() {
		return netip.Addr{}, cperrs.ErrNoAddressFound
	}
	return h.addr, nil
}

// Desired returns the desired count last set.
func (h *Host) Desired() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.desired
}

// Calls returns all desired counts that have been set, in order.
func (h *Host) Calls() []int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]int(nil), h.calls...)
}

// SetTaskStatus overrides the status of a task.
func (h *Host) SetTaskStatus(taskID string, status compute.TaskStatus) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tasks[taskID] = status
}

func (h *Host) running() []string {
	ids := make([]string, 0)
	for id, status := range h.tasks {
		if status == compute.TaskStatusRunning || status == compute.TaskStatusPending {
			ids = append(ids, id)
		}
	}
	return ids
}
