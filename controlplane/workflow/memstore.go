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
	"slices"
	"sync"
	"time"

	cperrs "github.com/spacechunks/ondemand/controlplane/errors"
)

// MemStore keeps executions in memory. it is meant for tests and
// single process setups where executions do not need to survive
// restarts.
type MemStore struct {
	data map[string]Execution
	mu   sync.Mutex
}

func NewMemStore() *MemStore {
	return &MemStore{
		data: make(map[string]Execution),
	}
}

func (s *MemStore) CreateExecution(_ context.Context, e Execution) (Execution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.Payload = slices.Clone(e.Payload)
	s.data[e.ID] = e

	return e, nil
}

func (s *MemStore) GetExecution(_ context.Context, id string) (Execution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return Execution{}, cperrs.ErrExecutionNotFound
	}

	e.Payload = slices.Clone(e.Payload)

	return e, nil
}

func (s *MemStore) UpdateExecution(_ context.Context, e Execution) (Execution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	curr, ok := s.data[e.ID]
	if !ok {
		return Execution{}, cperrs.ErrExecutionNotFound
	}

	if curr.Status.Terminal() {
		return Execution{}, cperrs.ErrExecutionNotRunning
	}

	curr.State = e.State
	curr.Cursor = e.Cursor
	curr.Status = e.Status
	curr.Payload = slices.Clone(e.Payload)
	curr.Error = e.Error
	curr.UpdatedAt = e.UpdatedAt

	s.data[e.ID] = curr

	return curr, nil
}

func (s *MemStore) AbortExecution(_ context.Context, id string) (Execution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	curr, ok := s.data[id]
	if !ok {
		return Execution{}, cperrs.ErrExecutionNotFound
	}

	if curr.Status.Terminal() {
		return Execution{}, cperrs.ErrExecutionNotRunning
	}

	curr.Status = StatusAborted
	curr.Error = "aborted"
	curr.UpdatedAt = time.Now().UTC()

	s.data[id] = curr

	return curr, nil
}
