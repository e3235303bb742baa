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
	"fmt"
	"time"
)

type Status string

const (
	StatusRunning   Status = "RUNNING"
	StatusSucceeded Status = "SUCCEEDED"
	StatusFailed    Status = "FAILED"
	StatusTimedOut  Status = "TIMED_OUT"
	StatusAborted   Status = "ABORTED"
)

// Terminal reports whether an execution with this status will never
// make progress again.
func (s Status) Terminal() bool {
	return s != StatusRunning
}

// Execution is a single run of a workflow definition. Cursor is the
// index of the next step to run, State its name. once all steps
// completed, State is the name of the terminal state.
type Execution struct {
	ID        string          `json:"executionArn"`
	Workflow  string          `json:"workflow"`
	State     string          `json:"state"`
	Cursor    int             `json:"cursor"`
	Status    Status          `json:"status"`
	Payload   json.RawMessage `json:"payload"`
	Error     string          `json:"error,omitempty"`
	StartedAt time.Time       `json:"startedAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Deadline  time.Time       `json:"deadline"`
}

type Repository interface {
	// GetExecution returns [errors.ErrExecutionNotFound] if there is
	// no execution with the given id.
	GetExecution(ctx context.Context, id string) (Execution, error)

	// UpdateExecution persists state, cursor, status, payload and error
	// of the execution, but only if the stored execution is still
	// running. otherwise [errors.ErrExecutionNotRunning] is returned.
	UpdateExecution(ctx context.Context, e Execution) (Execution, error)
}

// NewExecution creates the initial record of an execution of def.
func NewExecution[P any](def Definition[P], id string, input P, now time.Time) (Execution, error) {
	if len(def.Steps) == 0 {
		return Execution{}, fmt.Errorf("workflow %s has no steps", def.Name)
	}

	payload, err := json.Marshal(input)
	if err != nil {
		return Execution{}, fmt.Errorf("marshal input: %w", err)
	}

	now = now.UTC()

	return Execution{
		ID:        id,
		Workflow:  def.Name,
		State:     def.Steps[0].Name,
		Cursor:    0,
		Status:    StatusRunning,
		Payload:   payload,
		StartedAt: now,
		UpdatedAt: now,
		Deadline:  now.Add(def.Timeout),
	}, nil
}

// Output decodes the payload of the execution.
func Output[P any](e Execution) (P, error) {
	var p P
	if len(e.Payload) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(e.Payload, &p); err != nil {
		return p, fmt.Errorf("unmarshal payload: %w", err)
	}
	return p, nil
}
