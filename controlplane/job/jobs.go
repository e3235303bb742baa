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

package job

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/spacechunks/ondemand/controlplane/errors"
)

// QueueLifecycle is processed by a single worker, so there is never more
// than one job changing the state of the game server at the same time.
const QueueLifecycle = "lifecycle"

var (
	ErrInvalidExecutionID = errors.New("invalid execution id")
	ErrInvalidWorkflow    = errors.New("invalid workflow")
)

type RunExecution struct {
	ExecutionID string `json:"executionId"`
	Workflow    string `json:"workflow"`
}

func (RunExecution) Kind() string {
	return "run_execution"
}

func (RunExecution) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       QueueLifecycle,
		MaxAttempts: 5,
	}
}

func (r RunExecution) Validate() error {
	if _, err := uuid.Parse(r.ExecutionID); err != nil {
		return ErrInvalidExecutionID
	}

	if r.Workflow == "" {
		return ErrInvalidWorkflow
	}

	return nil
}

type PeriodicBackup struct{}

func (PeriodicBackup) Kind() string {
	return "periodic_backup"
}

func (PeriodicBackup) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       QueueLifecycle,
		MaxAttempts: 1,
	}
}
