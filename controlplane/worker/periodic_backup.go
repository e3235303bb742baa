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

package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/riverqueue/river"
	"github.com/spacechunks/ondemand/controlplane/backup"
	"github.com/spacechunks/ondemand/controlplane/job"
	"github.com/spacechunks/ondemand/controlplane/lifecycle"
)

// PeriodicBackupWorker backs up the world of the running server. if no
// server is running there is nothing to back up.
type PeriodicBackupWorker struct {
	river.WorkerDefaults[job.PeriodicBackup]

	logger      *slog.Logger
	tasks       lifecycle.Tasks
	snapshotter lifecycle.Snapshotter
}

func NewPeriodicBackupWorker(
	logger *slog.Logger,
	tasks lifecycle.Tasks,
	snapshotter lifecycle.Snapshotter,
) *PeriodicBackupWorker {
	return &PeriodicBackupWorker{
		logger:      logger.With("component", "periodic-backup-worker"),
		tasks:       tasks,
		snapshotter: snapshotter,
	}
}

func (w *PeriodicBackupWorker) Work(ctx context.Context, _ *river.Job[job.PeriodicBackup]) error {
	tasks, err := w.tasks.RunningTasks(ctx)
	if err != nil {
		return fmt.Errorf("running tasks: %w", err)
	}

	if len(tasks) == 0 {
		w.logger.DebugContext(ctx, "no running server, skipping backup")
		return nil
	}

	addr, err := lifecycle.TaskAddress(ctx, w.tasks, tasks[0])
	if err != nil {
		return err
	}

	res, err := w.snapshotter.Snapshot(ctx, backup.Request{
		Cluster: w.tasks.Cluster(),
		TaskID:  tasks[0],
		Address: addr,
	})
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	w.logger.InfoContext(ctx, "periodic backup done", "key", res.Key, "durable", res.Durable)

	return nil
}
