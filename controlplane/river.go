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

package controlplane

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivertype"
	"github.com/riverqueue/rivercontrib/otelriver"
	"github.com/spacechunks/ondemand/controlplane/job"
	"github.com/spacechunks/ondemand/controlplane/lifecycle"
	"github.com/spacechunks/ondemand/controlplane/worker"
)

// jobTimeoutGrace is added on top of the workflow timeout, so the driver
// can record TIMED_OUT before river cancels the job context.
const jobTimeoutGrace = 30 * time.Second

// CreateRiverClient creates a river client with all workers registered.
// the lifecycle queue only has a single worker, so at most one workflow
// changes the desired count at any given time. if backupInterval is
// greater than zero, a periodic backup job is scheduled as well.
func CreateRiverClient(
	logger *slog.Logger,
	pool *pgxpool.Pool,
	runner worker.Runner,
	workflows lifecycle.Workflows,
	tasks lifecycle.Tasks,
	snapshotter lifecycle.Snapshotter,
	backupInterval time.Duration,
) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()

	if err := river.AddWorkerSafely(workers, worker.NewLifecycleWorker(
		logger,
		runner,
		workflows,
		worker.LifecycleWorkerConfig{Grace: jobTimeoutGrace},
	)); err != nil {
		return nil, fmt.Errorf("add lifecycle worker: %w", err)
	}

	if err := river.AddWorkerSafely(workers, worker.NewPeriodicBackupWorker(logger, tasks, snapshotter)); err != nil {
		return nil, fmt.Errorf("add periodic backup worker: %w", err)
	}

	var periodic []*river.PeriodicJob
	if backupInterval > 0 {
		periodic = append(periodic, river.NewPeriodicJob(
			river.PeriodicInterval(backupInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return job.PeriodicBackup{}, nil
			},
			nil,
		))
	}

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Logger: logger.With("component", "river"),
		Queues: map[string]river.QueueConfig{
			job.QueueLifecycle: {MaxWorkers: 1},
		},
		Workers:      workers,
		PeriodicJobs: periodic,
		Middleware: []rivertype.Middleware{
			otelriver.NewMiddleware(nil),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create river client: %w", err)
	}

	return riverClient, nil
}
