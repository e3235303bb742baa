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

package worker_test

import (
	"context"
	"errors"
	"log/slog"
	"net/netip"
	"os"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/spacechunks/ondemand/controlplane/backup"
	cperrs "github.com/spacechunks/ondemand/controlplane/errors"
	"github.com/spacechunks/ondemand/controlplane/job"
	"github.com/spacechunks/ondemand/controlplane/worker"
	"github.com/spacechunks/ondemand/internal/mock"
	mocky "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPeriodicBackupWorker(t *testing.T) {
	addrErr := errors.New("describe tasks failed")

	tests := []struct {
		name  string
		tasks []string
		err   error
		prep  func(*mock.MockLifecycleTasks, *mock.MockLifecycleSnapshotter)
	}{
		{
			name:  "no running server",
			tasks: nil,
			prep:  func(*mock.MockLifecycleTasks, *mock.MockLifecycleSnapshotter) {},
		},
		{
			name:  "backs up first task at its address",
			tasks: []string{"task-1", "task-2"},
			prep: func(tasks *mock.MockLifecycleTasks, snap *mock.MockLifecycleSnapshotter) {
				tasks.EXPECT().
					TaskAddress(mocky.Anything, "task-1").
					Return(netip.MustParseAddr("203.0.113.10"), nil)
				tasks.EXPECT().Cluster().Return("cluster")
				snap.EXPECT().
					Snapshot(mocky.Anything, backup.Request{
						Cluster: "cluster",
						TaskID:  "task-1",
						Address: netip.MustParseAddr("203.0.113.10"),
					}).
					Return(backup.Result{Key: "backups/world-x.tar.gz"}, nil)
			},
		},
		{
			name:  "task without address",
			tasks: []string{"task-1"},
			prep: func(tasks *mock.MockLifecycleTasks, snap *mock.MockLifecycleSnapshotter) {
				tasks.EXPECT().
					TaskAddress(mocky.Anything, "task-1").
					Return(netip.Addr{}, cperrs.ErrNoAddressFound)
				tasks.EXPECT().Cluster().Return("cluster")
				snap.EXPECT().
					Snapshot(mocky.Anything, backup.Request{Cluster: "cluster", TaskID: "task-1"}).
					Return(backup.Result{Key: "backups/world-x.tar.gz"}, nil)
			},
		},
		{
			name:  "address lookup fails",
			tasks: []string{"task-1"},
			err:   addrErr,
			prep: func(tasks *mock.MockLifecycleTasks, _ *mock.MockLifecycleSnapshotter) {
				tasks.EXPECT().
					TaskAddress(mocky.Anything, "task-1").
					Return(netip.Addr{}, addrErr)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				logger    = slog.New(slog.NewTextHandler(os.Stdout, nil))
				mockTasks = mock.NewMockLifecycleTasks(t)
				mockSnap  = mock.NewMockLifecycleSnapshotter(t)
				w         = worker.NewPeriodicBackupWorker(logger, mockTasks, mockSnap)
			)

			mockTasks.EXPECT().RunningTasks(mocky.Anything).Return(tt.tasks, nil)
			tt.prep(mockTasks, mockSnap)

			err := w.Work(context.Background(), &river.Job[job.PeriodicBackup]{
				JobRow: &rivertype.JobRow{},
			})
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
		})
	}
}
