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

package compute_test

import (
	"context"
	"errors"
	"log/slog"
	"net/netip"
	"os"
	"testing"
	"time"

	"github.com/spacechunks/ondemand/controlplane/compute"
	cperrs "github.com/spacechunks/ondemand/controlplane/errors"
	"github.com/spacechunks/ondemand/controlplane/poll"
	"github.com/spacechunks/ondemand/internal/mock"
	mocky "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testPolicy = poll.Policy{
	Interval:    time.Millisecond,
	MaxAttempts: 3,
}

func TestResolve(t *testing.T) {
	var (
		addr    = netip.MustParseAddr("198.51.100.7")
		hostErr = errors.New("throttled")
	)

	tests := []struct {
		name     string
		prep     func(*mock.MockComputeHost)
		expected netip.Addr
		err      error
	}{
		{
			name: "running after pending",
			prep: func(m *mock.MockComputeHost) {
				m.EXPECT().TaskStatus(mocky.Anything, "task").Return(compute.TaskStatusPending, nil).Twice()
				m.EXPECT().TaskStatus(mocky.Anything, "task").Return(compute.TaskStatusRunning, nil).Once()
				m.EXPECT().TaskAddress(mocky.Anything, "task").Return(addr, nil)
			},
			expected: addr,
		},
		{
			name: "never running",
			prep: func(m *mock.MockComputeHost) {
				m.EXPECT().TaskStatus(mocky.Anything, "task").Return(compute.TaskStatusPending, nil).Times(3)
			},
			err: cperrs.ErrTaskNotRunning,
		},
		{
			name: "stopped",
			prep: func(m *mock.MockComputeHost) {
				m.EXPECT().TaskStatus(mocky.Anything, "task").Return(compute.TaskStatusStopped, nil).Once()
			},
			err: cperrs.ErrTaskNotRunning,
		},
		{
			name: "no address",
			prep: func(m *mock.MockComputeHost) {
				m.EXPECT().TaskStatus(mocky.Anything, "task").Return(compute.TaskStatusRunning, nil)
				m.EXPECT().TaskAddress(mocky.Anything, "task").Return(netip.Addr{}, cperrs.ErrNoAddressFound)
			},
			err: cperrs.ErrNoAddressFound,
		},
		{
			name: "host error",
			prep: func(m *mock.MockComputeHost) {
				m.EXPECT().TaskStatus(mocky.Anything, "task").Return(compute.TaskStatusUnknown, hostErr).Once()
			},
			err: hostErr,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				logger   = slog.New(slog.NewTextHandler(os.Stdout, nil))
				mockHost = mock.NewMockComputeHost(t)
				resolver = compute.NewResolver(logger, mockHost, testPolicy)
			)

			tt.prep(mockHost)

			actual, err := resolver.Resolve(context.Background(), "task")
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, actual)
		})
	}
}

func TestFindTask(t *testing.T) {
	tests := []struct {
		name     string
		prep     func(*mock.MockComputeHost)
		expected string
		err      error
	}{
		{
			name: "task shows up",
			prep: func(m *mock.MockComputeHost) {
				m.EXPECT().RunningTasks(mocky.Anything).Return(nil, nil).Once()
				m.EXPECT().RunningTasks(mocky.Anything).Return([]string{"a", "b"}, nil).Once()
			},
			expected: "a",
		},
		{
			name: "no task",
			prep: func(m *mock.MockComputeHost) {
				m.EXPECT().RunningTasks(mocky.Anything).Return(nil, nil).Times(3)
			},
			err: cperrs.ErrNoTaskFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				logger   = slog.New(slog.NewTextHandler(os.Stdout, nil))
				mockHost = mock.NewMockComputeHost(t)
				resolver = compute.NewResolver(logger, mockHost, testPolicy)
			)

			tt.prep(mockHost)

			actual, err := resolver.FindTask(context.Background())
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, actual)
		})
	}
}
