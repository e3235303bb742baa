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

package poll_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spacechunks/ondemand/controlplane/poll"
	"github.com/stretchr/testify/require"
)

func TestUntil(t *testing.T) {
	errCheck := errors.New("check failed")

	tests := []struct {
		name          string
		policy        poll.Policy
		readyAfter    int
		checkErr      error
		err           error
		expectedCalls int
	}{
		{
			name:          "ready immediately",
			policy:        poll.Policy{Interval: time.Millisecond, MaxAttempts: 5},
			readyAfter:    1,
			expectedCalls: 1,
		},
		{
			name:          "ready on last attempt",
			policy:        poll.Policy{Interval: time.Millisecond, MaxAttempts: 3},
			readyAfter:    3,
			expectedCalls: 3,
		},
		{
			name:          "never ready",
			policy:        poll.Policy{Interval: time.Millisecond, MaxAttempts: 4},
			readyAfter:    -1,
			err:           poll.ErrBudgetExhausted,
			expectedCalls: 4,
		},
		{
			name:          "check error stops polling",
			policy:        poll.Policy{Interval: time.Millisecond, MaxAttempts: 4},
			readyAfter:    -1,
			checkErr:      errCheck,
			err:           errCheck,
			expectedCalls: 1,
		},
		{
			name:   "invalid policy",
			policy: poll.Policy{Interval: time.Millisecond},
			err:    poll.ErrInvalidPolicy,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := poll.Until(context.Background(), tt.policy, func(context.Context) (bool, error) {
				calls++
				if tt.checkErr != nil {
					return false, tt.checkErr
				}
				return calls == tt.readyAfter, nil
			})

			require.Equal(t, tt.expectedCalls, calls)

			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestUntilNeverBlocksIndefinitely(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := poll.Until(ctx, poll.Policy{Interval: time.Hour, MaxAttempts: 10}, func(context.Context) (bool, error) {
		return false, nil
	})

	require.Error(t, err)
	require.Less(t, time.Since(start), 5*time.Second)
}
