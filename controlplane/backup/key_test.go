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

package backup_test

import (
	"testing"
	"time"

	"github.com/spacechunks/ondemand/controlplane/backup"
	"github.com/stretchr/testify/require"
)

func TestKeyRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		ts       time.Time
		expected string
	}{
		{
			name:     "microseconds are kept",
			ts:       time.Date(2024, 5, 17, 13, 4, 5, 123456000, time.UTC),
			expected: "backups/world-2024-05-17T13:04:05.123456Z.tar.gz",
		},
		{
			name:     "zero fraction is still written",
			ts:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: "backups/world-2024-01-01T00:00:00.000000Z.tar.gz",
		},
		{
			name:     "non utc time is converted",
			ts:       time.Date(2024, 1, 1, 2, 0, 0, 0, time.FixedZone("CEST", 2*60*60)),
			expected: "backups/world-2024-01-01T00:00:00.000000Z.tar.gz",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := backup.Key(tt.ts)
			require.Equal(t, tt.expected, key)

			parsed, err := backup.ParseKey(key)
			require.NoError(t, err)
			require.True(t, tt.ts.Equal(parsed))
			require.Equal(t, key, backup.Key(parsed))
		})
	}
}

func TestParseKeyInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{
			name: "wrong prefix",
			key:  "snapshots/world-2024-01-01T00:00:00.000000Z.tar.gz",
		},
		{
			name: "wrong suffix",
			key:  "backups/world-2024-01-01T00:00:00.000000Z.zip",
		},
		{
			name: "broken timestamp",
			key:  "backups/world-yesterday.tar.gz",
		},
		{
			name: "empty",
			key:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := backup.ParseKey(tt.key)
			require.ErrorIs(t, err, backup.ErrInvalidKey)
		})
	}
}
