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
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spacechunks/ondemand/controlplane/backup"
	"github.com/spacechunks/ondemand/test/fixture"
	"github.com/stretchr/testify/require"
)

func TestS3StorePutAndList(t *testing.T) {
	var (
		ctx      = context.Background()
		endpoint = fixture.RunFakeS3(t)
		store    = backup.NewS3Store(fixture.BackupBucket, fixture.NewS3Client(endpoint))
		key      = backup.Key(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
		data     = []byte("some world data")
	)

	exists, err := store.ObjectExists(ctx, key)
	require.NoError(t, err)
	require.False(t, exists)

	err = store.Put(ctx, key, bytes.NewReader(data), map[string]string{"xxh3": "abc"})
	require.NoError(t, err)

	exists, err = store.ObjectExists(ctx, key)
	require.NoError(t, err)
	require.True(t, exists)

	objs, err := store.List(ctx, backup.KeyPrefix)
	require.NoError(t, err)
	require.Len(t, objs, 1)
	require.Equal(t, key, objs[0].Key)
	require.Equal(t, int64(len(data)), objs[0].Size)

	objs, err = store.List(ctx, "other/")
	require.NoError(t, err)
	require.Empty(t, objs)
}

func TestS3StoreApplyRetention(t *testing.T) {
	var (
		ctx    = context.Background()
		method string
		query  string
		body   []byte
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		query = r.URL.RawQuery
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	store := backup.NewS3Store(fixture.BackupBucket, fixture.NewS3Client(srv.URL))

	err := store.ApplyRetention(ctx, backup.DefaultRetention)
	require.NoError(t, err)

	require.Equal(t, http.MethodPut, method)
	require.Contains(t, query, "lifecycle")
	require.Contains(t, string(body), "<ID>KeepLatestBackups</ID>")
	require.Contains(t, string(body), "<Prefix>backups/</Prefix>")
	require.Contains(t, string(body), "<Days>7</Days>")
	require.Contains(t, string(body), "<NoncurrentDays>1</NoncurrentDays>")
}
