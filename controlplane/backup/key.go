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

package backup

import (
	"fmt"
	"strings"
	"time"

	cperrs "github.com/spacechunks/ondemand/controlplane/errors"
)

const (
	KeyPrefix = "backups/"

	keyName   = KeyPrefix + "world-"
	keySuffix = ".tar.gz"

	// utc, always with microsecond precision, so every key has the same
	// length and keys sort lexicographically by time.
	timestampLayout = "2006-01-02T15:04:05.000000Z"
)

var ErrInvalidKey = cperrs.ErrInvalidBackupKey

// Key returns the object key of a backup taken at t.
func Key(t time.Time) string {
	return keyName + t.UTC().Format(timestampLayout) + keySuffix
}

// ParseKey returns the timestamp encoded in a backup key.
func ParseKey(key string) (time.Time, error) {
	if !strings.HasPrefix(key, keyName) || !strings.HasSuffix(key, keySuffix) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}

	ts := strings.TrimSuffix(strings.TrimPrefix(key, keyName), keySuffix)

	t, err := time.Parse(timestampLayout, ts)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	return t, nil
}
