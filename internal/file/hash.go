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

// Package file contains helpers for working with file contents.
package file

import (
	"fmt"
	"io"

	"github.com/zeebo/xxh3"
)

// ComputeHashStr computes a xxh3 hash from the given io.ReadSeeker and
// rewinds it afterward, so it can be read again. this is designed to be
// used with large amounts of data like world archives.
func ComputeHashStr(r io.ReadSeeker) (string, error) {
	// in case we have a large file, we don't want to read the whole thing into memory.
	hasher := xxh3.New()
	if _, err := io.Copy(hasher, r); err != nil {
		return "", fmt.Errorf("copy: %w", err)
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("seek: %w", err)
	}

	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}
