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

package file_test

import (
	"io"
	"strings"
	"testing"

	"github.com/spacechunks/ondemand/internal/file"
	"github.com/stretchr/testify/require"
)

func TestComputeHashStrRewinds(t *testing.T) {
	r := strings.NewReader("some world data")

	h1, err := file.ComputeHashStr(r)
	require.NoError(t, err)
	require.NotEmpty(t, h1)

	// reader must be usable again after hashing
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "some world data", string(data))

	h2, err := file.ComputeHashStr(strings.NewReader("some world data"))
	require.NoError(t, err)
	require.Equal(t, h1, h2)

	h3, err := file.ComputeHashStr(strings.NewReader("other world data"))
	require.NoError(t, err)
	require.NotEqual(t, h1, h3)
}
