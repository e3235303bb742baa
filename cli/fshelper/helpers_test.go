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

package fshelper_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spacechunks/ondemand/cli/fshelper"
	"github.com/stretchr/testify/require"
)

func TestConfigHome(t *testing.T) {
	tests := []struct {
		name string
		env  func(t *testing.T, dir string)
		rel  string
	}{
		{
			name: "xdg config home",
			env: func(t *testing.T, dir string) {
				t.Setenv("XDG_CONFIG_HOME", dir)
			},
			rel: "ondemand",
		},
		{
			name: "home directory",
			env: func(t *testing.T, dir string) {
				t.Setenv("XDG_CONFIG_HOME", "")
				t.Setenv("HOME", dir)
			},
			rel: filepath.Join(".config", "ondemand"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.env(t, dir)

			cfgHome, err := fshelper.ConfigHome()
			require.NoError(t, err)
			require.Equal(t, filepath.Join(dir, tt.rel), cfgHome)

			info, err := os.Stat(cfgHome)
			require.NoError(t, err)
			require.True(t, info.IsDir())
		})
	}
}
