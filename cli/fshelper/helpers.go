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

package fshelper

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const appDir = "ondemand"

// ConfigHome returns the directory the cli keeps its configuration in
// and creates it if it does not exist yet.
func ConfigHome() (string, error) {
	base, err := configBase()
	if err != nil {
		return "", err
	}

	cfgHome := filepath.Join(base, appDir)

	if err := os.MkdirAll(cfgHome, 0700); err != nil {
		return "", fmt.Errorf("failed to create config home directory %s: %w", cfgHome, err)
	}

	return cfgHome, nil
}

func configBase() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg, nil
	}

	if runtime.GOOS == "windows" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to get config dir: %w", err)
		}
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get users home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config"), nil
}
