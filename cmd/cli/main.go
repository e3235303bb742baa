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

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spacechunks/ondemand/cli"
	clicmd "github.com/spacechunks/ondemand/cli/cmd"
	"github.com/spacechunks/ondemand/cli/fshelper"
)

func main() {
	cfg, err := createOrReadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	if endpoint := os.Getenv("ONDEMAND_ENDPOINT"); endpoint != "" {
		cfg.Endpoint = endpoint
	}

	var (
		ctx    = context.Background()
		cliCtx = cli.Context{
			Config: cfg,
			Client: cli.NewClient(cfg.Endpoint, &http.Client{
				Timeout: 30 * time.Second,
			}),
		}
	)

	if err := clicmd.Root(ctx, cliCtx).Execute(); err != nil {
		os.Exit(1)
	}
}

func createOrReadConfig() (cli.Config, error) {
	cfgHome, err := fshelper.ConfigHome()
	if err != nil {
		return cli.Config{}, fmt.Errorf("determine config directory: %w", err)
	}

	cfgPath := filepath.Join(cfgHome, "config.yaml")

	cfg, err := cli.ReadYAMLFile[cli.Config](cfgPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := cli.WriteYAMLFile(cli.DefaultConfig, cfgPath); err != nil {
				return cli.Config{}, fmt.Errorf("write default config: %w", err)
			}
			cfg = cli.DefaultConfig
		} else {
			return cli.Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return cfg, nil
}
