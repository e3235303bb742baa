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

package cmd

import (
	"context"

	"github.com/spacechunks/ondemand/cli"
	"github.com/spacechunks/ondemand/cli/cmd/backups"
	"github.com/spacechunks/ondemand/cli/cmd/execution"
	"github.com/spacechunks/ondemand/cli/cmd/info"
	"github.com/spacechunks/ondemand/cli/cmd/start"
	"github.com/spacechunks/ondemand/cli/cmd/status"
	"github.com/spacechunks/ondemand/cli/cmd/stop"
	"github.com/spacechunks/ondemand/cli/cmd/version"
	"github.com/spf13/cobra"
)

func Root(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	root := &cobra.Command{
		Use:   "ondemand-cli",
		Short: "Starts and stops the on-demand game server.",
	}

	root.AddCommand(
		start.NewCommand(ctx, cliCtx),
		stop.NewCommand(ctx, cliCtx),
		status.NewCommand(ctx, cliCtx),
		execution.NewCommand(ctx, cliCtx),
		backups.NewCommand(ctx, cliCtx),
		info.NewCommand(ctx, cliCtx),
		version.NewCommand(),
	)

	return root
}
