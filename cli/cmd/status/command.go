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

package status

import (
	"context"
	"fmt"

	"github.com/spacechunks/ondemand/cli"
	"github.com/spf13/cobra"
)

func NewCommand(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	run := func(cmd *cobra.Command, args []string) error {
		status, err := cliCtx.Client.Status(ctx)
		if err != nil {
			return fmt.Errorf("error while getting status: %w", err)
		}

		section := cli.Section(cmd.OutOrStdout())
		section.AddRow("Status:", status.Status)
		section.AddRow("Task count:", status.TaskCount)
		section.Print()

		return nil
	}

	return &cobra.Command{
		Use:          "status",
		Short:        "Shows whether the game server is running",
		RunE:         run,
		SilenceUsage: true,
	}
}
