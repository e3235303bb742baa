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

package info

import (
	"context"
	"fmt"

	"github.com/spacechunks/ondemand/cli"
	"github.com/spf13/cobra"
)

func NewCommand(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	run := func(cmd *cobra.Command, args []string) error {
		info, err := cliCtx.Client.Info(ctx)
		if err != nil {
			return fmt.Errorf("error while getting info: %w", err)
		}

		section := cli.Section(cmd.OutOrStdout())
		section.AddRow("Endpoint:", cliCtx.Config.Endpoint)
		section.AddRow("Size:", info.ServerSize)
		section.AddRow("Description:", info.Description)
		section.AddRow("CPU:", info.CPU)
		section.AddRow("Memory:", fmt.Sprintf("%d MiB", info.Memory))
		section.AddRow("Cluster:", info.Cluster)
		section.AddRow("Bucket:", info.Bucket)
		if info.DomainName != "" {
			section.AddRow("Domain:", info.DomainName)
		}
		section.Print()

		return nil
	}

	return &cobra.Command{
		Use:          "info",
		Short:        "Shows how the game server is deployed",
		RunE:         run,
		SilenceUsage: true,
	}
}
