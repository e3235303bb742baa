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

package stop

import (
	"context"
	"fmt"
	"time"

	"github.com/spacechunks/ondemand/cli"
	"github.com/spacechunks/ondemand/cli/cmd/execution"
	"github.com/spacechunks/ondemand/controlplane/lifecycle"
	"github.com/spacechunks/ondemand/controlplane/poll"
	"github.com/spacechunks/ondemand/controlplane/workflow"
	"github.com/spf13/cobra"
)

func NewCommand(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	var (
		wait     bool
		interval time.Duration
		attempts uint
	)

	run := func(cmd *cobra.Command, args []string) error {
		resp, err := cliCtx.Client.Stop(ctx)
		if err != nil {
			return fmt.Errorf("error while stopping server: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (execution %s)\n", resp.Message, resp.ExecutionArn)

		if !wait {
			return nil
		}

		e, err := cli.WaitForExecution(ctx, cliCtx.Client, resp.ExecutionArn, poll.Policy{
			Interval:    interval,
			MaxAttempts: attempts,
		}, execution.PrintState(out))
		if err != nil {
			return err
		}

		if e.Status != workflow.StatusSucceeded {
			return fmt.Errorf("server did not stop: %s %s", e.Status, e.Error)
		}

		p, err := workflow.Output[lifecycle.Payload](e)
		if err != nil {
			return fmt.Errorf("read execution output: %w", err)
		}

		if p.Backup != nil {
			section := cli.Section(out)
			section.AddRow("Backup:", p.Backup.Key)
			section.AddRow("Durable:", p.Backup.Durable)
			section.Print()
		}

		return nil
	}

	cmd := &cobra.Command{
		Use:          "stop",
		Short:        "Backs up the world and stops the game server",
		RunE:         run,
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "wait until the server is stopped")
	cmd.Flags().DurationVar(&interval, "wait-interval", 5*time.Second, "time between two status checks")
	cmd.Flags().UintVar(&attempts, "wait-attempts", 150, "how often the status is checked before giving up")

	return cmd
}
