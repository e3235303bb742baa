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

package execution

import (
	"context"
	"fmt"
	"io"

	"github.com/spacechunks/ondemand/cli"
	"github.com/spacechunks/ondemand/controlplane/workflow"
	"github.com/spf13/cobra"
)

func NewCommand(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	run := func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return fmt.Errorf("execution id is missing")
		}

		e, err := cliCtx.Client.Execution(ctx, args[0])
		if err != nil {
			return fmt.Errorf("error while getting execution: %w", err)
		}

		printExecution(cmd.OutOrStdout(), e)
		return nil
	}

	cmd := &cobra.Command{
		Use:          "execution",
		Short:        "Shows the progress of a start or stop workflow",
		RunE:         run,
		SilenceUsage: true,
	}

	cmd.AddCommand(newAbortCommand(ctx, cliCtx))

	return cmd
}

func newAbortCommand(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	run := func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return fmt.Errorf("execution id is missing")
		}

		e, err := cliCtx.Client.AbortExecution(ctx, args[0])
		if err != nil {
			return fmt.Errorf("error while aborting execution: %w", err)
		}

		printExecution(cmd.OutOrStdout(), e)
		return nil
	}

	return &cobra.Command{
		Use:          "abort",
		Short:        "Aborts a running workflow after its current step",
		RunE:         run,
		SilenceUsage: true,
	}
}

// PrintState returns a function printing the current state of an
// execution, used to report progress while waiting.
func PrintState(w io.Writer) func(workflow.Execution) {
	return func(e workflow.Execution) {
		fmt.Fprintf(w, "%s: %s\n", e.Status, e.State)
	}
}

func printExecution(w io.Writer, e workflow.Execution) {
	section := cli.Section(w)
	section.AddRow("ID:", e.ID)
	section.AddRow("Workflow:", e.Workflow)
	section.AddRow("State:", e.State)
	section.AddRow("Status:", e.Status)
	section.AddRow("Started at:", cli.FmtTime(e.StartedAt))
	section.AddRow("Updated at:", cli.FmtTime(e.UpdatedAt))
	section.AddRow("Deadline:", cli.FmtTime(e.Deadline))
	if e.Error != "" {
		section.AddRow("Error:", e.Error)
	}
	section.Print()
}
