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

package cli

import (
	"context"
	"fmt"

	"github.com/spacechunks/ondemand/controlplane/poll"
	"github.com/spacechunks/ondemand/controlplane/workflow"
)

// WaitForExecution polls the execution until it reached a terminal
// status and returns its last observed state.
func WaitForExecution(
	ctx context.Context,
	client *Client,
	id string,
	policy poll.Policy,
	onUpdate func(workflow.Execution),
) (workflow.Execution, error) {
	var (
		last      workflow.Execution
		lastState string
	)

	if err := poll.Until(ctx, policy, func(ctx context.Context) (bool, error) {
		e, err := client.Execution(ctx, id)
		if err != nil {
			return false, err
		}

		last = e

		if onUpdate != nil && e.State != lastState {
			onUpdate(e)
			lastState = e.State
		}

		return e.Status.Terminal(), nil
	}); err != nil {
		return last, fmt.Errorf("wait for execution: %w", err)
	}

	return last, nil
}
