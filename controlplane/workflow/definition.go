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

package workflow

import (
	"context"
	"time"
)

// StepFunc receives the output of the previous step and returns the
// input of the next one.
type StepFunc[P any] func(ctx context.Context, in P) (P, error)

type Step[P any] struct {
	Name string
	Run  StepFunc[P]
}

// Definition is an ordered list of steps that are executed one after
// another. Terminal is the name of the state a successful execution
// ends in.
type Definition[P any] struct {
	Name     string
	Steps    []Step[P]
	Timeout  time.Duration
	Terminal string
}

// Wait returns a step that passes its input through after d elapsed.
func Wait[P any](name string, d time.Duration) Step[P] {
	return Step[P]{
		Name: name,
		Run: func(ctx context.Context, in P) (P, error) {
			t := time.NewTimer(d)
			defer t.Stop()

			select {
			case <-t.C:
				return in, nil
			case <-ctx.Done():
				return in, ctx.Err()
			}
		},
	}
}
