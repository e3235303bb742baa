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

// Package poll implements waiting for a condition with a fixed budget of
// attempts. It is used wherever we have to wait for an external system,
// like the compute host, to reach a certain state.
package poll

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
)

var (
	ErrBudgetExhausted = errors.New("poll: budget exhausted")
	ErrInvalidPolicy   = errors.New("poll: max attempts must be greater than zero")

	errNotReady = errors.New("poll: not ready")
)

// DefaultPolicy waits up to two minutes, checking every six seconds.
var DefaultPolicy = Policy{
	Interval:    6 * time.Second,
	MaxAttempts: 20,
}

// Policy describes how often a condition is checked and how long to
// wait between two checks.
type Policy struct {
	Interval    time.Duration
	MaxAttempts uint
}

// CheckFunc reports whether the awaited condition holds. returning an
// error aborts polling immediately.
type CheckFunc func(ctx context.Context) (bool, error)

// Until calls check until it reports true, at most policy.MaxAttempts times,
// waiting policy.Interval between calls. the first check happens immediately.
// returns [ErrBudgetExhausted] if the condition did not hold after the last
// attempt, the error returned by check or the error of ctx.
func Until(ctx context.Context, policy Policy, check CheckFunc) error {
	if policy.MaxAttempts == 0 {
		return ErrInvalidPolicy
	}

	op := func() (struct{}, error) {
		done, err := check(ctx)
		if err != nil {
			return struct{}{}, backoff.Permanent(err)
		}
		if !done {
			return struct{}{}, errNotReady
		}
		return struct{}{}, nil
	}

	_, err := backoff.Retry(
		ctx,
		op,
		backoff.WithBackOff(backoff.NewConstantBackOff(policy.Interval)),
		backoff.WithMaxTries(policy.MaxAttempts),
		// the number of attempts is what bounds the wait, so make sure
		// the default elapsed time limit never kicks in first.
		backoff.WithMaxElapsedTime(policy.Interval*time.Duration(policy.MaxAttempts)+time.Minute),
	)
	if err == nil {
		return nil
	}

	if errors.Is(err, errNotReady) {
		// prefer the context error, if the context was the reason we stopped.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrBudgetExhausted
	}

	return err
}
