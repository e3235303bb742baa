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

package compute

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	cperrs "github.com/spacechunks/ondemand/controlplane/errors"
	"github.com/spacechunks/ondemand/controlplane/metrics"
)

// Scaler controls the desired count of the compute host. all transitions
// go through a single lock, so the desired count always reflects the last
// completed call to either Start or Stop.
type Scaler struct {
	logger  *slog.Logger
	host    Host
	metrics *metrics.Metrics

	mu      sync.Mutex
	desired int
}

func NewScaler(logger *slog.Logger, host Host, m *metrics.Metrics) *Scaler {
	return &Scaler{
		logger:  logger.With("component", "scaler"),
		host:    host,
		metrics: m,
		desired: -1,
	}
}

// Start sets the desired count to 1. calling it while the server is
// already running has no additional effect.
func (s *Scaler) Start(ctx context.Context) error {
	return s.scale(ctx, 1)
}

// Stop sets the desired count to 0. calling it while the server is
// already stopped has no additional effect.
func (s *Scaler) Stop(ctx context.Context) error {
	return s.scale(ctx, 0)
}

// Desired returns the desired count that was last applied successfully
// by this scaler, or -1 if no call succeeded yet.
func (s *Scaler) Desired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.desired
}

func (s *Scaler) scale(ctx context.Context, count int) error {
	if count != 0 && count != 1 {
		return cperrs.ErrInvalidDesiredCount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.host.SetDesiredCount(ctx, count); err != nil {
		return fmt.Errorf("set desired count: %w", err)
	}

	s.desired = count
	s.metrics.DesiredCount.Set(float64(count))
	s.logger.InfoContext(ctx, "desired count updated", "cluster", s.host.Cluster(), "desired_count", count)

	return nil
}
