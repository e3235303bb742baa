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
	"log/slog"
	"net/netip"
	"strconv"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
	"github.com/pkg/errors"
	cperrs "github.com/spacechunks/ondemand/controlplane/errors"
)

var ErrServerNotFound = errors.New("hetzner server not found")

// HCloudServerClient contains the subset of [hcloud.ServerClient] that
// is needed to control a single server.
type HCloudServerClient interface {
	GetByName(ctx context.Context, name string) (*hcloud.Server, *hcloud.Response, error)
	Poweron(ctx context.Context, server *hcloud.Server) (*hcloud.Action, *hcloud.Response, error)
	Shutdown(ctx context.Context, server *hcloud.Server) (*hcloud.Action, *hcloud.Response, error)
}

// HetznerHost runs the game server on a dedicated Hetzner Cloud server
// that is powered on and off. the server id is used as task id.
type HetznerHost struct {
	logger *slog.Logger
	client HCloudServerClient
	name   string
}

func NewHetznerHost(logger *slog.Logger, client HCloudServerClient, serverName string) *HetznerHost {
	return &HetznerHost{
		logger: logger.With("component", "hetzner-host"),
		client: client,
		name:   serverName,
	}
}

func (h *HetznerHost) Cluster() string {
	return h.name
}

func (h *HetznerHost) SetDesiredCount(ctx context.Context, count int) error {
	if count != 0 && count != 1 {
		return cperrs.ErrInvalidDesiredCount
	}

	srv, err := h.server(ctx)
	if err != nil {
		return err
	}

	switch {
	case count == 1 && srv.Status != hcloud.ServerStatusRunning && srv.Status != hcloud.ServerStatusStarting:
		if _, _, err := h.client.Poweron(ctx, srv); err != nil {
			return errors.Wrap(err, "poweron")
		}
	case count == 0 && srv.Status != hcloud.ServerStatusOff && srv.Status != hcloud.ServerStatusStopping:
		if _, _, err := h.client.Shutdown(ctx, srv); err != nil {
			return errors.Wrap(err, "shutdown")
		}
	default:
		h.logger.DebugContext(ctx, "server already in desired state", "status", srv.Status, "desired_count", count)
	}

	return nil
}

func (h *HetznerHost) RunningTasks(ctx context.Context) ([]string, error) {
	srv, err := h.server(ctx)
	if err != nil {
		return nil, err
	}

	if srv.Status != hcloud.ServerStatusRunning && srv.Status != hcloud.ServerStatusStarting {
		return nil, nil
	}

	return []string{strconv.FormatInt(srv.ID, 10)}, nil
}

func (h *HetznerHost) TaskStatus(ctx context.Context, taskID string) (TaskStatus, error) {
	srv, err := h.task(ctx, taskID)
	if err != nil {
		return TaskStatusUnknown, err
	}

	switch srv.Status {
	case hcloud.ServerStatusRunning:
		return TaskStatusRunning, nil
	case hcloud.ServerStatusInitializing, hcloud.ServerStatusStarting:
		return TaskStatusPending, nil
	case hcloud.ServerStatusOff, hcloud.ServerStatusStopping, hcloud.ServerStatusDeleting:
		return TaskStatusStopped, nil
	default:
		return TaskStatusUnknown, nil
	}
}

func (h *HetznerHost) TaskAddress(ctx context.Context, taskID string) (netip.Addr, error) {
	srv, err := h.task(ctx, taskID)
	if err != nil {
		return netip.Addr{}, err
	}

	if srv.PublicNet.IPv4.IP == nil {
		return netip.Addr{}, cperrs.ErrNoAddressFound
	}

	addr, ok := netip.AddrFromSlice(srv.PublicNet.IPv4.IP)
	if !ok {
		return netip.Addr{}, cperrs.ErrNoAddressFound
	}

	return addr.Unmap(), nil
}

func (h *HetznerHost) server(ctx context.Context) (*hcloud.Server, error) {
	srv, _, err := h.client.GetByName(ctx, h.name)
	if err != nil {
		return nil, errors.Wrap(err, "get server")
	}

	if srv == nil {
		return nil, errors.Wrap(ErrServerNotFound, h.name)
	}

	return srv, nil
}

// task returns the configured server, but makes sure it is the task
// the caller is asking for. if the server has been recreated in the
// meantime the id changes and the old task is treated as gone.
func (h *HetznerHost) task(ctx context.Context, taskID string) (*hcloud.Server, error) {
	srv, err := h.server(ctx)
	if err != nil {
		return nil, err
	}

	if strconv.FormatInt(srv.ID, 10) != taskID {
		return &hcloud.Server{Status: hcloud.ServerStatusOff}, nil
	}

	return srv, nil
}
