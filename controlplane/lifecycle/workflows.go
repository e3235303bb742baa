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

package lifecycle

import (
	"context"
	"fmt"
	"net/netip"
	"time"

	"github.com/spacechunks/ondemand/controlplane/backup"
	"github.com/spacechunks/ondemand/controlplane/dns"
	"github.com/spacechunks/ondemand/controlplane/workflow"
)

const (
	WorkflowStart = "start"
	WorkflowStop  = "stop"

	DefaultStartWait = 30 * time.Second
	DefaultTimeout   = 10 * time.Minute
)

// Payload is passed from step to step. every step adds its result.
type Payload struct {
	Cluster  string         `json:"cluster,omitempty"`
	TaskArn  string         `json:"taskArn,omitempty"`
	PublicIP string         `json:"publicIp,omitempty"`
	DNSInfo  *dns.Result    `json:"dnsInfo,omitempty"`
	Backup   *backup.Result `json:"backupInfo,omitempty"`
}

type Scaler interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

type Resolver interface {
	FindTask(ctx context.Context) (string, error)
	Resolve(ctx context.Context, taskID string) (netip.Addr, error)
}

type Snapshotter interface {
	Snapshot(ctx context.Context, req backup.Request) (backup.Result, error)
}

type NameUpdater interface {
	Update(ctx context.Context, addr netip.Addr) (dns.Result, error)
}

type WorkflowConfig struct {
	StartWait time.Duration
	Timeout   time.Duration
}

type Workflows struct {
	Start workflow.Definition[Payload]
	Stop  workflow.Definition[Payload]
}

func NewWorkflows(
	scaler Scaler,
	resolver Resolver,
	updater NameUpdater,
	snapshotter Snapshotter,
	cfg WorkflowConfig,
) Workflows {
	return Workflows{
		Start: StartDefinition(scaler, resolver, updater, cfg),
		Stop:  StopDefinition(scaler, snapshotter, cfg),
	}
}

// Get returns the definition with the given name.
func (w Workflows) Get(name string) (workflow.Definition[Payload], error) {
	switch name {
	case WorkflowStart:
		return w.Start, nil
	case WorkflowStop:
		return w.Stop, nil
	default:
		return workflow.Definition[Payload]{}, fmt.Errorf("unknown workflow %s", name)
	}
}

// StartDefinition scales the server up, waits for the task to come up,
// resolves its public address and points the domain to it.
func StartDefinition(
	scaler Scaler,
	resolver Resolver,
	updater NameUpdater,
	cfg WorkflowConfig,
) workflow.Definition[Payload] {
	return workflow.Definition[Payload]{
		Name:     WorkflowStart,
		Timeout:  cfg.Timeout,
		Terminal: "ServerReady",
		Steps: []workflow.Step[Payload]{
			{
				Name: "StartTask",
				Run: func(ctx context.Context, in Payload) (Payload, error) {
					return in, scaler.Start(ctx)
				},
			},
			workflow.Wait[Payload]("WaitForTask", cfg.StartWait),
			{
				Name: "GetIP",
				Run: func(ctx context.Context, in Payload) (Payload, error) {
					taskID := in.TaskArn
					if taskID == "" {
						id, err := resolver.FindTask(ctx)
						if err != nil {
							return in, fmt.Errorf("find task: %w", err)
						}
						taskID = id
					}

					addr, err := resolver.Resolve(ctx, taskID)
					if err != nil {
						return in, fmt.Errorf("resolve: %w", err)
					}

					in.TaskArn = taskID
					in.PublicIP = addr.String()

					return in, nil
				},
			},
			{
				Name: "UpdateDNS",
				Run: func(ctx context.Context, in Payload) (Payload, error) {
					// an unparsable address is treated as missing and
					// rejected by the updater.
					addr, _ := netip.ParseAddr(in.PublicIP)

					res, err := updater.Update(ctx, addr)
					if err != nil {
						return in, fmt.Errorf("update dns: %w", err)
					}

					in.DNSInfo = &res

					return in, nil
				},
			},
		},
	}
}

// StopDefinition backs up the world before scaling the server down.
// if the backup fails, the server keeps running.
func StopDefinition(scaler Scaler, snapshotter Snapshotter, cfg WorkflowConfig) workflow.Definition[Payload] {
	return workflow.Definition[Payload]{
		Name:     WorkflowStop,
		Timeout:  cfg.Timeout,
		Terminal: "ServerStopped",
		Steps: []workflow.Step[Payload]{
			{
				Name: "BackupWorld",
				Run: func(ctx context.Context, in Payload) (Payload, error) {
					addr, _ := netip.ParseAddr(in.PublicIP)

					res, err := snapshotter.Snapshot(ctx, backup.Request{
						Cluster: in.Cluster,
						TaskID:  in.TaskArn,
						Address: addr,
					})
					if err != nil {
						return in, fmt.Errorf("snapshot: %w", err)
					}

					in.Backup = &res

					return in, nil
				},
			},
			{
				Name: "StopTask",
				Run: func(ctx context.Context, in Payload) (Payload, error) {
					return in, scaler.Stop(ctx)
				},
			},
		},
	}
}
