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
	"net/netip"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	cperrs "github.com/spacechunks/ondemand/controlplane/errors"
	"github.com/spacechunks/ondemand/internal/ptr"
)

// attachmentDetailENI is the name of the attachment detail that
// contains the id of the elastic network interface of an awsvpc task.
const attachmentDetailENI = "networkInterfaceId"

type ECSAPI interface {
	UpdateService(ctx context.Context, in *ecs.UpdateServiceInput, opts ...func(*ecs.Options)) (*ecs.UpdateServiceOutput, error)
	ListTasks(ctx context.Context, in *ecs.ListTasksInput, opts ...func(*ecs.Options)) (*ecs.ListTasksOutput, error)
	DescribeTasks(ctx context.Context, in *ecs.DescribeTasksInput, opts ...func(*ecs.Options)) (*ecs.DescribeTasksOutput, error) //nolint:lll
}

type EC2API interface {
	DescribeNetworkInterfaces(
		ctx context.Context,
		in *ec2.DescribeNetworkInterfacesInput,
		opts ...func(*ec2.Options),
	) (*ec2.DescribeNetworkInterfacesOutput, error)
}

// ECSHost runs the game server as a single task of an ECS service.
type ECSHost struct {
	logger  *slog.Logger
	ecs     ECSAPI
	ec2     EC2API
	cluster string
	service string
}

func NewECSHost(logger *slog.Logger, ecsClient ECSAPI, ec2Client EC2API, cluster, service string) *ECSHost {
	return &ECSHost{
		logger:  logger.With("component", "ecs-host"),
		ecs:     ecsClient,
		ec2:     ec2Client,
		cluster: cluster,
		service: service,
	}
}

func (h *ECSHost) Cluster() string {
	return h.cluster
}

func (h *ECSHost) SetDesiredCount(ctx context.Context, count int) error {
	if count != 0 && count != 1 {
		return cperrs.ErrInvalidDesiredCount
	}

	if _, err := h.ecs.UpdateService(ctx, &ecs.UpdateServiceInput{
		Cluster:      &h.cluster,
		Service:      &h.service,
		DesiredCount: ptr.Pointer(int32(count)),
	}); err != nil {
		return fmt.Errorf("update service: %w", err)
	}

	return nil
}

func (h *ECSHost) RunningTasks(ctx context.Context) ([]string, error) {
	out, err := h.ecs.ListTasks(ctx, &ecs.ListTasksInput{
		Cluster:       &h.cluster,
		ServiceName:   &h.service,
		DesiredStatus: ecstypes.DesiredStatusRunning,
	})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return out.TaskArns, nil
}

func (h *ECSHost) TaskStatus(ctx context.Context, taskID string) (TaskStatus, error) {
	task, err := h.describeTask(ctx, taskID)
	if err != nil {
		return TaskStatusUnknown, err
	}

	// describe tasks is eventually consistent, a task that was just
	// listed can still be reported as missing.
	if task == nil {
		return TaskStatusUnknown, nil
	}

	switch ptr.Deref(task.LastStatus) {
	case "PROVISIONING", "PENDING", "ACTIVATING":
		return TaskStatusPending, nil
	case "RUNNING":
		return TaskStatusRunning, nil
	case "DEACTIVATING", "STOPPING", "DEPROVISIONING", "STOPPED", "DELETED":
		return TaskStatusStopped, nil
	default:
		return TaskStatusUnknown, nil
	}
}

func (h *ECSHost) TaskAddress(ctx context.Context, taskID string) (netip.Addr, error) {
	task, err := h.describeTask(ctx, taskID)
	if err != nil {
		return netip.Addr{}, err
	}

	if task == nil {
		return netip.Addr{}, cperrs.ErrNoAddressFound
	}

	eniID := ""
	for _, a := range task.Attachments {
		for _, d := range a.Details {
			if ptr.Deref(d.Name) == attachmentDetailENI {
				eniID = ptr.Deref(d.Value)
				break
			}
		}
	}

	if eniID == "" {
		return netip.Addr{}, cperrs.ErrNoAddressFound
	}

	out, err := h.ec2.DescribeNetworkInterfaces(ctx, &ec2.DescribeNetworkInterfacesInput{
		NetworkInterfaceIds: []string{eniID},
	})
	if err != nil {
		return netip.Addr{}, fmt.Errorf("describe network interfaces: %w", err)
	}

	if len(out.NetworkInterfaces) == 0 || out.NetworkInterfaces[0].Association == nil {
		return netip.Addr{}, cperrs.ErrNoAddressFound
	}

	ip := ptr.Deref(out.NetworkInterfaces[0].Association.PublicIp)
	if ip == "" {
		return netip.Addr{}, cperrs.ErrNoAddressFound
	}

	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("parse public ip: %w", err)
	}

	return addr, nil
}

// describeTask returns nil if the task could not be found.
func (h *ECSHost) describeTask(ctx context.Context, taskID string) (*ecstypes.Task, error) {
	out, err := h.ecs.DescribeTasks(ctx, &ecs.DescribeTasksInput{
		Cluster: &h.cluster,
		Tasks:   []string{taskID},
	})
	if err != nil {
		return nil, fmt.Errorf("describe tasks: %w", err)
	}

	for _, f := range out.Failures {
		h.logger.WarnContext(ctx,
			"describe tasks failure",
			"task_id", taskID,
			"reason", ptr.Deref(f.Reason),
		)
	}

	if len(out.Tasks) == 0 {
		return nil, nil
	}

	return &out.Tasks[0], nil
}
