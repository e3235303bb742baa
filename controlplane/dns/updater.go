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

package dns

import (
	"context"
	"fmt"
	"log/slog"
	"net/netip"

	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	cperrs "github.com/spacechunks/ondemand/controlplane/errors"
	"github.com/spacechunks/ondemand/internal/ptr"
)

const recordTTL = 60

type Route53API interface {
	ChangeResourceRecordSets(
		ctx context.Context,
		in *route53.ChangeResourceRecordSetsInput,
		opts ...func(*route53.Options),
	) (*route53.ChangeResourceRecordSetsOutput, error)
}

type Result struct {
	Message  string `json:"message,omitempty"`
	ChangeID string `json:"changeId,omitempty"`
}

type Config struct {
	Enabled      bool
	HostedZoneID string
	DomainName   string
}

// Updater points the configured domain name at the address of
// the game server.
type Updater struct {
	logger *slog.Logger
	client Route53API
	cfg    Config
}

func NewUpdater(logger *slog.Logger, client Route53API, cfg Config) *Updater {
	return &Updater{
		logger: logger.With("component", "dns-updater"),
		client: client,
		cfg:    cfg,
	}
}

// Update upserts the A record of the domain. nothing is changed if name
// resolution updates are disabled. a zero addr results in
// [cperrs.ErrNoIPProvided].
func (u *Updater) Update(ctx context.Context, addr netip.Addr) (Result, error) {
	if !u.cfg.Enabled {
		return Result{Message: "Route53 disabled"}, nil
	}

	if !addr.IsValid() || addr.IsUnspecified() {
		return Result{}, cperrs.ErrNoIPProvided
	}

	out, err := u.client.ChangeResourceRecordSets(ctx, &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: &u.cfg.HostedZoneID,
		ChangeBatch: &types.ChangeBatch{
			Changes: []types.Change{
				{
					Action: types.ChangeActionUpsert,
					ResourceRecordSet: &types.ResourceRecordSet{
						Name: &u.cfg.DomainName,
						Type: types.RRTypeA,
						TTL:  ptr.Pointer(int64(recordTTL)),
						ResourceRecords: []types.ResourceRecord{
							{
								Value: ptr.Pointer(addr.String()),
							},
						},
					},
				},
			},
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("change resource record sets: %w", err)
	}

	changeID := ""
	if out.ChangeInfo != nil {
		changeID = ptr.Deref(out.ChangeInfo.Id)
	}

	u.logger.InfoContext(ctx,
		"dns record updated",
		"domain", u.cfg.DomainName,
		"address", addr.String(),
		"change_id", changeID,
	)

	return Result{ChangeID: changeID}, nil
}
