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

package controlplane

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/spacechunks/ondemand/controlplane/compute"
)

type ServerSize struct {
	Name        string
	CPU         int
	Memory      int
	Description string
}

// ServerSizes are the resources allocated to the game server task.
// cpu is in cpu units, memory in MiB.
var ServerSizes = map[string]ServerSize{
	"small": {
		Name:        "small",
		CPU:         2048,
		Memory:      4096,
		Description: "1-5 players",
	},
	"medium": {
		Name:        "medium",
		CPU:         2048,
		Memory:      8192,
		Description: "5-10 players",
	},
	"large": {
		Name:        "large",
		CPU:         4096,
		Memory:      16384,
		Description: "10-20 players",
	},
}

type Config struct {
	ListenAddr             string
	DBConnString           string
	ComputeProvider        compute.Provider
	AWSRegion              string
	AWSAccount             string
	ResourcePrefix         string
	Cluster                string
	Service                string
	HCloudToken            string
	HCloudServer           string
	Bucket                 string
	S3Endpoint             string
	AccessKey              string
	SecretKey              string
	UsePathStyle           bool
	ApplyRetention         bool
	ServerSize             string
	EnableRoute53          bool
	HostedZoneID           string
	DomainName             string
	WorldDir               string
	RCONAddress            string
	RCONPassword           string
	StartWait              time.Duration
	PollInterval           time.Duration
	PollMaxAttempts        uint
	WorkflowTimeout        time.Duration
	PeriodicBackupInterval time.Duration
	NATSURL                string
	NATSSubjectPrefix      string
	OTLPEndpoint           string
	ShutdownTimeout        time.Duration
}

// WithDefaults fills cluster, service and bucket names that have not been
// set explicitly with names derived from the resource prefix.
func (c Config) WithDefaults() Config {
	if c.ResourcePrefix == "" {
		return c
	}

	if c.Cluster == "" {
		c.Cluster = c.ResourcePrefix + "-cluster"
	}

	if c.Service == "" {
		c.Service = c.ResourcePrefix + "-server"
	}

	if c.Bucket == "" {
		c.Bucket = c.ResourcePrefix + "-backups"
	}

	if c.HCloudServer == "" {
		c.HCloudServer = c.ResourcePrefix + "-server"
	}

	return c
}

// Size returns the configured server size.
func (c Config) Size() ServerSize {
	return ServerSizes[c.ServerSize]
}

func (c Config) Validate() error {
	var result *multierror.Error

	if c.ListenAddr == "" {
		result = multierror.Append(result, errors.New("listen address is required"))
	}

	if c.DBConnString == "" {
		result = multierror.Append(result, errors.New("postgres dsn is required"))
	}

	switch c.ComputeProvider {
	case compute.ProviderECS:
		if c.Cluster == "" || c.Service == "" {
			result = multierror.Append(result, errors.New("cluster and service are required for ecs"))
		}
	case compute.ProviderHetzner:
		if c.HCloudToken == "" || c.HCloudServer == "" {
			result = multierror.Append(result, errors.New("hcloud token and server are required for hetzner"))
		}
	default:
		result = multierror.Append(result, fmt.Errorf("unknown compute provider %q", c.ComputeProvider))
	}

	if c.Bucket == "" {
		result = multierror.Append(result, errors.New("bucket is required"))
	}

	if _, ok := ServerSizes[c.ServerSize]; !ok {
		result = multierror.Append(result, fmt.Errorf("unknown server size %q", c.ServerSize))
	}

	if c.EnableRoute53 && (c.HostedZoneID == "" || c.DomainName == "") {
		result = multierror.Append(result, errors.New("hosted zone id and domain name are required when route53 is enabled"))
	}

	if c.PollMaxAttempts == 0 {
		result = multierror.Append(result, errors.New("poll max attempts must be greater than zero"))
	}

	if c.WorkflowTimeout <= c.StartWait {
		result = multierror.Append(result, errors.New("workflow timeout must be greater than start wait"))
	}

	if c.PeriodicBackupInterval < 0 {
		result = multierror.Append(result, errors.New("periodic backup interval must not be negative"))
	}

	return result.ErrorOrNil()
}
