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

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/peterbourgon/ff/v3"
	"github.com/spacechunks/ondemand/controlplane"
	"github.com/spacechunks/ondemand/controlplane/compute"
	"github.com/spacechunks/ondemand/controlplane/poll"
	"github.com/spacechunks/ondemand/controlplane/postgres/migrations"
)

func main() {
	var (
		logger                 = slog.New(slog.NewJSONHandler(os.Stdout, nil))
		fs                     = flag.NewFlagSet("ondemand", flag.ContinueOnError)
		listenAddr             = fs.String("listen-address", ":8080", "address and port the control api listens on")                                                                                 //nolint:lll
		pgConnString           = fs.String("postgres-dsn", "", "connection string in the form of postgres://[user[:password]@][netloc][:port][/dbname][?param1=value1&...]")                          //nolint:lll
		computeProvider        = fs.String("compute-provider", string(compute.ProviderECS), "platform the game server runs on. one of ecs, hetzner")                                                 //nolint:lll
		awsRegion              = fs.String("aws-region", "", "aws region of all aws resources. falls back to the default aws configuration chain if empty")                                         //nolint:lll
		awsAccount             = fs.String("aws-account", "", "if set, the aws account the credentials in use must belong to")                                                                        //nolint:lll
		resourcePrefix         = fs.String("resource-prefix", "minecraft", "prefix used to derive cluster, service and bucket names that are not set explicitly")                                    //nolint:lll
		cluster                = fs.String("cluster", "", "name of the ecs cluster")                                                                                                                  //nolint:lll
		service                = fs.String("service", "", "name of the ecs service running the game server")                                                                                          //nolint:lll
		hcloudToken            = fs.String("hcloud-token", "", "api token used to access the hetzner cloud api")                                                                                      //nolint:lll
		hcloudServer           = fs.String("hcloud-server", "", "name of the hetzner cloud server running the game server")                                                                           //nolint:lll
		bucket                 = fs.String("bucket", "", "bucket world backups are stored in")                                                                                                        //nolint:lll
		s3Endpoint             = fs.String("s3-endpoint", "", "custom endpoint of the s3 api. uses the aws default if empty")                                                                         //nolint:lll
		accessKey              = fs.String("access-key", "", "access key to use for accessing the bucket")                                                                                            //nolint:lll
		secretKey              = fs.String("secret-key", "", "secret key to use for accessing the bucket")                                                                                            //nolint:lll
		usePathStyle           = fs.Bool("use-path-style", false, "whether to use path style to access the bucket")                                                                                   //nolint:lll
		applyRetention         = fs.Bool("apply-retention", false, "apply the backup retention lifecycle rule to the bucket on start-up")                                                            //nolint:lll
		serverSize             = fs.String("server-size", "small", "size of the game server. one of small, medium, large")                                                                            //nolint:lll
		enableRoute53          = fs.Bool("enable-route53", false, "whether to point a dns record at the game server after it started")                                                               //nolint:lll
		hostedZoneID           = fs.String("hosted-zone-id", "", "route53 hosted zone containing the record")                                                                                         //nolint:lll
		domainName             = fs.String("domain-name", "", "name of the a record pointing at the game server")                                                                                      //nolint:lll
		worldDir               = fs.String("world-dir", "", "directory containing the world data. backups are not durable if empty")                                                                 //nolint:lll
		rconAddress            = fs.String("rcon-address", "", "rcon address of the game server. discovered from server.properties if empty")                                                        //nolint:lll
		rconPassword           = fs.String("rcon-password", "", "rcon password of the game server. discovered from server.properties if empty")                                                      //nolint:lll
		startWait              = fs.Duration("start-wait", 30*time.Second, "how long to wait after scaling up before looking for the task")                                                          //nolint:lll
		pollInterval           = fs.Duration("poll-interval", poll.DefaultPolicy.Interval, "time between two checks of the task status")                                                            //nolint:lll
		pollMaxAttempts        = fs.Uint("poll-max-attempts", poll.DefaultPolicy.MaxAttempts, "how often the task status is checked before giving up")                                             //nolint:lll
		workflowTimeout        = fs.Duration("workflow-timeout", 10*time.Minute, "when to abort a start or stop workflow")                                                                           //nolint:lll
		periodicBackupInterval = fs.Duration("periodic-backup-interval", 0, "how often to back up the running server. disabled if zero")                                                            //nolint:lll
		natsURL                = fs.String("nats-url", "", "nats server lifecycle events are published to. disabled if empty")                                                                      //nolint:lll
		natsSubjectPrefix      = fs.String("nats-subject-prefix", "ondemand", "prefix of the subjects lifecycle events are published on")                                                          //nolint:lll
		otlpEndpoint           = fs.String("otlp-endpoint", "", "otlp grpc endpoint traces are exported to. disabled if empty")                                                                     //nolint:lll
		shutdownTimeout        = fs.Duration("shutdown-timeout", 30*time.Second, "how long to wait for running requests and jobs on shutdown")                                                     //nolint:lll
		_                      = fs.String("config", "", "path to a json config file")                                                                                                              //nolint:lll
	)
	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("ONDEMAND"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.JSONParser),
		ff.WithAllowMissingConfigFile(true),
	); err != nil {
		die(logger, "failed to parse config", err)
	}

	var (
		cfg = controlplane.Config{
			ListenAddr:             *listenAddr,
			DBConnString:           *pgConnString,
			ComputeProvider:        compute.Provider(*computeProvider),
			AWSRegion:              *awsRegion,
			AWSAccount:             *awsAccount,
			ResourcePrefix:         *resourcePrefix,
			Cluster:                *cluster,
			Service:                *service,
			HCloudToken:            *hcloudToken,
			HCloudServer:           *hcloudServer,
			Bucket:                 *bucket,
			S3Endpoint:             *s3Endpoint,
			AccessKey:              *accessKey,
			SecretKey:              *secretKey,
			UsePathStyle:           *usePathStyle,
			ApplyRetention:         *applyRetention,
			ServerSize:             *serverSize,
			EnableRoute53:          *enableRoute53,
			HostedZoneID:           *hostedZoneID,
			DomainName:             *domainName,
			WorldDir:               *worldDir,
			RCONAddress:            *rconAddress,
			RCONPassword:           *rconPassword,
			StartWait:              *startWait,
			PollInterval:           *pollInterval,
			PollMaxAttempts:        *pollMaxAttempts,
			WorkflowTimeout:        *workflowTimeout,
			PeriodicBackupInterval: *periodicBackupInterval,
			NATSURL:                *natsURL,
			NATSSubjectPrefix:      *natsSubjectPrefix,
			OTLPEndpoint:           *otlpEndpoint,
			ShutdownTimeout:        *shutdownTimeout,
		}.WithDefaults()
		ctx    = context.Background()
		server = controlplane.NewServer(logger, cfg)
	)

	if err := cfg.Validate(); err != nil {
		die(logger, "invalid config", err)
	}

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		s := <-c
		logger.Info("received shutdown signal", "signal", s)
		server.Stop()
	}()

	if err := migrations.Migrate(cfg.DBConnString); err != nil {
		die(logger, "failed to run migrations", err)
	}

	if err := server.Run(ctx); err != nil {
		var multi *multierror.Error
		if errors.As(err, &multi) {
			errs := make([]string, 0, len(multi.WrappedErrors()))
			for _, err := range multi.WrappedErrors() {
				errs = append(errs, err.Error())
			}
			die(logger, "failed to run server", errors.New(strings.Join(errs, ",")))
			return
		}
		die(logger, "failed to run server", err)
	}
}

func die(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "err", err)
	os.Exit(1)
}
