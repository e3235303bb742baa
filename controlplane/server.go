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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/exaring/otelpgx"
	"github.com/hashicorp/go-multierror"
	"github.com/hetznercloud/hcloud-go/v2/hcloud"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spacechunks/ondemand/controlplane/api"
	"github.com/spacechunks/ondemand/controlplane/backup"
	"github.com/spacechunks/ondemand/controlplane/compute"
	"github.com/spacechunks/ondemand/controlplane/dns"
	"github.com/spacechunks/ondemand/controlplane/events"
	"github.com/spacechunks/ondemand/controlplane/lifecycle"
	"github.com/spacechunks/ondemand/controlplane/metrics"
	"github.com/spacechunks/ondemand/controlplane/poll"
	"github.com/spacechunks/ondemand/controlplane/postgres"
	"github.com/spacechunks/ondemand/controlplane/postgres/migrations"
	"github.com/spacechunks/ondemand/controlplane/workflow"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc/credentials/insecure"
)

type Server struct {
	logger   *slog.Logger
	cfg      Config
	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewServer(logger *slog.Logger, cfg Config) *Server {
	return &Server{
		logger: logger,
		cfg:    cfg,
		stopCh: make(chan struct{}),
	}
}

// Stop initiates a graceful shutdown of a running server.
// it is safe to call Stop multiple times.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}

func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	shutdownTracing, err := s.setupTracing(ctx)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(s.cfg.AWSRegion))
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}

	if s.cfg.AWSAccount != "" {
		if err := verifyAccount(ctx, sts.NewFromConfig(awsCfg), s.cfg.AWSAccount); err != nil {
			return err
		}
	}

	host, err := s.createHost(awsCfg)
	if err != nil {
		return fmt.Errorf("create compute host: %w", err)
	}

	poolCfg, err := pgxpool.ParseConfig(s.cfg.DBConnString)
	if err != nil {
		return fmt.Errorf("parse postgres dsn: %w", err)
	}

	poolCfg.ConnConfig.Tracer = otelpgx.NewTracer()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := migrations.MigrateRiver(ctx, pool); err != nil {
		return fmt.Errorf("migrate river: %w", err)
	}

	publisher, closePublisher, err := s.createPublisher()
	if err != nil {
		return fmt.Errorf("create event publisher: %w", err)
	}
	defer closePublisher()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var (
		db        = postgres.NewDB(s.logger, pool)
		m         = metrics.New(reg)
		store     = backup.NewS3Store(s.cfg.Bucket, s.createS3Client(awsCfg))
		backupSvc = backup.NewService(s.logger, store, backup.DialRCON, m, backup.Config{
			WorldDir:     s.cfg.WorldDir,
			RCONAddress:  s.cfg.RCONAddress,
			RCONPassword: s.cfg.RCONPassword,
		})
		scaler   = compute.NewScaler(s.logger, host, m)
		resolver = compute.NewResolver(s.logger, host, poll.Policy{
			Interval:    s.cfg.PollInterval,
			MaxAttempts: s.cfg.PollMaxAttempts,
		})
		updater = dns.NewUpdater(s.logger, route53.NewFromConfig(awsCfg), dns.Config{
			Enabled:      s.cfg.EnableRoute53,
			HostedZoneID: s.cfg.HostedZoneID,
			DomainName:   s.cfg.DomainName,
		})
		workflows = lifecycle.NewWorkflows(scaler, resolver, updater, backupSvc, lifecycle.WorkflowConfig{
			StartWait: s.cfg.StartWait,
			Timeout:   s.cfg.WorkflowTimeout,
		})
		driver = workflow.NewDriver[lifecycle.Payload](s.logger, db, publisher, m)
	)

	if s.cfg.ApplyRetention {
		if err := backupSvc.EnsureRetention(ctx); err != nil {
			return fmt.Errorf("ensure backup retention: %w", err)
		}
	}

	riverClient, err := CreateRiverClient(
		s.logger,
		pool,
		driver,
		workflows,
		host,
		backupSvc,
		s.cfg.PeriodicBackupInterval,
	)
	if err != nil {
		return err
	}

	db.SetRiverClient(riverClient)

	var (
		size      = s.cfg.Size()
		lcService = lifecycle.NewService(s.logger, db, host, backupSvc, workflows)
		apiServer = api.NewServer(s.logger, lcService, m, reg, api.Info{
			ServerSize:  size.Name,
			Description: size.Description,
			CPU:         size.CPU,
			Memory:      size.Memory,
			Cluster:     host.Cluster(),
			Bucket:      s.cfg.Bucket,
			DomainName:  s.cfg.DomainName,
		})
		httpServer = &http.Server{
			Addr:              s.cfg.ListenAddr,
			Handler:           apiServer.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}
	)

	if err := riverClient.Start(ctx); err != nil {
		return fmt.Errorf("start river client: %w", err)
	}

	g := multierror.Group{}
	g.Go(func() error {
		s.logger.Info("control api listening", "addr", s.cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			cancel()
			return fmt.Errorf("failed to serve control api: %w", err)
		}
		return nil
	})

	select {
	case <-ctx.Done():
	case <-s.stopCh:
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("failed to shutdown control api", "err", err)
	}

	// running jobs are allowed to finish. executions that do not finish
	// in time are resumed from their last checkpoint after a restart.
	if err := riverClient.Stop(shutdownCtx); err != nil {
		s.logger.Error("failed to stop river client", "err", err)
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		s.logger.Error("failed to shutdown tracing", "err", err)
	}

	return g.Wait().ErrorOrNil()
}

func (s *Server) createHost(awsCfg aws.Config) (compute.Host, error) {
	switch s.cfg.ComputeProvider {
	case compute.ProviderECS:
		return compute.NewECSHost(
			s.logger,
			ecs.NewFromConfig(awsCfg),
			ec2.NewFromConfig(awsCfg),
			s.cfg.Cluster,
			s.cfg.Service,
		), nil
	case compute.ProviderHetzner:
		client := hcloud.NewClient(
			hcloud.WithToken(s.cfg.HCloudToken),
			hcloud.WithApplication("ondemand", ""),
		)
		return compute.NewHetznerHost(s.logger, &client.Server, s.cfg.HCloudServer), nil
	default:
		return nil, fmt.Errorf("unknown compute provider %s", s.cfg.ComputeProvider)
	}
}

func (s *Server) createS3Client(awsCfg aws.Config) *s3.Client {
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = s.cfg.UsePathStyle
		if s.cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.S3Endpoint)
		}
		if s.cfg.AccessKey != "" {
			o.Credentials = credentials.NewStaticCredentialsProvider(s.cfg.AccessKey, s.cfg.SecretKey, "")
		}
	})
}

func (s *Server) createPublisher() (events.Publisher, func(), error) {
	if s.cfg.NATSURL == "" {
		return events.NewNoopPublisher(), func() {}, nil
	}

	conn, err := events.Connect(s.logger, s.cfg.NATSURL)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		if err := conn.Drain(); err != nil {
			s.logger.Error("failed to drain nats connection", "err", err)
		}
	}

	return events.NewNATSPublisher(s.logger, conn, s.cfg.NATSSubjectPrefix), closeFn, nil
}

// setupTracing installs a global tracer provider exporting spans to the
// configured otlp endpoint. without an endpoint the global no-op provider
// stays in place.
func (s *Server) setupTracing(ctx context.Context) (func(context.Context) error, error) {
	if s.cfg.OTLPEndpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	exp, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(s.cfg.OTLPEndpoint),
		otlptracegrpc.WithTLSCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", "ondemand"),
		)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

type callerIdentityAPI interface {
	GetCallerIdentity(
		ctx context.Context,
		params *sts.GetCallerIdentityInput,
		optFns ...func(*sts.Options),
	) (*sts.GetCallerIdentityOutput, error)
}

// verifyAccount makes sure the credentials in use belong to the expected
// aws account, so we never scale a service in the wrong account.
func verifyAccount(ctx context.Context, client callerIdentityAPI, expected string) error {
	out, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return fmt.Errorf("get caller identity: %w", err)
	}

	if actual := aws.ToString(out.Account); actual != expected {
		return fmt.Errorf("aws account mismatch: expected %s, got %s", expected, actual)
	}

	return nil
}
