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

package fixture

import (
	"context"
	"fmt"
	"log/slog"
	"net/netip"
	"os"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/riverqueue/river"
	"github.com/spacechunks/ondemand/controlplane"
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
	"github.com/spacechunks/ondemand/test"
	"github.com/spacechunks/ondemand/test/fake"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var HostAddr = netip.MustParseAddr("203.0.113.10")

type Postgres struct {
	DB         *postgres.DB
	Pool       *pgxpool.Pool
	ConnString string
	River      *river.Client[pgx.Tx]
	Host       *fake.Host
	Service    lifecycle.Service
}

func NewPostgres() *Postgres {
	return &Postgres{}
}

// Run starts a postgres container, applies all migrations and creates
// a river client that runs the lifecycle workflows against a fake compute
// host. the river client is not started, see [Postgres.StartRiver].
func (p *Postgres) Run(t *testing.T, ctx context.Context) {
	image := os.Getenv("FUNCTESTS_POSTGRES_IMAGE")
	if image == "" {
		t.Skip("FUNCTESTS_POSTGRES_IMAGE is not set")
	}

	var (
		user   = os.Getenv("FUNCTESTS_POSTGRES_USER")
		pass   = os.Getenv("FUNCTESTS_POSTGRES_PASS")
		db     = os.Getenv("FUNCTESTS_POSTGRES_DB")
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	)

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Name:         "functests-db-" + test.RandHexStr(t),
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     user,
				"POSTGRES_PASSWORD": pass,
				"POSTGRES_DB":       db,
			},
			HostConfigModifier: func(cfg *container.HostConfig) {
				cfg.AutoRemove = true
			},
			WaitingFor: wait.ForListeningPort("5432/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = ctr.Terminate(context.Background())
	})

	ip, err := ctr.Host(ctx)
	require.NoError(t, err)

	mapped, err := ctr.MappedPort(ctx, "5432")
	require.NoError(t, err)

	p.ConnString = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, ip, mapped.Port(), db)

	require.NoError(t, migrations.Migrate(p.ConnString))

	pool, err := pgxpool.New(ctx, p.ConnString)
	require.NoError(t, err)

	t.Cleanup(pool.Close)

	require.NoError(t, migrations.MigrateRiver(ctx, pool))

	p.Pool = pool
	p.DB = postgres.NewDB(logger, pool)
	p.Host = fake.NewHost(HostAddr)

	var (
		m        = metrics.New(prometheus.NewRegistry())
		scaler   = compute.NewScaler(logger, p.Host, m)
		resolver = compute.NewResolver(logger, p.Host, poll.Policy{
			Interval:    10 * time.Millisecond,
			MaxAttempts: 10,
		})
		snapshotter = backup.NewService(logger, nil, backup.DialRCON, m, backup.Config{})
		workflows   = lifecycle.NewWorkflows(
			scaler,
			resolver,
			dns.NewUpdater(logger, nil, dns.Config{}),
			snapshotter,
			lifecycle.WorkflowConfig{
				StartWait: 10 * time.Millisecond,
				Timeout:   time.Minute,
			},
		)
		driver = workflow.NewDriver[lifecycle.Payload](logger, p.DB, events.NewNoopPublisher(), m)
	)

	riverClient, err := controlplane.CreateRiverClient(logger, pool, driver, workflows, p.Host, snapshotter, 0)
	require.NoError(t, err)

	p.DB.SetRiverClient(riverClient)
	p.River = riverClient
	p.Service = lifecycle.NewService(logger, p.DB, p.Host, snapshotter, workflows)
}

// StartRiver starts working inserted jobs until the test ends.
func (p *Postgres) StartRiver(t *testing.T, ctx context.Context) {
	require.NoError(t, p.River.Start(ctx))
	t.Cleanup(func() {
		_ = p.River.Stop(context.Background())
	})
}
