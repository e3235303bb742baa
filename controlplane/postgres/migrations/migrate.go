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

package migrations

import (
	"context"
	"embed"
	"fmt"
	"io"
	"net/url"

	_ "github.com/amacneil/dbmate/v2/pkg/driver/postgres"

	"github.com/amacneil/dbmate/v2/pkg/dbmate"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"
)

//go:embed *.sql
var fs embed.FS

func Migrate(dsn string) error {
	pgDSN, err := url.Parse(dsn)
	if err != nil {
		return fmt.Errorf("parse dsn: %w", err)
	}

	mate := dbmate.New(pgDSN)
	mate.FS = fs
	mate.Log = io.Discard
	mate.MigrationsDir = []string{"./"}
	mate.AutoDumpSchema = false

	if _, err := mate.FindMigrations(); err != nil {
		return fmt.Errorf("find migrations: %w", err)
	}

	if err := mate.Wait(); err != nil {
		return fmt.Errorf("wait migrations: %w", err)
	}

	if err := mate.Migrate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	return nil
}

// MigrateRiver creates or updates the tables used by the job queue.
func MigrateRiver(ctx context.Context, pool *pgxpool.Pool) error {
	migrator, err := rivermigrate.New(riverpgxv5.New(pool), nil)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	return nil
}
