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

package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
)

type DB struct {
	logger      *slog.Logger
	pool        *pgxpool.Pool
	riverClient *river.Client[pgx.Tx]
}

func NewDB(logger *slog.Logger, pool *pgxpool.Pool) *DB {
	return &DB{
		logger: logger.With("component", "postgres"),
		pool:   pool,
	}
}

// SetRiverClient sets the client used to insert jobs. the river client
// itself needs workers that depend on the database, so it can only be
// set after the database has been created.
func (db *DB) SetRiverClient(c *river.Client[pgx.Tx]) {
	db.riverClient = c
}

func (db *DB) do(ctx context.Context, fn func(conn *pgxpool.Conn) error) error {
	if err := db.pool.AcquireFunc(ctx, func(conn *pgxpool.Conn) error {
		return fn(conn)
	}); err != nil {
		return err
	}
	return nil
}

func (db *DB) doTX(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return pgx.BeginFunc(ctx, db.pool, fn)
}
