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
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	cperrs "github.com/spacechunks/ondemand/controlplane/errors"
	"github.com/spacechunks/ondemand/controlplane/job"
	"github.com/spacechunks/ondemand/controlplane/workflow"
)

const executionColumns = `id::text, workflow, state, step_index, status::text, payload, error, started_at, updated_at, deadline`

func scanExecution(row pgx.Row) (workflow.Execution, error) {
	var (
		e      workflow.Execution
		status string
	)

	if err := row.Scan(
		&e.ID,
		&e.Workflow,
		&e.State,
		&e.Cursor,
		&status,
		&e.Payload,
		&e.Error,
		&e.StartedAt,
		&e.UpdatedAt,
		&e.Deadline,
	); err != nil {
		return workflow.Execution{}, err
	}

	e.Status = workflow.Status(status)
	e.StartedAt = e.StartedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	e.Deadline = e.Deadline.UTC()

	return e, nil
}

// CreateExecution inserts the execution and a job running it in the
// same transaction, so there is never an execution nobody runs.
func (db *DB) CreateExecution(ctx context.Context, e workflow.Execution) (workflow.Execution, error) {
	var ret workflow.Execution
	if err := db.doTX(ctx, func(tx pgx.Tx) error {
		created, err := scanExecution(tx.QueryRow(ctx, `
			INSERT INTO executions
			    (id, workflow, state, step_index, status, payload, error, started_at, updated_at, deadline)
			VALUES ($1::uuid, $2, $3, $4, $5::execution_status, $6, $7, $8, $9, $10)
			RETURNING `+executionColumns,
			e.ID,
			e.Workflow,
			e.State,
			e.Cursor,
			string(e.Status),
			[]byte(e.Payload),
			e.Error,
			e.StartedAt,
			e.UpdatedAt,
			e.Deadline,
		))
		if err != nil {
			return fmt.Errorf("insert execution: %w", err)
		}

		if _, err := db.riverClient.InsertTx(ctx, tx, job.RunExecution{
			ExecutionID: created.ID,
			Workflow:    created.Workflow,
		}, nil); err != nil {
			return fmt.Errorf("insert job: %w", err)
		}

		ret = created
		return nil
	}); err != nil {
		return workflow.Execution{}, err
	}

	return ret, nil
}

func (db *DB) GetExecution(ctx context.Context, id string) (workflow.Execution, error) {
	var ret workflow.Execution
	if err := db.do(ctx, func(conn *pgxpool.Conn) error {
		e, err := scanExecution(conn.QueryRow(ctx,
			`SELECT `+executionColumns+` FROM executions WHERE id = $1::uuid`,
			id,
		))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return cperrs.ErrExecutionNotFound
			}
			return fmt.Errorf("select execution: %w", err)
		}
		ret = e
		return nil
	}); err != nil {
		return workflow.Execution{}, err
	}

	return ret, nil
}

// UpdateExecution only updates executions that are still running.
func (db *DB) UpdateExecution(ctx context.Context, e workflow.Execution) (workflow.Execution, error) {
	var ret workflow.Execution
	if err := db.doTX(ctx, func(tx pgx.Tx) error {
		updated, err := scanExecution(tx.QueryRow(ctx, `
			UPDATE executions
			SET state = $2, step_index = $3, status = $4::execution_status, payload = $5, error = $6, updated_at = $7
			WHERE id = $1::uuid AND status = 'RUNNING'
			RETURNING `+executionColumns,
			e.ID,
			e.State,
			e.Cursor,
			string(e.Status),
			[]byte(e.Payload),
			e.Error,
			e.UpdatedAt,
		))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return notRunningOrMissing(ctx, tx, e.ID)
			}
			return fmt.Errorf("update execution: %w", err)
		}
		ret = updated
		return nil
	}); err != nil {
		return workflow.Execution{}, err
	}

	return ret, nil
}

func (db *DB) AbortExecution(ctx context.Context, id string) (workflow.Execution, error) {
	var ret workflow.Execution
	if err := db.doTX(ctx, func(tx pgx.Tx) error {
		aborted, err := scanExecution(tx.QueryRow(ctx, `
			UPDATE executions
			SET status = 'ABORTED', error = 'aborted', updated_at = now()
			WHERE id = $1::uuid AND status = 'RUNNING'
			RETURNING `+executionColumns,
			id,
		))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return notRunningOrMissing(ctx, tx, id)
			}
			return fmt.Errorf("abort execution: %w", err)
		}
		ret = aborted
		return nil
	}); err != nil {
		return workflow.Execution{}, err
	}

	return ret, nil
}

// notRunningOrMissing tells apart the two reasons a conditional update
// of an execution does not return a row.
func notRunningOrMissing(ctx context.Context, tx pgx.Tx, id string) error {
	var exists bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM executions WHERE id = $1::uuid)`,
		id,
	).Scan(&exists); err != nil {
		return fmt.Errorf("execution exists: %w", err)
	}

	if !exists {
		return cperrs.ErrExecutionNotFound
	}

	return cperrs.ErrExecutionNotRunning
}
