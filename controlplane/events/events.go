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

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// Event is emitted on every state transition of a lifecycle workflow.
type Event struct {
	ExecutionID string    `json:"executionId"`
	Workflow    string    `json:"workflow"`
	State       string    `json:"state"`
	Status      string    `json:"status"`
	Time        time.Time `json:"time"`
	Error       string    `json:"error,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Conn is the subset of [nats.Conn] used to publish events.
type Conn interface {
	Publish(subj string, data []byte) error
}

type NATSPublisher struct {
	logger *slog.Logger
	conn   Conn
	prefix string
}

func NewNATSPublisher(logger *slog.Logger, conn Conn, subjectPrefix string) *NATSPublisher {
	return &NATSPublisher{
		logger: logger.With("component", "nats-publisher"),
		conn:   conn,
		prefix: subjectPrefix,
	}
}

// Connect opens a connection to the nats server that reconnects
// forever.
func Connect(logger *slog.Logger, url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("ondemand"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("nats disconnected", "err", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return nc, nil
}

// Subject returns the subject events of the given workflow are
// published on.
func Subject(prefix, workflow string) string {
	return prefix + ".lifecycle." + workflow
}

func (p *NATSPublisher) Publish(ctx context.Context, e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	subj := Subject(p.prefix, e.Workflow)
	if err := p.conn.Publish(subj, data); err != nil {
		return fmt.Errorf("publish: %w", err)
	}

	p.logger.DebugContext(ctx, "event published", "subject", subj, "execution_id", e.ExecutionID)

	return nil
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops all events.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, Event) error {
	return nil
}
