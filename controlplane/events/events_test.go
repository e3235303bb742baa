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

package events_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/spacechunks/ondemand/controlplane/events"
	"github.com/spacechunks/ondemand/internal/mock"
	mocky "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNATSPublisherPublish(t *testing.T) {
	var (
		ctx      = context.Background()
		logger   = slog.New(slog.NewTextHandler(os.Stdout, nil))
		mockConn = mock.NewMockEventsConn(t)
		pub      = events.NewNATSPublisher(logger, mockConn, "ondemand")
		expected = events.Event{
			ExecutionID: "exec-1",
			Workflow:    "start",
			State:       "ScaleUp",
			Status:      "RUNNING",
			Time:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}
	)

	mockConn.EXPECT().
		Publish("ondemand.lifecycle.start", mocky.Anything).
		RunAndReturn(func(_ string, data []byte) error {
			var actual events.Event
			require.NoError(t, json.Unmarshal(data, &actual))
			require.Equal(t, expected, actual)
			return nil
		})

	require.NoError(t, pub.Publish(ctx, expected))
}

func TestNoopPublisher(t *testing.T) {
	require.NoError(t, events.NewNoopPublisher().Publish(context.Background(), events.Event{}))
}
