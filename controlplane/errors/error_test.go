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

package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	cperrs "github.com/spacechunks/ondemand/controlplane/errors"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		args     []any
		expected cperrs.Error
		status   int
	}{
		{
			name:     "message and code",
			args:     []any{http.StatusNotFound, "not here"},
			expected: cperrs.Error{Message: "not here", Code: http.StatusNotFound},
			status:   http.StatusNotFound,
		},
		{
			name:     "unknown args are ignored",
			args:     []any{"msg", 1.5, struct{}{}},
			expected: cperrs.Error{Message: "msg"},
			status:   http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := cperrs.New(tt.args...)
			require.Equal(t, tt.expected, e)
			require.Equal(t, tt.status, e.HTTPStatus())
		})
	}
}

func TestWrappedErrorKeepsIdentity(t *testing.T) {
	err := fmt.Errorf("stop server: %w", cperrs.ErrNoRunningServer)

	require.ErrorIs(t, err, cperrs.ErrNoRunningServer)

	var e cperrs.Error
	require.True(t, errors.As(err, &e))
	require.Equal(t, http.StatusNotFound, e.HTTPStatus())
	require.Equal(t, "No running server found", e.Error())
}
