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

package errors

import (
	"net/http"
)

/*
 * control api related errors
 */

var (
	ErrInvalidAction   = New(http.StatusBadRequest, "Invalid action. Use /start, /stop, or /status")
	ErrNoRunningServer = New(http.StatusNotFound, "No running server found")
)

/*
 * compute related errors
 */

var (
	ErrNoAddressFound      = New(http.StatusInternalServerError, "No IP found")
	ErrTaskNotRunning      = New(http.StatusInternalServerError, "task did not reach running state")
	ErrNoTaskFound         = New(http.StatusInternalServerError, "no task found")
	ErrInvalidDesiredCount = New(http.StatusBadRequest, "desired count must be 0 or 1")
)

/*
 * name resolution related errors
 */

var ErrNoIPProvided = New(http.StatusBadRequest, "No IP provided")

/*
 * workflow related errors
 */

var (
	ErrExecutionNotFound   = New(http.StatusNotFound, "execution not found")
	ErrExecutionNotRunning = New(http.StatusConflict, "execution is not running")
	ErrInvalidExecutionID  = New(http.StatusBadRequest, "invalid execution id")
)

/*
 * backup related errors
 */

var ErrInvalidBackupKey = New(http.StatusBadRequest, "invalid backup key")

type Error struct {
	Message string
	Code    int
}

// HTTPStatus returns the status code that should be used when this
// error is returned to a client of the control api.
func (e Error) HTTPStatus() int {
	if e.Code == 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

func (e Error) Error() string {
	return e.Message
}

func New(args ...any) Error {
	e := Error{}
	for _, arg := range args {
		switch arg := arg.(type) {
		case string:
			e.Message = arg
		case int:
			e.Code = arg
		default:
			continue
		}
	}
	return e
}
