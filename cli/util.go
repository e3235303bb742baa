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

package cli

import (
	"io"
	"time"

	"github.com/rodaine/table"
)

// Section is a table with no column headers. the main purpose
// of this is to align values when printing, so they are on the
// same level. here's an example:
// what we don't want:
//
//	Status: running
//	Task count: 1
//
// what we want:
//
//	Status:       running
//	Task count:   1
func Section(w io.Writer) table.Table {
	t := table.New("", "")
	t.WithHeaderFormatter(func(s string, i ...any) string {
		return ""
	})
	t.WithWriter(w)
	return t
}

func FmtTime(t time.Time) string {
	if t.IsZero() {
		return "Not available"
	}
	return t.Format(time.RFC1123Z)
}
