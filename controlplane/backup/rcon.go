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

package backup

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gorcon/rcon"
	"github.com/magiconair/properties"
)

const defaultRCONPort = 25575

// Console executes commands on the running game server.
type Console interface {
	Execute(cmd string) (string, error)
	Close() error
}

type DialFunc func(ctx context.Context, address, password string) (Console, error)

// DialRCON connects to the remote console of a Minecraft server.
func DialRCON(ctx context.Context, address, password string) (Console, error) {
	timeout := 10 * time.Second
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}

	conn, err := rcon.Dial(address, password, rcon.SetDialTimeout(timeout), rcon.SetDeadline(timeout))
	if err != nil {
		return nil, fmt.Errorf("dial rcon: %w", err)
	}

	return conn, nil
}

type rconSettings struct {
	enabled  bool
	port     int
	password string
}

// readRCONSettings reads the rcon settings from the server.properties
// file located next to the world directory. a missing file is not an
// error, the server might not be a vanilla one.
func readRCONSettings(worldDir string) (rconSettings, error) {
	path := filepath.Join(filepath.Dir(filepath.Clean(worldDir)), "server.properties")

	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return rconSettings{}, nil
		}
		return rconSettings{}, fmt.Errorf("load server properties: %w", err)
	}

	return rconSettings{
		enabled:  p.GetBool("enable-rcon", false),
		port:     p.GetInt("rcon.port", defaultRCONPort),
		password: p.GetString("rcon.password", ""),
	}, nil
}

// rconTarget determines address and password of the remote console.
// explicitly configured values take precedence over the ones found in
// server.properties. returns false if no console is reachable.
func (s *Service) rconTarget(req Request) (string, string, bool, error) {
	var (
		addr = s.cfg.RCONAddress
		pass = s.cfg.RCONPassword
		port = defaultRCONPort
	)

	if s.cfg.WorldDir != "" {
		settings, err := readRCONSettings(s.cfg.WorldDir)
		if err != nil {
			return "", "", false, err
		}

		if settings.enabled {
			port = settings.port
			if pass == "" {
				pass = settings.password
			}
		}
	}

	if pass == "" {
		return "", "", false, nil
	}

	if addr == "" {
		host := "127.0.0.1"
		if req.Address.IsValid() {
			host = req.Address.String()
		}
		addr = net.JoinHostPort(host, strconv.Itoa(port))
	}

	return addr, pass, true, nil
}
