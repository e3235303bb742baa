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
	"log/slog"
	"net/netip"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/spacechunks/ondemand/controlplane/metrics"
	"github.com/spacechunks/ondemand/internal/file"
	"github.com/spacechunks/ondemand/internal/tarhelper"
)

var ErrBackupExists = errors.New("backup already exists")

type Request struct {
	Cluster string
	TaskID  string
	Address netip.Addr
}

type Result struct {
	Key       string    `json:"key"`
	Timestamp time.Time `json:"timestamp"`
	// Durable is only true if the world has been uploaded to the bucket.
	Durable bool   `json:"durable"`
	Size    int64  `json:"size,omitempty"`
	Hash    string `json:"hash,omitempty"`
}

type Backup struct {
	Key       string    `json:"key"`
	Timestamp time.Time `json:"timestamp"`
	Size      int64     `json:"size"`
}

type Config struct {
	// WorldDir is the directory of the world that will be archived.
	// if empty, no data is uploaded.
	WorldDir     string
	RCONAddress  string
	RCONPassword string
}

type Service struct {
	logger  *slog.Logger
	store   Store
	dial    DialFunc
	metrics *metrics.Metrics
	cfg     Config
	now     func() time.Time
}

func NewService(logger *slog.Logger, store Store, dial DialFunc, m *metrics.Metrics, cfg Config) *Service {
	return &Service{
		logger:  logger.With("component", "backup-service"),
		store:   store,
		dial:    dial,
		metrics: m,
		cfg:     cfg,
		now:     time.Now,
	}
}

// Snapshot backs up the world of the given task. the key is always
// derived from the current time. if the world directory is not
// available, only the key is recorded and the returned result is
// not durable.
func (s *Service) Snapshot(ctx context.Context, req Request) (Result, error) {
	var (
		ts  = s.now().UTC().Truncate(time.Microsecond)
		key = Key(ts)
		res = Result{
			Key:       key,
			Timestamp: ts,
		}
	)

	logger := s.logger.With("key", key, "task_id", req.TaskID, "cluster", req.Cluster)

	if s.cfg.WorldDir == "" {
		logger.WarnContext(ctx, "no world directory configured, backup is not durable")
		s.metrics.Backups.WithLabelValues(strconv.FormatBool(false)).Inc()
		return res, nil
	}

	exists, err := s.store.ObjectExists(ctx, key)
	if err != nil {
		return Result{}, fmt.Errorf("object exists: %w", err)
	}

	if exists {
		return Result{}, fmt.Errorf("%w: %s", ErrBackupExists, key)
	}

	release, err := s.flushWorld(ctx, req)
	if err != nil {
		return Result{}, err
	}
	defer release()

	f, err := os.CreateTemp("", "world-*.tar.gz")
	if err != nil {
		return Result{}, fmt.Errorf("create temp file: %w", err)
	}

	defer func() {
		f.Close()
		os.Remove(f.Name())
	}()

	// session.lock is held by the running server and must not be part
	// of the archive.
	if err := tarhelper.TarDir(s.cfg.WorldDir, f, "session.lock"); err != nil {
		return Result{}, fmt.Errorf("archive world: %w", err)
	}

	if _, err := f.Seek(0, 0); err != nil {
		return Result{}, fmt.Errorf("seek: %w", err)
	}

	hash, err := file.ComputeHashStr(f)
	if err != nil {
		return Result{}, fmt.Errorf("compute hash: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		return Result{}, fmt.Errorf("stat archive: %w", err)
	}

	if err := s.store.Put(ctx, key, f, map[string]string{
		"xxh3":    hash,
		"task":    req.TaskID,
		"cluster": req.Cluster,
	}); err != nil {
		return Result{}, fmt.Errorf("put: %w", err)
	}

	res.Durable = true
	res.Size = stat.Size()
	res.Hash = hash

	s.metrics.Backups.WithLabelValues(strconv.FormatBool(true)).Inc()
	logger.InfoContext(ctx, "world backup uploaded", "size", res.Size, "hash", hash)

	return res, nil
}

// flushWorld makes the server write all pending chunks to disk and
// disables automatic saving until the returned func is called. if no
// remote console is configured the world is archived as is.
func (s *Service) flushWorld(ctx context.Context, req Request) (func(), error) {
	addr, pass, ok, err := s.rconTarget(req)
	if err != nil {
		return nil, fmt.Errorf("rcon target: %w", err)
	}

	if !ok {
		s.logger.DebugContext(ctx, "rcon not configured, skipping world flush")
		return func() {}, nil
	}

	console, err := s.dial(ctx, addr, pass)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}

	for _, cmd := range []string{"save-off", "save-all flush"} {
		if _, err := console.Execute(cmd); err != nil {
			s.saveOn(ctx, console)
			return nil, fmt.Errorf("execute %s: %w", cmd, err)
		}
	}

	return func() {
		s.saveOn(ctx, console)
	}, nil
}

func (s *Service) saveOn(ctx context.Context, console Console) {
	if _, err := console.Execute("save-on"); err != nil {
		s.logger.ErrorContext(ctx, "failed to re-enable saving", "err", err)
	}
	if err := console.Close(); err != nil {
		s.logger.WarnContext(ctx, "failed to close rcon connection", "err", err)
	}
}

// List returns all backups found in the bucket, newest first.
// objects below the backup prefix not matching the key format are
// skipped.
func (s *Service) List(ctx context.Context) ([]Backup, error) {
	objs, err := s.store.List(ctx, KeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}

	backups := make([]Backup, 0, len(objs))
	for _, obj := range objs {
		ts, err := ParseKey(obj.Key)
		if err != nil {
			s.logger.DebugContext(ctx, "skipping unknown object", "key", obj.Key)
			continue
		}
		backups = append(backups, Backup{
			Key:       obj.Key,
			Timestamp: ts,
			Size:      obj.Size,
		})
	}

	slices.SortFunc(backups, func(a, b Backup) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	return backups, nil
}

// EnsureRetention makes sure old backups expire.
func (s *Service) EnsureRetention(ctx context.Context) error {
	if err := s.store.ApplyRetention(ctx, DefaultRetention); err != nil {
		return fmt.Errorf("apply retention: %w", err)
	}

	s.logger.InfoContext(ctx,
		"backup retention applied",
		"rule", DefaultRetention.RuleID,
		"current_days", DefaultRetention.CurrentDays,
		"noncurrent_days", DefaultRetention.NoncurrentDays,
	)

	return nil
}
