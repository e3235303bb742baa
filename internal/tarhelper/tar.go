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

package tarhelper

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// TarDir writes a gzip compressed tar archive of all regular files below
// rootDir to w. entry names are relative to rootDir and always use forward
// slashes. files whose base name is contained in skip are not archived.
func TarDir(rootDir string, w io.Writer, skip ...string) error {
	gzw := gzip.NewWriter(w)
	tw := tar.NewWriter(gzw)

	if err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.Type().IsRegular() || slices.Contains(skip, d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(rootDir, path)
		if err != nil {
			return fmt.Errorf("rel: %w", err)
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("info %s: %w", path, err)
		}

		if err := tw.WriteHeader(&tar.Header{
			Typeflag: tar.TypeReg,
			Name:     filepath.ToSlash(rel),
			Size:     info.Size(),
			Mode:     int64(info.Mode().Perm()),
			ModTime:  info.ModTime(),
		}); err != nil {
			return fmt.Errorf("tar header: %w", err)
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open: %w", err)
		}
		defer f.Close()

		// the file could have grown since we called stat, so only copy
		// what we announced in the header. otherwise the writer fails.
		if _, err := io.CopyN(tw, f, info.Size()); err != nil {
			return fmt.Errorf("copy %s: %w", path, err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("walk: %w", err)
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("close tar: %w", err)
	}

	if err := gzw.Close(); err != nil {
		return fmt.Errorf("close gzip: %w", err)
	}

	return nil
}

func Untar(r io.Reader, dest string) ([]string, error) {
	gzr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("gzip reader: %w", err)
	}

	defer gzr.Close()

	tr := tar.NewReader(gzr)
	paths := make([]string, 0)

	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tar next: %w", err)
		}

		if header.Typeflag != tar.TypeReg {
			continue
		}

		target := filepath.Join(dest, header.Name)
		paths = append(paths, target)

		if err := func() error {
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return err
			}

			f, err := os.Create(target)
			if err != nil {
				return fmt.Errorf("create file: %w", err)
			}

			defer f.Close()

			if _, err := io.Copy(f, tr); err != nil {
				return fmt.Errorf("copy: %w", err)
			}
			return nil
		}(); err != nil {
			return nil, err
		}
	}

	return paths, nil
}
