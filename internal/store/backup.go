// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/uptrace/bun"

	"github.com/sdk6/listkit/core/list"
	"github.com/sdk6/listkit/internal/logging"
)

const backupVersion = 1

// BackupData is the document written inside a backup file.
type BackupData struct {
	Version   int        `json:"version"`
	CreatedAt time.Time  `json:"created_at"`
	Lists     []Snapshot `json:"lists"`
}

// DefaultBackupName is the file name used when no backup path is given.
func DefaultBackupName(now time.Time) string {
	return fmt.Sprintf("listkit-backup-%s.json.zst", now.Format("2006-01-02"))
}

// Backup writes every stored list to path and returns how many were written.
func (s *Store) Backup(ctx context.Context, path string) (int, error) {
	summaries, err := s.Lists(ctx)
	if err != nil {
		return 0, err
	}
	data := &BackupData{Version: backupVersion, CreatedAt: time.Now().UTC()}
	for _, sum := range summaries {
		snap, err := s.LoadList(ctx, sum.Name)
		if err != nil {
			return 0, err
		}
		data.Lists = append(data.Lists, snap)
	}
	if err := writeCompressedBackup(path, data); err != nil {
		return 0, err
	}
	return len(data.Lists), nil
}

// Restore loads every list in the backup at path, replacing lists with the
// same name, and returns how many were restored. Values are checked against
// their kind first and all lists are written in one transaction, so a bad
// backup restores nothing.
func (s *Store) Restore(ctx context.Context, path string) (int, error) {
	data, err := readCompressedBackup(path)
	if err != nil {
		return 0, err
	}
	if data.Version != backupVersion {
		return 0, fmt.Errorf("unsupported backup version %d", data.Version)
	}
	var valid []Snapshot
	for _, snap := range data.Lists {
		if snap.Kind != list.KindNumber && snap.Kind != list.KindString {
			logging.Warnf("restore: skipping %q with unknown kind %q", snap.Name, snap.Kind)
			continue
		}
		if snap.Name == "" {
			return 0, errors.New("restore: backup holds a list without a name")
		}
		if err := snap.Validate(); err != nil {
			return 0, fmt.Errorf("restore: %w", err)
		}
		valid = append(valid, snap)
	}
	err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, snap := range valid {
			if err := saveList(ctx, tx, snap); err != nil {
				return fmt.Errorf("restore list %q: %w", snap.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(valid), nil
}

func writeCompressedBackup(filename string, data *BackupData) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer func() { err = errors.Join(err, file.Close()) }()

	zw, err := zstd.NewWriter(file)
	if err != nil {
		return fmt.Errorf("could not create zstd writer: %w", err)
	}
	encoder := json.NewEncoder(zw)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		_ = zw.Close()
		return fmt.Errorf("could not encode json to zstd writer: %w", err)
	}
	return zw.Close()
}

func readCompressedBackup(filename string) (*BackupData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	zr, err := zstd.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("could not create zstd reader: %w", err)
	}
	defer zr.Close()

	var data BackupData
	if err := json.NewDecoder(zr).Decode(&data); err != nil {
		return nil, fmt.Errorf("could not decode json from zstd reader: %w", err)
	}
	return &data, nil
}
