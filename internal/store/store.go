// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/sdk6/listkit/internal/logging"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no list is stored under the requested name.
var ErrNotFound = errors.New("list not found")

type listModel struct {
	bun.BaseModel `bun:"table:lists"`

	ID              int64     `bun:"id,pk,autoincrement"`
	Name            string    `bun:"name,type:varchar(255),unique,notnull"`
	Kind            string    `bun:"kind,type:varchar(16),notnull"`
	AllowDuplicates bool      `bun:"allow_duplicates,notnull"`
	UpdatedAt       time.Time `bun:"updated_at,notnull"`
}

type itemModel struct {
	bun.BaseModel `bun:"table:list_items"`

	ListID   int64  `bun:"list_id,pk"`
	Position int    `bun:"position,pk"`
	Value    string `bun:"value,type:text,notnull"`
}

// Summary describes a stored list without its elements.
type Summary struct {
	Name            string
	Kind            string
	AllowDuplicates bool
	Size            int
	UpdatedAt       time.Time
}

// Store is a Bun-backed snapshot store.
type Store struct {
	db     *bun.DB
	dbType string
}

// driverName maps a store type onto the registered database/sql driver.
func driverName(dbType string) (string, error) {
	switch dbType {
	case "sqlite":
		return "sqlite", nil
	case "postgres":
		return "pgx", nil
	case "mysql":
		return "mysql", nil
	default:
		return "", fmt.Errorf("unsupported store type %q (want sqlite, postgres or mysql)", dbType)
	}
}

func createBunDB(sqlDB *sql.DB, dbType string) *bun.DB {
	switch dbType {
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New())
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}

// New opens the database named by dbType and dsn and makes sure the schema
// exists. MySQL DSNs need parseTime=true.
func New(ctx context.Context, dbType, dsn string) (*Store, error) {
	driver, err := driverName(dbType)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", dbType, err)
	}
	// Every connection to ":memory:" would see its own empty database.
	if dbType == "sqlite" && strings.Contains(dsn, ":memory:") {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("connect to %s store: %w", dbType, err)
	}

	s := &Store{db: createBunDB(sqlDB, dbType), dbType: dbType}
	if err := s.createSchema(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	logging.Debugf("store: opened %s in %s", dbType, time.Since(start))
	return s, nil
}

func (s *Store) createSchema(ctx context.Context) error {
	for _, m := range []any{(*listModel)(nil), (*itemModel)(nil)} {
		if _, err := s.db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// Type reports the store type the Store was opened with.
func (s *Store) Type() string { return s.dbType }

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// SaveList stores snap under snap.Name, replacing any list of that name.
func (s *Store) SaveList(ctx context.Context, snap Snapshot) error {
	if snap.Name == "" {
		return errors.New("list name must not be empty")
	}
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return saveList(ctx, tx, snap)
	})
	if err != nil {
		return fmt.Errorf("save list %q: %w", snap.Name, err)
	}
	logging.Debugf("store: saved %q (%d elements)", snap.Name, len(snap.Values))
	return nil
}

// LoadList returns the snapshot stored under name.
func (s *Store) LoadList(ctx context.Context, name string) (Snapshot, error) {
	var lm listModel
	err := s.db.NewSelect().Model(&lm).Where("name = ?", name).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, fmt.Errorf("load list %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("load list %q: %w", name, err)
	}
	var items []itemModel
	if err := s.db.NewSelect().Model(&items).Where("list_id = ?", lm.ID).Order("position ASC").Scan(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("load items of %q: %w", name, err)
	}
	snap := Snapshot{
		Name:            lm.Name,
		Kind:            lm.Kind,
		AllowDuplicates: lm.AllowDuplicates,
		Values:          make([]string, len(items)),
	}
	for i, it := range items {
		snap.Values[i] = it.Value
	}
	return snap, nil
}

// Lists returns a summary of every stored list, ordered by name.
func (s *Store) Lists(ctx context.Context) ([]Summary, error) {
	var lists []listModel
	if err := s.db.NewSelect().Model(&lists).Order("name ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("list names: %w", err)
	}
	out := make([]Summary, 0, len(lists))
	for _, lm := range lists {
		n, err := s.db.NewSelect().Model((*itemModel)(nil)).Where("list_id = ?", lm.ID).Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count items of %q: %w", lm.Name, err)
		}
		out = append(out, Summary{
			Name:            lm.Name,
			Kind:            lm.Kind,
			AllowDuplicates: lm.AllowDuplicates,
			Size:            n,
			UpdatedAt:       lm.UpdatedAt,
		})
	}
	return out, nil
}

// DeleteList removes the list stored under name.
func (s *Store) DeleteList(ctx context.Context, name string) error {
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return deleteList(ctx, tx, name)
	})
	if err != nil {
		return fmt.Errorf("delete list %q: %w", name, err)
	}
	return nil
}

func saveList(ctx context.Context, tx bun.Tx, snap Snapshot) error {
	if err := deleteList(ctx, tx, snap.Name); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	lm := &listModel{
		Name:            snap.Name,
		Kind:            snap.Kind,
		AllowDuplicates: snap.AllowDuplicates,
		UpdatedAt:       time.Now().UTC(),
	}
	// MySQL ignores Returning and bun falls back to LastInsertId.
	if _, err := tx.NewInsert().Model(lm).Returning("id").Exec(ctx); err != nil {
		return fmt.Errorf("insert list: %w", err)
	}
	if len(snap.Values) == 0 {
		return nil
	}
	items := make([]itemModel, len(snap.Values))
	for i, v := range snap.Values {
		items[i] = itemModel{ListID: lm.ID, Position: i, Value: v}
	}
	if _, err := tx.NewInsert().Model(&items).Exec(ctx); err != nil {
		return fmt.Errorf("insert items: %w", err)
	}
	return nil
}

func deleteList(ctx context.Context, tx bun.Tx, name string) error {
	var lm listModel
	err := tx.NewSelect().Model(&lm).Column("id").Where("name = ?", name).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if _, err := tx.NewDelete().Model((*itemModel)(nil)).Where("list_id = ?", lm.ID).Exec(ctx); err != nil {
		return err
	}
	_, err = tx.NewDelete().Model((*listModel)(nil)).Where("id = ?", lm.ID).Exec(ctx)
	return err
}
