package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CartService/pkg/psqlbuilder"
)

// DefaultTable таблица по умолчанию для хранения ключей
const DefaultTable = "cart_storage"

// PostgresStore хранилище ключ-значение в таблице PostgreSQL
// Уведомлений об изменениях нет, изменения обнаруживаются опросом
type PostgresStore struct {
	db    DBExecutor
	table string
}

// NewPostgresStore создает хранилище поверх таблицы table
func NewPostgresStore(db DBExecutor, table string) *PostgresStore {
	if table == "" {
		table = DefaultTable
	}
	return &PostgresStore{db: db, table: table}
}

// EnsureSchema создает таблицу, если её ещё нет
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`, s.table)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%w: EnsureSchema - create table %s: %v", ErrExecQuery, s.table, err)
	}
	return nil
}

// Get возвращает значение по ключу или ErrKeyNotFound
func (s *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	query, args, err := psqlbuilder.Select("value").
		From(s.table).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: Get - scan value: %v", ErrScanRow, err)
	}

	return value, nil
}

// Set сохраняет значение (upsert по ключу)
func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	query, args, err := psqlbuilder.Insert(s.table).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет ключи; отсутствующие ключи игнорируются
func (s *PostgresStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := psqlbuilder.Delete(s.table).
		Where(squirrel.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// Ping проверяет соединение простым запросом
func (s *PostgresStore) Ping(ctx context.Context) error {
	var one int
	if err := s.db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("%w: Ping: %v", ErrExecQuery, err)
	}
	return nil
}
