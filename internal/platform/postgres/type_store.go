package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/lmercier/pokecard-api/internal/domain"
	"github.com/lmercier/pokecard-api/internal/platform/logger"
	"github.com/lmercier/pokecard-api/internal/store"
)

// PostgresTypeStore implements the store.TypeStore interface using a
// PostgreSQL database as the storage backend.
type PostgresTypeStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTypeStore creates a new PostgreSQL implementation of the
// TypeStore interface. The connection (or transaction) is managed by the
// caller. If logger is nil, the default logger is used.
func NewPostgresTypeStore(db store.DBTX, logger *slog.Logger) *PostgresTypeStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTypeStore{
		db:     db,
		logger: logger.With(slog.String("component", "type_store")),
	}
}

// Ensure PostgresTypeStore implements store.TypeStore interface
var _ store.TypeStore = (*PostgresTypeStore)(nil)

// List implements store.TypeStore.List
func (s *PostgresTypeStore) List(ctx context.Context) ([]*domain.Type, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name
		FROM types
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query types", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	types := []*domain.Type{}
	for rows.Next() {
		var t domain.Type
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			log.Error("failed to scan type row", slog.String("error", err.Error()))
			return nil, err
		}
		types = append(types, &t)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return types, nil
}

// GetByName implements store.TypeStore.GetByName
func (s *PostgresTypeStore) GetByName(ctx context.Context, name string) (*domain.Type, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name
		FROM types
		WHERE name = $1
	`

	var t domain.Type
	err := s.db.QueryRowContext(ctx, query, name).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("type not found", slog.String("type_name", name))
			return nil, store.ErrTypeNotFound
		}
		log.Error("failed to get type by name",
			slog.String("error", err.Error()),
			slog.String("type_name", name))
		return nil, err
	}

	return &t, nil
}

// GetOrCreateByName implements store.TypeStore.GetOrCreateByName
// The upsert touches the existing row on conflict so that RETURNING
// always yields the canonical id, even when another request created
// the type concurrently.
func (s *PostgresTypeStore) GetOrCreateByName(ctx context.Context, name string) (*domain.Type, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	t := &domain.Type{Name: name}
	if err := t.Validate(); err != nil {
		log.Warn("type validation failed during get-or-create",
			slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		INSERT INTO types (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name
	`

	err := s.db.QueryRowContext(ctx, query, name).Scan(&t.ID, &t.Name)
	if err != nil {
		log.Error("failed to get or create type",
			slog.String("error", err.Error()),
			slog.String("type_name", name))
		return nil, MapError(err)
	}

	log.Debug("type resolved",
		slog.Int64("type_id", t.ID),
		slog.String("type_name", t.Name))
	return t, nil
}
