package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/lmercier/pokecard-api/internal/domain"
	"github.com/lmercier/pokecard-api/internal/platform/logger"
	"github.com/lmercier/pokecard-api/internal/store"
)

// PostgresCardStore implements the store.CardStore interface using a
// PostgreSQL database as the storage backend.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the
// CardStore interface. The connection (or transaction) is managed by the
// caller. If logger is nil, the default logger is used.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// Ensure PostgresCardStore implements store.CardStore interface
var _ store.CardStore = (*PostgresCardStore)(nil)

// scanCardWithType reads one joined card+type row.
func scanCardWithType(scan func(dest ...any) error) (*domain.PokemonCard, error) {
	var card domain.PokemonCard
	var t domain.Type

	err := scan(
		&card.ID,
		&card.Name,
		&card.PokedexID,
		&card.TypeID,
		&card.LifePoints,
		&card.Size,
		&card.Weight,
		&card.ImageURL,
		&card.CreatedAt,
		&card.UpdatedAt,
		&t.ID,
		&t.Name,
	)
	if err != nil {
		return nil, err
	}

	card.Type = &t
	return &card, nil
}

// List implements store.CardStore.List
func (s *PostgresCardStore) List(ctx context.Context) ([]*domain.PokemonCard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT c.id, c.name, c.pokedex_id, c.type_id, c.life_points,
		       c.size, c.weight, c.image_url, c.created_at, c.updated_at,
		       t.id, t.name
		FROM pokemon_cards c
		JOIN types t ON t.id = c.type_id
		ORDER BY c.id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query cards", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	cards := []*domain.PokemonCard{}
	for rows.Next() {
		card, err := scanCardWithType(rows.Scan)
		if err != nil {
			log.Error("failed to scan card row", slog.String("error", err.Error()))
			return nil, err
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed cards", slog.Int("count", len(cards)))
	return cards, nil
}

// GetByID implements store.CardStore.GetByID
func (s *PostgresCardStore) GetByID(ctx context.Context, id int64) (*domain.PokemonCard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT c.id, c.name, c.pokedex_id, c.type_id, c.life_points,
		       c.size, c.weight, c.image_url, c.created_at, c.updated_at,
		       t.id, t.name
		FROM pokemon_cards c
		JOIN types t ON t.id = c.type_id
		WHERE c.id = $1
	`

	card, err := scanCardWithType(s.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("card not found", slog.Int64("card_id", id))
			return nil, store.ErrCardNotFound
		}
		log.Error("failed to get card by ID",
			slog.String("error", err.Error()),
			slog.Int64("card_id", id))
		return nil, err
	}

	return card, nil
}

// Create implements store.CardStore.Create
// The unique indexes on name and pokedex_id are the last line of defense
// against concurrent creates: a violation surfaces as store.ErrCardExists
// even when the handler's pre-check passed.
func (s *PostgresCardStore) Create(ctx context.Context, card *domain.PokemonCard) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.Validate(); err != nil {
		log.Warn("card validation failed during create",
			slog.String("error", err.Error()),
			slog.String("card_name", card.Name))
		return err
	}

	query := `
		INSERT INTO pokemon_cards
			(name, pokedex_id, type_id, life_points, size, weight, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		card.Name,
		card.PokedexID,
		card.TypeID,
		card.LifePoints,
		card.Size,
		card.Weight,
		card.ImageURL,
		card.CreatedAt,
		card.UpdatedAt,
	).Scan(&card.ID)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("unique violation during card creation",
				slog.String("card_name", card.Name),
				slog.Int("pokedex_id", int(card.PokedexID)))
			return store.ErrCardExists
		}
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during card creation",
				slog.String("card_name", card.Name),
				slog.Int64("type_id", card.TypeID))
			return MapError(err)
		}
		log.Error("failed to create card",
			slog.String("error", err.Error()),
			slog.String("card_name", card.Name))
		return err
	}

	log.Info("card created",
		slog.Int64("card_id", card.ID),
		slog.String("card_name", card.Name),
		slog.Int("pokedex_id", int(card.PokedexID)))
	return nil
}

// Update implements store.CardStore.Update
func (s *PostgresCardStore) Update(ctx context.Context, card *domain.PokemonCard) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.Validate(); err != nil {
		log.Warn("card validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("card_id", card.ID))
		return err
	}

	card.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE pokemon_cards
		SET name = $1, pokedex_id = $2, type_id = $3, life_points = $4,
		    size = $5, weight = $6, image_url = $7, updated_at = $8
		WHERE id = $9
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		card.Name,
		card.PokedexID,
		card.TypeID,
		card.LifePoints,
		card.Size,
		card.Weight,
		card.ImageURL,
		card.UpdatedAt,
		card.ID,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("unique violation during card update",
				slog.Int64("card_id", card.ID),
				slog.String("card_name", card.Name))
			return store.ErrCardExists
		}
		log.Error("failed to update card",
			slog.String("error", err.Error()),
			slog.Int64("card_id", card.ID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("card_id", card.ID))
		return err
	}
	if rowsAffected == 0 {
		log.Debug("card not found for update", slog.Int64("card_id", card.ID))
		return store.ErrCardNotFound
	}

	log.Info("card updated", slog.Int64("card_id", card.ID))
	return nil
}

// Delete implements store.CardStore.Delete
func (s *PostgresCardStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM pokemon_cards
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete card",
			slog.String("error", err.Error()),
			slog.Int64("card_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("card_id", id))
		return err
	}
	if rowsAffected == 0 {
		log.Debug("card not found for delete", slog.Int64("card_id", id))
		return store.ErrCardNotFound
	}

	log.Info("card deleted", slog.Int64("card_id", id))
	return nil
}

// FindConflicting implements store.CardStore.FindConflicting
func (s *PostgresCardStore) FindConflicting(
	ctx context.Context,
	name string,
	pokedexID int32,
	excludeID int64,
) (*domain.PokemonCard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT c.id, c.name, c.pokedex_id, c.type_id, c.life_points,
		       c.size, c.weight, c.image_url, c.created_at, c.updated_at,
		       t.id, t.name
		FROM pokemon_cards c
		JOIN types t ON t.id = c.type_id
		WHERE (c.name = $1 OR c.pokedex_id = $2) AND c.id <> $3
		LIMIT 1
	`

	card, err := scanCardWithType(s.db.QueryRowContext(ctx, query, name, pokedexID, excludeID).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCardNotFound
		}
		log.Error("failed to check for conflicting card",
			slog.String("error", err.Error()),
			slog.String("card_name", name),
			slog.Int("pokedex_id", int(pokedexID)))
		return nil, err
	}

	return card, nil
}
