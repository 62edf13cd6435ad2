package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/colpuxase-art/poketerps-sub000/internal/domains/card/model"
	"github.com/colpuxase-art/poketerps-sub000/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const cardColumns = `id, name, category, grade, kind, potency, description,
		terpenes, aromas, effects, advice, image_url,
		is_featured, featured_title, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the pgx-backed card repository.
func NewPostgresRepository(pool *pgxpool.Pool) CardRepository {
	return &postgresRepository{pool: pool}
}

// rowScanner covers both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (*model.Card, error) {
	entity := &model.Card{}
	var grade, kind *string

	err := row.Scan(
		&entity.ID,
		&entity.Name,
		&entity.Category,
		&grade,
		&kind,
		&entity.Potency,
		&entity.Description,
		&entity.Terpenes,
		&entity.Aromas,
		&entity.Effects,
		&entity.Advice,
		&entity.ImageURL,
		&entity.IsFeatured,
		&entity.FeaturedTitle,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if grade != nil {
		g := model.Grade(*grade)
		entity.Grade = &g
	}
	if kind != nil {
		k := model.Kind(*kind)
		entity.Kind = &k
	}
	return entity, nil
}

func (r *postgresRepository) List(ctx context.Context, category *model.Category) ([]model.Card, error) {
	query := fmt.Sprintf(`SELECT %s FROM cards ORDER BY id ASC`, cardColumns)
	args := []any{}
	if category != nil {
		query = fmt.Sprintf(`SELECT %s FROM cards WHERE category = $1 ORDER BY id ASC`, cardColumns)
		args = append(args, *category)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error("List: query failed", err)
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	entities := make([]model.Card, 0)
	for rows.Next() {
		entity, err := scanCard(rows)
		if err != nil {
			logger.Error("List: scan error", err)
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		entities = append(entities, *entity)
	}
	if err = rows.Err(); err != nil {
		logger.Error("List: rows error", err)
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	return entities, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Card, error) {
	query := fmt.Sprintf(`SELECT %s FROM cards WHERE id = $1`, cardColumns)

	entity, err := scanCard(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCardNotFound
		}
		logger.Error("GetByID: database error", err)
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	return entity, nil
}

func (r *postgresRepository) Create(ctx context.Context, card *model.Card) (*model.Card, error) {
	query := fmt.Sprintf(`
		INSERT INTO cards (
			name, category, grade, kind, potency, description,
			terpenes, aromas, effects, advice, image_url,
			is_featured, featured_title, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING %s`, cardColumns)

	now := time.Now()
	row := r.pool.QueryRow(ctx, query,
		card.Name,
		card.Category,
		card.Grade,
		card.Kind,
		card.Potency,
		card.Description,
		card.Terpenes,
		card.Aromas,
		card.Effects,
		card.Advice,
		card.ImageURL,
		card.IsFeatured,
		card.FeaturedTitle,
		now,
		now,
	)

	created, err := scanCard(row)
	if err != nil {
		logger.Error("Create: database error", err)
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, patch *model.CardPatch) (*model.Card, error) {
	var setClauses []string
	var args []any
	argIndex := 1

	set := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Category != nil {
		set("category", *patch.Category)
	}
	switch {
	case patch.ClearGrade:
		set("grade", nil)
	case patch.Grade != nil:
		set("grade", *patch.Grade)
	}
	switch {
	case patch.ClearKind:
		set("kind", nil)
	case patch.Kind != nil:
		set("kind", *patch.Kind)
	}
	if patch.Potency != nil {
		set("potency", *patch.Potency)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Terpenes != nil {
		set("terpenes", *patch.Terpenes)
	}
	if patch.Aromas != nil {
		set("aromas", *patch.Aromas)
	}
	if patch.Effects != nil {
		set("effects", *patch.Effects)
	}
	if patch.Advice != nil {
		set("advice", *patch.Advice)
	}
	if patch.ImageURL != nil {
		if *patch.ImageURL == "" {
			set("image_url", nil)
		} else {
			set("image_url", *patch.ImageURL)
		}
	}

	set("updated_at", time.Now())

	query := fmt.Sprintf(`
		UPDATE cards
		SET %s
		WHERE id = $%d
		RETURNING %s`,
		strings.Join(setClauses, ", "), argIndex, cardColumns)
	args = append(args, id)

	updated, err := scanCard(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCardNotFound
		}
		logger.Error("Update: database error", err)
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM cards WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		logger.Error("Delete: database error", err)
		return fmt.Errorf("failed to delete card: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrCardNotFound
	}

	return nil
}

func (r *postgresRepository) GetFeatured(ctx context.Context) (*model.Card, error) {
	query := fmt.Sprintf(`SELECT %s FROM cards WHERE is_featured = true LIMIT 1`, cardColumns)

	entity, err := scanCard(r.pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoFeatured
		}
		logger.Error("GetFeatured: database error", err)
		return nil, fmt.Errorf("failed to get featured card: %w", err)
	}

	return entity, nil
}

// SetFeatured runs two guarded writes: unset-all, then set-target.
// Observers may briefly see zero featured cards between the writes;
// an accepted limitation on stores without multi-row transactions.
func (r *postgresRepository) SetFeatured(ctx context.Context, id int64, title *string) (*model.Card, error) {
	const unsetQuery = `
		UPDATE cards
		SET is_featured = false, featured_title = NULL, updated_at = NOW()
		WHERE is_featured = true`

	if _, err := r.pool.Exec(ctx, unsetQuery); err != nil {
		logger.Error("SetFeatured: unset failed", err)
		return nil, fmt.Errorf("failed to unset featured card: %w", err)
	}

	setQuery := fmt.Sprintf(`
		UPDATE cards
		SET is_featured = true, featured_title = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, cardColumns)

	updated, err := scanCard(r.pool.QueryRow(ctx, setQuery, id, title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCardNotFound
		}
		logger.Error("SetFeatured: set failed", err)
		return nil, fmt.Errorf("failed to set featured card: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) UnsetFeatured(ctx context.Context) error {
	const query = `
		UPDATE cards
		SET is_featured = false, featured_title = NULL, updated_at = NOW()
		WHERE is_featured = true`

	if _, err := r.pool.Exec(ctx, query); err != nil {
		logger.Error("UnsetFeatured: database error", err)
		return fmt.Errorf("failed to unset featured card: %w", err)
	}

	return nil
}
