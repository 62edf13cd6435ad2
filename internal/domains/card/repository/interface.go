package repository

import (
	"context"

	"github.com/colpuxase-art/poketerps-sub000/internal/domains/card/model"
)

// CardRepository is the data access contract for the cards table.
type CardRepository interface {
	// List returns all cards ordered by id ascending, optionally
	// filtered to one category.
	List(ctx context.Context, category *model.Category) ([]model.Card, error)

	// GetByID returns model.ErrCardNotFound when the id is absent.
	GetByID(ctx context.Context, id int64) (*model.Card, error)

	// Create inserts the card and returns it with the assigned id.
	Create(ctx context.Context, card *model.Card) (*model.Card, error)

	// Update applies a partial patch and returns the full updated row.
	// Fails with model.ErrCardNotFound when the id is absent.
	Update(ctx context.Context, id int64, patch *model.CardPatch) (*model.Card, error)

	// Delete removes the card. model.ErrCardNotFound when absent.
	Delete(ctx context.Context, id int64) error

	// GetFeatured returns the single featured card, or model.ErrNoFeatured.
	GetFeatured(ctx context.Context) (*model.Card, error)

	// SetFeatured unsets any current featured card, then features id.
	SetFeatured(ctx context.Context, id int64, title *string) (*model.Card, error)

	// UnsetFeatured clears the flag and title wherever they are set.
	UnsetFeatured(ctx context.Context) error
}
