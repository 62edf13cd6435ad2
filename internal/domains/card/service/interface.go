package service

import (
	"context"

	"github.com/colpuxase-art/poketerps-sub000/internal/domains/card/model"
)

// CardService is the business-logic contract over the card repository.
// It owns the featured-card invariant and the mini-app list cache.
type CardService interface {
	List(ctx context.Context, category *model.Category) ([]model.Card, error)
	Get(ctx context.Context, id int64) (*model.Card, error)
	Create(ctx context.Context, card *model.Card) (*model.Card, error)
	Update(ctx context.Context, id int64, patch *model.CardPatch) (*model.Card, error)
	Delete(ctx context.Context, id int64) error

	GetFeatured(ctx context.Context) (*model.Card, error)
	SetFeatured(ctx context.Context, id int64, title *string) (*model.Card, error)
	UnsetFeatured(ctx context.Context) error
}
