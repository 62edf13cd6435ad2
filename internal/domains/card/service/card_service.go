package service

import (
	"context"
	"time"

	"github.com/colpuxase-art/poketerps-sub000/internal/domains/card/model"
	"github.com/colpuxase-art/poketerps-sub000/internal/domains/card/repository"
	"github.com/colpuxase-art/poketerps-sub000/pkg/cache"
	"github.com/colpuxase-art/poketerps-sub000/pkg/logger"
)

const (
	cacheKeyAllCards = "cards:all"
	cacheTTL         = 60 * time.Second
)

type cardService struct {
	repo  repository.CardRepository
	cache cache.Cache
}

// NewCardService creates the card service. Cache may be nil (tests).
func NewCardService(repo repository.CardRepository, c cache.Cache) CardService {
	return &cardService{repo: repo, cache: c}
}

func (s *cardService) List(ctx context.Context, category *model.Category) ([]model.Card, error) {
	// only the unfiltered list is cached; it backs the mini-app
	if category == nil && s.cache != nil {
		var cached []model.Card
		if found, err := s.cache.Get(ctx, cacheKeyAllCards, &cached); err == nil && found {
			return cached, nil
		}
	}

	cards, err := s.repo.List(ctx, category)
	if err != nil {
		return nil, err
	}

	if category == nil && s.cache != nil {
		if err := s.cache.Set(ctx, cacheKeyAllCards, cards, cacheTTL); err != nil {
			logger.Warn("List: cache set failed", err)
		}
	}
	return cards, nil
}

func (s *cardService) Get(ctx context.Context, id int64) (*model.Card, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *cardService) Create(ctx context.Context, card *model.Card) (*model.Card, error) {
	card.ApplyCategoryRule()
	if card.Name == "" {
		return nil, model.ErrNameRequired
	}

	created, err := s.repo.Create(ctx, card)
	if err != nil {
		return nil, err
	}
	if err := created.CheckCategoryRule(); err != nil {
		logger.Error("Create: category invariant violated after insert", err)
	}

	s.invalidate(ctx)
	return created, nil
}

func (s *cardService) Update(ctx context.Context, id int64, patch *model.CardPatch) (*model.Card, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	// A category change makes the old secondary attribute illegal:
	// moving to flower drops the grade and defaults the kind, moving
	// away from flower drops the kind.
	if patch.Category != nil {
		if *patch.Category == model.CategoryFlower {
			patch.ClearGrade = true
			if patch.Kind == nil {
				k := model.KindHybrid
				patch.Kind = &k
			}
		} else {
			patch.ClearKind = true
		}
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if err := updated.CheckCategoryRule(); err != nil {
		logger.Error("Update: category invariant violated after update", err)
	}

	s.invalidate(ctx)
	return updated, nil
}

func (s *cardService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *cardService) GetFeatured(ctx context.Context) (*model.Card, error) {
	return s.repo.GetFeatured(ctx)
}

func (s *cardService) SetFeatured(ctx context.Context, id int64, title *string) (*model.Card, error) {
	updated, err := s.repo.SetFeatured(ctx, id, title)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

func (s *cardService) UnsetFeatured(ctx context.Context) error {
	if err := s.repo.UnsetFeatured(ctx); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *cardService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cacheKeyAllCards); err != nil {
		logger.Warn("cache invalidation failed", err)
	}
}
