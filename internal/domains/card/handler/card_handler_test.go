package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colpuxase-art/poketerps-sub000/internal/domains/card/model"
)

type stubService struct {
	cards    []model.Card
	featured *model.Card
	err      error
}

func (s *stubService) List(context.Context, *model.Category) ([]model.Card, error) {
	return s.cards, s.err
}

func (s *stubService) Get(context.Context, int64) (*model.Card, error) {
	return nil, model.ErrCardNotFound
}

func (s *stubService) Create(context.Context, *model.Card) (*model.Card, error) { return nil, s.err }

func (s *stubService) Update(context.Context, int64, *model.CardPatch) (*model.Card, error) {
	return nil, s.err
}

func (s *stubService) Delete(context.Context, int64) error { return s.err }

func (s *stubService) GetFeatured(context.Context) (*model.Card, error) {
	if s.featured == nil {
		return nil, model.ErrNoFeatured
	}
	return s.featured, nil
}

func (s *stubService) SetFeatured(context.Context, int64, *string) (*model.Card, error) {
	return nil, s.err
}

func (s *stubService) UnsetFeatured(context.Context) error { return s.err }

func serve(h gin.HandlerFunc, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET(path, h)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListCards(t *testing.T) {
	k := model.KindHybrid
	svc := &stubService{cards: []model.Card{
		{ID: 1, Name: "Gelato", Category: model.CategoryFlower, Kind: &k, Description: "sweet"},
	}}
	h := NewCardHandler(svc)

	w := serve(h.ListCards, "/api/cards")
	require.Equal(t, http.StatusOK, w.Code)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Gelato", got[0]["name"])

	// the description rides under both keys for the web client
	assert.Equal(t, "sweet", got[0]["description"])
	assert.Equal(t, "sweet", got[0]["desc"])
}

func TestListCardsEmptyIsArray(t *testing.T) {
	h := NewCardHandler(&stubService{})
	w := serve(h.ListCards, "/api/cards")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetFeaturedNull(t *testing.T) {
	h := NewCardHandler(&stubService{})
	w := serve(h.GetFeatured, "/api/featured")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestGetFeatured(t *testing.T) {
	title := "Drop of the week"
	h := NewCardHandler(&stubService{featured: &model.Card{
		ID: 2, Name: "Temple Ball", Category: model.CategoryHash,
		IsFeatured: true, FeaturedTitle: &title,
	}})

	w := serve(h.GetFeatured, "/api/featured")
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Temple Ball", got["name"])
	assert.Equal(t, true, got["is_featured"])
	assert.Equal(t, title, got["featured_title"])
}
