package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colpuxase-art/poketerps-sub000/internal/domains/card/model"
)

func TestFormatFeatured(t *testing.T) {
	t.Run("flower shows kind, never grade", func(t *testing.T) {
		k := model.KindSativa
		out := formatFeatured(&model.Card{
			Name:     "Gelato",
			Category: model.CategoryFlower,
			Kind:     &k,
		})
		assert.Contains(t, out, "Kind: sativa")
		assert.NotContains(t, out, "Grade:")
		assert.Contains(t, out, "⭐ <b>Featured</b>")
	})

	t.Run("sieved shows grade when set", func(t *testing.T) {
		g := model.Grade90u
		title := "Drop of the week"
		out := formatFeatured(&model.Card{
			Name:          "Temple Ball",
			Category:      model.CategoryHash,
			Grade:         &g,
			FeaturedTitle: &title,
		})
		assert.Contains(t, out, "Grade: 90u")
		assert.NotContains(t, out, "Kind:")
		assert.Contains(t, out, "Drop of the week")
	})

	t.Run("sieved without grade omits the line", func(t *testing.T) {
		out := formatFeatured(&model.Card{Name: "Kief", Category: model.CategoryKief})
		assert.NotContains(t, out, "Grade:")
	})
}

func TestFormatCardLine(t *testing.T) {
	k := model.KindIndica
	c := model.Card{ID: 3, Name: "Zkittlez", Category: model.CategoryFlower, Kind: &k, IsFeatured: true}
	assert.Equal(t, "#3 Zkittlez (flower, indica) ⭐", formatCardLine(&c))
}

func TestFormatCardEscapesHTML(t *testing.T) {
	c := model.Card{ID: 1, Name: "<b>sneaky</b>", Category: model.CategoryRosin}
	out := formatCard(&c)
	assert.NotContains(t, out, "<b>sneaky</b>")
	assert.Contains(t, out, "&lt;b&gt;sneaky&lt;/b&gt;")
}

func TestFormatCardListEmpty(t *testing.T) {
	assert.Equal(t, "The catalog is empty.", formatCardList(nil))
}
