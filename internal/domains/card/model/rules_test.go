package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	t.Run("accepts all categories case-insensitively", func(t *testing.T) {
		for _, in := range []string{"flower", "Flower", "HASH", " kief ", "Rosin"} {
			_, err := ParseCategory(in)
			assert.NoError(t, err, in)
		}
	})

	t.Run("rejects unknown token", func(t *testing.T) {
		_, err := ParseCategory("wax")
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})
}

func TestParseGrade(t *testing.T) {
	g, err := ParseGrade(" 90U ")
	require.NoError(t, err)
	assert.Equal(t, Grade90u, g)

	_, err = ParseGrade("45u")
	assert.ErrorIs(t, err, ErrInvalidGrade)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("SATIVA")
	require.NoError(t, err)
	assert.Equal(t, KindSativa, k)

	_, err = ParseKind("ruderalis")
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestNormalizeListField(t *testing.T) {
	t.Run("splits and trims", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c"}, NormalizeListField("a, b ,, c"))
	})

	t.Run("placeholder dash is empty", func(t *testing.T) {
		assert.Nil(t, NormalizeListField("-"))
		assert.Nil(t, NormalizeListField("  "))
	})
}

func TestFormatListField(t *testing.T) {
	assert.Equal(t, TextPlaceholder, FormatListField(nil))
	assert.Equal(t, "limonene, myrcene", FormatListField([]string{"limonene", "myrcene"}))
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, DefaultAdvice, NormalizeText("-", DefaultAdvice))
	assert.Equal(t, DefaultAdvice, NormalizeText("", DefaultAdvice))
	assert.Equal(t, "smooth", NormalizeText(" smooth ", DefaultAdvice))
}

func TestApplyCategoryRule(t *testing.T) {
	t.Run("flower defaults kind and drops grade", func(t *testing.T) {
		g := Grade90u
		c := Card{Category: CategoryFlower, Grade: &g}
		c.ApplyCategoryRule()
		assert.Nil(t, c.Grade)
		require.NotNil(t, c.Kind)
		assert.Equal(t, KindHybrid, *c.Kind)
	})

	t.Run("flower keeps explicit kind", func(t *testing.T) {
		k := KindIndica
		c := Card{Category: CategoryFlower, Kind: &k}
		c.ApplyCategoryRule()
		require.NotNil(t, c.Kind)
		assert.Equal(t, KindIndica, *c.Kind)
	})

	t.Run("sieved drops kind and keeps grade optional", func(t *testing.T) {
		k := KindSativa
		c := Card{Category: CategoryHash, Kind: &k}
		c.ApplyCategoryRule()
		assert.Nil(t, c.Kind)
		assert.Nil(t, c.Grade)
	})
}

func TestCheckCategoryRule(t *testing.T) {
	k := KindHybrid
	g := Grade120u

	t.Run("valid flower", func(t *testing.T) {
		c := Card{Category: CategoryFlower, Kind: &k}
		assert.NoError(t, c.CheckCategoryRule())
	})

	t.Run("grade on flower", func(t *testing.T) {
		c := Card{Category: CategoryFlower, Kind: &k, Grade: &g}
		assert.ErrorIs(t, c.CheckCategoryRule(), ErrGradeOnFlower)
	})

	t.Run("kind on sieved", func(t *testing.T) {
		c := Card{Category: CategoryRosin, Kind: &k}
		assert.ErrorIs(t, c.CheckCategoryRule(), ErrKindOnSieved)
	})

	t.Run("sieved without grade is fine", func(t *testing.T) {
		c := Card{Category: CategoryKief}
		assert.NoError(t, c.CheckCategoryRule())
	})
}

func TestBuildFieldPatch(t *testing.T) {
	flower := &Card{Category: CategoryFlower}
	hash := &Card{Category: CategoryHash}

	t.Run("name must not be empty", func(t *testing.T) {
		_, err := BuildFieldPatch(flower, FieldName, "-")
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("grade edit rejected on flower", func(t *testing.T) {
		_, err := BuildFieldPatch(flower, FieldGrade, "90u")
		assert.ErrorIs(t, err, ErrGradeOnFlower)
	})

	t.Run("kind edit rejected on sieved", func(t *testing.T) {
		_, err := BuildFieldPatch(hash, FieldKind, "indica")
		assert.ErrorIs(t, err, ErrKindOnSieved)
	})

	t.Run("invalid enum value surfaces parse error", func(t *testing.T) {
		_, err := BuildFieldPatch(hash, FieldGrade, "300u")
		assert.ErrorIs(t, err, ErrInvalidGrade)
	})

	t.Run("list fields normalized", func(t *testing.T) {
		p, err := BuildFieldPatch(flower, FieldTerpenes, "limonene , pinene")
		require.NoError(t, err)
		require.NotNil(t, p.Terpenes)
		assert.Equal(t, []string{"limonene", "pinene"}, *p.Terpenes)
	})

	t.Run("dash clears a list field", func(t *testing.T) {
		p, err := BuildFieldPatch(flower, FieldAromas, "-")
		require.NoError(t, err)
		require.NotNil(t, p.Aromas)
		assert.Empty(t, *p.Aromas)
	})

	t.Run("advice falls back to disclaimer", func(t *testing.T) {
		p, err := BuildFieldPatch(flower, FieldAdvice, "-")
		require.NoError(t, err)
		require.NotNil(t, p.Advice)
		assert.Equal(t, DefaultAdvice, *p.Advice)
	})

	t.Run("dash clears the image", func(t *testing.T) {
		p, err := BuildFieldPatch(flower, FieldImage, "-")
		require.NoError(t, err)
		require.NotNil(t, p.ImageURL)
		assert.Equal(t, "", *p.ImageURL)
	})

	t.Run("image must be a URL", func(t *testing.T) {
		_, err := BuildFieldPatch(flower, FieldImage, "not a url")
		assert.Error(t, err)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := BuildFieldPatch(flower, "price", "10")
		assert.ErrorIs(t, err, ErrInvalidField)
	})
}
