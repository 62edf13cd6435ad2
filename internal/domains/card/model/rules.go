package model

import "strings"

// ========================================
// VALIDATION RULES
// ========================================
// All business defaults and enum checks live here so handlers never
// embed them inline. Everything is pure and case-insensitive.

// ParseCategory resolves a user-supplied category token.
func ParseCategory(v string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(v))) {
	case CategoryFlower:
		return CategoryFlower, nil
	case CategoryHash:
		return CategoryHash, nil
	case CategoryKief:
		return CategoryKief, nil
	case CategoryRosin:
		return CategoryRosin, nil
	}
	return "", ErrInvalidCategory
}

// ParseGrade resolves a user-supplied grade token.
func ParseGrade(v string) (Grade, error) {
	switch Grade(strings.ToLower(strings.TrimSpace(v))) {
	case Grade70u:
		return Grade70u, nil
	case Grade90u:
		return Grade90u, nil
	case Grade120u:
		return Grade120u, nil
	case Grade160u:
		return Grade160u, nil
	}
	return "", ErrInvalidGrade
}

// ParseKind resolves a user-supplied kind token.
func ParseKind(v string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(v))) {
	case KindIndica:
		return KindIndica, nil
	case KindHybrid:
		return KindHybrid, nil
	case KindSativa:
		return KindSativa, nil
	}
	return "", ErrInvalidKind
}

// NormalizeListField splits comma-separated input into trimmed tokens,
// dropping empties. "-" (the placeholder) and blank input yield nil.
func NormalizeListField(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" || text == "-" {
		return nil
	}
	var out []string
	for _, tok := range strings.Split(text, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// FormatListField renders a list field for display; empty lists show
// the placeholder dash.
func FormatListField(items []string) string {
	if len(items) == 0 {
		return TextPlaceholder
	}
	return strings.Join(items, ", ")
}

// NormalizeText maps the "-" placeholder and blank input to fallback.
func NormalizeText(text, fallback string) string {
	text = strings.TrimSpace(text)
	if text == "" || text == "-" {
		return fallback
	}
	return text
}

// ApplyCategoryRule enforces grade/kind exclusivity on a card in place:
// flower cards get a kind (hybrid when unspecified) and never a grade;
// sieved cards get an optional grade and never a kind.
func (c *Card) ApplyCategoryRule() {
	if c.HasKind() {
		c.Grade = nil
		if c.Kind == nil {
			k := KindHybrid
			c.Kind = &k
		}
		return
	}
	c.Kind = nil
}

// CheckCategoryRule reports whether the card satisfies exclusivity
// without mutating it. Used as a post-write invariant check.
func (c *Card) CheckCategoryRule() error {
	if c.HasKind() {
		if c.Grade != nil {
			return ErrGradeOnFlower
		}
		if c.Kind == nil {
			return ErrInvalidKind
		}
		return nil
	}
	if c.Kind != nil {
		return ErrKindOnSieved
	}
	return nil
}
