package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ========================================
// PATCH DTO
// ========================================

// CardPatch is a partial update. Nil fields are left untouched; list
// fields use pointers for the same reason (set-to-empty vs. unset).
type CardPatch struct {
	Name        *string
	Category    *Category
	Grade       *Grade
	Kind        *Kind
	Potency     *string
	Description *string
	Terpenes    *[]string
	Aromas      *[]string
	Effects     *[]string
	Advice      *string
	ImageURL    *string

	// ClearGrade/ClearKind null the column; set by the service when a
	// category change makes the old secondary attribute illegal.
	ClearGrade bool
	ClearKind  bool
}

func (p CardPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name,
			validation.When(p.Name != nil, validation.Required.Error("card name must not be empty")),
		),
		validation.Field(&p.ImageURL,
			validation.When(p.ImageURL != nil && *p.ImageURL != "", is.URL.Error("image must be a URL")),
		),
	)
}

// ========================================
// EDITABLE FIELDS
// ========================================

// Field names accepted by /set and the edit wizard.
const (
	FieldName        = "name"
	FieldCategory    = "category"
	FieldGrade       = "grade"
	FieldKind        = "kind"
	FieldPotency     = "potency"
	FieldDescription = "description"
	FieldTerpenes    = "terpenes"
	FieldAromas      = "aromas"
	FieldEffects     = "effects"
	FieldAdvice      = "advice"
	FieldImage       = "image"
)

// EnumField reports whether the field is picked from a fixed set
// (button submenu in the edit wizard) rather than typed free-text.
func EnumField(field string) bool {
	switch field {
	case FieldCategory, FieldGrade, FieldKind:
		return true
	}
	return false
}

// BuildFieldPatch validates one field edit against the target card and
// returns the resulting patch. Grade edits on flower cards and kind
// edits on sieved cards are rejected, never coerced.
func BuildFieldPatch(target *Card, field, raw string) (*CardPatch, error) {
	p := &CardPatch{}
	switch field {
	case FieldName:
		name := NormalizeText(raw, "")
		if name == "" {
			return nil, ErrNameRequired
		}
		p.Name = &name
	case FieldCategory:
		cat, err := ParseCategory(raw)
		if err != nil {
			return nil, err
		}
		p.Category = &cat
	case FieldGrade:
		if target.HasKind() {
			return nil, ErrGradeOnFlower
		}
		g, err := ParseGrade(raw)
		if err != nil {
			return nil, err
		}
		p.Grade = &g
	case FieldKind:
		if !target.HasKind() {
			return nil, ErrKindOnSieved
		}
		k, err := ParseKind(raw)
		if err != nil {
			return nil, err
		}
		p.Kind = &k
	case FieldPotency:
		v := NormalizeText(raw, TextPlaceholder)
		p.Potency = &v
	case FieldDescription:
		v := NormalizeText(raw, TextPlaceholder)
		p.Description = &v
	case FieldTerpenes:
		v := NormalizeListField(raw)
		p.Terpenes = &v
	case FieldAromas:
		v := NormalizeListField(raw)
		p.Aromas = &v
	case FieldEffects:
		v := NormalizeListField(raw)
		p.Effects = &v
	case FieldAdvice:
		v := NormalizeText(raw, DefaultAdvice)
		p.Advice = &v
	case FieldImage:
		// empty string clears the image; the repository stores it as NULL
		v := NormalizeText(raw, "")
		p.ImageURL = &v
	default:
		return nil, ErrInvalidField
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// ========================================
// API RESPONSE DTO
// ========================================

// CardResponse is the mini-app JSON shape. Desc duplicates Description
// under the legacy key the web client still reads.
type CardResponse struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	Grade         *Grade   `json:"grade"`
	Kind          *Kind    `json:"kind"`
	Potency       string   `json:"potency"`
	Description   string   `json:"description"`
	Desc          string   `json:"desc"`
	Terpenes      []string `json:"terpenes"`
	Aromas        []string `json:"aromas"`
	Effects       []string `json:"effects"`
	Advice        string   `json:"advice"`
	ImageURL      *string  `json:"image_url"`
	IsFeatured    bool     `json:"is_featured"`
	FeaturedTitle *string  `json:"featured_title,omitempty"`
}

func NewCardResponse(c *Card) CardResponse {
	return CardResponse{
		ID:            c.ID,
		Name:          c.Name,
		Category:      c.Category,
		Grade:         c.Grade,
		Kind:          c.Kind,
		Potency:       c.Potency,
		Description:   c.Description,
		Desc:          c.Description,
		Terpenes:      c.Terpenes,
		Aromas:        c.Aromas,
		Effects:       c.Effects,
		Advice:        c.Advice,
		ImageURL:      c.ImageURL,
		IsFeatured:    c.IsFeatured,
		FeaturedTitle: c.FeaturedTitle,
	}
}

func NewCardResponseList(cards []Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for i := range cards {
		out = append(out, NewCardResponse(&cards[i]))
	}
	return out
}
