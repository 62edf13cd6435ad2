package model

import "time"

// Category classifies a card. Flower is the only kind-bearing category;
// the sieved categories carry an optional particle-size grade instead.
type Category string

const (
	CategoryFlower Category = "flower"
	CategoryHash   Category = "hash"
	CategoryKief   Category = "kief"
	CategoryRosin  Category = "rosin"
)

// Grade is a micron screen size used by the non-flower categories.
type Grade string

const (
	Grade70u  Grade = "70u"
	Grade90u  Grade = "90u"
	Grade120u Grade = "120u"
	Grade160u Grade = "160u"
)

// Kind is the indica/sativa/hybrid classifier, flower only.
type Kind string

const (
	KindIndica Kind = "indica"
	KindHybrid Kind = "hybrid"
	KindSativa Kind = "sativa"
)

const (
	// DefaultAdvice is attached to every card unless the author wrote their own.
	DefaultAdvice = "Start low, go slow. Keep out of reach of minors. Do not drive or operate machinery."

	// TextPlaceholder stands in for potency/description left empty.
	TextPlaceholder = "—"
)

// Card is one catalog record shown in the bot and the mini-app.
// Exactly one of Grade/Kind may be set, selected by Category.
type Card struct {
	ID            int64     `db:"id"`
	Name          string    `db:"name"`
	Category      Category  `db:"category"`
	Grade         *Grade    `db:"grade"`
	Kind          *Kind     `db:"kind"`
	Potency       string    `db:"potency"`
	Description   string    `db:"description"`
	Terpenes      []string  `db:"terpenes"`
	Aromas        []string  `db:"aromas"`
	Effects       []string  `db:"effects"`
	Advice        string    `db:"advice"`
	ImageURL      *string   `db:"image_url"`
	IsFeatured    bool      `db:"is_featured"`
	FeaturedTitle *string   `db:"featured_title"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// HasKind reports whether the card's category carries the kind classifier.
func (c *Card) HasKind() bool {
	return c.Category == CategoryFlower
}
