package bot

import (
	"fmt"
	"html"
	"strings"

	"github.com/colpuxase-art/poketerps-sub000/internal/domains/card/model"
)

// ==========================================
// CARD FORMATTERS (HTML parse mode)
// ==========================================

func formatCard(c *model.Card) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<b>#%d %s</b>\n", c.ID, html.EscapeString(c.Name))
	fmt.Fprintf(&b, "Category: %s\n", c.Category)
	if c.Kind != nil {
		fmt.Fprintf(&b, "Kind: %s\n", *c.Kind)
	}
	if c.Grade != nil {
		fmt.Fprintf(&b, "Grade: %s\n", *c.Grade)
	}
	fmt.Fprintf(&b, "Potency: %s\n", html.EscapeString(c.Potency))
	fmt.Fprintf(&b, "Description: %s\n", html.EscapeString(c.Description))
	fmt.Fprintf(&b, "Terpenes: %s\n", html.EscapeString(model.FormatListField(c.Terpenes)))
	fmt.Fprintf(&b, "Aromas: %s\n", html.EscapeString(model.FormatListField(c.Aromas)))
	fmt.Fprintf(&b, "Effects: %s\n", html.EscapeString(model.FormatListField(c.Effects)))
	fmt.Fprintf(&b, "\n<i>%s</i>", html.EscapeString(c.Advice))

	return b.String()
}

func formatCardLine(c *model.Card) string {
	extra := ""
	switch {
	case c.Kind != nil:
		extra = ", " + string(*c.Kind)
	case c.Grade != nil:
		extra = ", " + string(*c.Grade)
	}
	star := ""
	if c.IsFeatured {
		star = " ⭐"
	}
	return fmt.Sprintf("#%d %s (%s%s)%s", c.ID, html.EscapeString(c.Name), c.Category, extra, star)
}

func formatCardList(cards []model.Card) string {
	if len(cards) == 0 {
		return "The catalog is empty."
	}
	var b strings.Builder
	b.WriteString("<b>Catalog</b>\n")
	for i := range cards {
		b.WriteString(formatCardLine(&cards[i]))
		b.WriteString("\n")
	}
	return b.String()
}

// formatFeatured renders the spotlight card. The kind line shows only
// for flower cards, the grade line only when a grade is set.
func formatFeatured(c *model.Card) string {
	title := "Featured"
	if c.FeaturedTitle != nil && *c.FeaturedTitle != "" {
		title = *c.FeaturedTitle
	}

	var b strings.Builder
	fmt.Fprintf(&b, "⭐ <b>%s</b>\n\n", html.EscapeString(title))
	fmt.Fprintf(&b, "<b>%s</b> (%s)\n", html.EscapeString(c.Name), c.Category)
	if c.HasKind() && c.Kind != nil {
		fmt.Fprintf(&b, "Kind: %s\n", *c.Kind)
	}
	if c.Grade != nil {
		fmt.Fprintf(&b, "Grade: %s\n", *c.Grade)
	}
	fmt.Fprintf(&b, "%s", html.EscapeString(c.Description))
	return b.String()
}
