package bot

import (
	"fmt"
	"strconv"

	tele "gopkg.in/telebot.v3"

	"github.com/colpuxase-art/poketerps-sub000/internal/domains/card/model"
)

// ==========================================
// MENU BUILDERS
// ==========================================

func buildMainMenu(isAdmin bool, webAppURL string) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	if webAppURL != "" {
		btnApp := m.WebApp("Open catalog", &tele.WebApp{URL: webAppURL})
		rows = append(rows, m.Row(btnApp))
	}
	if isAdmin {
		btnAdmin := m.Data("Admin panel", cbMenuAdmin)
		rows = append(rows, m.Row(btnAdmin))
	}
	m.Inline(rows...)
	return m
}

func buildAdminMenu() *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	btnAdd := m.Data("New card", cbAddStart)
	btnEdit := m.Data("Edit card", cbEditStart)
	btnDelete := m.Data("Delete card", cbDeleteStart)
	btnBack := m.Data("🔙 Back", cbMenuMain)
	m.Inline(
		m.Row(btnAdd),
		m.Row(btnEdit, btnDelete),
		m.Row(btnBack),
	)
	return m
}

func buildCategoryMenu() *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	btnFlower := m.Data("Flower", cbAddCategory, string(model.CategoryFlower))
	btnHash := m.Data("Hash", cbAddCategory, string(model.CategoryHash))
	btnKief := m.Data("Kief", cbAddCategory, string(model.CategoryKief))
	btnRosin := m.Data("Rosin", cbAddCategory, string(model.CategoryRosin))
	btnCancel := m.Data("Cancel", cbAddCancel)
	m.Inline(
		m.Row(btnFlower, btnHash),
		m.Row(btnKief, btnRosin),
		m.Row(btnCancel),
	)
	return m
}

func buildGradeMenu(unique, cancelUnique string) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	btn70 := m.Data("70u", unique, string(model.Grade70u))
	btn90 := m.Data("90u", unique, string(model.Grade90u))
	btn120 := m.Data("120u", unique, string(model.Grade120u))
	btn160 := m.Data("160u", unique, string(model.Grade160u))
	btnCancel := m.Data("Cancel", cancelUnique)
	m.Inline(
		m.Row(btn70, btn90),
		m.Row(btn120, btn160),
		m.Row(btnCancel),
	)
	return m
}

func buildKindMenu(unique, cancelUnique string) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	btnIndica := m.Data("Indica", unique, string(model.KindIndica))
	btnHybrid := m.Data("Hybrid", unique, string(model.KindHybrid))
	btnSativa := m.Data("Sativa", unique, string(model.KindSativa))
	btnCancel := m.Data("Cancel", cancelUnique)
	m.Inline(
		m.Row(btnIndica, btnHybrid, btnSativa),
		m.Row(btnCancel),
	)
	return m
}

// buildCardPickMenu lists every card as a button; used by the edit and
// delete wizards (unique decides which).
func buildCardPickMenu(cards []model.Card, unique, cancelUnique string) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(cards)+1)
	for _, c := range cards {
		label := fmt.Sprintf("#%d %s (%s)", c.ID, c.Name, c.Category)
		rows = append(rows, m.Row(m.Data(label, unique, strconv.FormatInt(c.ID, 10))))
	}
	rows = append(rows, m.Row(m.Data("Cancel", cancelUnique)))
	m.Inline(rows...)
	return m
}

// buildEditFieldMenu shows the editable fields of one card; the grade
// button appears only on sieved cards, the kind button only on flower.
func buildEditFieldMenu(card *model.Card) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}

	fields := []string{model.FieldName, model.FieldCategory}
	if card.HasKind() {
		fields = append(fields, model.FieldKind)
	} else {
		fields = append(fields, model.FieldGrade)
	}
	fields = append(fields,
		model.FieldPotency, model.FieldDescription,
		model.FieldTerpenes, model.FieldAromas, model.FieldEffects,
		model.FieldAdvice, model.FieldImage,
	)

	rows := make([]tele.Row, 0, len(fields)/2+2)
	for i := 0; i < len(fields); i += 2 {
		if i+1 < len(fields) {
			rows = append(rows, m.Row(
				m.Data(fields[i], cbEditField, fields[i]),
				m.Data(fields[i+1], cbEditField, fields[i+1]),
			))
		} else {
			rows = append(rows, m.Row(m.Data(fields[i], cbEditField, fields[i])))
		}
	}
	rows = append(rows, m.Row(m.Data("Cancel", cbEditCancel)))
	m.Inline(rows...)
	return m
}

// buildEditValueMenu is the enum submenu for category/grade/kind edits.
func buildEditValueMenu(field string) *tele.ReplyMarkup {
	switch field {
	case model.FieldCategory:
		m := &tele.ReplyMarkup{}
		btnFlower := m.Data("Flower", cbEditValue, string(model.CategoryFlower))
		btnHash := m.Data("Hash", cbEditValue, string(model.CategoryHash))
		btnKief := m.Data("Kief", cbEditValue, string(model.CategoryKief))
		btnRosin := m.Data("Rosin", cbEditValue, string(model.CategoryRosin))
		btnCancel := m.Data("Cancel", cbEditCancel)
		m.Inline(
			m.Row(btnFlower, btnHash),
			m.Row(btnKief, btnRosin),
			m.Row(btnCancel),
		)
		return m
	case model.FieldGrade:
		return buildGradeMenu(cbEditValue, cbEditCancel)
	case model.FieldKind:
		return buildKindMenu(cbEditValue, cbEditCancel)
	}
	return nil
}

func buildDeleteConfirmMenu(cardID int64) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	btnYes := m.Data("Delete it", cbDeleteConfirm, strconv.FormatInt(cardID, 10))
	btnNo := m.Data("Cancel", cbDeleteCancel)
	m.Inline(m.Row(btnYes, btnNo))
	return m
}

func buildCancelMenu(cancelUnique string) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	m.Inline(m.Row(m.Data("Cancel", cancelUnique)))
	return m
}
