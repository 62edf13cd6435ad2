package bot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v3"

	"github.com/colpuxase-art/poketerps-sub000/internal/bot/session"
	"github.com/colpuxase-art/poketerps-sub000/internal/config"
	"github.com/colpuxase-art/poketerps-sub000/internal/domains/card/model"
	"github.com/colpuxase-art/poketerps-sub000/internal/domains/card/service"
)

// Handler is the conversation router: it interprets commands, callback
// actions and free-text replies against per-chat wizard sessions and
// issues card mutations on completion.
type Handler struct {
	cfg   *config.BotConfig
	cards service.CardService

	addSessions    session.Store[*session.AddSession]
	editSessions   session.Store[*session.EditSession]
	deleteSessions session.Store[*session.DeleteSession]
}

func NewHandler(
	cfg *config.BotConfig,
	cards service.CardService,
	addSessions session.Store[*session.AddSession],
	editSessions session.Store[*session.EditSession],
	deleteSessions session.Store[*session.DeleteSession],
) *Handler {
	return &Handler{
		cfg:            cfg,
		cards:          cards,
		addSessions:    addSessions,
		editSessions:   editSessions,
		deleteSessions: deleteSessions,
	}
}

// Register wires every route into the bot.
func (h *Handler) Register(b *tele.Bot) {
	b.Handle("/start", h.HandleStart)
	b.Handle("/help", h.HandleHelp)

	b.Handle("/cards", h.HandleCards)
	b.Handle("/card", h.HandleCard)
	b.Handle("/featured", h.HandleFeatured)
	b.Handle("/feature", h.HandleFeature)
	b.Handle("/unfeature", h.HandleUnfeature)
	b.Handle("/del", h.HandleDeleteByID)
	b.Handle("/set", h.HandleSetField)

	b.Handle("/add", h.HandleAddWizard)
	b.Handle("/edit", h.HandleEditWizard)
	b.Handle("/delete", h.HandleDeleteWizard)

	b.Handle(tele.OnCallback, h.HandleCallback)
	b.Handle(tele.OnText, h.HandleText)
}

func (h *Handler) ctx() context.Context {
	return context.Background()
}

func (h *Handler) isAdmin(c tele.Context) bool {
	return c.Sender() != nil && h.cfg.IsAdmin(c.Sender().ID)
}

// requireAdmin rejects non-admins with a message and no state change.
func (h *Handler) requireAdmin(c tele.Context) bool {
	if h.isAdmin(c) {
		return true
	}
	_ = c.Send("This action is restricted to catalog admins.")
	return false
}

func chatID(c tele.Context) int64 {
	if c.Chat() != nil {
		return c.Chat().ID
	}
	return c.Sender().ID
}

// replyErr maps domain errors onto user-visible messages.
func (h *Handler) replyErr(c tele.Context, err error) error {
	switch {
	case errors.Is(err, model.ErrCardNotFound):
		return c.Send("Card not found.")
	case errors.Is(err, model.ErrNoFeatured):
		return c.Send("Nothing is featured right now.")
	case isValidationErr(err):
		return c.Send("Invalid value: " + err.Error())
	default:
		return c.Send("Storage error: " + err.Error())
	}
}

func isValidationErr(err error) bool {
	for _, v := range []error{
		model.ErrInvalidCategory, model.ErrInvalidGrade, model.ErrInvalidKind,
		model.ErrInvalidField, model.ErrGradeOnFlower, model.ErrKindOnSieved,
		model.ErrNameRequired,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

// ==========================================
// DIRECT COMMANDS
// ==========================================

func (h *Handler) HandleStart(c tele.Context) error {
	return c.Send(
		"Welcome to the terp cards catalog.\nBrowse the cards in the mini-app below.",
		buildMainMenu(h.isAdmin(c), h.cfg.WebAppURL),
		tele.ModeHTML,
	)
}

func (h *Handler) HandleHelp(c tele.Context) error {
	help := "Commands:\n" +
		"/start — main menu\n" +
		"/cards [category] — list cards\n" +
		"/card <id> — show one card\n" +
		"/featured — show the spotlight card\n" +
		"/feature <id> [title] — set the spotlight\n" +
		"/unfeature — clear the spotlight\n" +
		"/add — add a card (wizard)\n" +
		"/edit — edit a card (wizard)\n" +
		"/delete — delete a card (wizard)\n" +
		"/set <id> <field> <value> — edit one field\n" +
		"/del <id> — delete by id"
	return c.Send(help)
}

func (h *Handler) HandleCards(c tele.Context) error {
	if !h.requireAdmin(c) {
		return nil
	}

	var category *model.Category
	if args := c.Args(); len(args) > 0 {
		cat, err := model.ParseCategory(args[0])
		if err != nil {
			return h.replyErr(c, err)
		}
		category = &cat
	}

	cards, err := h.cards.List(h.ctx(), category)
	if err != nil {
		return h.replyErr(c, err)
	}
	return c.Send(formatCardList(cards), tele.ModeHTML)
}

func (h *Handler) HandleCard(c tele.Context) error {
	if !h.requireAdmin(c) {
		return nil
	}
	id, ok := parseIDArg(c)
	if !ok {
		return c.Send("Usage: /card <id>")
	}

	card, err := h.cards.Get(h.ctx(), id)
	if err != nil {
		return h.replyErr(c, err)
	}
	return c.Send(formatCard(card), tele.ModeHTML)
}

func (h *Handler) HandleFeatured(c tele.Context) error {
	if !h.requireAdmin(c) {
		return nil
	}
	card, err := h.cards.GetFeatured(h.ctx())
	if err != nil {
		return h.replyErr(c, err)
	}
	return c.Send(formatFeatured(card), tele.ModeHTML)
}

func (h *Handler) HandleFeature(c tele.Context) error {
	if !h.requireAdmin(c) {
		return nil
	}
	args := c.Args()
	if len(args) == 0 {
		return c.Send("Usage: /feature <id> [title]")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.Send("Usage: /feature <id> [title]")
	}

	var title *string
	if len(args) > 1 {
		t := strings.Join(args[1:], " ")
		title = &t
	}

	card, err := h.cards.SetFeatured(h.ctx(), id, title)
	if err != nil {
		return h.replyErr(c, err)
	}
	return c.Send("Now featuring:\n\n"+formatFeatured(card), tele.ModeHTML)
}

func (h *Handler) HandleUnfeature(c tele.Context) error {
	if !h.requireAdmin(c) {
		return nil
	}
	if err := h.cards.UnsetFeatured(h.ctx()); err != nil {
		return h.replyErr(c, err)
	}
	return c.Send("Spotlight cleared.")
}

func (h *Handler) HandleDeleteByID(c tele.Context) error {
	if !h.requireAdmin(c) {
		return nil
	}
	id, ok := parseIDArg(c)
	if !ok {
		return c.Send("Usage: /del <id>")
	}

	if err := h.cards.Delete(h.ctx(), id); err != nil {
		return h.replyErr(c, err)
	}
	return c.Send("Card deleted.")
}

// HandleSetField is the one-shot edit: /set <id> <field> <value...>
func (h *Handler) HandleSetField(c tele.Context) error {
	if !h.requireAdmin(c) {
		return nil
	}
	args := c.Args()
	if len(args) < 3 {
		return c.Send("Usage: /set <id> <field> <value>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.Send("Usage: /set <id> <field> <value>")
	}
	field := strings.ToLower(args[1])
	value := strings.Join(args[2:], " ")

	target, err := h.cards.Get(h.ctx(), id)
	if err != nil {
		return h.replyErr(c, err)
	}

	patch, err := model.BuildFieldPatch(target, field, value)
	if err != nil {
		return h.replyErr(c, err)
	}

	updated, err := h.cards.Update(h.ctx(), id, patch)
	if err != nil {
		return h.replyErr(c, err)
	}
	return c.Send("Updated:\n\n"+formatCard(updated), tele.ModeHTML)
}

func parseIDArg(c tele.Context) (int64, bool) {
	args := c.Args()
	if len(args) != 1 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ==========================================
// WIZARD ENTRY POINTS
// ==========================================

func (h *Handler) HandleAddWizard(c tele.Context) error {
	if !h.requireAdmin(c) {
		return nil
	}
	h.addSessions.Set(chatID(c), &session.AddSession{Step: session.StepName})
	return c.Send("New card. Send the name.", buildCancelMenu(cbAddCancel))
}

func (h *Handler) HandleEditWizard(c tele.Context) error {
	if !h.requireAdmin(c) {
		return nil
	}
	cards, err := h.cards.List(h.ctx(), nil)
	if err != nil {
		return h.replyErr(c, err)
	}
	if len(cards) == 0 {
		return c.Send("The catalog is empty.")
	}
	h.editSessions.Set(chatID(c), &session.EditSession{})
	return c.Send("Pick a card to edit.", buildCardPickMenu(cards, cbEditCard, cbEditCancel))
}

func (h *Handler) HandleDeleteWizard(c tele.Context) error {
	if !h.requireAdmin(c) {
		return nil
	}
	cards, err := h.cards.List(h.ctx(), nil)
	if err != nil {
		return h.replyErr(c, err)
	}
	if len(cards) == 0 {
		return c.Send("The catalog is empty.")
	}
	h.deleteSessions.Set(chatID(c), &session.DeleteSession{})
	return c.Send("Pick a card to delete.", buildCardPickMenu(cards, cbDeleteCard, cbDeleteCancel))
}

// ==========================================
// CALLBACK DISPATCH
// ==========================================

func (h *Handler) HandleCallback(c tele.Context) error {
	// always ack so the button stops spinning
	defer func() { _ = c.Respond() }()

	act := parseAction(c.Callback().Data)

	switch act.Kind {
	case ActionMenuMain:
		return c.Send("Main menu.", buildMainMenu(h.isAdmin(c), h.cfg.WebAppURL))
	case ActionMenuAdmin:
		if !h.requireAdmin(c) {
			return nil
		}
		return c.Send("Admin panel.", buildAdminMenu())

	case ActionAddStart:
		return h.HandleAddWizard(c)
	case ActionAddCategory:
		return h.onAddCategory(c, act.Payload)
	case ActionAddGrade:
		return h.onAddGrade(c, act.Payload)
	case ActionAddKind:
		return h.onAddKind(c, act.Payload)
	case ActionAddCancel:
		h.addSessions.Delete(chatID(c))
		return c.Send("Add wizard cancelled.")

	case ActionEditStart:
		return h.HandleEditWizard(c)
	case ActionEditCard:
		return h.onEditCard(c, act.Payload)
	case ActionEditField:
		return h.onEditField(c, act.Payload)
	case ActionEditValue:
		return h.onEditValue(c, act.Payload)
	case ActionEditCancel:
		h.editSessions.Delete(chatID(c))
		return c.Send("Edit wizard cancelled.")

	case ActionDeleteStart:
		return h.HandleDeleteWizard(c)
	case ActionDeleteCard:
		return h.onDeleteCard(c, act.Payload)
	case ActionDeleteConfirm:
		return h.onDeleteConfirm(c, act.Payload)
	case ActionDeleteCancel:
		h.deleteSessions.Delete(chatID(c))
		return c.Send("Delete wizard cancelled.")
	}

	// unknown or foreign button; ignore
	return nil
}

// ==========================================
// ADD WIZARD
// ==========================================

func (h *Handler) onAddCategory(c tele.Context, payload string) error {
	if !h.isAdmin(c) {
		return nil
	}
	s, ok := h.addSessions.Get(chatID(c))
	if !ok || s.Step != session.StepCategory {
		return nil // stale button
	}

	cat, err := model.ParseCategory(payload)
	if err != nil {
		h.addSessions.Delete(chatID(c))
		return h.replyErr(c, err)
	}
	s.Draft.Category = cat
	s.Step = session.StepGradeOrKind
	h.addSessions.Set(chatID(c), s)

	if s.Draft.HasKind() {
		return c.Send("Pick the kind.", buildKindMenu(cbAddKind, cbAddCancel))
	}
	return c.Send("Pick the grade.", buildGradeMenu(cbAddGrade, cbAddCancel))
}

func (h *Handler) onAddGrade(c tele.Context, payload string) error {
	if !h.isAdmin(c) {
		return nil
	}
	s, ok := h.addSessions.Get(chatID(c))
	if !ok || s.Step != session.StepGradeOrKind || s.Draft.HasKind() {
		return nil
	}

	g, err := model.ParseGrade(payload)
	if err != nil {
		h.addSessions.Delete(chatID(c))
		return h.replyErr(c, err)
	}
	s.Draft.Grade = &g
	return h.advanceAdd(c, s, session.StepPotency)
}

func (h *Handler) onAddKind(c tele.Context, payload string) error {
	if !h.isAdmin(c) {
		return nil
	}
	s, ok := h.addSessions.Get(chatID(c))
	if !ok || s.Step != session.StepGradeOrKind || !s.Draft.HasKind() {
		return nil
	}

	k, err := model.ParseKind(payload)
	if err != nil {
		h.addSessions.Delete(chatID(c))
		return h.replyErr(c, err)
	}
	s.Draft.Kind = &k
	return h.advanceAdd(c, s, session.StepPotency)
}

var addPrompts = map[session.AddStep]string{
	session.StepPotency:     "Potency? (e.g. THC 22%, or - to skip)",
	session.StepDescription: "Description? (- to skip)",
	session.StepTerpenes:    "Terpenes, comma-separated? (- for none)",
	session.StepAromas:      "Aromas, comma-separated? (- for none)",
	session.StepEffects:     "Effects, comma-separated? (- for none)",
	session.StepAdvice:      "Advice text? (- for the standard disclaimer)",
	session.StepImage:       "Image URL? (- for none)",
}

func (h *Handler) advanceAdd(c tele.Context, s *session.AddSession, next session.AddStep) error {
	s.Step = next
	h.addSessions.Set(chatID(c), s)
	return c.Send(addPrompts[next], buildCancelMenu(cbAddCancel))
}

// onAddText fills the current free-text step of the add wizard.
func (h *Handler) onAddText(c tele.Context, s *session.AddSession) error {
	text := c.Text()

	switch s.Step {
	case session.StepName:
		name := model.NormalizeText(text, "")
		if name == "" {
			h.addSessions.Delete(chatID(c))
			return h.replyErr(c, model.ErrNameRequired)
		}
		s.Draft.Name = name
		s.Step = session.StepCategory
		h.addSessions.Set(chatID(c), s)
		return c.Send("Pick the category.", buildCategoryMenu())

	case session.StepCategory, session.StepGradeOrKind:
		return c.Send("Use the buttons above to pick.")

	case session.StepPotency:
		s.Draft.Potency = model.NormalizeText(text, model.TextPlaceholder)
		return h.advanceAdd(c, s, session.StepDescription)
	case session.StepDescription:
		s.Draft.Description = model.NormalizeText(text, model.TextPlaceholder)
		return h.advanceAdd(c, s, session.StepTerpenes)
	case session.StepTerpenes:
		s.Draft.Terpenes = model.NormalizeListField(text)
		return h.advanceAdd(c, s, session.StepAromas)
	case session.StepAromas:
		s.Draft.Aromas = model.NormalizeListField(text)
		return h.advanceAdd(c, s, session.StepEffects)
	case session.StepEffects:
		s.Draft.Effects = model.NormalizeListField(text)
		return h.advanceAdd(c, s, session.StepAdvice)
	case session.StepAdvice:
		s.Draft.Advice = model.NormalizeText(text, model.DefaultAdvice)
		return h.advanceAdd(c, s, session.StepImage)
	case session.StepImage:
		if img := model.NormalizeText(text, ""); img != "" {
			s.Draft.ImageURL = &img
		}
		return h.completeAdd(c, s)
	}

	return nil
}

// completeAdd assembles the final card and commits it. The session is
// destroyed whatever the outcome; a failed insert is never retried.
func (h *Handler) completeAdd(c tele.Context, s *session.AddSession) error {
	h.addSessions.Delete(chatID(c))

	created, err := h.cards.Create(h.ctx(), &s.Draft)
	if err != nil {
		return h.replyErr(c, err)
	}
	return c.Send("Card created:\n\n"+formatCard(created), tele.ModeHTML)
}

// ==========================================
// EDIT WIZARD
// ==========================================

func (h *Handler) onEditCard(c tele.Context, payload string) error {
	if !h.isAdmin(c) {
		return nil
	}
	s, ok := h.editSessions.Get(chatID(c))
	if !ok {
		return nil // stale button
	}
	id, err := strconv.ParseInt(payload, 10, 64)
	if err != nil {
		return nil
	}

	card, err := h.cards.Get(h.ctx(), id)
	if err != nil {
		h.editSessions.Delete(chatID(c))
		return h.replyErr(c, err)
	}

	s.CardID = card.ID
	s.Field = ""
	h.editSessions.Set(chatID(c), s)
	return c.Send("Editing "+formatCardLine(card)+". Pick a field.", buildEditFieldMenu(card), tele.ModeHTML)
}

func (h *Handler) onEditField(c tele.Context, payload string) error {
	if !h.isAdmin(c) {
		return nil
	}
	s, ok := h.editSessions.Get(chatID(c))
	if !ok || s.CardID == 0 {
		return nil
	}

	s.Field = payload
	h.editSessions.Set(chatID(c), s)

	if model.EnumField(payload) {
		markup := buildEditValueMenu(payload)
		if markup == nil {
			h.editSessions.Delete(chatID(c))
			return h.replyErr(c, model.ErrInvalidField)
		}
		return c.Send("Pick the new "+payload+".", markup)
	}
	return c.Send("Send the new value for "+payload+".", buildCancelMenu(cbEditCancel))
}

// onEditValue handles the enum submenu press: it writes the patch
// directly, no free-text round-trip.
func (h *Handler) onEditValue(c tele.Context, payload string) error {
	if !h.isAdmin(c) {
		return nil
	}
	s, ok := h.editSessions.Get(chatID(c))
	if !ok || s.CardID == 0 || !model.EnumField(s.Field) {
		return nil
	}
	return h.applyEdit(c, s, payload)
}

// applyEdit validates the value against the target card, commits the
// patch and destroys the session either way.
func (h *Handler) applyEdit(c tele.Context, s *session.EditSession, raw string) error {
	h.editSessions.Delete(chatID(c))

	target, err := h.cards.Get(h.ctx(), s.CardID)
	if err != nil {
		return h.replyErr(c, err)
	}

	patch, err := model.BuildFieldPatch(target, s.Field, raw)
	if err != nil {
		return h.replyErr(c, err)
	}

	updated, err := h.cards.Update(h.ctx(), s.CardID, patch)
	if err != nil {
		return h.replyErr(c, err)
	}
	return c.Send("Updated:\n\n"+formatCard(updated), tele.ModeHTML)
}

// ==========================================
// DELETE WIZARD
// ==========================================

func (h *Handler) onDeleteCard(c tele.Context, payload string) error {
	if !h.isAdmin(c) {
		return nil
	}
	s, ok := h.deleteSessions.Get(chatID(c))
	if !ok {
		return nil
	}
	id, err := strconv.ParseInt(payload, 10, 64)
	if err != nil {
		return nil
	}

	card, err := h.cards.Get(h.ctx(), id)
	if err != nil {
		h.deleteSessions.Delete(chatID(c))
		return h.replyErr(c, err)
	}

	s.CardID = card.ID
	h.deleteSessions.Set(chatID(c), s)
	return c.Send(
		"Delete "+formatCardLine(card)+"? This cannot be undone.",
		buildDeleteConfirmMenu(card.ID),
		tele.ModeHTML,
	)
}

func (h *Handler) onDeleteConfirm(c tele.Context, payload string) error {
	if !h.isAdmin(c) {
		return nil
	}
	s, ok := h.deleteSessions.Get(chatID(c))
	if !ok {
		return nil
	}
	id, err := strconv.ParseInt(payload, 10, 64)
	if err != nil {
		return nil
	}

	// stale-button guard: the confirmation must match the session's
	// target, not whatever id an old button still carries
	if id != s.CardID || s.CardID == 0 {
		return c.Send("This confirmation is no longer valid.")
	}

	h.deleteSessions.Delete(chatID(c))
	if err := h.cards.Delete(h.ctx(), id); err != nil {
		return h.replyErr(c, err)
	}
	return c.Send("Card deleted.")
}

// ==========================================
// FREE-TEXT DISPATCH
// ==========================================

// HandleText feeds free-text replies into whichever wizard is waiting
// for one. Non-admin text and command-looking text are ignored.
func (h *Handler) HandleText(c tele.Context) error {
	if !h.isAdmin(c) {
		return nil
	}
	if strings.HasPrefix(strings.TrimSpace(c.Text()), "/") {
		return nil
	}

	id := chatID(c)
	if s, ok := h.addSessions.Get(id); ok {
		return h.onAddText(c, s)
	}
	if s, ok := h.editSessions.Get(id); ok && s.CardID != 0 && s.Field != "" && !model.EnumField(s.Field) {
		return h.applyEdit(c, s, c.Text())
	}
	return nil
}
