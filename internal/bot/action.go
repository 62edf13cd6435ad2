package bot

import "strings"

// Callback buttons carry "\f<unique>|<payload>" on the wire. Tokens are
// decoded once, here, into a typed Action; handlers dispatch on Kind
// instead of prefix-matching raw strings.

type ActionKind int

const (
	ActionUnknown ActionKind = iota

	// menu navigation (stateless re-renders)
	ActionMenuMain
	ActionMenuAdmin

	// add wizard
	ActionAddStart
	ActionAddCategory // payload: category token
	ActionAddGrade    // payload: grade token
	ActionAddKind     // payload: kind token
	ActionAddCancel

	// edit wizard
	ActionEditStart
	ActionEditCard  // payload: card id
	ActionEditField // payload: field name
	ActionEditValue // payload: enum value for the session's field
	ActionEditCancel

	// delete wizard
	ActionDeleteStart
	ActionDeleteCard    // payload: card id
	ActionDeleteConfirm // payload: card id, must match the session
	ActionDeleteCancel
)

type Action struct {
	Kind    ActionKind
	Payload string
}

// Button unique tokens. Keep them short; Telegram caps callback data
// at 64 bytes including the payload.
const (
	cbMenuMain  = "menu_main"
	cbMenuAdmin = "menu_admin"

	cbAddStart    = "add_start"
	cbAddCategory = "add_cat"
	cbAddGrade    = "add_grade"
	cbAddKind     = "add_kind"
	cbAddCancel   = "add_cancel"

	cbEditStart  = "edit_start"
	cbEditCard   = "edit_card"
	cbEditField  = "edit_field"
	cbEditValue  = "edit_val"
	cbEditCancel = "edit_cancel"

	cbDeleteStart   = "del_start"
	cbDeleteCard    = "del_card"
	cbDeleteConfirm = "del_confirm"
	cbDeleteCancel  = "del_cancel"
)

var actionKinds = map[string]ActionKind{
	cbMenuMain:  ActionMenuMain,
	cbMenuAdmin: ActionMenuAdmin,

	cbAddStart:    ActionAddStart,
	cbAddCategory: ActionAddCategory,
	cbAddGrade:    ActionAddGrade,
	cbAddKind:     ActionAddKind,
	cbAddCancel:   ActionAddCancel,

	cbEditStart:  ActionEditStart,
	cbEditCard:   ActionEditCard,
	cbEditField:  ActionEditField,
	cbEditValue:  ActionEditValue,
	cbEditCancel: ActionEditCancel,

	cbDeleteStart:   ActionDeleteStart,
	cbDeleteCard:    ActionDeleteCard,
	cbDeleteConfirm: ActionDeleteConfirm,
	cbDeleteCancel:  ActionDeleteCancel,
}

// parseAction decodes raw callback data. Anything unrecognized maps to
// ActionUnknown; stale or foreign buttons must never crash dispatch.
func parseAction(data string) Action {
	data = strings.TrimPrefix(strings.TrimSpace(data), "\f")
	unique, payload, _ := strings.Cut(data, "|")

	kind, ok := actionKinds[unique]
	if !ok {
		return Action{Kind: ActionUnknown, Payload: data}
	}
	return Action{Kind: kind, Payload: payload}
}
