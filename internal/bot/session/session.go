package session

import (
	"github.com/colpuxase-art/poketerps-sub000/internal/domains/card/model"
)

// AddStep walks the fixed add-wizard sequence. There is no backward
// transition; a mistake means cancel and restart.
type AddStep int

const (
	StepName AddStep = iota
	StepCategory
	StepGradeOrKind
	StepPotency
	StepDescription
	StepTerpenes
	StepAromas
	StepEffects
	StepAdvice
	StepImage
)

// AddSession accumulates a draft card across the add wizard.
type AddSession struct {
	Step  AddStep
	Draft model.Card
}

// EditSession tracks the edit wizard: which card, and once a field is
// picked, which field the next free-text reply fills.
type EditSession struct {
	CardID int64
	Field  string // empty until a field is picked
}

// DeleteSession tracks the delete wizard's pending confirmation.
type DeleteSession struct {
	CardID int64
}
