package model

import "errors"

// Repository-level errors
var (
	ErrCardNotFound = errors.New("card not found")
	ErrNoFeatured   = errors.New("no featured card")
)

// Validation errors
var (
	ErrInvalidCategory = errors.New("unknown category")
	ErrInvalidGrade    = errors.New("unknown grade")
	ErrInvalidKind     = errors.New("unknown kind")
	ErrInvalidField    = errors.New("unknown card field")
	ErrGradeOnFlower   = errors.New("flower cards carry a kind, not a grade")
	ErrKindOnSieved    = errors.New("only flower cards carry a kind")
	ErrNameRequired    = errors.New("card name must not be empty")
)
