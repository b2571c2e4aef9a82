package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateID   = errors.New("duplicate recipe id")
	ErrInvalidRecipe = errors.New("invalid recipe")
	ErrEmptySource   = errors.New("no recipes available")
)
