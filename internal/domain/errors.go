package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Garden errors
	ErrMsgGardenFull      = "garden is full"
	ErrMsgIndexOutOfRange = "index out of range"
	ErrMsgNotFound        = "entry not found"
	ErrMsgSlotEmpty       = "garden slot is empty"

	// Inventory errors
	ErrMsgEmptyInventory  = "inventory is empty"
	ErrMsgInvalidIndex    = "invalid inventory index"
	ErrMsgNotASeed        = "item is not a seed"
	ErrMsgNotInInventory  = "item not in inventory"
	ErrMsgInvalidQuantity = "quantity must be positive"

	// Catalog errors
	ErrMsgSpeciesNotFound = "species not found"

	// Persistence errors
	ErrMsgInvalidSnapshot = "invalid state snapshot"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Garden errors
	ErrGardenFull      = errors.New(ErrMsgGardenFull)
	ErrIndexOutOfRange = errors.New(ErrMsgIndexOutOfRange)
	ErrNotFound        = errors.New(ErrMsgNotFound)
	ErrSlotEmpty       = errors.New(ErrMsgSlotEmpty)

	// Inventory errors
	ErrEmptyInventory  = errors.New(ErrMsgEmptyInventory)
	ErrNotASeed        = errors.New(ErrMsgNotASeed)
	ErrNotInInventory  = errors.New(ErrMsgNotInInventory)
	ErrInvalidQuantity = errors.New(ErrMsgInvalidQuantity)

	// ErrInvalidIndex is returned for inventory positions. It matches
	// ErrIndexOutOfRange under errors.Is so callers can treat both the same.
	ErrInvalidIndex = &indexError{msg: ErrMsgInvalidIndex}

	// Catalog errors
	ErrSpeciesNotFound = errors.New(ErrMsgSpeciesNotFound)

	// Persistence errors
	ErrInvalidSnapshot = errors.New(ErrMsgInvalidSnapshot)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

type indexError struct {
	msg string
}

func (e *indexError) Error() string { return e.msg }

func (e *indexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
