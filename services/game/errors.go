package game

import (
	"errors"

	"Farolero/services/poker"
)

// All action errors are recoverable: a rejected action leaves the game
// state untouched. The only hard failure is a corrupt snapshot on restore.
var (
	ErrIllegalTransition    = errors.New("action not allowed in current phase")
	ErrInsufficientResource = errors.New("no hands or discards remaining")
	ErrInsufficientCoins    = errors.New("insufficient coins")
	ErrCollectionFull       = errors.New("joker collection full")
	ErrCorruptSnapshot      = errors.New("corrupt snapshot")

	// Re-exported so drivers can dispatch on a single package.
	ErrInvalidIndex         = poker.ErrInvalidIndex
	ErrInvalidSelectionSize = poker.ErrInvalidSelectionSize
	ErrInsufficientCards    = poker.ErrInsufficientCards
)
