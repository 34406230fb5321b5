package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrNotComputerTurn = errors.New("it's not the computer's turn")
	ErrNoLegalMoves    = errors.New("no legal moves")
	ErrInvalidDepth    = errors.New("search depth must be positive")
	ErrUnknownCommand  = errors.New("unknown command")
)
