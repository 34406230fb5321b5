package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	WinnerDraw = "-"
)

type Game struct {
	ID       string         `json:"id"`
	Board    othello.Board  `json:"board"`
	Turn     othello.Player `json:"turn"`
	First    othello.Player `json:"first"`
	Computer othello.Player `json:"computer"`
	Status   string         `json:"status"`
	Winner   string         `json:"winner,omitempty"`
}

// NewGame - creates a game on the canonical starting board.
func NewGame(first, computer othello.Player) *Game {
	game := &Game{
		First:    first,
		Computer: computer,
	}
	game.Reset()

	return game
}

// Reset - restores the starting board and hands the turn to the first mover.
// Every reset starts a new game id.
func (that *Game) Reset() {
	that.ID = uuid.NewString()
	that.Board = othello.NewBoard()
	that.Turn = that.First
	that.Status = StatusOngoing
	that.Winner = ""
}

// PlayMove - plays (row, col) for the player to move. It returns false and
// leaves the game unchanged when the move is illegal or the game is over.
func (that *Game) PlayMove(row, col int) bool {
	if that.IsFinished() {
		return false
	}

	if _, ok := that.Board.ApplyMove(row, col, that.Turn); !ok {
		return false
	}

	that.advanceTurn()

	return true
}

// advanceTurn - passes the turn unless the opponent is stuck, then checks for the end of the game.
func (that *Game) advanceTurn() {
	if that.Board.HasLegalMove(that.Turn.Opponent()) {
		that.Turn = that.Turn.Opponent()
	}

	if that.Board.IsTerminal() {
		that.Status = StatusFinished
		that.Winner = that.DetermineWinner()
	}
}

// DetermineWinner - colour with more pieces, or WinnerDraw.
func (that *Game) DetermineWinner() string {
	white, black := that.Board.Count(othello.White), that.Board.Count(othello.Black)

	switch {
	case white > black:
		return othello.White.String()
	case black > white:
		return othello.Black.String()
	default:
		return WinnerDraw
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsComputerTurn() bool {
	return that.IsOngoing() && that.Turn == that.Computer
}

// ConfirmComputerTurn - reports why the computer may not move now.
func (that *Game) ConfirmComputerTurn() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.Turn != that.Computer:
		return fmt.Errorf("%w: %s to move", apperror.ErrNotComputerTurn, that.Turn)
	default:
		return nil
	}
}

func (that *Game) Score() (white, black int) {
	return that.Board.Count(othello.White), that.Board.Count(othello.Black)
}
