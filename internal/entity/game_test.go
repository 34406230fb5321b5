package entity

import (
	"testing"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: create a new game
	game := NewGame(othello.Black, othello.White)

	// Then: the game starts from the canonical position with black to move
	assert.NotEmpty(t, game.ID)
	assert.Equal(t, othello.NewBoard(), game.Board)
	assert.Equal(t, othello.Black, game.Turn)
	assert.Equal(t, othello.White, game.Computer)
	assert.Equal(t, StatusOngoing, game.Status)
	assert.Empty(t, game.Winner)
}

func TestGame_PlayMove(t *testing.T) {
	t.Run("Legal move flips and passes the turn", func(t *testing.T) {
		// Given: a new game
		game := NewGame(othello.Black, othello.White)

		// When: black plays (2,3)
		ok := game.PlayMove(2, 3)

		// Then: the move is applied and white is to move
		require.True(t, ok)
		assert.Equal(t, othello.BlackCell, game.Board[3][3])
		assert.Equal(t, othello.White, game.Turn)

		white, black := game.Score()
		assert.Equal(t, 1, white)
		assert.Equal(t, 4, black)
	})

	t.Run("Illegal move leaves the game unchanged", func(t *testing.T) {
		// Given: a new game
		game := NewGame(othello.Black, othello.White)
		before := *game

		// When: black plays a cell that brackets nothing
		ok := game.PlayMove(0, 0)

		// Then: nothing changes
		assert.False(t, ok)
		assert.Equal(t, before, *game)
	})

	t.Run("Turn stays when the opponent has no move", func(t *testing.T) {
		// Given: after white takes (0,2), black has no reply but white can still move
		var board othello.Board
		board[0][0], board[0][1] = othello.WhiteCell, othello.BlackCell
		board[7][7], board[7][6] = othello.WhiteCell, othello.BlackCell

		game := &Game{Board: board, Turn: othello.White, Status: StatusOngoing}

		// When: white plays (0,2)
		ok := game.PlayMove(0, 2)

		// Then: white moves again
		require.True(t, ok)
		assert.Empty(t, game.Board.LegalMoves(othello.Black))
		assert.Equal(t, othello.White, game.Turn)
		assert.True(t, game.IsOngoing())
	})

	t.Run("Game ends when neither player can move", func(t *testing.T) {
		// Given: white's move wipes out black's last piece
		var board othello.Board
		board[0][0], board[0][1] = othello.WhiteCell, othello.BlackCell

		game := &Game{Board: board, Turn: othello.White, Status: StatusOngoing}

		// When: white plays (0,2)
		ok := game.PlayMove(0, 2)

		// Then: the game is finished and white wins
		require.True(t, ok)
		assert.True(t, game.IsFinished())
		assert.Equal(t, othello.White.String(), game.Winner)

		// And: no further moves are accepted
		assert.False(t, game.PlayMove(0, 3))
	})
}

func TestGame_DetermineWinner(t *testing.T) {
	t.Run("Draw on equal counts", func(t *testing.T) {
		game := NewGame(othello.Black, othello.White)

		assert.Equal(t, WinnerDraw, game.DetermineWinner())
	})

	t.Run("Black wins on more pieces", func(t *testing.T) {
		game := NewGame(othello.Black, othello.White)
		require.True(t, game.PlayMove(2, 3))

		assert.Equal(t, othello.Black.String(), game.DetermineWinner())
	})
}

func TestGame_ConfirmComputerTurn(t *testing.T) {
	t.Run("Returns nil on the computer's turn", func(t *testing.T) {
		game := NewGame(othello.Black, othello.Black)

		assert.NoError(t, game.ConfirmComputerTurn())
		assert.True(t, game.IsComputerTurn())
	})

	t.Run("Returns ErrNotComputerTurn on the human's turn", func(t *testing.T) {
		game := NewGame(othello.Black, othello.White)

		assert.ErrorIs(t, game.ConfirmComputerTurn(), apperror.ErrNotComputerTurn)
		assert.False(t, game.IsComputerTurn())
	})

	t.Run("Returns ErrGameFinished after the end", func(t *testing.T) {
		game := NewGame(othello.Black, othello.Black)
		game.Status = StatusFinished

		assert.ErrorIs(t, game.ConfirmComputerTurn(), apperror.ErrGameFinished)
	})
}

func TestGame_Reset(t *testing.T) {
	// Given: a game after a few moves
	game := NewGame(othello.Black, othello.White)
	oldID := game.ID
	require.True(t, game.PlayMove(2, 3))
	require.True(t, game.PlayMove(2, 2))
	game.Status = StatusFinished

	// When: the game is reset
	game.Reset()

	// Then: the canonical board and first mover are back
	assert.Equal(t, othello.NewBoard(), game.Board)
	assert.Equal(t, othello.Black, game.Turn)
	assert.Equal(t, StatusOngoing, game.Status)
	assert.Empty(t, game.Winner)
	assert.NotEqual(t, oldID, game.ID)
}
