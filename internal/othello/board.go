package othello

import (
	"fmt"
	"strings"
)

const Size = 8

type Cell uint8

const (
	Empty Cell = iota
	WhiteCell
	BlackCell
)

// Player values share their numeric encoding with the matching Cell.
type Player uint8

const (
	White Player = Player(WhiteCell)
	Black Player = Player(BlackCell)
)

// directions - the 8 compass directions walked from a target cell.
var directions = [8][2]int{
	{0, 1}, {1, 0}, {1, 1}, {1, -1},
	{0, -1}, {-1, 0}, {-1, -1}, {-1, 1},
}

func (that Player) Opponent() Player {
	if that == White {
		return Black
	}
	return White
}

func (that Player) Cell() Cell {
	return Cell(that)
}

func (that Player) String() string {
	switch that {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// ParsePlayer - converts a colour name into a Player.
func ParsePlayer(name string) (Player, error) {
	switch strings.ToLower(name) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}
}

func (that Cell) String() string {
	switch that {
	case WhiteCell:
		return "W"
	case BlackCell:
		return "B"
	default:
		return "."
	}
}

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Board is a value type; assigning it copies the whole grid.
type Board [Size][Size]Cell

// NewBoard - returns the canonical starting position.
func NewBoard() Board {
	var board Board

	board[3][3] = WhiteCell
	board[4][4] = WhiteCell
	board[3][4] = BlackCell
	board[4][3] = BlackCell

	return board
}

func IsOnBoard(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// bracketed - number of opponent pieces closed off by player in one direction.
func (that *Board) bracketed(row, col, dRow, dCol int, player Player) int {
	opponent := player.Opponent().Cell()

	r, c := row+dRow, col+dCol
	run := 0
	for IsOnBoard(r, c) && that[r][c] == opponent {
		r, c = r+dRow, c+dCol
		run++
	}

	if run == 0 || !IsOnBoard(r, c) || that[r][c] != player.Cell() {
		return 0
	}

	return run
}

func (that *Board) IsLegalMove(row, col int, player Player) bool {
	if !IsOnBoard(row, col) || that[row][col] != Empty {
		return false
	}

	for _, dir := range directions {
		if that.bracketed(row, col, dir[0], dir[1], player) > 0 {
			return true
		}
	}

	return false
}

// LegalMoves - all legal moves for player in row-major order.
func (that *Board) LegalMoves(player Player) []Move {
	var moves []Move

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that.IsLegalMove(row, col, player) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

func (that *Board) HasLegalMove(player Player) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that.IsLegalMove(row, col, player) {
				return true
			}
		}
	}

	return false
}

// ApplyMove - places a piece for player and flips every bracketed line.
// It returns the number of flipped pieces and false without touching
// the board when the move is not legal.
func (that *Board) ApplyMove(row, col int, player Player) (int, bool) {
	if !IsOnBoard(row, col) || that[row][col] != Empty {
		return 0, false
	}

	var runs [len(directions)]int
	total := 0
	for i, dir := range directions {
		runs[i] = that.bracketed(row, col, dir[0], dir[1], player)
		total += runs[i]
	}

	if total == 0 {
		return 0, false
	}

	that[row][col] = player.Cell()
	for i, dir := range directions {
		r, c := row, col
		for range runs[i] {
			r, c = r+dir[0], c+dir[1]
			that[r][c] = player.Cell()
		}
	}

	return total, true
}

// IsTerminal - neither player can move.
func (that *Board) IsTerminal() bool {
	return !that.HasLegalMove(White) && !that.HasLegalMove(Black)
}

func (that *Board) Count(player Player) int {
	count := 0
	for row := range that {
		for _, cell := range that[row] {
			if cell == player.Cell() {
				count++
			}
		}
	}

	return count
}

func (that Board) String() string {
	var sb strings.Builder

	sb.WriteString("  0 1 2 3 4 5 6 7\n")
	for row := range that {
		fmt.Fprintf(&sb, "%d", row)
		for _, cell := range that[row] {
			sb.WriteByte(' ')
			sb.WriteString(cell.String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
