package othello

// positionWeights - corners are worth the most, the cells next to them
// hand corner access to the opponent.
var positionWeights = [Size][Size]int{
	{100, -10, 10, 10, 10, 10, -10, 100},
	{-10, -50, -2, -2, -2, -2, -50, -10},
	{10, -2, 0, 0, 0, 0, -2, 10},
	{10, -2, 0, 0, 0, 0, -2, 10},
	{10, -2, 0, 0, 0, 0, -2, 10},
	{10, -2, 0, 0, 0, 0, -2, 10},
	{-10, -50, -2, -2, -2, -2, -50, -10},
	{100, -10, 10, 10, 10, 10, -10, 100},
}

// Evaluate - static positional score of board from player's point of view.
// Evaluate(b, p) == -Evaluate(b, p.Opponent()) for every board.
func Evaluate(board *Board, player Player) int {
	own, opponent := player.Cell(), player.Opponent().Cell()

	score := 0
	for row := range board {
		for col, cell := range board[row] {
			switch cell {
			case own:
				score += positionWeights[row][col]
			case opponent:
				score -= positionWeights[row][col]
			}
		}
	}

	return score
}
