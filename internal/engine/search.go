package engine

import (
	"log/slog"
	"math"
	"time"

	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

const (
	NegInfinity = math.MinInt
	PosInfinity = math.MaxInt
)

// Config - per-call search settings supplied by the caller.
type Config struct {
	Depth   int
	Pruning bool
	Debug   bool
}

// Result - the score of a node and the move that produced it.
// HasMove is false for leaves.
type Result struct {
	Score   int          `json:"score"`
	Move    othello.Move `json:"move"`
	HasMove bool         `json:"has_move"`
}

// Stats - diagnostics of one top-level search.
type Stats struct {
	Nodes   int           `json:"nodes"`
	Prunes  int           `json:"prunes"`
	Elapsed time.Duration `json:"elapsed"`
}

type Searcher struct {
	logger  *slog.Logger
	pruning bool
	debug   bool

	nodes  int
	prunes int
}

func NewSearcher(logger *slog.Logger, pruning, debug bool) *Searcher {
	return &Searcher{
		logger:  logger.With("component", "search"),
		pruning: pruning,
		debug:   debug,
	}
}

// Search - one-off full-window search for player.
func Search(logger *slog.Logger, board othello.Board, player othello.Player, conf Config) (Result, Stats) {
	return NewSearcher(logger, conf.Pruning, conf.Debug).Search(board, player, conf)
}

// Search - applies conf, clears the counters and runs a full-window search for player.
func (that *Searcher) Search(board othello.Board, player othello.Player, conf Config) (Result, Stats) {
	that.pruning = conf.Pruning
	that.debug = conf.Debug
	that.Reset()

	start := time.Now()
	result := that.Minimax(board, conf.Depth, true, NegInfinity, PosInfinity, player)

	stats := that.Stats()
	stats.Elapsed = time.Since(start)

	return result, stats
}

func (that *Searcher) Stats() Stats {
	return Stats{Nodes: that.nodes, Prunes: that.prunes}
}

// Reset - zeroes the node and prune counters.
func (that *Searcher) Reset() {
	that.nodes = 0
	that.prunes = 0
}

// Minimax - depth-bounded minimax with optional alpha-beta pruning.
// The perspective flips to the opponent at every ply. A node whose player
// has no legal move is scored as a leaf; the pass rule is not searched.
func (that *Searcher) Minimax(board othello.Board, depth int, maximizing bool, alpha, beta int, player othello.Player) Result {
	if depth == 0 || board.IsTerminal() {
		score := othello.Evaluate(&board, player)
		if that.debug {
			that.narrate("leaf", "depth", depth, "score", score)
		}

		return Result{Score: score}
	}

	moves := board.LegalMoves(player)
	if len(moves) == 0 {
		score := othello.Evaluate(&board, player)
		if that.debug {
			that.narrate("no legal moves", "depth", depth, "player", player, "score", score)
		}

		return Result{Score: score}
	}

	best := Result{Score: PosInfinity}
	if maximizing {
		best.Score = NegInfinity
	}

	for _, move := range moves {
		that.nodes++

		child := board
		child.ApplyMove(move.Row, move.Col, player)
		if that.debug {
			that.narrate("evaluating move", "depth", depth, "maximizing", maximizing, "move", move, "board", child.String())
		}

		score := that.Minimax(child, depth-1, !maximizing, alpha, beta, player.Opponent()).Score

		if (maximizing && score > best.Score) || (!maximizing && score < best.Score) {
			best = Result{Score: score, Move: move, HasMove: true}
		}

		if !that.pruning {
			continue
		}

		if maximizing {
			alpha = max(alpha, score)
		} else {
			beta = min(beta, score)
		}

		if beta <= alpha {
			that.prunes++
			if that.debug {
				that.narrate("pruning branch", "depth", depth, "move", move, "alpha", alpha, "beta", beta)
			}
			break
		}
	}

	if that.debug {
		that.narrate("best move", "depth", depth, "maximizing", maximizing, "move", best.Move, "score", best.Score)
	}

	return best
}

// narrate - callers check debug first so the arguments are not built on the hot path.
func (that *Searcher) narrate(msg string, args ...any) {
	that.logger.Info(msg, args...)
}
