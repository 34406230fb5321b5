package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/engine"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
	"github.com/rocketscienceinc/othello-backend/internal/repository"
)

// Settings - operator toggles consumed by the computer turn.
type Settings struct {
	Depth       int  `json:"depth"`
	Pruning     bool `json:"pruning"`
	Debug       bool `json:"debug"`
	Diagnostics bool `json:"diagnostics"`
}

type statsRecorder interface {
	Save(ctx context.Context, record *entity.SearchRecord) error
	DeleteByGameID(ctx context.Context, gameID string) error
}

// Session - the live game between a human and the computer.
type Session struct {
	logger   *slog.Logger
	searcher *engine.Searcher
	recorder statsRecorder

	game     *entity.Game
	settings Settings
}

// NewSession - recorder may be nil when search statistics are not kept.
func NewSession(logger *slog.Logger, game *entity.Game, settings Settings, recorder statsRecorder) *Session {
	return &Session{
		logger:   logger.With("component", "session"),
		searcher: engine.NewSearcher(logger, settings.Pruning, settings.Debug),
		recorder: recorder,
		game:     game,
		settings: settings,
	}
}

func (that *Session) Game() *entity.Game {
	return that.game
}

func (that *Session) Settings() Settings {
	return that.settings
}

// ApplyHumanMove - plays (row, col) for the player to move and reports whether it was legal.
func (that *Session) ApplyHumanMove(row, col int) bool {
	player := that.game.Turn

	if !that.game.PlayMove(row, col) {
		that.logger.Debug("illegal move rejected", "player", player, "row", row, "col", col)
		return false
	}

	that.logger.Info("move played", "player", player, "move", othello.Move{Row: row, Col: col}, "next", that.game.Turn)
	that.logGameOver()

	return true
}

// RunComputerTurn - searches and plays the computer's move with the current settings.
func (that *Session) RunComputerTurn(ctx context.Context) (*othello.Move, error) {
	if err := that.game.ConfirmComputerTurn(); err != nil {
		return nil, fmt.Errorf("failed to run computer turn: %w", err)
	}

	player := that.game.Computer

	move := that.SelectMove(ctx, that.settings.Depth, player, that.settings.Pruning, that.settings.Diagnostics)
	if move == nil {
		return nil, fmt.Errorf("%w for %s", apperror.ErrNoLegalMoves, player)
	}

	if !that.game.PlayMove(move.Row, move.Col) {
		return nil, fmt.Errorf("engine chose illegal move %s for %s", move, player)
	}

	that.logger.Info("computer played", "player", player, "move", *move, "next", that.game.Turn)
	that.logGameOver()

	return move, nil
}

// SelectMove - runs a full-window search from the live board for player without playing the result.
// Diagnostics are logged and recorded when enabled.
func (that *Session) SelectMove(ctx context.Context, depth int, player othello.Player, pruning, diagnostics bool) *othello.Move {
	conf := engine.Config{
		Depth:   depth,
		Pruning: pruning,
		Debug:   that.settings.Debug,
	}

	result, stats := that.searcher.Search(that.game.Board, player, conf)

	var move *othello.Move
	if result.HasMove {
		move = &result.Move
	}

	if diagnostics {
		that.report(ctx, player, conf, result, stats, move)
	}

	return move
}

func (that *Session) report(ctx context.Context, player othello.Player, conf engine.Config, result engine.Result, stats engine.Stats, move *othello.Move) {
	log := that.logger.With("method", "report")

	log.Info("search finished",
		"states_examined", stats.Nodes,
		"prunes", stats.Prunes,
		"elapsed", stats.Elapsed,
		"score", result.Score,
	)

	if that.recorder == nil {
		return
	}

	record := &entity.SearchRecord{
		ID:        uuid.NewString(),
		GameID:    that.game.ID,
		Player:    player,
		Depth:     conf.Depth,
		Pruning:   conf.Pruning,
		Move:      move,
		Score:     result.Score,
		Nodes:     stats.Nodes,
		Prunes:    stats.Prunes,
		Elapsed:   stats.Elapsed,
		CreatedAt: time.Now().UTC(),
	}

	if err := that.recorder.Save(ctx, record); err != nil {
		log.Error("failed to record search stats", "error", err)
	}
}

// ResetGame - restores the starting position under a new game id; settings and the
// computer side are kept. Search records of the abandoned game are dropped.
func (that *Session) ResetGame(ctx context.Context) {
	oldID := that.game.ID

	that.game.Reset()
	that.logger.Info("game restarted", "game_id", that.game.ID, "turn", that.game.Turn)

	that.dropStats(ctx, oldID)
}

func (that *Session) dropStats(ctx context.Context, gameID string) {
	if that.recorder == nil {
		return
	}

	log := that.logger.With("method", "dropStats", "game_id", gameID)

	err := that.recorder.DeleteByGameID(ctx, gameID)
	switch {
	case errors.Is(err, repository.ErrStatsNotFound):
		log.Debug("no search stats to drop")
	case err != nil:
		log.Error("failed to drop search stats", "error", err)
	}
}

func (that *Session) SetDepth(depth int) error {
	if depth < 1 {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidDepth, depth)
	}

	that.settings.Depth = depth
	that.logger.Info("search depth changed", "depth", depth)

	return nil
}

func (that *Session) TogglePruning() bool {
	that.settings.Pruning = !that.settings.Pruning
	that.logger.Info("alpha-beta pruning toggled", "enabled", that.settings.Pruning)

	return that.settings.Pruning
}

func (that *Session) ToggleDebug() bool {
	that.settings.Debug = !that.settings.Debug
	that.logger.Info("debug mode toggled", "enabled", that.settings.Debug)

	return that.settings.Debug
}

// SwitchComputer - hands the computer the other colour.
func (that *Session) SwitchComputer() othello.Player {
	that.game.Computer = that.game.Computer.Opponent()
	that.logger.Info("computer side switched", "computer", that.game.Computer)

	return that.game.Computer
}

func (that *Session) logGameOver() {
	if !that.game.IsFinished() {
		return
	}

	white, black := that.game.Score()
	that.logger.Info("game over", "winner", that.game.Winner, "white", white, "black", black)
}
