package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/othello-backend/internal/repository"
)

var (
	ErrBadArguments  = errors.New("bad arguments")
	ErrIllegalMove   = errors.New("illegal move")
	ErrStatsDisabled = errors.New("search statistics are disabled")
)

const noStatsText = "no search statistics for this game\n"

const helpText = `commands:
  m <row> <col>  play a move for the side to move
  g              let the computer move
  b              toggle search narration
  a              toggle alpha-beta pruning
  d <depth>      set the search depth
  c              switch the computer's colour
  r              restart the game
  p              print the board
  s              list recorded search statistics
  q              quit
`

func (that *Server) handleMove(_ context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: usage m <row> <col>", ErrBadArguments)
	}

	row, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: row %q", ErrBadArguments, args[0])
	}

	col, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: col %q", ErrBadArguments, args[1])
	}

	if !that.session.ApplyHumanMove(row, col) {
		return fmt.Errorf("%w: (%d, %d)", ErrIllegalMove, row, col)
	}

	that.printGame()

	return nil
}

func (that *Server) handleComputerTurn(ctx context.Context, _ []string) error {
	move, err := that.session.RunComputerTurn(ctx)
	if err != nil {
		return fmt.Errorf("computer turn: %w", err)
	}

	that.printf("Computer plays %s\n", move)
	that.printGame()

	return nil
}

func (that *Server) handleToggleDebug(_ context.Context, _ []string) error {
	that.printf("Debug Mode: %s\n", onOff(that.session.ToggleDebug()))
	return nil
}

func (that *Server) handleTogglePruning(_ context.Context, _ []string) error {
	that.printf("Alpha-Beta Pruning: %s\n", onOff(that.session.TogglePruning()))
	return nil
}

func (that *Server) handleDepth(_ context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: usage d <depth>", ErrBadArguments)
	}

	depth, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: depth %q", ErrBadArguments, args[0])
	}

	if err = that.session.SetDepth(depth); err != nil {
		return fmt.Errorf("set depth: %w", err)
	}

	that.printf("Depth: %d\n", depth)

	return nil
}

func (that *Server) handleSwitchComputer(_ context.Context, _ []string) error {
	that.printf("Computer: %s\n", that.session.SwitchComputer())
	return nil
}

func (that *Server) handleRestart(ctx context.Context, _ []string) error {
	that.session.ResetGame(ctx)
	that.printGame()

	return nil
}

func (that *Server) handlePrint(_ context.Context, _ []string) error {
	settings := that.session.Settings()

	that.printGame()
	that.printf("Depth: %d  Pruning: %s  Debug: %s\n", settings.Depth, onOff(settings.Pruning), onOff(settings.Debug))

	return nil
}

func (that *Server) handleStats(ctx context.Context, _ []string) error {
	if that.stats == nil {
		return ErrStatsDisabled
	}

	records, err := that.stats.ListByGameID(ctx, that.session.Game().ID)
	if errors.Is(err, repository.ErrStatsNotFound) {
		that.printf("%s", noStatsText)
		return nil
	}

	if err != nil {
		return fmt.Errorf("list stats: %w", err)
	}

	for _, record := range records {
		move := "none"
		if record.Move != nil {
			move = record.Move.String()
		}

		that.printf("%s depth=%d pruning=%s move=%s score=%d states=%d prunes=%d elapsed=%s\n",
			record.Player, record.Depth, onOff(record.Pruning), move, record.Score, record.Nodes, record.Prunes, record.Elapsed)
	}

	return nil
}

func (that *Server) handleHelp(_ context.Context, _ []string) error {
	that.printf("%s", helpText)
	return nil
}

func onOff(enabled bool) string {
	if enabled {
		return "ON"
	}
	return "OFF"
}
