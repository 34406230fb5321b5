package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
	"github.com/rocketscienceinc/othello-backend/internal/service"
)

var errQuit = errors.New("quit")

type gameSession interface {
	Game() *entity.Game
	Settings() service.Settings

	ApplyHumanMove(row, col int) bool
	RunComputerTurn(ctx context.Context) (*othello.Move, error)
	ResetGame(ctx context.Context)

	SetDepth(depth int) error
	TogglePruning() bool
	ToggleDebug() bool
	SwitchComputer() othello.Player
}

type statsLister interface {
	ListByGameID(ctx context.Context, gameID string) ([]*entity.SearchRecord, error)
}

type handler func(ctx context.Context, args []string) error

// Server - line based front end: one command per line.
type Server struct {
	logger  *slog.Logger
	session gameSession
	stats   statsLister
	out     io.Writer

	handlers map[string]handler
}

// New - stats may be nil when search statistics are not kept.
func New(logger *slog.Logger, session gameSession, stats statsLister, out io.Writer) *Server {
	server := &Server{
		logger:  logger.With("component", "console"),
		session: session,
		stats:   stats,
		out:     out,

		handlers: make(map[string]handler),
	}

	server.handlers["m"] = server.handleMove
	server.handlers["g"] = server.handleComputerTurn
	server.handlers["b"] = server.handleToggleDebug
	server.handlers["a"] = server.handleTogglePruning
	server.handlers["d"] = server.handleDepth
	server.handlers["c"] = server.handleSwitchComputer
	server.handlers["r"] = server.handleRestart
	server.handlers["p"] = server.handlePrint
	server.handlers["s"] = server.handleStats
	server.handlers["h"] = server.handleHelp
	server.handlers["q"] = func(context.Context, []string) error { return errQuit }

	return server
}

// Serve - reads commands until quit, end of input or context cancellation.
func (that *Server) Serve(ctx context.Context, in io.Reader) error {
	log := that.logger.With("method", "Serve")

	that.printGame()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		err := that.Execute(ctx, scanner.Text())
		switch {
		case errors.Is(err, errQuit):
			return nil
		case err != nil:
			log.Warn("command failed", "error", err)
			that.printf("error: %v\n", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

// Execute - runs a single command line.
func (that *Server) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	handle, ok := that.handlers[strings.ToLower(fields[0])]
	if !ok {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownCommand, fields[0])
	}

	return handle(ctx, fields[1:])
}

func (that *Server) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func (that *Server) printGame() {
	game := that.session.Game()

	that.printf("%s", game.Board.String())

	white, black := game.Score()
	if game.IsFinished() {
		that.printf("Game Over! Winner: %s  Black: %d  White: %d\n", game.Winner, black, white)
		return
	}

	that.printf("Turn: %s  Computer: %s  Black: %d  White: %d\n", game.Turn, game.Computer, black, white)
}
