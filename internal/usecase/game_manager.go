package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const publishTimeout = 2 * time.Second

type inputSource interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
	ReadPosition(ctx context.Context, prompt string) (int, error)
}

type outputSink interface {
	Welcome()
	RenderBoard(board entity.Board)
	InvalidMove()
	InvalidInput()
	Interrupted()
	Failure(err error)
	Winner(mark entity.Mark)
	Draw()
	Goodbye()
}

type gameEventRepo interface {
	Publish(ctx context.Context, event *entity.RoundEvent) error
}

// RoundResult is what is left of a round once it is over.
type RoundResult struct {
	ID          string
	Board       entity.Board
	Status      entity.Status
	Winner      entity.Mark
	Interrupted bool
}

type GameManager struct {
	logger *slog.Logger

	input  inputSource
	output outputSink
	events gameEventRepo
}

func NewGameManager(logger *slog.Logger, input inputSource, output outputSink, events gameEventRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		input:  input,
		output: output,
		events: events,
	}
}

// PlayRound - plays one game on a fresh board until it is won, drawn or interrupted.
// Every failure is reported to the output and play continues, so it never returns an error.
func (that *GameManager) PlayRound(ctx context.Context) *RoundResult {
	roundID := uuid.NewString()
	log := that.logger.With("method", "PlayRound", "round_id", roundID)

	game := entity.NewGame()
	that.output.Welcome()
	log.Info("round started")

	for {
		outcome, err := that.playTurn(ctx, game)

		var failure *apperror.UnanticipatedFailure
		switch {
		case err == nil:
		case errors.Is(err, apperror.ErrUnparseableInput):
			log.Debug("unparseable input", "error", err)
			that.output.InvalidInput()
			continue
		case errors.Is(err, apperror.ErrInvalidMove):
			log.Debug("invalid move", "player", game.Turn, "error", err)
			that.output.InvalidMove()
			continue
		case errors.Is(err, apperror.ErrInterrupted):
			log.Info("round interrupted")
			that.output.Interrupted()

			result := &RoundResult{ID: roundID, Board: game.Board, Status: entity.StatusInProgress, Interrupted: true}
			that.publish(ctx, log, resultEvent(result, entity.EventRoundInterrupted))

			return result
		case errors.As(err, &failure):
			log.Error("unanticipated failure", "error", failure)
			that.output.Failure(failure)
			continue
		default:
			failure = apperror.NewUnanticipatedFailure(err)
			log.Error("unanticipated failure", "error", err)
			that.output.Failure(failure)
			continue
		}

		log.Debug("move accepted", "player", outcome.Mover, "position", outcome.Position)
		that.publish(ctx, log, &entity.RoundEvent{
			RoundID:  roundID,
			Kind:     entity.EventMove,
			Position: outcome.Position,
			Mark:     outcome.Mover,
			Status:   outcome.Status,
			Winner:   outcome.Winner,
			Board:    game.Board,
			At:       time.Now().UTC(),
		})

		if !outcome.IsTerminal() {
			continue
		}

		that.output.RenderBoard(game.Board)
		if outcome.Status == entity.StatusWon {
			that.output.Winner(outcome.Winner)
		} else {
			that.output.Draw()
		}

		log.Info("round finished", "status", outcome.Status, "winner", outcome.Winner)

		result := &RoundResult{ID: roundID, Board: game.Board, Status: outcome.Status, Winner: outcome.Winner}
		that.publish(ctx, log, resultEvent(result, entity.EventRoundFinished))

		return result
	}
}

// playTurn - renders the board, asks the active player for a position and applies it.
func (that *GameManager) playTurn(ctx context.Context, game *entity.Game) (outcome tictactoe.Outcome, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = apperror.NewUnanticipatedFailure(recovered)
		}
	}()

	that.output.RenderBoard(game.Board)

	position, err := that.input.ReadPosition(ctx, console.MovePrompt(game.Turn))
	if err != nil {
		return tictactoe.Outcome{}, err
	}

	return tictactoe.MakeTurn(game, position)
}

// publish - feed failures are logged and never stop the game.
func (that *GameManager) publish(ctx context.Context, log *slog.Logger, event *entity.RoundEvent) {
	// an interrupted round still announces itself
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := that.events.Publish(ctx, event); err != nil {
		log.Warn("failed to publish round event", "kind", event.Kind, "error", err)
	}
}

func resultEvent(result *RoundResult, kind entity.EventKind) *entity.RoundEvent {
	return &entity.RoundEvent{
		RoundID: result.ID,
		Kind:    kind,
		Status:  result.Status,
		Winner:  result.Winner,
		Board:   result.Board,
		At:      time.Now().UTC(),
	}
}
