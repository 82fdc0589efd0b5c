package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Outcome describes an accepted move and the state it left the game in.
type Outcome struct {
	Position int
	Mover    entity.Mark
	Status   entity.Status
	Winner   entity.Mark
}

func (that Outcome) IsTerminal() bool {
	return that.Status != entity.StatusInProgress
}

// MakeTurn - applies the active player's move and advances the game.
func MakeTurn(gameInstance *entity.Game, position int) (Outcome, error) {
	if gameInstance.IsFinished() {
		return Outcome{}, apperror.ErrGameFinished
	}

	if !gameInstance.IsValidMove(position) {
		return Outcome{}, fmt.Errorf("invalid turn: %w: position %d", apperror.ErrInvalidMove, position)
	}

	mover := gameInstance.Turn
	if err := gameInstance.MakeMove(position); err != nil {
		return Outcome{}, fmt.Errorf("invalid turn: %w", err)
	}

	outcome := Outcome{
		Position: position,
		Mover:    mover,
	}
	updateGameStatus(gameInstance, &outcome)

	return outcome, nil
}

// updateGameStatus - checks the winner before the draw, switches the turn otherwise.
func updateGameStatus(gameInstance *entity.Game, outcome *Outcome) {
	if winner, ok := gameInstance.CheckWinner(); ok {
		outcome.Status = entity.StatusWon
		outcome.Winner = winner
		return
	}

	if gameInstance.CheckDraw() {
		outcome.Status = entity.StatusDraw
		return
	}

	outcome.Status = entity.StatusInProgress
	gameInstance.SwitchPlayer()
}
