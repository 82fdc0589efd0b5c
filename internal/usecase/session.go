package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/console"
)

type roundPlayer interface {
	PlayRound(ctx context.Context) *RoundResult
}

// Session plays rounds back to back for as long as the players want to.
type Session struct {
	logger *slog.Logger

	rounds roundPlayer
	input  inputSource
	output outputSink
}

func NewSession(logger *slog.Logger, rounds roundPlayer, input inputSource, output outputSink) *Session {
	return &Session{
		logger: logger.With("component", "session"),

		rounds: rounds,
		input:  input,
		output: output,
	}
}

// Run - plays a round, then asks to play again. An interrupted round ends the session at once.
func (that *Session) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	for played := 1; ; played++ {
		result := that.rounds.PlayRound(ctx)
		if result.Interrupted {
			log.Info("session interrupted", "rounds", played)
			return nil
		}

		answer, err := that.input.ReadLine(ctx, console.PlayAgainPrompt)
		if err != nil {
			log.Info("no answer to play again", "rounds", played, "error", err)
			return nil
		}

		if !IsAffirmative(answer) {
			that.output.Goodbye()
			log.Info("session finished", "rounds", played)
			return nil
		}
	}
}

// IsAffirmative accepts "yes" and "y" in any case, nothing else.
func IsAffirmative(answer string) bool {
	switch strings.ToLower(answer) {
	case "yes", "y":
		return true
	default:
		return false
	}
}
