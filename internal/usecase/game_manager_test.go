package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	errTerminalLost = errors.New("terminal lost")
	errRedisDown    = errors.New("redis down")
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.Empty
)

func TestGameManager_PlayRound(t *testing.T) {
	ctx := context.Background()

	t.Run("X wins on the anti diagonal", func(t *testing.T) {
		// Given: players entering X=5, O=1, X=3, O=9, X=7
		input := newScriptedInput(5, 1, 3, 9, 7)
		output := &recordingOutput{}
		events := acceptingEvents()
		manager := NewGameManager(discardLogger(), input, output, events)

		// When: the round is played
		result := manager.PlayRound(ctx)

		// Then: X won with the final board
		expectedBoard := entity.Board{
			{o, e, x},
			{e, x, e},
			{x, e, o},
		}
		assert.NotEmpty(t, result.ID)
		assert.Equal(t, entity.StatusWon, result.Status)
		assert.Equal(t, entity.PlayerX, result.Winner)
		assert.False(t, result.Interrupted)
		assert.Equal(t, expectedBoard, result.Board)

		// Then: the board was drawn before every turn and once more at the end
		require.Len(t, output.boards, 6)
		assert.Equal(t, entity.Board{}, output.boards[0])
		assert.Equal(t, expectedBoard, output.boards[5])
		assert.Equal(t, []string{"welcome", "winner:X"}, output.messages)

		// Then: players were prompted in turn order
		assert.Equal(t, []string{
			console.MovePrompt(x), console.MovePrompt(o), console.MovePrompt(x), console.MovePrompt(o), console.MovePrompt(x),
		}, input.prompts)

		// Then: every move and the result were published under the round id
		published := events.published()
		require.Len(t, published, 6)
		for i, position := range []int{5, 1, 3, 9, 7} {
			assert.Equal(t, entity.EventMove, published[i].Kind)
			assert.Equal(t, position, published[i].Position)
			assert.Equal(t, result.ID, published[i].RoundID)
		}
		assert.Equal(t, o, published[1].Mark)
		assert.Equal(t, entity.EventRoundFinished, published[5].Kind)
		assert.Equal(t, entity.PlayerX, published[5].Winner)
	})

	t.Run("Draw", func(t *testing.T) {
		input := newScriptedInput(1, 2, 3, 5, 4, 6, 8, 7, 9)
		output := &recordingOutput{}
		manager := NewGameManager(discardLogger(), input, output, acceptingEvents())

		result := manager.PlayRound(ctx)

		assert.Equal(t, entity.StatusDraw, result.Status)
		assert.Equal(t, entity.Empty, result.Winner)
		assert.Equal(t, []string{"welcome", "draw"}, output.messages)
	})

	t.Run("Rejected input re-prompts the same player without changing the board", func(t *testing.T) {
		// Given: garbage, out of range and occupied positions between valid moves
		input := newScriptedInput("abc", 0, 10, 5, 5, "", 1, 3, 9, 7)
		output := &recordingOutput{}
		manager := NewGameManager(discardLogger(), input, output, acceptingEvents())

		// When: the round is played
		result := manager.PlayRound(ctx)

		// Then: each rejection was reported and the game still ended as usual
		assert.Equal(t, []string{
			"welcome", "invalid_input", "invalid_move", "invalid_move",
			"invalid_move", "invalid_input", "winner:X",
		}, output.messages)
		assert.Equal(t, entity.PlayerX, result.Winner)

		// Then: X was asked until the first valid move, O was asked again after taking 5 failed
		assert.Equal(t, console.MovePrompt(x), input.prompts[3])
		assert.Equal(t, console.MovePrompt(o), input.prompts[4])
		assert.Equal(t, console.MovePrompt(o), input.prompts[5])
		assert.Equal(t, console.MovePrompt(o), input.prompts[6])

		// Then: boards drawn around rejections are unchanged
		assert.Equal(t, entity.Board{}, output.boards[3])
		assert.Equal(t, output.boards[4], output.boards[5])
	})

	t.Run("Oversized answer on the console is invalid input", func(t *testing.T) {
		// Given: a console where the first answer is one very long line
		in := strings.NewReader(strings.Repeat("a", 70_000) + "\n5\n1\n3\n9\n7\n")
		input := console.NewPrompter(in, io.Discard)
		t.Cleanup(input.Close)

		output := &recordingOutput{}
		manager := NewGameManager(discardLogger(), input, output, acceptingEvents())

		// When: the round is played
		result := manager.PlayRound(ctx)

		// Then: the long answer was rejected and the round still finished
		assert.False(t, result.Interrupted)
		assert.Equal(t, entity.StatusWon, result.Status)
		assert.Equal(t, entity.PlayerX, result.Winner)
		assert.Equal(t, []string{"welcome", "invalid_input", "winner:X"}, output.messages)
	})

	t.Run("Interrupt ends the round without finishing the game", func(t *testing.T) {
		// Given: X plays the center, then the players interrupt
		input := newScriptedInput(5, apperror.ErrInterrupted, 1)
		output := &recordingOutput{}
		events := acceptingEvents()
		manager := NewGameManager(discardLogger(), input, output, events)

		// When: the round is played
		result := manager.PlayRound(ctx)

		// Then: the round stops where it was
		assert.True(t, result.Interrupted)
		assert.Equal(t, entity.StatusInProgress, result.Status)
		assert.Equal(t, x, result.Board[1][1])
		assert.Equal(t, []string{"welcome", "interrupted"}, output.messages)
		assert.Len(t, input.answers, 1, "no further prompts after the interrupt")

		published := events.published()
		require.Len(t, published, 2)
		assert.Equal(t, entity.EventRoundInterrupted, published[1].Kind)
	})

	t.Run("Canceled context still publishes the interrupt", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		events := &mockGameEvents{}
		events.On("Publish", mock.MatchedBy(func(ctx context.Context) bool {
			return ctx.Err() == nil
		}), mock.Anything).Return(nil).Once()

		manager := NewGameManager(discardLogger(), newScriptedInput(apperror.ErrInterrupted), &recordingOutput{}, events)

		result := manager.PlayRound(canceled)

		assert.True(t, result.Interrupted)
		events.AssertExpectations(t)
	})

	t.Run("Unanticipated failure is reported and play continues", func(t *testing.T) {
		// Given: the input fails once and panics once in the middle of the game
		input := newScriptedInput(5, errTerminalLost, 1, panicAnswer("boom"), 3, 9, 7)
		output := &recordingOutput{}
		manager := NewGameManager(discardLogger(), input, output, acceptingEvents())

		// When: the round is played
		result := manager.PlayRound(ctx)

		// Then: both failures were shown and the game completed
		assert.Equal(t, []string{
			"welcome", "failure:terminal lost", "failure:boom", "winner:X",
		}, output.messages)
		assert.Equal(t, entity.StatusWon, result.Status)
	})

	t.Run("Event feed failures do not stop the game", func(t *testing.T) {
		events := &mockGameEvents{}
		events.On("Publish", mock.Anything, mock.Anything).Return(errRedisDown)

		manager := NewGameManager(discardLogger(), newScriptedInput(5, 1, 3, 9, 7), &recordingOutput{}, events)

		result := manager.PlayRound(ctx)

		assert.Equal(t, entity.StatusWon, result.Status)
		events.AssertNumberOfCalls(t, "Publish", 6)
	})

	t.Run("Every round starts on an empty board", func(t *testing.T) {
		manager := NewGameManager(discardLogger(), newScriptedInput(5, 1, 3, 9, 7, 1, 2), &recordingOutput{}, acceptingEvents())

		first := manager.PlayRound(ctx)
		second := manager.PlayRound(ctx)

		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, entity.Board{
			{x, o, e},
			{e, e, e},
			{e, e, e},
		}, second.Board)
	})
}
