package usecase

import (
	"context"
	"io"
	"log/slog"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/mock"
)

// panicAnswer makes the scripted input panic with its text.
type panicAnswer string

// scriptedInput answers prompts from a fixed script; an exhausted script reads as end of input.
type scriptedInput struct {
	answers []any
	prompts []string
}

func newScriptedInput(answers ...any) *scriptedInput {
	return &scriptedInput{answers: answers}
}

func (that *scriptedInput) ReadLine(_ context.Context, prompt string) (string, error) {
	that.prompts = append(that.prompts, prompt)

	if len(that.answers) == 0 {
		return "", apperror.ErrInterrupted
	}

	next := that.answers[0]
	that.answers = that.answers[1:]

	switch answer := next.(type) {
	case error:
		return "", answer
	case panicAnswer:
		panic(string(answer))
	case int:
		return strconv.Itoa(answer), nil
	default:
		return answer.(string), nil
	}
}

func (that *scriptedInput) ReadPosition(ctx context.Context, prompt string) (int, error) {
	text, err := that.ReadLine(ctx, prompt)
	if err != nil {
		return 0, err
	}

	position, err := strconv.Atoi(text)
	if err != nil {
		return 0, apperror.ErrUnparseableInput
	}

	return position, nil
}

// recordingOutput keeps every rendered board and a short tag per message.
type recordingOutput struct {
	boards   []entity.Board
	messages []string
}

func (that *recordingOutput) Welcome() { that.messages = append(that.messages, "welcome") }
func (that *recordingOutput) RenderBoard(board entity.Board) { that.boards = append(that.boards, board) }
func (that *recordingOutput) InvalidMove() { that.messages = append(that.messages, "invalid_move") }
func (that *recordingOutput) InvalidInput() { that.messages = append(that.messages, "invalid_input") }
func (that *recordingOutput) Interrupted() { that.messages = append(that.messages, "interrupted") }
func (that *recordingOutput) Failure(err error) { that.messages = append(that.messages, "failure:"+err.Error()) }
func (that *recordingOutput) Winner(mark entity.Mark) { that.messages = append(that.messages, "winner:"+string(mark)) }
func (that *recordingOutput) Draw() { that.messages = append(that.messages, "draw") }
func (that *recordingOutput) Goodbye() { that.messages = append(that.messages, "goodbye") }

type mockGameEvents struct {
	mock.Mock
}

func (that *mockGameEvents) Publish(ctx context.Context, event *entity.RoundEvent) error {
	args := that.Called(ctx, event)
	return args.Error(0)
}

func (that *mockGameEvents) published() []*entity.RoundEvent {
	events := make([]*entity.RoundEvent, 0, len(that.Calls))
	for _, call := range that.Calls {
		events = append(events, call.Arguments.Get(1).(*entity.RoundEvent))
	}

	return events
}

func acceptingEvents() *mockGameEvents {
	events := &mockGameEvents{}
	events.On("Publish", mock.Anything, mock.Anything).Return(nil)

	return events
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
