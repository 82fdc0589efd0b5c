package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrInvalidMove      = errors.New("position is already taken or out of range")
	ErrUnparseableInput = errors.New("input is not a number")
	ErrInterrupted      = errors.New("game interrupted")
)

// UnanticipatedFailure - any fault during a round that is not part of the game rules.
type UnanticipatedFailure struct {
	Description string
}

func NewUnanticipatedFailure(cause any) *UnanticipatedFailure {
	if err, ok := cause.(error); ok {
		return &UnanticipatedFailure{Description: err.Error()}
	}

	return &UnanticipatedFailure{Description: fmt.Sprint(cause)}
}

func (that *UnanticipatedFailure) Error() string {
	return that.Description
}
