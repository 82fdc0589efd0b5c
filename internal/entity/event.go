package entity

import "time"

type EventKind string

const (
	EventMove             EventKind = "move"
	EventRoundFinished    EventKind = "round_finished"
	EventRoundInterrupted EventKind = "round_interrupted"
)

// RoundEvent is broadcast to spectators after every accepted move and when a round ends.
type RoundEvent struct {
	RoundID  string    `json:"round_id"`
	Kind     EventKind `json:"kind"`
	Position int       `json:"position,omitempty"`
	Mark     Mark      `json:"mark,omitempty"`
	Status   Status    `json:"status"`
	Winner   Mark      `json:"winner,omitempty"`
	Board    Board     `json:"board"`
	At       time.Time `json:"at"`
}
