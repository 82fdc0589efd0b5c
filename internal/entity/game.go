package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Mark is the content of a board cell or the marker of a player.
type Mark string

const (
	Empty   Mark = ""
	PlayerX Mark = "X"
	PlayerO Mark = "O"
)

// Status is derived from the board after every move and never stored.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
)

const (
	BoardSize = 3

	MinPosition = 1
	MaxPosition = BoardSize * BoardSize
)

// Cell addresses one square of the board.
type Cell struct {
	Row int
	Col int
}

// WinLines - rows, then columns, then the main and the anti diagonal.
var WinLines = [8][3]Cell{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

type Board [BoardSize][BoardSize]Mark

// Game owns the board and the active player of a single round.
type Game struct {
	Board Board `json:"board"`
	Turn  Mark  `json:"player_turn"`
}

func NewGame() *Game {
	return &Game{
		Board: Board{},
		Turn:  PlayerX,
	}
}

// ToCell maps a 1-based position to its row and column in row-major order.
func ToCell(position int) Cell {
	return Cell{
		Row: (position - 1) / BoardSize,
		Col: (position - 1) % BoardSize,
	}
}

// PositionOf is the inverse of ToCell.
func PositionOf(cell Cell) int {
	return cell.Row*BoardSize + cell.Col + 1
}

func (that *Game) Cell(cell Cell) Mark {
	return that.Board[cell.Row][cell.Col]
}

func (that *Game) IsValidMove(position int) bool {
	if position < MinPosition || position > MaxPosition {
		return false
	}

	return that.Cell(ToCell(position)) == Empty
}

// MakeMove - places the active player's mark on the position.
func (that *Game) MakeMove(position int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !that.IsValidMove(position) {
		return fmt.Errorf("%w: position %d", apperror.ErrInvalidMove, position)
	}

	cell := ToCell(position)
	that.Board[cell.Row][cell.Col] = that.Turn

	return nil
}

// CheckWinner - returns the mark of the first complete line in scan order.
func (that *Game) CheckWinner() (Mark, bool) {
	for _, line := range WinLines {
		a, b, c := that.Cell(line[0]), that.Cell(line[1]), that.Cell(line[2])
		if a != Empty && a == b && b == c {
			return a, true
		}
	}

	return Empty, false
}

// CheckDraw reports a full board. It does not look for a winner, callers check that first.
func (that *Game) CheckDraw() bool {
	for _, row := range that.Board {
		for _, mark := range row {
			if mark == Empty {
				return false
			}
		}
	}

	return true
}

func (that *Game) SwitchPlayer() {
	that.Turn = that.Turn.Opponent()
}

func (that *Game) Status() (Status, Mark) {
	if winner, ok := that.CheckWinner(); ok {
		return StatusWon, winner
	}

	if that.CheckDraw() {
		return StatusDraw, Empty
	}

	return StatusInProgress, Empty
}

func (that *Game) IsFinished() bool {
	status, _ := that.Status()
	return status != StatusInProgress
}
