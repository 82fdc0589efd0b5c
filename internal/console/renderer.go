package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	boardRuleWidth  = 17
	bannerRuleWidth = 40
	rowSeparator    = "  -----------"
)

// Renderer writes the board and the game messages to the console.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// FormatBoard draws the board followed by the position guide.
func FormatBoard(board entity.Board) string {
	var builder strings.Builder

	builder.WriteString("\n" + strings.Repeat("=", boardRuleWidth) + "\n")
	writeGrid(&builder, func(row, col int) string {
		return board[row][col].Glyph()
	})
	builder.WriteString(strings.Repeat("=", boardRuleWidth) + "\n")

	builder.WriteString("\nPosition guide:\n")
	writeGrid(&builder, func(row, col int) string {
		return fmt.Sprint(entity.PositionOf(entity.Cell{Row: row, Col: col}))
	})
	builder.WriteString("\n")

	return builder.String()
}

func writeGrid(builder *strings.Builder, glyph func(row, col int) string) {
	for row := range entity.BoardSize {
		fmt.Fprintf(builder, "  %s | %s | %s \n", glyph(row, 0), glyph(row, 1), glyph(row, 2))
		if row < entity.BoardSize-1 {
			builder.WriteString(rowSeparator + "\n")
		}
	}
}

func (that *Renderer) RenderBoard(board entity.Board) {
	that.print(FormatBoard(board))
}

func (that *Renderer) Welcome() {
	rule := strings.Repeat("=", bannerRuleWidth)

	that.println("\n" + rule)
	that.println("  Welcome to Tic-Tac-Toe!")
	that.println(rule)
	that.println("\nPlayers take turns. Enter a position (1-9) to make your move.")
	that.println("Player X goes first!\n")
}

func (that *Renderer) InvalidMove() {
	that.println("Invalid move! That position is already taken or out of range. Try again.")
}

func (that *Renderer) InvalidInput() {
	that.println("Invalid input! Please enter a number between 1 and 9.")
}

func (that *Renderer) Interrupted() {
	that.println("\n\nGame interrupted. Thanks for playing!")
}

func (that *Renderer) Failure(err error) {
	that.println("An error occurred: " + err.Error())
}

func (that *Renderer) Winner(mark entity.Mark) {
	that.println(fmt.Sprintf("\n🎉 Congratulations! Player %s wins! 🎉", mark))
}

func (that *Renderer) Draw() {
	that.println("\n🤝 It's a draw! Good game!")
}

func (that *Renderer) Goodbye() {
	that.println("\nThanks for playing! Goodbye!")
}

// console output has nowhere to report its own failures
func (that *Renderer) print(text string) {
	_, _ = io.WriteString(that.out, text)
}

func (that *Renderer) println(text string) {
	that.print(text + "\n")
}
