package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const intro = `Welcome to Tic-tac-toe.
Below is the board's layout, with the positions in the squares.
1|2|3
-+-+-
4|5|6
-+-+-
7|8|9
Enter a position as above, after setup to make a move.
If there's no possibility of winning with a board's configuration, enter 'ff' to forfeit the round.
Enter 'quit' at any point in the game to exit.
`

// Console reads answers line by line and prints the game as plain text.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask prints the prompt and returns the next input line without its line ending,
// whatever its length. It returns io.EOF once the input is exhausted.
func (that *Console) Ask(prompt string) (string, error) {
	fmt.Fprint(that.out, prompt)

	line, err := that.in.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
		// last line without a line ending; the next Ask reports io.EOF
	case errors.Is(err, io.EOF):
		fmt.Fprintln(that.out)
		return "", io.EOF
	default:
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (that *Console) Say(msg string) {
	fmt.Fprintf(that.out, "%s\n\n", msg)
}

func (that *Console) Intro() {
	fmt.Fprintf(that.out, "%s\n", intro)
}

func (that *Console) ShowBoard(grid [entity.BoardSize][entity.BoardSize]entity.Mark) {
	var sb strings.Builder

	for row := range grid {
		cells := make([]string, 0, entity.BoardSize)
		for _, mark := range grid[row] {
			if mark.IsEmpty() {
				cells = append(cells, " ")
				continue
			}
			cells = append(cells, mark.String())
		}

		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n")

		if row < entity.BoardSize-1 {
			sb.WriteString("-+-+-\n")
		}
	}

	sb.WriteString("\n")
	fmt.Fprint(that.out, sb.String())
}
