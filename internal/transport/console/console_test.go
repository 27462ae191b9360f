package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_Ask(t *testing.T) {
	t.Run("Returns lines in order", func(t *testing.T) {
		// Given: a console with two lines of input, the second with a CRLF ending
		out := &bytes.Buffer{}
		term := New(strings.NewReader("first\nsecond\r\n"), out)

		// When: asking twice
		first, err := term.Ask("a: ")
		require.NoError(t, err)
		second, err := term.Ask("b: ")
		require.NoError(t, err)

		// Then: both lines are returned without line endings, and prompts are printed
		assert.Equal(t, "first", first)
		assert.Equal(t, "second", second)
		assert.Equal(t, "a: b: ", out.String())
	})

	t.Run("Returns a line longer than the default scanner buffer", func(t *testing.T) {
		// Given: a 70000 character line followed by a short one
		long := strings.Repeat("X", 70000)
		term := New(strings.NewReader(long+"\nO\n"), &bytes.Buffer{})

		// When: asking twice
		first, err := term.Ask("a: ")
		require.NoError(t, err)
		second, err := term.Ask("b: ")
		require.NoError(t, err)

		// Then: the long line is returned whole and reading continues after it
		assert.Equal(t, long, first)
		assert.Equal(t, "O", second)
	})

	t.Run("Returns the last line without a line ending before io.EOF", func(t *testing.T) {
		// Given: input that does not end with a newline
		term := New(strings.NewReader("quit"), &bytes.Buffer{})

		// When: asking twice
		first, err := term.Ask("a: ")
		require.NoError(t, err)
		_, err = term.Ask("b: ")

		// Then: the line is returned, then io.EOF
		assert.Equal(t, "quit", first)
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("Returns io.EOF at end of input", func(t *testing.T) {
		// Given: a console with no input
		term := New(strings.NewReader(""), &bytes.Buffer{})

		// When: asking
		_, err := term.Ask("a: ")

		// Then: io.EOF is returned
		require.ErrorIs(t, err, io.EOF)
	})
}

func TestConsole_ShowBoard(t *testing.T) {
	// Given: a grid with a few marks
	out := &bytes.Buffer{}
	term := New(strings.NewReader(""), out)

	grid := [entity.BoardSize][entity.BoardSize]entity.Mark{
		{"X", "", "O"},
		{"", "X", ""},
		{"", "", "O"},
	}

	// When: rendering it
	term.ShowBoard(grid)

	// Then: empty cells are blank and rows are separated
	expected := "X| |O\n" +
		"-+-+-\n" +
		" |X| \n" +
		"-+-+-\n" +
		" | |O\n" +
		"\n"
	assert.Equal(t, expected, out.String())
}

func TestConsole_Say(t *testing.T) {
	out := &bytes.Buffer{}
	term := New(strings.NewReader(""), out)

	term.Say("Game Over!")

	assert.Equal(t, "Game Over!\n\n", out.String())
}

func TestConsole_Intro(t *testing.T) {
	out := &bytes.Buffer{}
	term := New(strings.NewReader(""), out)

	term.Intro()

	assert.Contains(t, out.String(), "Welcome to Tic-tac-toe.")
	assert.Contains(t, out.String(), "7|8|9")
	assert.True(t, strings.HasSuffix(out.String(), "Enter 'quit' at any point in the game to exit.\n\n"))
}
