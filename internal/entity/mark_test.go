package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMark(t *testing.T) {
	t.Run("Accepts a single ASCII symbol", func(t *testing.T) {
		// When: creating a mark from "X"
		mark, err := NewMark("X")

		// Then: the mark should be created as is
		require.NoError(t, err)
		assert.Equal(t, Mark("X"), mark)
	})

	t.Run("Accepts a single non-ASCII symbol", func(t *testing.T) {
		// When: creating a mark from a multi-byte rune
		mark, err := NewMark("★")

		// Then: it counts as one symbol
		require.NoError(t, err)
		assert.Equal(t, "★", mark.String())
	})

	t.Run("Normalises a letter with a combining accent", func(t *testing.T) {
		// Given: "e" followed by U+0301 COMBINING ACUTE ACCENT
		raw := "e\u0301"

		// When: creating a mark from it
		mark, err := NewMark(raw)

		// Then: it is composed into a single "é"
		require.NoError(t, err)
		assert.Equal(t, Mark("\u00e9"), mark)
	})

	t.Run("Rejects invalid input", func(t *testing.T) {
		for _, raw := range []string{"", "XO", " ", "\t", "\x00", "quit"} {
			// When: creating a mark from invalid input
			mark, err := NewMark(raw)

			// Then: ErrInvalidMark is returned together with the empty mark
			require.ErrorIs(t, err, apperror.ErrInvalidMark, "input %q", raw)
			assert.True(t, mark.IsEmpty())
		}
	})
}

func TestMark_Valid(t *testing.T) {
	t.Run("Single printable symbols are valid", func(t *testing.T) {
		for _, mark := range []Mark{"X", "O", "#", "\u00e9", "★"} {
			assert.True(t, mark.Valid(), "mark %q", mark)
		}
	})

	t.Run("Everything else is invalid", func(t *testing.T) {
		for _, mark := range []Mark{EmptyCell, "XO", " ", "\n", "\x00", "e\u0301", "\xff"} {
			assert.False(t, mark.Valid(), "mark %q", mark)
		}
	})
}
