package entity

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"golang.org/x/text/unicode/norm"
)

// EmptyCell is the content of a cell nobody has played yet.
const EmptyCell Mark = ""

// Mark is the single symbol a player puts on the board.
type Mark string

// NewMark validates raw input as a mark. The input is NFC-normalised first,
// so a base letter with a combining accent is accepted as one symbol.
func NewMark(raw string) (Mark, error) {
	mark := Mark(norm.NFC.String(raw))
	if !mark.Valid() {
		return EmptyCell, fmt.Errorf("%w: got %q", apperror.ErrInvalidMark, raw)
	}

	return mark, nil
}

// Valid reports whether the mark is one printable, non-space symbol in NFC form.
func (that Mark) Valid() bool {
	symbol := string(that)
	if utf8.RuneCountInString(symbol) != 1 || !norm.NFC.IsNormalString(symbol) {
		return false
	}

	r, _ := utf8.DecodeRuneInString(symbol)
	return r != utf8.RuneError && unicode.IsPrint(r) && !unicode.IsSpace(r)
}

func (that Mark) IsEmpty() bool {
	return that == EmptyCell
}

func (that Mark) String() string {
	return string(that)
}
