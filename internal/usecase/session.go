package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

const (
	cmdQuit    = "quit"
	cmdForfeit = "ff"
	answerYes  = "y"
	answerNo   = "n"

	promptMark      = "Enter mark (player %d): "
	promptMove      = "Player %d\nEnter position: "
	promptPlayAgain = "Play again? [y/n]: "
	promptRematch   = "Rematch? [y/n]: "

	msgBadMark    = "Enter a mark with one value"
	msgSameMarks  = "Marks must be different"
	msgNoPosition = "Position does not exist"
	msgOccupied   = "Position is occupied"
	msgWin        = "Player '%s' wins!"
	msgDraw       = "Game Over!"
	msgGoodbye    = "GOODBYE!"
)

// selectors maps the digits shown in the intro to cells, row-major.
var selectors = map[string]entity.Position{
	"1": {Row: 0, Col: 0},
	"2": {Row: 0, Col: 1},
	"3": {Row: 0, Col: 2},
	"4": {Row: 1, Col: 0},
	"5": {Row: 1, Col: 1},
	"6": {Row: 1, Col: 2},
	"7": {Row: 2, Col: 0},
	"8": {Row: 2, Col: 1},
	"9": {Row: 2, Col: 2},
}

type terminal interface {
	Ask(prompt string) (string, error)
	Say(msg string)
	Intro()
	ShowBoard(grid [entity.BoardSize][entity.BoardSize]entity.Mark)
}

type action int

const (
	actionMove action = iota
	actionForfeit
	actionQuit
)

// GameSession drives games on a terminal until the players quit.
type GameSession struct {
	logger *slog.Logger
	term   terminal

	// marks used for every game instead of asking; zero value means ask.
	preset [2]entity.Mark
}

func NewGameSession(logger *slog.Logger, term terminal, preset [2]entity.Mark) *GameSession {
	return &GameSession{
		logger: logger.With("component", "session"),
		term:   term,
		preset: preset,
	}
}

// Run plays games until a player quits, declines to play again, or the input ends.
func (that *GameSession) Run(ctx context.Context) error {
	that.term.Intro()

	for {
		board, ok, err := that.newBoard(ctx)
		if err != nil {
			return fmt.Errorf("failed to set up players: %w", err)
		}

		if !ok {
			return nil
		}

		again, err := that.playGame(ctx, board)
		if err != nil {
			return fmt.Errorf("failed to play game: %w", err)
		}

		if !again {
			return nil
		}
	}
}

func (that *GameSession) newBoard(ctx context.Context) (*tictactoe.Board, bool, error) {
	if !that.preset[0].IsEmpty() || !that.preset[1].IsEmpty() {
		board, err := tictactoe.NewBoard(that.preset[0], that.preset[1])
		if err != nil {
			return nil, false, fmt.Errorf("invalid preset marks: %w", err)
		}

		return board, true, nil
	}

	var marks [2]entity.Mark
	for i := 0; i < len(marks); {
		answer, ok, err := that.ask(ctx, fmt.Sprintf(promptMark, i+1))
		if err != nil || !ok {
			return nil, false, err
		}

		if answer == cmdQuit {
			return nil, false, nil
		}

		mark, err := entity.NewMark(answer)
		if err != nil {
			that.term.Say(msgBadMark)
			continue
		}

		if i > 0 && mark == marks[0] {
			that.term.Say(msgSameMarks)
			continue
		}

		marks[i] = mark
		i++
	}

	board, err := tictactoe.NewBoard(marks[0], marks[1])
	if err != nil {
		return nil, false, fmt.Errorf("failed to create board: %w", err)
	}

	return board, true, nil
}

// playGame returns true when the players want another game with new marks.
func (that *GameSession) playGame(ctx context.Context, board *tictactoe.Board) (bool, error) {
	log := that.logger.With("method", "playGame")

	marks := board.Marks()
	log.Info("game started", "first", marks[0].String(), "second", marks[1].String())

	that.term.ShowBoard(board.Grid())

	for {
		act, pos, err := that.askMove(ctx, board)
		if err != nil {
			return false, err
		}

		switch act {
		case actionQuit:
			log.Info("player quit", "mark", board.CurrentMark().String())
			return false, nil
		case actionForfeit:
			log.Info("round forfeited", "mark", board.CurrentMark().String())

			rematch, err := that.askReplay(ctx, promptRematch)
			if err != nil || !rematch {
				return false, err
			}

			board.Reset()
			that.term.ShowBoard(board.Grid())
			continue
		case actionMove:
		}

		outcome, err := board.ApplyMove(pos)
		if errors.Is(err, apperror.ErrCellOccupied) {
			that.term.Say(msgOccupied)
			continue
		}

		if err != nil {
			return false, fmt.Errorf("failed to apply move at %s: %w", pos, err)
		}

		log.Debug("move applied", "position", pos.String(), "filled", board.Filled())
		that.term.ShowBoard(board.Grid())

		switch outcome.Result {
		case entity.Win:
			that.term.Say(fmt.Sprintf(msgWin, outcome.Winner))
		case entity.Draw:
			that.term.Say(msgDraw)
		case entity.Continue:
			continue
		}

		log.Info("game finished", "result", outcome.Result.String(), "winner", outcome.Winner.String())

		return that.askReplay(ctx, promptPlayAgain)
	}
}

func (that *GameSession) askMove(ctx context.Context, board *tictactoe.Board) (action, entity.Position, error) {
	for {
		answer, ok, err := that.ask(ctx, fmt.Sprintf(promptMove, board.Turn()+1))
		if err != nil {
			return actionQuit, entity.Position{}, err
		}

		if !ok {
			return actionQuit, entity.Position{}, nil
		}

		selector := strings.ToLower(strings.TrimSpace(answer))
		switch selector {
		case cmdQuit:
			return actionQuit, entity.Position{}, nil
		case cmdForfeit:
			return actionForfeit, entity.Position{}, nil
		}

		pos, found := selectors[selector]
		if !found {
			that.term.Say(msgNoPosition)
			continue
		}

		return actionMove, pos, nil
	}
}

func (that *GameSession) askReplay(ctx context.Context, prompt string) (bool, error) {
	for {
		answer, ok, err := that.ask(ctx, prompt)
		if err != nil || !ok {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case answerYes:
			return true, nil
		case answerNo, cmdQuit:
			that.term.Say(msgGoodbye)
			return false, nil
		}
	}
}

// ask returns ok=false once the input has ended.
func (that *GameSession) ask(ctx context.Context, prompt string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	answer, err := that.term.Ask(prompt)
	if errors.Is(err, io.EOF) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("failed to read answer: %w", err)
	}

	return answer, true, nil
}
