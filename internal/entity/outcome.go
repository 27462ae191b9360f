package entity

type Result int

const (
	Continue Result = iota
	Win
	Draw
)

func (that Result) String() string {
	switch that {
	case Continue:
		return "continue"
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Outcome is what a successful move produced. Winner is set only for Win.
type Outcome struct {
	Result Result
	Winner Mark
}

func (that Outcome) IsTerminal() bool {
	return that.Result == Win || that.Result == Draw
}

type Status string

const (
	StatusEmpty      Status = "empty"
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDrawn      Status = "drawn"
)

func (that Status) IsFinished() bool {
	return that == StatusWon || that == StatusDrawn
}
