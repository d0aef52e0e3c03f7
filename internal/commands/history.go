package commands

import (
	"fmt"
	"slices"
	"strings"

	"addressbook/internal/domain"
)

const (
	HistoryWord  = "history"
	HistoryUsage = HistoryWord + ": Lists all the commands that you have entered in reverse " +
		"chronological order."

	MessageHistorySuccess = "Entered commands (from most recent to earliest):\n%s"
	MessageNoHistory      = "You have not yet entered any commands."
)

// HistorySource hands out the entered command lines, oldest first.
type HistorySource interface {
	History() []string
}

// HistoryCommand lists what the user typed, most recent first.
type HistoryCommand struct {
	Source HistorySource
}

func (c *HistoryCommand) Execute(domain.Model) (Result, error) {
	var lines []string
	if c.Source != nil {
		lines = slices.Clone(c.Source.History())
	}
	if len(lines) == 0 {
		return Result{Feedback: MessageNoHistory}, nil
	}
	slices.Reverse(lines)
	return Result{Feedback: fmt.Sprintf(MessageHistorySuccess, strings.Join(lines, "\n"))}, nil
}
