package commands

import (
	"addressbook/internal/domain"
	"addressbook/internal/events"
)

const (
	HelpWord  = "help"
	HelpUsage = HelpWord + ": Shows program usage instructions.\n" +
		"Example: " + HelpWord

	ExitWord  = "exit"
	ExitUsage = ExitWord + ": Exits the program.\n" +
		"Example: " + ExitWord

	MessageHelpSuccess = "Opened help window."
	MessageExitSuccess = "Exiting Address Book as requested ..."
)

type HelpCommand struct{}

func (HelpCommand) Execute(domain.Model) (Result, error) {
	return Result{Feedback: MessageHelpSuccess, Event: events.NewShowHelpRequest()}, nil
}

type ExitCommand struct{}

func (ExitCommand) Execute(domain.Model) (Result, error) {
	return Result{Feedback: MessageExitSuccess, Event: events.NewExitAppRequest()}, nil
}

// Usages lists every command's usage text in help order.
func Usages() []string {
	return []string{
		AddUsage, EditUsage, DeleteUsage, TagAddUsage, TagRemoveUsage, RestoreUsage,
		ListUsage, FindUsage, FindTagUsage, SelectUsage, ProfileUsage, ClearUsage,
		BinListUsage, BinFindUsage, BinDeleteUsage, BinClearUsage,
		UndoUsage, RedoUsage, HistoryUsage, HelpUsage, ExitUsage,
	}
}
