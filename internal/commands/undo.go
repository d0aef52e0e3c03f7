package commands

import "addressbook/internal/domain"

const (
	UndoWord  = "undo"
	UndoUsage = UndoWord + ": Reverts the address book to the state before the last change."

	RedoWord  = "redo"
	RedoUsage = RedoWord + ": Reapplies the last change that was undone."

	MessageUndoSuccess = "Undo success!"
	MessageUndoFailure = "No more commands to undo!"
	MessageRedoSuccess = "Redo success!"
	MessageRedoFailure = "No more commands to redo!"
)

type UndoCommand struct{}

func (UndoCommand) Execute(m domain.Model) (Result, error) {
	if !m.CanUndo() {
		return Result{}, fail(nil, MessageUndoFailure)
	}
	if err := m.Undo(); err != nil {
		return Result{}, fail(err, MessageUndoFailure)
	}
	return Result{Feedback: MessageUndoSuccess}, nil
}

type RedoCommand struct{}

func (RedoCommand) Execute(m domain.Model) (Result, error) {
	if !m.CanRedo() {
		return Result{}, fail(nil, MessageRedoFailure)
	}
	if err := m.Redo(); err != nil {
		return Result{}, fail(err, MessageRedoFailure)
	}
	return Result{Feedback: MessageRedoSuccess}, nil
}
