package model

import (
	"errors"

	"addressbook/internal/book"
	"addressbook/internal/domain/types"
)

var (
	// ErrNoUndo is returned by Undo when there is no earlier snapshot.
	ErrNoUndo = errors.New("no more commands to undo")
	// ErrNoRedo is returned by Redo when there is no later snapshot.
	ErrNoRedo = errors.New("no more commands to redo")
)

type snapshot struct {
	book []types.Person
	bin  []types.Person
}

// history is a bounded list of snapshots with a cursor on the current one.
type history struct {
	states []snapshot
	cursor int
	limit  int
}

func (h *history) reset(s snapshot) {
	h.states = []snapshot{s}
	h.cursor = 0
}

func (h *history) commit(s snapshot) {
	h.states = append(h.states[:h.cursor+1], s)
	if over := len(h.states) - h.limit; over > 0 {
		h.states = h.states[over:]
	}
	h.cursor = len(h.states) - 1
}

// CommitSnapshot records the current state as the newest history entry and
// drops any redoable states. Commands call it after a successful mutation.
func (m *Model) CommitSnapshot() {
	m.history.commit(m.state())
}

// CanUndo reports whether Undo would succeed.
func (m *Model) CanUndo() bool { return m.history.cursor > 0 }

// CanRedo reports whether Redo would succeed.
func (m *Model) CanRedo() bool { return m.history.cursor < len(m.history.states)-1 }

// Undo restores the previous snapshot.
func (m *Model) Undo() error {
	if !m.CanUndo() {
		return ErrNoUndo
	}
	m.history.cursor--
	m.restore(m.history.states[m.history.cursor], "undo")
	return nil
}

// Redo restores the snapshot undone last.
func (m *Model) Redo() error {
	if !m.CanRedo() {
		return ErrNoRedo
	}
	m.history.cursor++
	m.restore(m.history.states[m.history.cursor], "redo")
	return nil
}

// restore installs a committed snapshot. Snapshots were valid when taken, so
// building the containers cannot fail.
func (m *Model) restore(s snapshot, op string) {
	b, _ := book.NewAddressBook(s.book...)
	bin, _ := book.NewRecycleBin(s.bin...)
	m.book, m.bin = b, bin
	m.personFilter, m.binFilter = types.ShowAll{}, types.ShowAll{}
	m.changed(op)
}
