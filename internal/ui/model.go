package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"addressbook/internal/commands"
	"addressbook/internal/domain"
	"addressbook/internal/domain/types"
	"addressbook/internal/events"
	"addressbook/internal/logging"
)

// pane is the list shown on the left.
type pane int

const (
	paneBook pane = iota
	paneBin
)

// dataChangedMsg reports an external change of the data location.
type dataChangedMsg struct{}

// Model is the bubbletea model of the shell.
type Model struct {
	logic   domain.LogicService
	storage domain.StorageService
	data    domain.Model
	log     *slog.Logger

	input    textinput.Model
	pane     pane
	selected int
	result   string
	failed   bool
	showHelp bool
	profile  bool
	quitting bool
	width    int
	height   int

	mu    sync.Mutex
	inbox []events.Event
}

// New builds the shell. Subscribe Handle to the event bus before running it.
func New(logic domain.LogicService, storage domain.StorageService, data domain.Model, log *slog.Logger) *Model {
	in := textinput.New()
	in.Placeholder = "Enter command here..."
	in.Prompt = "> "
	in.CharLimit = 512
	in.Width = 60
	in.PromptStyle = labelStyle
	in.Focus()

	return &Model{
		logic:   logic,
		storage: storage,
		data:    data,
		log:     logging.OrDiscard(log),
		input:   in,
		result:  "Welcome! Type help to see the available commands.",
	}
}

// Handle queues ev for the running Update call.
func (m *Model) Handle(ev events.Event) {
	switch ev.(type) {
	case events.AddressBookChanged:
		// The lists are read fresh on every render.
		return
	}
	m.mu.Lock()
	m.inbox = append(m.inbox, ev)
	m.mu.Unlock()
}

func (m *Model) Init() tea.Cmd { return textinput.Blink }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case dataChangedMsg:
		if _, err := m.storage.Reload(context.Background(), m.data); err != nil {
			m.setResult(err.Error(), true)
		}
		return m, m.drain()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		case tea.KeyEsc:
			m.showHelp, m.profile = false, false
			m.input.Reset()
			return m, nil
		case tea.KeyUp:
			m.move(-1)
			return m, nil
		case tea.KeyDown:
			m.move(1)
			return m, nil
		case tea.KeyTab:
			m.switchPane()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the typed line. Input that fails is kept for correction.
func (m *Model) submit() tea.Cmd {
	line := m.input.Value()
	if strings.TrimSpace(line) == "" {
		return nil
	}
	m.profile = false
	if _, err := m.logic.Execute(line); err == nil {
		m.input.Reset()
	}
	return m.drain()
}

// drain applies queued events in publication order.
func (m *Model) drain() tea.Cmd {
	m.mu.Lock()
	queued := m.inbox
	m.inbox = nil
	m.mu.Unlock()

	var cmd tea.Cmd
	for _, ev := range queued {
		switch ev := ev.(type) {
		case events.NewResultAvailable:
			m.setResult(ev.Message, ev.Failed)
		case events.JumpToListRequest:
			m.pane = paneBook
			if ev.InBin {
				m.pane = paneBin
			}
			m.selected = ev.Index
		case events.PersonSelected:
			m.pane = paneBook
			m.selectPerson(ev.Person)
		case events.OpenProfileRequest:
			m.pane = paneBook
			m.selectPerson(ev.Person)
			m.profile = true
		case events.ShowHelpRequest:
			m.showHelp = true
		case events.DataReloaded:
			m.setResult(fmt.Sprintf("Data reloaded from %s", ev.Source), false)
		case events.ExitAppRequest:
			m.quitting = true
			cmd = tea.Quit
		}
	}
	m.clampSelection()
	return cmd
}

func (m *Model) setResult(message string, failed bool) {
	m.result, m.failed = message, failed
}

func (m *Model) list() []types.Person {
	if m.pane == paneBin {
		return m.logic.FilteredBinPersons()
	}
	return m.logic.FilteredPersons()
}

func (m *Model) move(delta int) {
	m.selected += delta
	m.clampSelection()
}

func (m *Model) switchPane() {
	if m.pane == paneBook {
		m.pane = paneBin
	} else {
		m.pane = paneBook
	}
	m.selected = 0
	m.profile = false
}

func (m *Model) selectPerson(p types.Person) {
	for i, q := range m.list() {
		if q.IsSamePerson(p) {
			m.selected = i
			return
		}
	}
}

func (m *Model) clampSelection() {
	n := len(m.list())
	m.selected = max(0, min(m.selected, n-1))
}

// Selected returns the highlighted person, if any.
func (m *Model) Selected() (types.Person, bool) {
	list := m.list()
	if m.selected < 0 || m.selected >= len(list) {
		return types.Person{}, false
	}
	return list[m.selected], true
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	title := "Address Book"
	if m.pane == paneBin {
		title = "Recycle Bin"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString(labelStyle.Render("  " + m.storage.Location()))
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(paneStyle.Render(strings.Join(commands.Usages(), "\n\n")))
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			paneStyle.Render(m.listView()),
			paneStyle.Render(m.detailView()),
		))
	}
	b.WriteString("\n")

	style := okStyle
	if m.failed {
		style = errorStyle
	}
	b.WriteString(style.Render(m.result))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter: run  up/down: select  tab: book/bin  esc: close  ctrl+c: quit"))
	return b.String()
}

func (m *Model) listView() string {
	list := m.list()
	if len(list) == 0 {
		return dimStyle.Render("(empty)")
	}
	lines := make([]string, len(list))
	for i, p := range list {
		line := fmt.Sprintf("%d. %s", i+1, p.Name())
		if i == m.selected {
			line = selectedStyle.Render(line)
		}
		if tags := p.Tags(); len(tags) > 0 {
			line += " " + tagStyle.Render(types.JoinTags(tags))
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func (m *Model) detailView() string {
	p, ok := m.Selected()
	if !ok {
		return dimStyle.Render("No person selected")
	}
	heading := "Details"
	if m.profile {
		heading = "Profile"
	}
	rows := []string{
		titleStyle.Render(heading),
		p.Name().String(),
		labelStyle.Render("Phone:   ") + p.Phone().String(),
		labelStyle.Render("Email:   ") + p.Email().String(),
		labelStyle.Render("Address: ") + p.Address().String(),
	}
	if tags := p.Tags(); len(tags) > 0 {
		rows = append(rows, labelStyle.Render("Tags:    ")+tagStyle.Render(types.JoinTags(tags)))
	}
	return strings.Join(rows, "\n")
}
