package ui

import tea "github.com/charmbracelet/bubbletea"

func DataChangedMsg() tea.Msg { return dataChangedMsg{} }
