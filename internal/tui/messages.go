package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mireldan/crystalquest/internal/models"
)

// NavigateMsg asks the root model to switch to another page.
type NavigateMsg struct {
	Page models.Page
}

func navigateCmd(page models.Page) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Page: page} }
}
