package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mireldan/crystalquest/internal/models"
)

// HomeModel renders the landing page. It holds no data beyond the static
// marketing copy.
type HomeModel struct{}

func NewHomeModel() HomeModel { return HomeModel{} }

func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "g":
			return m, navigateCmd(models.PageDashboard)
		case "v":
			return m, navigateCmd(models.PageRewards)
		}
	}
	return m, nil
}

func (m HomeModel) View() string {
	theme := CurrentTheme
	var b strings.Builder

	b.WriteString(theme.Positive.Render("✦ Earn crystals for every project") + "\n\n")
	b.WriteString(theme.Title.Render("Join projects. Earn rewards.") + "\n")
	b.WriteString(theme.Subtitle.Render(
		"Join CrystalQuest to earn crystals by participating in exclusive Web3\n"+
			"projects, accessing NFT whitelists, and claiming token allocations.") + "\n\n")

	features := []struct {
		title string
		body  string
	}{
		{"Join Projects", "Participate in exclusive Web3 projects and campaigns to earn massive crystal rewards."},
		{"NFT Whitelist", "Access guaranteed whitelist spots for trending NFT collections and exclusive mints."},
		{"Token Allocations", "Use your crystals to secure early token allocations in upcoming TGEs."},
	}
	var cards []string
	for _, f := range features {
		cards = append(cards, theme.Accent.Render(f.title)+"\n"+theme.Text.Render(f.body))
	}
	b.WriteString(renderCard("", strings.Join(cards, "\n\n"), 72) + "\n\n")

	stats := theme.Title.Render("50K+") + theme.Dim.Render(" Active Users   ") +
		theme.Title.Render("2M+") + theme.Dim.Render(" Crystals Earned   ") +
		theme.Title.Render("100+") + theme.Dim.Render(" Active Projects")
	b.WriteString(renderCard("", stats, 72) + "\n\n")

	b.WriteString(theme.Title.Render("Ready to start earning?") + "\n")
	b.WriteString(theme.Subtitle.Render("Join thousands of users already earning crystals and unlocking amazing rewards.") + "\n\n")
	b.WriteString(renderKeyHelp("enter", "get started", "v", "view rewards") + "\n\n")
	b.WriteString(theme.Dim.Render("© 2025 CrystalQuest. All rights reserved."))
	return b.String()
}
