package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mireldan/crystalquest/internal/catalog"
	"github.com/mireldan/crystalquest/internal/config"
	"github.com/mireldan/crystalquest/internal/engine"
	"github.com/mireldan/crystalquest/internal/models"
	"github.com/mireldan/crystalquest/internal/util"
)

// CampaignModel renders the campaign detail page. Join state and task
// completion live in the engine's CampaignState; crystals earned here are a
// campaign-local display total and are not credited to the shared wallet.
type CampaignModel struct {
	ctx    context.Context
	repo   catalog.Repository
	wallet *engine.Wallet

	campaign   models.Campaign
	tasks      []models.Task
	milestones []models.Milestone
	breakdown  []models.RewardLine
	state      *engine.CampaignState

	cursor  int
	message string
	err     error
}

func NewCampaignModel(ctx context.Context, repo catalog.Repository, wallet *engine.Wallet) CampaignModel {
	m := CampaignModel{ctx: ctx, repo: repo, wallet: wallet}
	m.refreshData()
	return m
}

func (m *CampaignModel) refreshData() {
	var err error
	if m.campaign, err = m.repo.Campaign(m.ctx); err != nil {
		util.LogError("loading campaign", err)
		m.err = err
		return
	}
	if m.tasks, err = m.repo.CampaignTasks(m.ctx); err != nil {
		util.LogError("loading campaign tasks", err)
		m.err = err
		return
	}
	if m.milestones, err = m.repo.Milestones(m.ctx); err != nil {
		util.LogError("loading milestones", err)
		m.err = err
		return
	}
	if m.breakdown, err = m.repo.RewardBreakdown(m.ctx); err != nil {
		util.LogError("loading reward breakdown", err)
		m.err = err
		return
	}
	m.state = engine.NewCampaignState(m.campaign.JoinBonus)
}

func (m CampaignModel) Update(msg tea.Msg) (CampaignModel, tea.Cmd) {
	if m.err != nil {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.message = ""
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
		case "J":
			if m.state.Join() {
				m.message = fmt.Sprintf("You're in! +%d crystals for joining.", m.campaign.JoinBonus)
			}
		case " ":
			if m.cursor >= len(m.tasks) {
				break
			}
			if err := m.state.ToggleTask(m.tasks[m.cursor].ID); err != nil {
				if errors.Is(err, engine.ErrNotJoined) {
					m.message = "Join the campaign first (press J)."
				} else {
					m.message = err.Error()
				}
			}
		case "esc", "b":
			return m, navigateCmd(models.PageDashboard)
		}
	}
	return m, nil
}

func (m CampaignModel) View() string {
	theme := CurrentTheme
	if m.err != nil {
		return theme.Danger.Render(fmt.Sprintf("Error: %v", m.err))
	}

	var b strings.Builder
	b.WriteString(m.headerView() + "\n\n")
	b.WriteString(m.joinView() + "\n\n")
	b.WriteString(m.tasksView() + "\n\n")
	b.WriteString(m.milestonesView() + "\n")
	b.WriteString(m.sidebarView() + "\n")
	if m.message != "" {
		b.WriteString("\n" + theme.Positive.Render(m.message) + "\n")
	}
	b.WriteString("\n" + renderKeyHelp("J", "join", "space", "toggle task", "j/k", "move", "esc", "back"))
	return b.String()
}

func (m CampaignModel) headerView() string {
	theme := CurrentTheme
	badges := renderBadge(m.campaign.Status) + " " +
		renderTag(m.campaign.Category) + " " + renderTag(m.campaign.Difficulty)
	meta := fmt.Sprintf("%s participants  ·  ends %s  ·  up to %s crystals",
		util.FormatCrystals(int64(m.campaign.Participants)), m.campaign.EndDate,
		util.FormatCrystals(m.campaign.TotalReward))
	return badges + "\n" +
		theme.Title.Render(m.campaign.Title) + "\n" +
		theme.Subtitle.Render(truncate(m.campaign.Description, 76)) + "\n" +
		theme.Dim.Render(meta)
}

func (m CampaignModel) joinView() string {
	theme := CurrentTheme
	if !m.state.Joined() {
		body := theme.Text.Render("Start earning crystals immediately by joining this exclusive campaign.") + "\n" +
			theme.Accent.Render(fmt.Sprintf("+%d crystals just for joining!", m.campaign.JoinBonus)) + "\n" +
			theme.Dim.Render("Press J to join.")
		return renderCard("Join the Campaign", body, 74)
	}
	body := theme.Positive.Render("✔ You're in!") + "\n" +
		theme.Text.Render(fmt.Sprintf("You've joined the campaign and earned %d crystals. Complete tasks below to earn more.",
			m.campaign.JoinBonus))
	return renderCard("", body, 74)
}

func (m CampaignModel) tasksView() string {
	theme := CurrentTheme
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Complete tasks to earn crystals (%d/%d completed)",
		m.state.CompletedCount(), len(m.tasks))))
	if m.state.Joined() {
		b.WriteString("  " + theme.Accent.Render(fmt.Sprintf("%s earned",
			util.FormatCrystals(m.state.TotalEarned(m.tasks)))))
	}
	b.WriteString("\n")

	for i, task := range m.tasks {
		check := "[ ]"
		title := theme.Text.Render(task.Title)
		if m.state.IsCompleted(task.ID) {
			check = theme.Positive.Render("[x]")
			title = theme.Completed.Render(task.Title)
		}
		if !m.state.Joined() {
			title = theme.Dim.Render(task.Title)
		}
		marker := "  "
		if i == m.cursor {
			marker = theme.Selected.Render("> ")
		}
		line := marker + check + " " + title
		if task.Required {
			line += " " + renderTag("Required")
		}
		line += "  " + renderCrystals(task.RewardAmount)
		b.WriteString(line + "\n")
		b.WriteString("      " + theme.Dim.Render(truncate(task.Description, 62)) + "\n")
	}

	b.WriteString("\n" + theme.Dim.Render("Your Progress") + " " +
		renderBar(m.state.ProgressRatio(m.tasks), 28) + " " +
		theme.Text.Render(fmt.Sprintf("%d%%", util.Percent(m.state.ProgressRatio(m.tasks)))))
	return renderCard("Campaign Tasks", b.String(), 74)
}

func (m CampaignModel) milestonesView() string {
	theme := CurrentTheme
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Everyone gets rewards when milestones are reached") + "\n")
	for _, ms := range m.milestones {
		mark := theme.Dim.Render("○")
		suffix := ""
		if ms.Achieved {
			mark = theme.Positive.Render("●")
			suffix = "  " + theme.Positive.Render("Achieved")
		}
		b.WriteString(fmt.Sprintf("%s %s participants — %s%s\n",
			mark, util.FormatCrystals(int64(ms.Participants)), theme.Text.Render(ms.Reward), suffix))
	}
	return renderCard("Community Milestones", b.String(), 74)
}

func (m CampaignModel) sidebarView() string {
	theme := CurrentTheme
	var b strings.Builder
	for _, line := range m.breakdown {
		b.WriteString(fmt.Sprintf("%s %s  %s\n", line.Icon,
			theme.Text.Render(line.Action), theme.Accent.Render("+"+util.FormatCrystals(line.Crystals))))
	}
	b.WriteString(theme.Dim.Render("Total Potential") + "  " + renderCrystals(m.campaign.TotalReward))
	out := renderCard("Reward Breakdown", b.String(), 74)

	if m.state.Joined() {
		referral := theme.Text.Render(fmt.Sprintf(
			"Share your unique referral link and earn %d extra crystals\nfor each friend who joins!",
			config.ReferralBonus)) + "\n" +
			theme.Accent.Render("https://crystalquest.app/ref/alex123")
		out += "\n" + renderCard("Boost Your Rewards", referral, 74)
	}
	return out
}
