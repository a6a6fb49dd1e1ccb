package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mireldan/crystalquest/internal/catalog"
	"github.com/mireldan/crystalquest/internal/config"
	"github.com/mireldan/crystalquest/internal/engine"
	"github.com/mireldan/crystalquest/internal/models"
	"github.com/mireldan/crystalquest/internal/util"
)

// DashboardModel renders the earning overview: balance and level, available
// tasks, the recent-activity feed, and the upcoming-rewards preview.
type DashboardModel struct {
	ctx    context.Context
	repo   catalog.Repository
	wallet *engine.Wallet

	tasks    []models.Task
	activity []models.Activity
	stats    models.Stats

	cursor int
	err    error
}

func NewDashboardModel(ctx context.Context, repo catalog.Repository, wallet *engine.Wallet) DashboardModel {
	m := DashboardModel{ctx: ctx, repo: repo, wallet: wallet}
	m.refreshData()
	return m
}

func (m *DashboardModel) refreshData() {
	var err error
	if m.tasks, err = m.repo.DashboardTasks(m.ctx); err != nil {
		util.LogError("loading dashboard tasks", err)
		m.err = err
		return
	}
	if m.activity, err = m.repo.RecentActivity(m.ctx); err != nil {
		util.LogError("loading recent activity", err)
		m.err = err
		return
	}
	if m.stats, err = m.repo.Stats(m.ctx); err != nil {
		util.LogError("loading stats", err)
		m.err = err
	}
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
		case "enter":
			// Only the featured project task opens a detail page.
			if m.cursor < len(m.tasks) && m.tasks[m.cursor].Featured {
				return m, navigateCmd(models.PageTask)
			}
		case "v":
			return m, navigateCmd(models.PageRewards)
		}
	}
	return m, nil
}

func (m DashboardModel) View() string {
	theme := CurrentTheme
	if m.err != nil {
		return theme.Danger.Render(fmt.Sprintf("Error: %v", m.err))
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Dashboard") + "\n")
	b.WriteString(theme.Subtitle.Render("Track your progress and earn more crystals") + "\n\n")

	b.WriteString(m.statsView() + "\n\n")
	b.WriteString(m.tasksView() + "\n\n")
	b.WriteString(m.sidebarView() + "\n\n")
	b.WriteString(renderKeyHelp("j/k", "select task", "enter", "view project", "v", "all rewards"))
	return b.String()
}

func (m DashboardModel) statsView() string {
	theme := CurrentTheme
	balance := m.wallet.Balance()
	level := engine.LevelForCrystals(balance)
	next := engine.NextLevelThreshold(level)
	nextLevel := level + 1
	if nextLevel > engine.MaxLevel {
		nextLevel = engine.MaxLevel
	}

	crystals := theme.Dim.Render("Total Crystals") + "\n" +
		renderCrystals(balance) + theme.Dim.Render(fmt.Sprintf("  Level %d", level)) + "\n" +
		theme.Dim.Render(fmt.Sprintf("Progress to Level %d  %s/%s", nextLevel,
			util.FormatCrystals(balance), util.FormatCrystals(next))) + "\n" +
		renderBar(engine.LevelProgress(balance), 28)

	completed := theme.Dim.Render("Tasks Completed") + "\n" +
		theme.Title.Render(fmt.Sprintf("%d", m.stats.TasksCompleted)) + theme.Dim.Render(" this month") + "\n" +
		theme.Positive.Render("+25%") + theme.Dim.Render(" from last month")

	referrals := theme.Dim.Render("Referrals") + "\n" +
		theme.Title.Render(fmt.Sprintf("%d", m.stats.Referrals)) + theme.Dim.Render(" friends joined")

	return renderCard("", crystals, 50) + "\n" +
		renderCard("", completed, 50) + "\n" +
		renderCard("", referrals, 50)
}

func (m DashboardModel) tasksView() string {
	theme := CurrentTheme
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Complete tasks to earn crystals") + "\n")

	for i, task := range m.tasks {
		marker := "  "
		title := theme.Text.Render(task.Title)
		if i == m.cursor {
			marker = theme.Selected.Render("> ")
			title = theme.Selected.Render(task.Title)
		}
		if task.Completed {
			title = theme.Completed.Render(task.Title)
		}

		line := marker + title
		if task.Featured {
			line += " " + renderBadge("Featured")
		}
		if task.Completed {
			line += " " + theme.Positive.Render("✔")
		}
		line += "  " + renderCrystals(task.RewardAmount) + "  " + renderTag(task.Category)
		b.WriteString(line + "\n")
		b.WriteString("    " + theme.Dim.Render(truncate(task.Description, 64)) + "\n")
		if task.ProgressMax > 0 {
			b.WriteString("    " + renderMeter("Progress", task.ProgressCur, task.ProgressMax, 24) + "\n")
		}
	}
	return renderCard("Available Tasks", b.String(), 74)
}

func (m DashboardModel) sidebarView() string {
	theme := CurrentTheme

	entries := m.activity
	if len(entries) > config.MaxVisibleRows {
		entries = entries[:config.MaxVisibleRows]
	}
	var feed strings.Builder
	for _, a := range entries {
		feed.WriteString(theme.Text.Render(a.Action) + "  " +
			theme.Accent.Render("+"+util.FormatCrystals(a.Crystals)) + "\n")
		feed.WriteString(theme.Dim.Render(a.When) + "\n")
	}

	balance := m.wallet.Balance()
	var preview strings.Builder
	preview.WriteString(theme.Text.Render("VIP Badge") + theme.Dim.Render("  unlock at 5,000 crystals") + "\n")
	preview.WriteString(renderBar(float64(balance)/5000.0, 24) + "\n")
	preview.WriteString(theme.Text.Render("Premium Access") + theme.Dim.Render("  unlock at Level 10"))

	return renderCard("Recent Activity", feed.String(), 50) + "\n" +
		renderCard("Upcoming Rewards", preview.String(), 50)
}
