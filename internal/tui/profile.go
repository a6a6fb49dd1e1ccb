package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mireldan/crystalquest/internal/catalog"
	"github.com/mireldan/crystalquest/internal/config"
	"github.com/mireldan/crystalquest/internal/engine"
	"github.com/mireldan/crystalquest/internal/models"
	"github.com/mireldan/crystalquest/internal/util"
)

type profileTab int

const (
	tabOverview profileTab = iota
	tabAchievements
	tabCrystalHistory
)

var profileTabNames = [...]string{"Overview", "Achievements", "Crystal History"}

type editField int

const (
	fieldName editField = iota
	fieldEmail
	fieldBio
	editFieldCount
)

// ProfileModel renders the profile page. The identity fields go through a
// ProfileEditor so that an in-progress edit never leaks into the committed
// profile until saved.
type ProfileModel struct {
	ctx    context.Context
	repo   catalog.Repository
	wallet *engine.Wallet

	editor       *engine.ProfileEditor
	achievements []models.Achievement
	crystalLog   []models.Activity
	stats        models.Stats

	tab    profileTab
	inputs [editFieldCount]textinput.Model
	field  editField

	message string
	failed  bool
	err     error
}

func NewProfileModel(ctx context.Context, repo catalog.Repository, cfg *config.Config, wallet *engine.Wallet) ProfileModel {
	name := textinput.New()
	name.CharLimit = config.MaxNameLength
	name.Prompt = "Name: "
	email := textinput.New()
	email.CharLimit = config.MaxNameLength
	email.Prompt = "Email: "
	bio := textinput.New()
	bio.CharLimit = config.MaxBioLength
	bio.Prompt = "Bio: "

	m := ProfileModel{
		ctx:    ctx,
		repo:   repo,
		wallet: wallet,
		editor: engine.NewProfileEditor(models.Profile{
			Name:     cfg.Profile.Name,
			Email:    cfg.Profile.Email,
			Bio:      cfg.Profile.Bio,
			JoinDate: cfg.Profile.JoinDate,
		}),
		inputs: [editFieldCount]textinput.Model{name, email, bio},
	}
	m.refreshData()
	return m
}

func (m *ProfileModel) refreshData() {
	var err error
	if m.achievements, err = m.repo.Achievements(m.ctx); err != nil {
		util.LogError("loading achievements", err)
		m.err = err
		return
	}
	if m.crystalLog, err = m.repo.CrystalHistory(m.ctx); err != nil {
		util.LogError("loading crystal history", err)
		m.err = err
		return
	}
	if m.stats, err = m.repo.Stats(m.ctx); err != nil {
		util.LogError("loading stats", err)
		m.err = err
	}
}

// capturing reports whether one of the edit inputs owns the keyboard.
func (m ProfileModel) capturing() bool { return m.editor.Editing() }

func (m ProfileModel) Update(msg tea.Msg) (ProfileModel, tea.Cmd) {
	if m.err != nil {
		return m, nil
	}
	key, isKey := msg.(tea.KeyMsg)

	if m.editor.Editing() {
		if isKey {
			switch key.String() {
			case "esc":
				m.editor.Cancel()
				m.message = "Edit cancelled."
				m.failed = false
				return m, nil
			case "enter":
				m.saveDraft()
				return m, nil
			case "tab", "down":
				m.focusField((m.field + 1) % editFieldCount)
				return m, nil
			case "shift+tab", "up":
				m.focusField((m.field + editFieldCount - 1) % editFieldCount)
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)
		return m, cmd
	}

	if !isKey {
		return m, nil
	}
	m.message = ""
	m.failed = false
	switch key.String() {
	case "tab", "l", "right":
		m.tab = (m.tab + 1) % profileTab(len(profileTabNames))
	case "shift+tab", "h", "left":
		m.tab = (m.tab + profileTab(len(profileTabNames)) - 1) % profileTab(len(profileTabNames))
	case "e":
		m.startEdit()
	case "x":
		m.exportStatement()
	case "esc", "b":
		return m, navigateCmd(models.PageDashboard)
	}
	return m, nil
}

func (m *ProfileModel) startEdit() {
	draft := m.editor.EnterEdit()
	m.inputs[fieldName].SetValue(draft.Name)
	m.inputs[fieldEmail].SetValue(draft.Email)
	m.inputs[fieldBio].SetValue(draft.Bio)
	m.focusField(fieldName)
}

func (m *ProfileModel) focusField(f editField) {
	m.inputs[m.field].Blur()
	m.field = f
	m.inputs[m.field].Focus()
	m.inputs[m.field].CursorEnd()
}

func (m *ProfileModel) saveDraft() {
	draft := models.Profile{
		Name:  m.inputs[fieldName].Value(),
		Email: m.inputs[fieldEmail].Value(),
		Bio:   m.inputs[fieldBio].Value(),
	}
	if err := m.editor.Save(draft); err != nil {
		m.failed = true
		if errors.Is(err, engine.ErrEmptyName) {
			m.message = "Name cannot be empty."
		} else {
			m.message = err.Error()
		}
		return
	}
	m.inputs[m.field].Blur()
	m.failed = false
	m.message = "Profile saved."
}

func (m *ProfileModel) exportStatement() {
	path, err := WriteStatementPDF(m.editor.Current(), m.wallet, m.crystalLog)
	if err != nil {
		util.LogError("exporting statement", err)
		m.failed = true
		m.message = "Could not export statement."
		return
	}
	m.message = "Statement exported to " + path
}

func (m ProfileModel) View() string {
	theme := CurrentTheme
	if m.err != nil {
		return theme.Danger.Render(fmt.Sprintf("Error: %v", m.err))
	}

	var b strings.Builder
	b.WriteString(m.identityView() + "\n\n")
	b.WriteString(m.tabsView() + "\n\n")
	switch m.tab {
	case tabOverview:
		b.WriteString(m.overviewView())
	case tabAchievements:
		b.WriteString(m.achievementsView())
	case tabCrystalHistory:
		b.WriteString(m.crystalHistoryView())
	}
	if m.message != "" {
		style := theme.Positive
		if m.failed {
			style = theme.Danger
		}
		b.WriteString("\n" + style.Render(m.message) + "\n")
	}
	b.WriteString("\n" + m.helpView())
	return b.String()
}

func (m ProfileModel) helpView() string {
	if m.editor.Editing() {
		return renderKeyHelp("tab", "next field", "enter", "save", "esc", "cancel")
	}
	return renderKeyHelp("e", "edit profile", "x", "export pdf", "tab", "next tab", "esc", "back")
}

func (m ProfileModel) identityView() string {
	theme := CurrentTheme
	if m.editor.Editing() {
		body := m.inputs[fieldName].View() + "\n" +
			m.inputs[fieldEmail].View() + "\n" +
			m.inputs[fieldBio].View()
		return renderCard("Edit Profile", body, 70)
	}
	p := m.editor.Current()
	avatar := theme.Badge.Render(" " + p.Initials() + " ")
	body := avatar + " " + theme.Title.Render(p.Name) + "\n" +
		theme.Dim.Render(p.Email) + "\n" +
		theme.Text.Render(truncate(p.Bio, 64)) + "\n" +
		theme.Dim.Render("Member since "+p.JoinDate)
	return renderCard("", body, 70)
}

func (m ProfileModel) tabsView() string {
	theme := CurrentTheme
	parts := make([]string, len(profileTabNames))
	for i, name := range profileTabNames {
		if profileTab(i) == m.tab {
			parts[i] = theme.Selected.Render("[ " + name + " ]")
		} else {
			parts[i] = theme.Dim.Render("  " + name + "  ")
		}
	}
	return strings.Join(parts, " ")
}

func (m ProfileModel) overviewView() string {
	theme := CurrentTheme
	balance := m.wallet.Balance()
	level := engine.LevelForCrystals(balance)
	next := engine.NextLevelThreshold(level)
	nextLevel := level + 1
	if nextLevel > engine.MaxLevel {
		nextLevel = engine.MaxLevel
	}

	var b strings.Builder
	b.WriteString(theme.Dim.Render("Crystal Balance") + "  " + renderCrystals(balance) + "\n")
	b.WriteString(theme.Dim.Render("Level") + "          " + theme.Accent.Render(fmt.Sprintf("%d", level)) + "\n")
	b.WriteString(renderBar(engine.LevelProgress(balance), config.ProgressBarWidth) + " " +
		theme.Dim.Render(fmt.Sprintf("%s / %s to level %d",
			util.FormatCrystals(balance), util.FormatCrystals(next), nextLevel)) + "\n\n")
	b.WriteString(theme.Dim.Render("Tasks Completed") + "  " + theme.Text.Render(fmt.Sprintf("%d", m.stats.TasksCompleted)) + "\n")
	b.WriteString(theme.Dim.Render("Referrals") + "        " + theme.Text.Render(fmt.Sprintf("%d", m.stats.Referrals)) + "\n")
	b.WriteString(theme.Dim.Render("Global Rank") + "      " + theme.Text.Render(fmt.Sprintf("#%s of %s",
		util.FormatCrystals(int64(m.stats.Rank)), util.FormatCrystals(int64(m.stats.TotalUsers)))))
	return renderCard("Your Stats", b.String(), 70)
}

func (m ProfileModel) achievementsView() string {
	theme := CurrentTheme
	var b strings.Builder
	for _, a := range m.achievements {
		name := theme.Text.Render(a.Name)
		mark := theme.Positive.Render("●")
		if !a.Unlocked {
			name = theme.Dim.Render(a.Name)
			mark = theme.Dim.Render("○")
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", mark, a.Icon, name))
		b.WriteString("    " + theme.Dim.Render(a.Description) + "\n")
	}
	return renderCard("Achievements", b.String(), 70)
}

func (m ProfileModel) crystalHistoryView() string {
	theme := CurrentTheme
	entries := m.crystalLog
	if len(entries) > config.MaxVisibleRows {
		entries = entries[:config.MaxVisibleRows]
	}
	var b strings.Builder
	for _, entry := range entries {
		amount := theme.Positive.Render("+" + util.FormatCrystals(entry.Crystals))
		if entry.Crystals < 0 {
			amount = theme.Danger.Render(util.FormatCrystals(entry.Crystals))
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			theme.Text.Render(entry.Action), amount, theme.Dim.Render(entry.When)))
	}
	return renderCard("Crystal History", b.String(), 70)
}
