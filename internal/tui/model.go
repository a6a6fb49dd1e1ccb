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
)

// navEntry is one row of the navigation drawer.
type navEntry struct {
	page  models.Page
	label string
	icon  string
}

var navEntries = []navEntry{
	{models.PageHome, "Home", "⌂"},
	{models.PageDashboard, "Dashboard", "▦"},
	{models.PageRewards, "Rewards", "🎁"},
	{models.PageProfile, "Profile", "◉"},
	{models.PageTask, "Campaign", "🎯"},
}

// MainModel is the root bubbletea model. It owns the current page, the
// session wallet, and the navigation drawer, and delegates everything else
// to the active page model.
type MainModel struct {
	ctx    context.Context
	repo   catalog.Repository
	cfg    *config.Config
	wallet *engine.Wallet

	page    models.Page
	navOpen bool
	navIdx  int

	home      HomeModel
	dashboard DashboardModel
	campaign  CampaignModel
	rewards   RewardsModel
	profile   ProfileModel

	width  int
	height int
}

func NewMainModel(ctx context.Context, repo catalog.Repository, cfg *config.Config) MainModel {
	SetTheme(cfg.Theme)
	m := MainModel{
		ctx:    ctx,
		repo:   repo,
		cfg:    cfg,
		wallet: engine.NewWallet(cfg.Balance),
		page:   models.PageHome,
	}
	m.home = NewHomeModel()
	return m
}

// Page returns the currently active page.
func (m MainModel) Page() models.Page { return m.page }

// WithStartPage returns a copy of the model opened at the named page.
// An unknown name leaves the model on the home page.
func (m MainModel) WithStartPage(name string) MainModel {
	return m.navigate(models.Page(name))
}

// navigate switches to the given page. Unknown identifiers are ignored.
// The target page model is rebuilt, so per-view state never survives
// navigating away; the wallet does.
func (m MainModel) navigate(page models.Page) MainModel {
	if !page.IsValid() {
		return m
	}
	m.navOpen = false
	m.page = page
	switch page {
	case models.PageHome:
		m.home = NewHomeModel()
	case models.PageDashboard:
		m.dashboard = NewDashboardModel(m.ctx, m.repo, m.wallet)
	case models.PageTask:
		m.campaign = NewCampaignModel(m.ctx, m.repo, m.wallet)
	case models.PageRewards:
		m.rewards = NewRewardsModel(m.ctx, m.repo, m.wallet)
	case models.PageProfile:
		m.profile = NewProfileModel(m.ctx, m.repo, m.cfg, m.wallet)
	}
	return m
}

// contentWidth clamps the terminal width to the layout bounds. Zero width
// means no WindowSizeMsg has arrived yet; assume a full-size terminal.
func (m MainModel) contentWidth() int {
	if m.width == 0 {
		return config.MaxContentWidth
	}
	w := m.width - 2
	if w < config.MinContentWidth {
		w = config.MinContentWidth
	}
	if w > config.MaxContentWidth {
		w = config.MaxContentWidth
	}
	return w
}

// compact reports whether the terminal is too narrow for the full header.
func (m MainModel) compact() bool {
	return m.width > 0 && m.width < config.CompactModeThreshold
}

// capturing reports whether the active page is consuming raw text input,
// in which case global single-letter keys must not fire.
func (m MainModel) capturing() bool {
	switch m.page {
	case models.PageRewards:
		return m.rewards.capturing()
	case models.PageProfile:
		return m.profile.capturing()
	}
	return false
}

func (m MainModel) Init() tea.Cmd { return nil }

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.navOpen {
			return m.updateDrawer(msg), nil
		}
		if !m.capturing() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "t":
				ToggleTheme()
				return m, nil
			case "m":
				m.navOpen = true
				m.navIdx = m.drawerIndex()
				return m, nil
			case "1", "2", "3", "4", "5":
				idx := int(msg.String()[0] - '1')
				return m.navigate(navEntries[idx].page), nil
			}
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case NavigateMsg:
		return m.navigate(msg.Page), nil
	}

	var cmd tea.Cmd
	switch m.page {
	case models.PageHome:
		m.home, cmd = m.home.Update(msg)
	case models.PageDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case models.PageTask:
		m.campaign, cmd = m.campaign.Update(msg)
	case models.PageRewards:
		m.rewards, cmd = m.rewards.Update(msg)
	case models.PageProfile:
		m.profile, cmd = m.profile.Update(msg)
	}
	return m, cmd
}

func (m MainModel) updateDrawer(msg tea.KeyMsg) MainModel {
	switch msg.String() {
	case "esc", "m":
		m.navOpen = false
	case "up", "k":
		if m.navIdx > 0 {
			m.navIdx--
		}
	case "down", "j":
		if m.navIdx < len(navEntries)-1 {
			m.navIdx++
		}
	case "enter":
		return m.navigate(navEntries[m.navIdx].page)
	}
	return m
}

func (m MainModel) drawerIndex() int {
	for i, e := range navEntries {
		if e.page == m.page {
			return i
		}
	}
	return 0
}

func (m MainModel) View() string {
	theme := CurrentTheme

	var body string
	switch m.page {
	case models.PageHome:
		body = m.home.View()
	case models.PageDashboard:
		body = m.dashboard.View()
	case models.PageTask:
		body = m.campaign.View()
	case models.PageRewards:
		body = m.rewards.View()
	case models.PageProfile:
		body = m.profile.View()
	}

	if m.navOpen {
		body = m.drawerView()
	}

	header := m.headerView()
	footer := renderKeyHelp("1-5", "pages", "m", "menu", "t", CurrentTheme.Name+" theme", "q", "quit")
	return theme.Base.Render(header + "\n\n" + body + "\n\n" + footer)
}

func (m MainModel) headerView() string {
	theme := CurrentTheme
	brand := theme.Header.Render("✦ CrystalQuest")
	if m.compact() {
		return brand
	}
	var tabs []string
	for _, e := range navEntries {
		label := e.label
		if e.page == m.page {
			tabs = append(tabs, theme.Selected.Render("["+label+"]"))
		} else {
			tabs = append(tabs, theme.Dim.Render(label))
		}
	}
	return truncate(brand+"   "+strings.Join(tabs, "  "), m.contentWidth())
}

func (m MainModel) drawerView() string {
	theme := CurrentTheme
	var b strings.Builder
	b.WriteString(theme.Title.Render("Navigation") + "\n\n")
	for i, e := range navEntries {
		line := fmt.Sprintf("%s %s", e.icon, e.label)
		if i == m.navIdx {
			line = theme.Selected.Render("> " + line)
		} else {
			line = theme.Text.Render("  " + line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + renderKeyHelp("↑/↓", "move", "enter", "open", "esc", "close"))
	return renderCard("", b.String(), config.MinContentWidth)
}
