package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mireldan/crystalquest/internal/catalog"
	"github.com/mireldan/crystalquest/internal/config"
	"github.com/mireldan/crystalquest/internal/engine"
	"github.com/mireldan/crystalquest/internal/models"
	"github.com/mireldan/crystalquest/internal/util"
)

type rewardsTab int

const (
	tabWhitelists rewardsTab = iota
	tabTokens
	tabPast
	tabHistory
)

var rewardsTabNames = [...]string{"NFT Whitelists", "Token Swaps", "Past Rewards", "History"}

// RewardsModel renders the rewards page: whitelist redemptions, token swaps,
// past rewards and the redemption history. Spending goes through the shared
// wallet, so the balance shown here survives navigation.
type RewardsModel struct {
	ctx    context.Context
	repo   catalog.Repository
	wallet *engine.Wallet

	whitelists []models.WhitelistOffer
	offers     []models.TokenOffer
	past       []models.PastReward
	history    []models.Redemption

	tab     rewardsTab
	cursor  int
	amount  textinput.Model
	swapIdx int // offer the amount input belongs to, -1 when closed

	message string
	failed  bool
	err     error
}

func NewRewardsModel(ctx context.Context, repo catalog.Repository, wallet *engine.Wallet) RewardsModel {
	amount := textinput.New()
	amount.Placeholder = "amount"
	amount.CharLimit = config.MaxAmountDigits
	amount.Width = config.MaxAmountDigits + 3

	m := RewardsModel{ctx: ctx, repo: repo, wallet: wallet, amount: amount, swapIdx: -1}
	m.refreshData()
	return m
}

func (m *RewardsModel) refreshData() {
	var err error
	if m.whitelists, err = m.repo.Whitelists(m.ctx); err != nil {
		util.LogError("loading whitelists", err)
		m.err = err
		return
	}
	if m.offers, err = m.repo.TokenOffers(m.ctx); err != nil {
		util.LogError("loading token offers", err)
		m.err = err
		return
	}
	if m.past, err = m.repo.PastRewards(m.ctx); err != nil {
		util.LogError("loading past rewards", err)
		m.err = err
		return
	}
	if m.history, err = m.repo.RedemptionHistory(m.ctx); err != nil {
		util.LogError("loading redemption history", err)
		m.err = err
	}
}

// capturing reports whether the swap amount input owns the keyboard, which
// suspends the root model's global shortcuts.
func (m RewardsModel) capturing() bool { return m.amount.Focused() }

func (m RewardsModel) tabSize() int {
	switch m.tab {
	case tabWhitelists:
		return len(m.whitelists)
	case tabTokens:
		return len(m.offers)
	case tabPast:
		return len(m.past)
	default:
		return len(m.allHistory())
	}
}

// allHistory is the seeded ledger followed by this session's redemptions.
func (m RewardsModel) allHistory() []models.Redemption {
	out := make([]models.Redemption, 0, len(m.history)+len(m.wallet.History()))
	out = append(out, m.history...)
	for _, r := range m.wallet.History() {
		if r.Date == "" {
			r.Date = "Today"
		}
		out = append(out, r)
	}
	return out
}

func (m RewardsModel) Update(msg tea.Msg) (RewardsModel, tea.Cmd) {
	if m.err != nil {
		return m, nil
	}
	key, isKey := msg.(tea.KeyMsg)

	if m.amount.Focused() {
		if isKey {
			switch key.String() {
			case "esc":
				m.amount.Blur()
				m.amount.Reset()
				m.swapIdx = -1
				return m, nil
			case "enter":
				m.submitSwap()
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.amount, cmd = m.amount.Update(msg)
		return m, cmd
	}

	if !isKey {
		return m, nil
	}
	m.message = ""
	m.failed = false
	switch key.String() {
	case "tab", "l", "right":
		m.tab = (m.tab + 1) % rewardsTab(len(rewardsTabNames))
		m.cursor = 0
	case "shift+tab", "h", "left":
		m.tab = (m.tab + rewardsTab(len(rewardsTabNames)) - 1) % rewardsTab(len(rewardsTabNames))
		m.cursor = 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.tabSize()-1 {
			m.cursor++
		}
	case "enter", " ":
		switch m.tab {
		case tabWhitelists:
			m.redeemSelected()
		case tabTokens:
			m.openSwapInput()
		}
	case "esc", "b":
		return m, navigateCmd(models.PageDashboard)
	}
	return m, nil
}

func (m *RewardsModel) redeemSelected() {
	if m.cursor >= len(m.whitelists) {
		return
	}
	offer := m.whitelists[m.cursor]
	if err := m.wallet.RedeemWhitelist(offer); err != nil {
		m.failed = true
		switch {
		case errors.Is(err, engine.ErrAlreadyRedeemed):
			m.message = "Already redeemed this session."
		case errors.Is(err, engine.ErrOfferSoldOut):
			m.message = "This whitelist is sold out."
		case errors.Is(err, engine.ErrInsufficientBalance):
			m.message = fmt.Sprintf("Not enough crystals: %s costs %s, you have %s.",
				offer.Name, util.FormatCrystals(offer.Cost), util.FormatCrystals(m.wallet.Balance()))
		default:
			m.message = err.Error()
		}
		return
	}
	m.message = fmt.Sprintf("Whitelist spot secured: %s (-%s crystals).",
		offer.Name, util.FormatCrystals(offer.Cost))
}

func (m *RewardsModel) openSwapInput() {
	if m.cursor >= len(m.offers) {
		return
	}
	offer := m.offers[m.cursor]
	if !offer.Available {
		m.failed = true
		m.message = fmt.Sprintf("%s swaps are coming soon.", offer.Symbol)
		return
	}
	m.swapIdx = m.cursor
	m.amount.Reset()
	m.amount.Focus()
}

func (m *RewardsModel) submitSwap() {
	offer := m.offers[m.swapIdx]
	raw := strings.TrimSpace(m.amount.Value())
	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		m.failed = true
		m.message = "Enter a whole crystal amount."
		return
	}
	out, err := m.wallet.SwapTokens(offer, amount)
	if err != nil {
		m.failed = true
		switch {
		case errors.Is(err, engine.ErrOfferUnavailable):
			m.message = fmt.Sprintf("%s swaps are coming soon.", offer.Symbol)
		case errors.Is(err, engine.ErrAmountOutOfRange):
			max := offer.MaxAmount
			if m.wallet.Balance() < max {
				max = m.wallet.Balance()
			}
			m.message = fmt.Sprintf("Amount must be between %s and %s crystals.",
				util.FormatCrystals(offer.MinAmount), util.FormatCrystals(max))
		default:
			m.message = err.Error()
		}
		return
	}
	m.amount.Blur()
	m.amount.Reset()
	m.swapIdx = -1
	m.message = fmt.Sprintf("Swapped %s crystals for %s %s.",
		util.FormatCrystals(amount), out.String(), offer.Symbol)
}

func (m RewardsModel) View() string {
	theme := CurrentTheme
	if m.err != nil {
		return theme.Danger.Render(fmt.Sprintf("Error: %v", m.err))
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Rewards Marketplace") + "\n")
	b.WriteString(theme.Subtitle.Render("Redeem your crystals for exclusive NFT whitelists and tokens") + "\n")
	b.WriteString(theme.Dim.Render("Your Balance ") + renderCrystals(m.wallet.Balance()) + "\n\n")
	b.WriteString(m.tabsView() + "\n\n")

	switch m.tab {
	case tabWhitelists:
		b.WriteString(m.whitelistsView())
	case tabTokens:
		b.WriteString(m.tokensView())
	case tabPast:
		b.WriteString(m.pastView())
	case tabHistory:
		b.WriteString(m.historyView())
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

func (m RewardsModel) helpView() string {
	if m.amount.Focused() {
		return renderKeyHelp("enter", "swap", "esc", "cancel")
	}
	switch m.tab {
	case tabWhitelists:
		return renderKeyHelp("enter", "redeem", "tab", "next tab", "j/k", "move", "esc", "back")
	case tabTokens:
		return renderKeyHelp("enter", "swap", "tab", "next tab", "j/k", "move", "esc", "back")
	default:
		return renderKeyHelp("tab", "next tab", "j/k", "move", "esc", "back")
	}
}

func (m RewardsModel) tabsView() string {
	theme := CurrentTheme
	parts := make([]string, len(rewardsTabNames))
	for i, name := range rewardsTabNames {
		if rewardsTab(i) == m.tab {
			parts[i] = theme.Selected.Render("[ " + name + " ]")
		} else {
			parts[i] = theme.Dim.Render("  " + name + "  ")
		}
	}
	return strings.Join(parts, " ")
}

func (m RewardsModel) whitelistsView() string {
	theme := CurrentTheme
	var b strings.Builder
	for i, offer := range m.whitelists {
		var lines []string
		header := offer.Icon + " " + theme.Text.Render(offer.Name)
		switch {
		case m.wallet.Redeemed(offer.ID):
			header += "  " + theme.Positive.Render("✔ Redeemed")
		case engine.IsSoldOut(offer):
			header += "  " + renderBadge("Sold Out")
		}
		lines = append(lines, header)
		lines = append(lines, theme.Dim.Render(truncate(offer.Description, 64)))
		lines = append(lines, fmt.Sprintf("%s  ·  %d/%d claimed  ·  mint %s",
			renderCrystals(offer.Cost), offer.Claimed, offer.Supply, offer.MintDate))
		if len(offer.Benefits) > 0 {
			lines = append(lines, theme.Dim.Render("Benefits: "+strings.Join(offer.Benefits, ", ")))
		}
		body := strings.Join(lines, "\n")
		title := ""
		if i == m.cursor {
			title = "▸"
		}
		b.WriteString(renderCard(title, body, 70) + "\n")
	}
	return b.String()
}

func (m RewardsModel) tokensView() string {
	theme := CurrentTheme
	var b strings.Builder
	for i, offer := range m.offers {
		var lines []string
		header := offer.Icon + " " + theme.Text.Render(offer.Name) + " " + renderTag(offer.Symbol)
		if !offer.Available {
			header += "  " + renderBadge("Coming Soon")
		}
		lines = append(lines, header)
		lines = append(lines, theme.Dim.Render(truncate(offer.Description, 64)))
		lines = append(lines, fmt.Sprintf("1 crystal = %s %s  ·  %s–%s crystals per swap",
			offer.ExchangeRate.String(), offer.Symbol,
			util.FormatCrystals(offer.MinAmount), util.FormatCrystals(offer.MaxAmount)))
		if m.swapIdx == i && m.amount.Focused() {
			lines = append(lines, theme.Input.Render(m.amount.View()))
		}
		body := strings.Join(lines, "\n")
		title := ""
		if i == m.cursor {
			title = "▸"
		}
		b.WriteString(renderCard(title, body, 70) + "\n")
	}
	return b.String()
}

func (m RewardsModel) pastView() string {
	theme := CurrentTheme
	var b strings.Builder
	for i, r := range m.past {
		marker := "  "
		if i == m.cursor {
			marker = theme.Selected.Render("> ")
		}
		kind := renderTag("Whitelist")
		if r.Kind == "tge" {
			kind = renderTag("TGE")
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", marker, r.Icon, theme.Text.Render(r.Name), kind))
		b.WriteString("    " + theme.Dim.Render(r.Details+"  ·  "+r.Date) + "\n")
	}
	return b.String()
}

func (m RewardsModel) historyView() string {
	theme := CurrentTheme
	entries := m.allHistory()
	if len(entries) == 0 {
		return theme.Dim.Render("No redemptions yet.")
	}
	var b strings.Builder
	for i, r := range entries {
		marker := "  "
		if i == m.cursor {
			marker = theme.Selected.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  -%s crystals  %s  %s\n",
			marker, renderTag(r.Kind), theme.Text.Render(r.Item),
			util.FormatCrystals(r.Cost), theme.Dim.Render(r.Date),
			theme.Positive.Render(r.Status)))
	}
	return b.String()
}
