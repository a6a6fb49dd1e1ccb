package models

import "github.com/shopspring/decimal"

// Page identifies one of the top-level screens.
type Page string

const (
	PageHome      Page = "home"
	PageDashboard Page = "dashboard"
	PageProfile   Page = "profile"
	PageTask      Page = "task"
	PageRewards   Page = "rewards"
)

// KnownPages lists every valid page, in navigation order.
var KnownPages = []Page{PageHome, PageDashboard, PageRewards, PageProfile, PageTask}

// IsValid reports whether p names a known page.
func (p Page) IsValid() bool {
	switch p {
	case PageHome, PageDashboard, PageProfile, PageTask, PageRewards:
		return true
	default:
		return false
	}
}

// Task is a single earning opportunity shown on the dashboard or inside a campaign.
type Task struct {
	ID           int64
	Title        string
	Description  string
	RewardAmount int64
	Category     string
	Completed    bool // catalog flag; campaign completion is tracked by the engine
	Required     bool
	Featured     bool
	ProgressCur  int
	ProgressMax  int // 0 means the task has no progress meter
}

// Campaign is a time-bounded project a user joins to earn bonus crystals.
type Campaign struct {
	ID           int64
	Title        string
	Description  string
	Status       string
	Category     string
	Difficulty   string
	Participants int
	EndDate      string
	TotalReward  int64
	JoinBonus    int64
}

// Milestone is a community participation threshold with a shared reward.
type Milestone struct {
	Participants int
	Reward       string
	Achieved     bool
}

// RewardLine is one row of a campaign's reward breakdown.
type RewardLine struct {
	Crystals int64
	Action   string
	Icon     string
}

// WhitelistOffer is a capped-supply NFT whitelist spot purchasable with crystals.
type WhitelistOffer struct {
	ID          int64
	Name        string
	Description string
	Icon        string
	Cost        int64
	Supply      int
	Claimed     int
	MintDate    string
	Benefits    []string
}

// TokenOffer is a crystal-to-token swap listing.
type TokenOffer struct {
	ID           int64
	Symbol       string
	Name         string
	Description  string
	Icon         string
	ExchangeRate decimal.Decimal
	MinAmount    int64
	MaxAmount    int64
	Available    bool
}

// Redemption is one entry of the rewards history ledger.
type Redemption struct {
	ID     int64
	Kind   string // "NFT Whitelist" or "Token Swap"
	Item   string
	Cost   int64
	Date   string
	Status string
}

// PastReward is an expired whitelist or completed TGE shown under past rewards.
type PastReward struct {
	ID       int64
	Kind     string // "whitelist" or "tge"
	Name     string
	Details  string
	Icon     string
	Date     string
	Crystals int64
}

// Profile holds the editable identity fields.
type Profile struct {
	Name      string
	Email     string
	Bio       string
	JoinDate  string
	AvatarURL string
}

// Initials returns the avatar fallback letters for the profile name.
func (p Profile) Initials() string {
	out := ""
	for _, word := range splitWords(p.Name) {
		out += string([]rune(word)[0])
	}
	return out
}

func splitWords(s string) []string {
	var words []string
	cur := ""
	for _, r := range s {
		if r == ' ' {
			if cur != "" {
				words = append(words, cur)
				cur = ""
			}
			continue
		}
		cur += string(r)
	}
	if cur != "" {
		words = append(words, cur)
	}
	return words
}

// Stats aggregates the account-level numbers shown on dashboard and profile.
// Crystal balance and level are not part of Stats; the wallet owns those.
type Stats struct {
	TasksCompleted int
	Referrals      int
	Rank           int
	TotalUsers     int
}

// Achievement is a badge with an unlocked flag.
type Achievement struct {
	ID          int64
	Name        string
	Description string
	Icon        string
	Unlocked    bool
}

// Activity is one entry of the recent-activity or crystal-history feeds.
type Activity struct {
	ID       int64
	Action   string
	Crystals int64
	When     string
}
