package config

// Reward amounts.
const (
	// CampaignJoinBonus is credited once when the user joins a campaign.
	CampaignJoinBonus = 500

	// ReferralBonus is credited per referred friend who joins.
	ReferralBonus = 100
)

// Account defaults, used when no config file overrides them.
const (
	DefaultBalance  = 2450
	DefaultTheme    = "light"
	DefaultName     = "Alex Johnson"
	DefaultEmail    = "alex.johnson@example.com"
	DefaultBio      = "Passionate about earning crystals and completing challenges!"
	DefaultJoinDate = "January 2025"
)

// Application settings.
const (
	AppName    = "crystalquest"
	ConfigFile = "config.yaml"
)
