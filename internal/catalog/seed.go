package catalog

import (
	"context"
	"encoding/json"
	"fmt"
)

// Task scopes.
const (
	scopeDashboard = "dashboard"
	scopeCampaign  = "campaign"
)

// Activity feeds.
const (
	feedRecent  = "recent"
	feedHistory = "history"
)

func (c *Catalog) seed(ctx context.Context) error {
	type row struct {
		query string
		args  [][]any
	}

	rows := []row{
		{
			`INSERT INTO tasks (id, scope, title, description, reward, category, completed, required, featured, progress_cur, progress_max)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			[][]any{
				{1, scopeDashboard, "Complete your profile", "Add profile picture and bio", 50, "Profile", 1, 0, 0, 0, 0},
				{2, scopeDashboard, "Refer 3 friends", "Share your referral link with friends", 150, "Referral", 0, 0, 0, 1, 3},
				{3, scopeDashboard, "Join the Alpha Project", "Early access to our new project launch", 500, "Project", 0, 0, 1, 0, 0},
				{4, scopeDashboard, "Daily check-in", "Log in for 7 consecutive days", 100, "Daily", 0, 0, 0, 4, 7},
				{5, scopeDashboard, "Complete 10 tasks", "Finish any 10 tasks to unlock this reward", 200, "Achievement", 0, 0, 0, 6, 10},
				{101, scopeCampaign, "Follow us on social media", "Follow our official accounts on Twitter and LinkedIn", 50, "Social", 0, 1, 0, 0, 0},
				{102, scopeCampaign, "Join our Discord community", "Become a member of our active Discord server", 50, "Social", 0, 1, 0, 0, 0},
				{103, scopeCampaign, "Complete the feedback survey", "Share your thoughts about our platform", 100, "Survey", 0, 1, 0, 0, 0},
				{104, scopeCampaign, "Share the campaign", "Share this campaign on your social media", 75, "Social", 0, 0, 0, 0, 0},
				{105, scopeCampaign, "Invite friends", "Invite at least 2 friends to join the campaign", 200, "Referral", 0, 0, 0, 0, 0},
			},
		},
		{
			`INSERT INTO campaigns (id, title, description, status, category, difficulty, participants, end_date, total_reward, join_bonus)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			[][]any{
				{1, "Alpha Launch Campaign",
					"Be among the first to experience our revolutionary new platform. Complete simple tasks to earn massive crystal rewards and exclusive early access benefits.",
					"Active", "Launch Event", "Easy", 1247, "December 31, 2025", 1500, 500},
			},
		},
		{
			`INSERT INTO milestones (participants, reward, achieved) VALUES (?, ?, ?)`,
			[][]any{
				{500, "50 bonus crystals", 1},
				{1000, "100 bonus crystals", 1},
				{2000, "200 bonus crystals", 0},
				{5000, "VIP badge for all", 0},
			},
		},
		{
			`INSERT INTO reward_lines (crystals, action, icon) VALUES (?, ?, ?)`,
			[][]any{
				{500, "Join the campaign", "🎯"},
				{300, "Complete all tasks", "✅"},
				{200, "Refer 2 friends", "👥"},
				{500, "Early adopter bonus", "⭐"},
			},
		},
		{
			`INSERT INTO whitelist_offers (id, name, description, icon, cost, supply, claimed, mint_date, benefits)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			[][]any{
				{1, "Cosmic Apes NFT", "Guaranteed whitelist spot for the Cosmic Apes collection mint", "🦍",
					1000, 50, 32, "Jan 15, 2025", benefitsJSON("Priority mint access", "Exclusive Discord role", "Early reveal")},
				{2, "Crypto Punks Genesis", "Whitelist for the next generation Crypto Punks collection", "👾",
					2500, 25, 18, "Jan 20, 2025", benefitsJSON("Guaranteed mint", "VIP community access", "Airdrop eligibility")},
				{3, "Meta Warriors", "Premium whitelist spot with double mint allocation", "⚔️",
					1500, 100, 67, "Jan 25, 2025", benefitsJSON("2x mint allocation", "Private Discord", "Revenue share")},
				{4, "Digital Dragons", "Exclusive access to legendary dragon NFT collection", "🐉",
					3000, 20, 15, "Feb 1, 2025", benefitsJSON("Legendary tier access", "Staking rewards", "DAO voting rights")},
			},
		},
		{
			`INSERT INTO token_offers (id, symbol, name, description, icon, exchange_rate, min_amount, max_amount, available)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			[][]any{
				{1, "CRYSTAL", "CrystalQuest Token", "Native platform token with governance rights", "💎", "1", 100, 10000, 1},
				{2, "ALPHA", "Alpha Protocol", "DeFi protocol token with staking benefits", "🚀", "0.5", 500, 5000, 1},
				{3, "META", "MetaVerse Coin", "Virtual world currency for in-game purchases", "🌐", "2", 200, 8000, 1},
			},
		},
		{
			`INSERT INTO redemptions (id, kind, item, cost, date, status) VALUES (?, ?, ?, ?, ?, ?)`,
			[][]any{
				{1, "NFT Whitelist", "Cosmic Apes NFT", 1000, "Dec 18, 2025", "Confirmed"},
				{2, "Token Swap", "500 CRYSTAL tokens", 500, "Dec 15, 2025", "Completed"},
				{3, "Token Swap", "250 ALPHA tokens", 500, "Dec 10, 2025", "Completed"},
			},
		},
		{
			`INSERT INTO past_rewards (kind, name, details, icon, date, crystals) VALUES (?, ?, ?, ?, ?, ?)`,
			[][]any{
				{"whitelist", "Pixel Artists Club", "Whitelist for exclusive pixel art NFT collection", "🎨", "Dec 20, 2025", 800},
				{"whitelist", "Robo Warriors", "Early access to futuristic robot NFT series", "🤖", "Dec 10, 2025", 1200},
				{"whitelist", "Ocean Explorers", "Underwater themed NFT collection whitelist", "🌊", "Nov 25, 2025", 950},
				{"whitelist", "Royal Dynasty", "Premium royal-themed NFT collection access", "👑", "Nov 15, 2025", 2000},
				{"tge", "FireChain Protocol", "400 tokens allocation", "🔥", "Dec 5, 2025", 2500},
				{"tge", "Lightning Network", "600 tokens allocation", "⚡", "Nov 20, 2025", 3200},
				{"tge", "GameFi Token", "350 tokens allocation", "🎮", "Nov 5, 2025", 1800},
			},
		},
		{
			`INSERT INTO achievements (id, name, description, icon, unlocked) VALUES (?, ?, ?, ?, ?)`,
			[][]any{
				{1, "Early Adopter", "Joined in the first month", "🌟", 1},
				{2, "Social Butterfly", "Referred 5+ friends", "🦋", 1},
				{3, "Task Master", "Completed 10 tasks", "✅", 1},
				{4, "Streak Keeper", "7-day login streak", "🔥", 0},
				{5, "Crystal Collector", "Earned 5,000 crystals", "💎", 0},
				{6, "VIP Member", "Reached Level 10", "👑", 0},
			},
		},
		{
			`INSERT INTO activity (id, feed, action, crystals, at) VALUES (?, ?, ?, ?, ?)`,
			[][]any{
				{1, feedRecent, "Completed profile setup", 50, "2 hours ago"},
				{2, feedRecent, "Referred a friend", 50, "1 day ago"},
				{3, feedRecent, "Daily check-in streak", 25, "2 days ago"},
				{11, feedHistory, "Completed profile setup", 50, "Dec 20, 2025"},
				{12, feedHistory, "Referred a friend", 50, "Dec 19, 2025"},
				{13, feedHistory, "Daily check-in", 25, "Dec 18, 2025"},
				{14, feedHistory, "Completed survey task", 75, "Dec 17, 2025"},
				{15, feedHistory, "Joined project campaign", 200, "Dec 16, 2025"},
			},
		},
		{
			`INSERT INTO stats (tasks_completed, referrals, rank, total_users) VALUES (?, ?, ?, ?)`,
			[][]any{
				{12, 8, 156, 50000},
			},
		},
	}

	for _, r := range rows {
		for _, args := range r.args {
			if _, err := c.db.ExecContext(ctx, r.query, args...); err != nil {
				return fmt.Errorf("seeding catalog: %w", err)
			}
		}
	}
	return nil
}

func benefitsJSON(items ...string) string {
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}
