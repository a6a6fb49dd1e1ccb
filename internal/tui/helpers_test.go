package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"

	"github.com/mireldan/crystalquest/internal/config"
	"github.com/mireldan/crystalquest/internal/models"
	"github.com/mireldan/crystalquest/internal/testutil"
)

// newStubRepo returns a mock repository with permissive defaults for every
// read, so page models can be constructed without per-test expectations.
// Tests override individual calls with their own EXPECT before construction.
func newStubRepo(t *testing.T) *MockRepository {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := NewMockRepository(ctrl)

	tasks := []models.Task{
		testutil.NewTask(1).WithTitle("Daily Check-in").WithReward(50).Build(),
		testutil.NewTask(2).WithTitle("Refer a Friend").WithReward(150).Build(),
	}
	campaignTasks := []models.Task{
		testutil.NewTask(101).WithTitle("Follow on X").WithReward(100).Required().Build(),
		testutil.NewTask(102).WithTitle("Join Discord").WithReward(150).Required().Build(),
		testutil.NewTask(103).WithTitle("Share Announcement").WithReward(200).Build(),
	}
	campaign := models.Campaign{
		ID:          1,
		Title:       "Alpha Launch Campaign",
		Status:      "Active",
		TotalReward: 2500,
		JoinBonus:   config.CampaignJoinBonus,
	}
	whitelists := []models.WhitelistOffer{
		testutil.NewWhitelist(1).WithCost(1000).Build(),
		testutil.NewWhitelist(2).WithCost(5000).Build(),
	}
	offers := []models.TokenOffer{
		testutil.NewTokenOffer(1, "QST").WithRate("1").WithWindow(100, 10000).Build(),
		testutil.NewTokenOffer(2, "GLM").WithRate("0.5").WithWindow(200, 5000).Build(),
	}

	repo.EXPECT().DashboardTasks(gomock.Any()).Return(tasks, nil).AnyTimes()
	repo.EXPECT().Campaign(gomock.Any()).Return(campaign, nil).AnyTimes()
	repo.EXPECT().CampaignTasks(gomock.Any()).Return(campaignTasks, nil).AnyTimes()
	repo.EXPECT().Milestones(gomock.Any()).Return([]models.Milestone{{Participants: 10000, Reward: "Bonus crystal airdrop", Achieved: true}}, nil).AnyTimes()
	repo.EXPECT().RewardBreakdown(gomock.Any()).Return([]models.RewardLine{{Crystals: 500, Action: "Join the campaign", Icon: "✦"}}, nil).AnyTimes()
	repo.EXPECT().Whitelists(gomock.Any()).Return(whitelists, nil).AnyTimes()
	repo.EXPECT().TokenOffers(gomock.Any()).Return(offers, nil).AnyTimes()
	repo.EXPECT().PastRewards(gomock.Any()).Return([]models.PastReward{{ID: 1, Kind: "whitelist", Name: "Genesis Drop", Date: "2024-01-15"}}, nil).AnyTimes()
	repo.EXPECT().RedemptionHistory(gomock.Any()).Return([]models.Redemption{{ID: 1, Kind: "NFT Whitelist", Item: "Genesis Drop", Cost: 800, Date: "2024-01-15", Status: "Confirmed"}}, nil).AnyTimes()
	repo.EXPECT().Achievements(gomock.Any()).Return([]models.Achievement{{ID: 1, Name: "First Steps", Unlocked: true}}, nil).AnyTimes()
	repo.EXPECT().RecentActivity(gomock.Any()).Return([]models.Activity{{ID: 1, Action: "Daily check-in", Crystals: 50, When: "2 hours ago"}}, nil).AnyTimes()
	repo.EXPECT().CrystalHistory(gomock.Any()).Return([]models.Activity{{ID: 1, Action: "Campaign joined", Crystals: 500, When: "Yesterday"}}, nil).AnyTimes()
	repo.EXPECT().Stats(gomock.Any()).Return(models.Stats{TasksCompleted: 12, Referrals: 8, Rank: 156, TotalUsers: 50000}, nil).AnyTimes()
	return repo
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
