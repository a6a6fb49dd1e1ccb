package catalog

import (
	"context"

	"github.com/mireldan/crystalquest/internal/models"
)

// TaskRepository defines the dashboard and campaign reads.
type TaskRepository interface {
	DashboardTasks(ctx context.Context) ([]models.Task, error)
	Campaign(ctx context.Context) (models.Campaign, error)
	CampaignTasks(ctx context.Context) ([]models.Task, error)
	Milestones(ctx context.Context) ([]models.Milestone, error)
	RewardBreakdown(ctx context.Context) ([]models.RewardLine, error)
}

// RewardsRepository defines the rewards-marketplace reads.
type RewardsRepository interface {
	Whitelists(ctx context.Context) ([]models.WhitelistOffer, error)
	TokenOffers(ctx context.Context) ([]models.TokenOffer, error)
	PastRewards(ctx context.Context) ([]models.PastReward, error)
	RedemptionHistory(ctx context.Context) ([]models.Redemption, error)
}

// ProfileRepository defines the profile-page reads.
type ProfileRepository interface {
	Achievements(ctx context.Context) ([]models.Achievement, error)
	RecentActivity(ctx context.Context) ([]models.Activity, error)
	CrystalHistory(ctx context.Context) ([]models.Activity, error)
	Stats(ctx context.Context) (models.Stats, error)
}

// Repository combines all catalog reads.
//
//go:generate mockgen -source=interface.go -destination=../tui/mock_catalog_test.go -package=tui
type Repository interface {
	TaskRepository
	RewardsRepository
	ProfileRepository
}

var _ Repository = (*Catalog)(nil)
