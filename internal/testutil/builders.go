package testutil

import (
	"github.com/mireldan/crystalquest/internal/models"
	"github.com/shopspring/decimal"
)

// TaskBuilder provides a fluent API for creating test tasks.
type TaskBuilder struct {
	task models.Task
}

func NewTask(id int64) *TaskBuilder {
	return &TaskBuilder{
		task: models.Task{
			ID:           id,
			Title:        "Test Task",
			Description:  "A task used in tests",
			RewardAmount: 50,
			Category:     "Test",
		},
	}
}

func (b *TaskBuilder) WithTitle(title string) *TaskBuilder {
	b.task.Title = title
	return b
}

func (b *TaskBuilder) WithReward(amount int64) *TaskBuilder {
	b.task.RewardAmount = amount
	return b
}

func (b *TaskBuilder) Required() *TaskBuilder {
	b.task.Required = true
	return b
}

func (b *TaskBuilder) Featured() *TaskBuilder {
	b.task.Featured = true
	return b
}

func (b *TaskBuilder) Completed() *TaskBuilder {
	b.task.Completed = true
	return b
}

func (b *TaskBuilder) WithProgress(cur, max int) *TaskBuilder {
	b.task.ProgressCur = cur
	b.task.ProgressMax = max
	return b
}

func (b *TaskBuilder) Build() models.Task {
	return b.task
}

// WhitelistBuilder provides a fluent API for creating test whitelist offers.
type WhitelistBuilder struct {
	offer models.WhitelistOffer
}

func NewWhitelist(id int64) *WhitelistBuilder {
	return &WhitelistBuilder{
		offer: models.WhitelistOffer{
			ID:      id,
			Name:    "Test Collection",
			Cost:    1000,
			Supply:  50,
			Claimed: 10,
		},
	}
}

func (b *WhitelistBuilder) WithCost(cost int64) *WhitelistBuilder {
	b.offer.Cost = cost
	return b
}

func (b *WhitelistBuilder) SoldOut() *WhitelistBuilder {
	b.offer.Claimed = b.offer.Supply
	return b
}

func (b *WhitelistBuilder) Build() models.WhitelistOffer {
	return b.offer
}

// TokenOfferBuilder provides a fluent API for creating test token offers.
type TokenOfferBuilder struct {
	offer models.TokenOffer
}

func NewTokenOffer(id int64, symbol string) *TokenOfferBuilder {
	return &TokenOfferBuilder{
		offer: models.TokenOffer{
			ID:           id,
			Symbol:       symbol,
			Name:         symbol + " Token",
			ExchangeRate: decimal.NewFromInt(1),
			MinAmount:    100,
			MaxAmount:    10000,
			Available:    true,
		},
	}
}

func (b *TokenOfferBuilder) WithRate(rate string) *TokenOfferBuilder {
	b.offer.ExchangeRate = decimal.RequireFromString(rate)
	return b
}

func (b *TokenOfferBuilder) WithWindow(min, max int64) *TokenOfferBuilder {
	b.offer.MinAmount = min
	b.offer.MaxAmount = max
	return b
}

func (b *TokenOfferBuilder) Unavailable() *TokenOfferBuilder {
	b.offer.Available = false
	return b
}

func (b *TokenOfferBuilder) Build() models.TokenOffer {
	return b.offer
}
