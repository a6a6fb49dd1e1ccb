package catalog

import (
	"context"

	"github.com/mireldan/crystalquest/internal/models"
)

// Achievements returns every badge with its unlocked flag.
func (c *Catalog) Achievements(ctx context.Context) ([]models.Achievement, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, name, description, icon, unlocked FROM achievements ORDER BY id`)
	if err != nil {
		return nil, wrapErr("query", "achievements", err)
	}
	defer rows.Close()

	var out []models.Achievement
	for rows.Next() {
		var a models.Achievement
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Icon, &a.Unlocked); err != nil {
			return nil, wrapErr("scan", "achievements", err)
		}
		out = append(out, a)
	}
	return out, wrapErr("iterate", "achievements", rows.Err())
}

func (c *Catalog) activityByFeed(ctx context.Context, feed string) ([]models.Activity, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, action, crystals, at FROM activity WHERE feed = ? ORDER BY id`, feed)
	if err != nil {
		return nil, wrapErr("query", "activity", err)
	}
	defer rows.Close()

	var out []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.Action, &a.Crystals, &a.When); err != nil {
			return nil, wrapErr("scan", "activity", err)
		}
		out = append(out, a)
	}
	return out, wrapErr("iterate", "activity", rows.Err())
}

// RecentActivity returns the dashboard's latest-achievements feed.
func (c *Catalog) RecentActivity(ctx context.Context) ([]models.Activity, error) {
	return c.activityByFeed(ctx, feedRecent)
}

// CrystalHistory returns the profile's crystal ledger.
func (c *Catalog) CrystalHistory(ctx context.Context) ([]models.Activity, error) {
	return c.activityByFeed(ctx, feedHistory)
}

// Stats returns the account-level numbers.
func (c *Catalog) Stats(ctx context.Context) (models.Stats, error) {
	var s models.Stats
	err := c.db.QueryRowContext(ctx,
		`SELECT tasks_completed, referrals, rank, total_users FROM stats`).
		Scan(&s.TasksCompleted, &s.Referrals, &s.Rank, &s.TotalUsers)
	return s, wrapErr("query", "stats", err)
}
