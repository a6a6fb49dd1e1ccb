package catalog

import (
	"context"

	"github.com/mireldan/crystalquest/internal/models"
)

func (c *Catalog) tasksByScope(ctx context.Context, scope string) ([]models.Task, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, title, description, reward, category, completed, required, featured, progress_cur, progress_max
		FROM tasks WHERE scope = ? ORDER BY id`, scope)
	if err != nil {
		return nil, wrapErr("query", "tasks", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.RewardAmount, &t.Category,
			&t.Completed, &t.Required, &t.Featured, &t.ProgressCur, &t.ProgressMax); err != nil {
			return nil, wrapErr("scan", "tasks", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, wrapErr("iterate", "tasks", rows.Err())
}

// DashboardTasks returns the earning tasks listed on the dashboard.
func (c *Catalog) DashboardTasks(ctx context.Context) ([]models.Task, error) {
	return c.tasksByScope(ctx, scopeDashboard)
}

// CampaignTasks returns the tasks belonging to the featured campaign.
func (c *Catalog) CampaignTasks(ctx context.Context) ([]models.Task, error) {
	return c.tasksByScope(ctx, scopeCampaign)
}

// Campaign returns the featured campaign.
func (c *Catalog) Campaign(ctx context.Context) (models.Campaign, error) {
	var cp models.Campaign
	err := c.db.QueryRowContext(ctx, `
		SELECT id, title, description, status, category, difficulty, participants, end_date, total_reward, join_bonus
		FROM campaigns ORDER BY id LIMIT 1`).
		Scan(&cp.ID, &cp.Title, &cp.Description, &cp.Status, &cp.Category, &cp.Difficulty,
			&cp.Participants, &cp.EndDate, &cp.TotalReward, &cp.JoinBonus)
	return cp, wrapErr("query", "campaign", err)
}

// Milestones returns the campaign's community milestones, lowest first.
func (c *Catalog) Milestones(ctx context.Context) ([]models.Milestone, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT participants, reward, achieved FROM milestones ORDER BY participants`)
	if err != nil {
		return nil, wrapErr("query", "milestones", err)
	}
	defer rows.Close()

	var out []models.Milestone
	for rows.Next() {
		var m models.Milestone
		if err := rows.Scan(&m.Participants, &m.Reward, &m.Achieved); err != nil {
			return nil, wrapErr("scan", "milestones", err)
		}
		out = append(out, m)
	}
	return out, wrapErr("iterate", "milestones", rows.Err())
}

// RewardBreakdown returns the campaign's reward lines in seed order.
func (c *Catalog) RewardBreakdown(ctx context.Context) ([]models.RewardLine, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT crystals, action, icon FROM reward_lines ORDER BY id`)
	if err != nil {
		return nil, wrapErr("query", "reward lines", err)
	}
	defer rows.Close()

	var out []models.RewardLine
	for rows.Next() {
		var r models.RewardLine
		if err := rows.Scan(&r.Crystals, &r.Action, &r.Icon); err != nil {
			return nil, wrapErr("scan", "reward lines", err)
		}
		out = append(out, r)
	}
	return out, wrapErr("iterate", "reward lines", rows.Err())
}
