package catalog

import (
	"context"
	"encoding/json"

	"github.com/mireldan/crystalquest/internal/models"
	"github.com/shopspring/decimal"
)

// Whitelists returns the open NFT whitelist offers.
func (c *Catalog) Whitelists(ctx context.Context) ([]models.WhitelistOffer, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, name, description, icon, cost, supply, claimed, mint_date, benefits
		FROM whitelist_offers ORDER BY id`)
	if err != nil {
		return nil, wrapErr("query", "whitelist offers", err)
	}
	defer rows.Close()

	var out []models.WhitelistOffer
	for rows.Next() {
		var o models.WhitelistOffer
		var benefits string
		if err := rows.Scan(&o.ID, &o.Name, &o.Description, &o.Icon, &o.Cost,
			&o.Supply, &o.Claimed, &o.MintDate, &benefits); err != nil {
			return nil, wrapErr("scan", "whitelist offers", err)
		}
		if benefits != "" {
			if err := json.Unmarshal([]byte(benefits), &o.Benefits); err != nil {
				return nil, wrapErr("decode", "whitelist offers", err)
			}
		}
		out = append(out, o)
	}
	return out, wrapErr("iterate", "whitelist offers", rows.Err())
}

// TokenOffers returns the crystal-to-token swap listings.
func (c *Catalog) TokenOffers(ctx context.Context) ([]models.TokenOffer, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, symbol, name, description, icon, exchange_rate, min_amount, max_amount, available
		FROM token_offers ORDER BY id`)
	if err != nil {
		return nil, wrapErr("query", "token offers", err)
	}
	defer rows.Close()

	var out []models.TokenOffer
	for rows.Next() {
		var o models.TokenOffer
		var rate string
		if err := rows.Scan(&o.ID, &o.Symbol, &o.Name, &o.Description, &o.Icon,
			&rate, &o.MinAmount, &o.MaxAmount, &o.Available); err != nil {
			return nil, wrapErr("scan", "token offers", err)
		}
		o.ExchangeRate, err = decimal.NewFromString(rate)
		if err != nil {
			return nil, wrapErr("decode", "token offers", err)
		}
		out = append(out, o)
	}
	return out, wrapErr("iterate", "token offers", rows.Err())
}

// PastRewards returns expired whitelists and completed TGEs, newest first.
func (c *Catalog) PastRewards(ctx context.Context) ([]models.PastReward, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, kind, name, details, icon, date, crystals FROM past_rewards ORDER BY id`)
	if err != nil {
		return nil, wrapErr("query", "past rewards", err)
	}
	defer rows.Close()

	var out []models.PastReward
	for rows.Next() {
		var p models.PastReward
		if err := rows.Scan(&p.ID, &p.Kind, &p.Name, &p.Details, &p.Icon, &p.Date, &p.Crystals); err != nil {
			return nil, wrapErr("scan", "past rewards", err)
		}
		out = append(out, p)
	}
	return out, wrapErr("iterate", "past rewards", rows.Err())
}

// RedemptionHistory returns the seeded redemption ledger, newest first.
func (c *Catalog) RedemptionHistory(ctx context.Context) ([]models.Redemption, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, kind, item, cost, date, status FROM redemptions ORDER BY id`)
	if err != nil {
		return nil, wrapErr("query", "redemptions", err)
	}
	defer rows.Close()

	var out []models.Redemption
	for rows.Next() {
		var r models.Redemption
		if err := rows.Scan(&r.ID, &r.Kind, &r.Item, &r.Cost, &r.Date, &r.Status); err != nil {
			return nil, wrapErr("scan", "redemptions", err)
		}
		out = append(out, r)
	}
	return out, wrapErr("iterate", "redemptions", rows.Err())
}
