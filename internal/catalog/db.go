// Package catalog serves the seed content behind every page: tasks, the
// campaign, reward offers, achievements, and activity feeds. The store is an
// in-memory SQLite database rebuilt from the seed on every run; nothing the
// user does is written back to it.
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Catalog wraps the seed database connection.
type Catalog struct {
	db *sql.DB
}

// Open creates the in-memory database, applies the schema, and loads the seed.
func Open(ctx context.Context) (*Catalog, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	// A :memory: database exists per connection; more than one would each
	// see an empty schema.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging catalog: %w", err)
	}

	c := &Catalog{db: db}
	if err := c.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if err := c.seed(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

// Close releases the underlying connection.
func (c *Catalog) Close() error { return c.db.Close() }

func (c *Catalog) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE tasks (
			id INTEGER PRIMARY KEY,
			scope TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			reward INTEGER NOT NULL,
			category TEXT,
			completed INTEGER DEFAULT 0,
			required INTEGER DEFAULT 0,
			featured INTEGER DEFAULT 0,
			progress_cur INTEGER DEFAULT 0,
			progress_max INTEGER DEFAULT 0
		);`,
		`CREATE TABLE campaigns (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			status TEXT NOT NULL,
			category TEXT,
			difficulty TEXT,
			participants INTEGER NOT NULL,
			end_date TEXT,
			total_reward INTEGER NOT NULL,
			join_bonus INTEGER NOT NULL
		);`,
		`CREATE TABLE milestones (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			participants INTEGER NOT NULL,
			reward TEXT NOT NULL,
			achieved INTEGER DEFAULT 0
		);`,
		`CREATE TABLE reward_lines (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			crystals INTEGER NOT NULL,
			action TEXT NOT NULL,
			icon TEXT
		);`,
		`CREATE TABLE whitelist_offers (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			icon TEXT,
			cost INTEGER NOT NULL,
			supply INTEGER NOT NULL,
			claimed INTEGER NOT NULL,
			mint_date TEXT,
			benefits TEXT
		);`,
		`CREATE TABLE token_offers (
			id INTEGER PRIMARY KEY,
			symbol TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			icon TEXT,
			exchange_rate TEXT NOT NULL,
			min_amount INTEGER NOT NULL,
			max_amount INTEGER NOT NULL,
			available INTEGER DEFAULT 1
		);`,
		`CREATE TABLE redemptions (
			id INTEGER PRIMARY KEY,
			kind TEXT NOT NULL,
			item TEXT NOT NULL,
			cost INTEGER NOT NULL,
			date TEXT,
			status TEXT
		);`,
		`CREATE TABLE past_rewards (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			name TEXT NOT NULL,
			details TEXT,
			icon TEXT,
			date TEXT,
			crystals INTEGER NOT NULL
		);`,
		`CREATE TABLE achievements (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			icon TEXT,
			unlocked INTEGER DEFAULT 0
		);`,
		`CREATE TABLE activity (
			id INTEGER PRIMARY KEY,
			feed TEXT NOT NULL,
			action TEXT NOT NULL,
			crystals INTEGER NOT NULL,
			at TEXT
		);`,
		`CREATE TABLE stats (
			tasks_completed INTEGER NOT NULL,
			referrals INTEGER NOT NULL,
			rank INTEGER NOT NULL,
			total_users INTEGER NOT NULL
		);`,
	}

	for _, q := range queries {
		if _, err := c.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("creating tables: %w", err)
		}
	}
	return nil
}
