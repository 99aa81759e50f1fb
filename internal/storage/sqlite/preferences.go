package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/newspulse/pulse/internal/core"
)

type PreferencesRepo struct {
	db *sql.DB
}

func NewPreferencesRepo(db *sql.DB) *PreferencesRepo {
	return &PreferencesRepo{db: db}
}

// Preferences returns the user's row, inserting an empty one on first
// access.
func (r *PreferencesRepo) Preferences(ctx context.Context, userID int64) (core.Preferences, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT categories, sources, keywords FROM preferences WHERE user_id = ?`, userID)

	var cats, srcs, keys string
	err := row.Scan(&cats, &srcs, &keys)
	if errors.Is(err, sql.ErrNoRows) {
		if _, err := r.db.ExecContext(ctx, `INSERT INTO preferences (user_id) VALUES (?)`, userID); err != nil {
			return core.Preferences{}, fmt.Errorf("failed to insert preferences: %w", err)
		}
		return core.Preferences{UserID: userID}, nil
	}
	if err != nil {
		return core.Preferences{}, fmt.Errorf("failed to scan preferences: %w", err)
	}

	return core.Preferences{
		UserID:     userID,
		Categories: splitCSV(cats),
		Sources:    splitCSV(srcs),
		Keywords:   splitCSV(keys),
	}, nil
}

func (r *PreferencesRepo) UpdatePreferences(ctx context.Context, prefs core.Preferences) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE preferences SET categories = ?, sources = ?, keywords = ? WHERE user_id = ?`,
		joinCSV(prefs.Categories), joinCSV(prefs.Sources), joinCSV(prefs.Keywords), prefs.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update preferences: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		_, err = r.db.ExecContext(ctx,
			`INSERT INTO preferences (user_id, categories, sources, keywords) VALUES (?, ?, ?, ?)`,
			prefs.UserID, joinCSV(prefs.Categories), joinCSV(prefs.Sources), joinCSV(prefs.Keywords),
		)
		if err != nil {
			return fmt.Errorf("failed to insert preferences: %w", err)
		}
	}
	return nil
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// joinCSV normalizes: trimmed, de-duplicated, sorted.
func joinCSV(items []string) string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	sort.Strings(out)
	return strings.Join(out, ",")
}
