package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/newspulse/pulse/internal/core"
)

type SearchesRepo struct {
	db *sql.DB
}

func NewSearchesRepo(db *sql.DB) *SearchesRepo {
	return &SearchesRepo{db: db}
}

func (r *SearchesRepo) AddSearch(ctx context.Context, userID int64, query string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO search_history (user_id, query) VALUES (?, ?)`,
		userID, strings.TrimSpace(query),
	)
	if err != nil {
		return fmt.Errorf("failed to insert search: %w", err)
	}
	return nil
}

func (r *SearchesRepo) RecentSearches(ctx context.Context, userID int64, limit int) ([]core.SearchEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT query, created_at FROM search_history WHERE user_id = ? ORDER BY id DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query searches: %w", err)
	}
	defer rows.Close()

	var entries []core.SearchEntry
	for rows.Next() {
		var e core.SearchEntry
		if err := rows.Scan(&e.Query, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan search: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
