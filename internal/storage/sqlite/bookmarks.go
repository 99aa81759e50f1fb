package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/newspulse/pulse/internal/core"
)

type BookmarksRepo struct {
	db *sql.DB
}

func NewBookmarksRepo(db *sql.DB) *BookmarksRepo {
	return &BookmarksRepo{db: db}
}

func (r *BookmarksRepo) SaveArticle(ctx context.Context, userID int64, article core.Article) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO saved_articles (user_id, title, url, description, source, published_at, image_url)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		userID,
		strings.TrimSpace(article.Title),
		strings.TrimSpace(article.URL),
		article.Description,
		article.Source,
		article.PublishedAt,
		article.ImageURL,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return fmt.Errorf("%w: already saved", core.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to save article: %w", err)
	}
	return nil
}

func (r *BookmarksRepo) SavedArticles(ctx context.Context, userID int64) ([]core.SavedArticle, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, url, description, source, published_at, image_url, created_at
		 FROM saved_articles WHERE user_id = ? ORDER BY id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved articles: %w", err)
	}
	defer rows.Close()

	var saved []core.SavedArticle
	for rows.Next() {
		var sa core.SavedArticle
		if err := rows.Scan(&sa.ID, &sa.Title, &sa.URL, &sa.Description, &sa.Source,
			&sa.PublishedAt, &sa.ImageURL, &sa.SavedAt); err != nil {
			return nil, fmt.Errorf("failed to scan saved article: %w", err)
		}
		saved = append(saved, sa)
	}
	return saved, rows.Err()
}

func (r *BookmarksRepo) RemoveSavedArticle(ctx context.Context, userID int64, url string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM saved_articles WHERE user_id = ? AND url = ?`, userID, url)
	if err != nil {
		return fmt.Errorf("failed to remove saved article: %w", err)
	}
	return nil
}
