package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/newspulse/pulse/internal/core"
	"github.com/newspulse/pulse/pkg/log"
)

type ConversationsRepo struct {
	db *sql.DB
}

func NewConversationsRepo(db *sql.DB) *ConversationsRepo {
	return &ConversationsRepo{db: db}
}

func (r *ConversationsRepo) CreateConversation(ctx context.Context, userID int64, articleURL string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO conversations (user_id, article_url) VALUES (?, ?)`,
		userID, articleURL,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert conversation: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	log.FromCtx(ctx).Debug().Int64("conversation_id", id).Str("url", articleURL).Msg("created conversation")
	return id, nil
}

func (r *ConversationsRepo) SaveMessage(ctx context.Context, conversationID int64, role, content string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO messages (conversation_id, role, content) VALUES (?, ?, ?)`,
		conversationID, role, content,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey {
			return fmt.Errorf("%w: id %d", core.ErrConversationNotFound, conversationID)
		}
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// MessagesForArticle joins across every conversation recorded for the
// URL, insertion order ascending. Not scoped by user.
func (r *ConversationsRepo) MessagesForArticle(ctx context.Context, articleURL string) ([]core.StoredMessage, error) {
	query := `SELECT m.id, m.conversation_id, m.role, m.content, m.created_at
		FROM messages m
		JOIN conversations c ON c.id = m.conversation_id
		WHERE c.article_url = ?
		ORDER BY m.id ASC`

	rows, err := r.db.QueryContext(ctx, query, articleURL)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []core.StoredMessage
	for rows.Next() {
		var msg core.StoredMessage
		var content sql.NullString

		if err := rows.Scan(&msg.ID, &msg.ConversationID, &msg.Role, &content, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		msg.Content = content.String

		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.FromCtx(ctx).Debug().Int("count", len(messages)).Msg("loaded article messages")
	return messages, nil
}
