package core

import "context"

type ConversationRepository interface {
	// CreateConversation always inserts a new row; reuse across questions
	// is the session cache's job, not the store's.
	CreateConversation(ctx context.Context, userID int64, articleURL string) (int64, error)
	SaveMessage(ctx context.Context, conversationID int64, role, content string) error
	MessagesForArticle(ctx context.Context, articleURL string) ([]StoredMessage, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error)
	UserByUsername(ctx context.Context, username string) (User, error)
	UserByID(ctx context.Context, id int64) (User, error)
	UpdateProfile(ctx context.Context, userID int64, fullName, bio string) error
}

type PreferencesRepository interface {
	Preferences(ctx context.Context, userID int64) (Preferences, error)
	UpdatePreferences(ctx context.Context, prefs Preferences) error
}

type BookmarkRepository interface {
	SaveArticle(ctx context.Context, userID int64, article Article) error
	SavedArticles(ctx context.Context, userID int64) ([]SavedArticle, error)
	RemoveSavedArticle(ctx context.Context, userID int64, url string) error
}

type SearchHistoryRepository interface {
	AddSearch(ctx context.Context, userID int64, query string) error
	RecentSearches(ctx context.Context, userID int64, limit int) ([]SearchEntry, error)
}
