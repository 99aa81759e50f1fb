package core

import "time"

const (
	AppName = "NewsPulse"

	// BrowserUserAgent mimics a real browser; many news sites block
	// requests with obvious bot agents.
	BrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const (
	// ContentUnavailable is returned by the fetcher when no recognizable
	// article container was found in the page.
	ContentUnavailable = "Full article content not available."

	// FetchErrorPrefix marks a soft fetch failure; the fetcher reports
	// network and HTTP errors as text so the answer pipeline can degrade
	// to title/description instead of failing.
	FetchErrorPrefix = "Error fetching full article"
)

type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content,omitempty"`
	URL         string `json:"url"`
	ImageURL    string `json:"image_url,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
	Source      string `json:"source,omitempty"`
}

// ChatMessage is a single turn of an in-session transcript.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// StoredMessage is a persisted conversation turn.
type StoredMessage struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversation_id"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Bio          string    `json:"bio"`
	CreatedAt    time.Time `json:"created_at"`
}

// Preferences drive the personalized feed. Each list is stored
// normalized: trimmed, de-duplicated, sorted.
type Preferences struct {
	UserID     int64    `json:"user_id"`
	Categories []string `json:"categories"`
	Sources    []string `json:"sources"`
	Keywords   []string `json:"keywords"`
}

type SavedArticle struct {
	ID int64 `json:"id"`
	Article
	SavedAt time.Time `json:"saved_at"`
}

type SearchEntry struct {
	Query     string    `json:"query"`
	CreatedAt time.Time `json:"created_at"`
}

// Categories accepted by the headlines endpoint of the news provider.
var Categories = []string{
	"world", "nation", "business", "technology",
	"entertainment", "sports", "science", "health",
}
