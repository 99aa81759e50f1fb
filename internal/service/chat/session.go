package chat

import (
	"fmt"
	"sync"

	"github.com/newspulse/pulse/internal/core"
)

// Session holds per-session chat state: the conversation-id cache that
// keeps one question thread per (user, article) within a session, and
// the in-memory transcripts rendered back to the client. The transport
// hands the same Session to every request carrying the session token,
// and those requests run on separate goroutines, so all map access is
// serialized here. Two concurrent sessions of the same user still get
// independent caches (and thus independent conversation rows).
type Session struct {
	mu            sync.Mutex
	conversations map[string]int64
	transcripts   map[string][]core.ChatMessage
}

func NewSession() *Session {
	return &Session{
		conversations: make(map[string]int64),
		transcripts:   make(map[string][]core.ChatMessage),
	}
}

func conversationKey(userID int64, articleURL string) string {
	return fmt.Sprintf("%d|%s", userID, articleURL)
}

func (s *Session) conversationID(userID int64, articleURL string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.conversations[conversationKey(userID, articleURL)]
	return id, ok
}

func (s *Session) setConversationID(userID int64, articleURL string, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations[conversationKey(userID, articleURL)] = id
}

func (s *Session) append(articleURL string, msg core.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcripts[articleURL] = append(s.transcripts[articleURL], msg)
}

// Transcript returns a copy of the session transcript for an article.
func (s *Session) Transcript(articleURL string) []core.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := s.transcripts[articleURL]
	out := make([]core.ChatMessage, len(msgs))
	copy(out, msgs)
	return out
}
