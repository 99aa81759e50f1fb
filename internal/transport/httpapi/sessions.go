package httpapi

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/newspulse/pulse/internal/service/chat"
)

// apiSession pairs an authenticated user with their interactive chat
// state. Each login gets its own chat.Session, so concurrent sessions
// of the same user keep independent conversation caches.
type apiSession struct {
	userID int64
	chat   *chat.Session
}

type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*apiSession
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{
		sessions: make(map[string]*apiSession),
	}
}

func (r *sessionRegistry) create(userID int64) string {
	token := uuid.NewString()
	r.mu.Lock()
	r.sessions[token] = &apiSession{
		userID: userID,
		chat:   chat.NewSession(),
	}
	r.mu.Unlock()
	return token
}

func (r *sessionRegistry) get(token string) (*apiSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.sessions[token]
	return sess, ok
}

func (r *sessionRegistry) remove(token string) {
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
}

const sessionKey = "pulse_session"

func (s *Server) authRequired(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session token"})
		return
	}

	sess, ok := s.sessions.get(token)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session token"})
		return
	}

	c.Set(sessionKey, sess)
	c.Set("session_token", token)
	c.Next()
}

func currentSession(c *gin.Context) *apiSession {
	return c.MustGet(sessionKey).(*apiSession)
}
