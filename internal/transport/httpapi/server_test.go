package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/newspulse/pulse/internal/config"
	"github.com/newspulse/pulse/internal/core"
	"github.com/newspulse/pulse/internal/service/chat"
)

type fakeUsers struct {
	nextID int64
	users  map[string]core.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[string]core.User)}
}

func (f *fakeUsers) CreateUser(_ context.Context, username, email, passwordHash string) (int64, error) {
	if _, ok := f.users[username]; ok {
		return 0, core.ErrAlreadyExists
	}
	f.nextID++
	f.users[username] = core.User{ID: f.nextID, Username: username, Email: email, PasswordHash: passwordHash}
	return f.nextID, nil
}

func (f *fakeUsers) UserByUsername(_ context.Context, username string) (core.User, error) {
	u, ok := f.users[username]
	if !ok {
		return core.User{}, core.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) UserByID(_ context.Context, id int64) (core.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return core.User{}, core.ErrNotFound
}

func (f *fakeUsers) UpdateProfile(context.Context, int64, string, string) error { return nil }

type fakeConvos struct {
	nextID  int64
	creates int
	saves   int
}

func (f *fakeConvos) CreateConversation(context.Context, int64, string) (int64, error) {
	f.creates++
	f.nextID++
	return f.nextID, nil
}

func (f *fakeConvos) SaveMessage(context.Context, int64, string, string) error {
	f.saves++
	return nil
}

func (f *fakeConvos) MessagesForArticle(context.Context, string) ([]core.StoredMessage, error) {
	return nil, nil
}

type fixedAnswerer struct{}

func (fixedAnswerer) Answer(context.Context, core.Article, string) string {
	return "**An answer.**"
}

func newTestServer(t *testing.T, convos *fakeConvos) *Server {
	t.Helper()
	users := newFakeUsers()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	users.users["alice"] = core.User{ID: 1, Username: "alice", PasswordHash: string(hash)}
	users.nextID = 1

	return NewServer(context.Background(), &config.AppConfig{HTTPAddr: ":0"}, Deps{
		Users:        users,
		Orchestrator: chat.NewOrchestrator(fixedAnswerer{}, convos),
	})
}

func doJSON(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.httpSrv.Handler.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, s *Server) string {
	t.Helper()
	w := doJSON(t, s, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "alice", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegister_Validation(t *testing.T) {
	s := newTestServer(t, &fakeConvos{})

	tests := []struct {
		name string
		body map[string]string
		want int
	}{
		{"missing fields", map[string]string{"username": "bob"}, http.StatusBadRequest},
		{"short password", map[string]string{"username": "bob", "email": "b@x.com", "password": "123"}, http.StatusBadRequest},
		{"duplicate username", map[string]string{"username": "alice", "email": "a@x.com", "password": "secret1"}, http.StatusConflict},
		{"ok", map[string]string{"username": "bob", "email": "b@x.com", "password": "secret1"}, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, s, http.MethodPost, "/api/auth/register", "", tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	s := newTestServer(t, &fakeConvos{})
	w := doJSON(t, s, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "alice", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAsk_RequiresAuth(t *testing.T) {
	s := newTestServer(t, &fakeConvos{})
	w := doJSON(t, s, http.MethodPost, "/api/articles/ask", "", map[string]any{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAsk_FullFlow(t *testing.T) {
	convos := &fakeConvos{}
	s := newTestServer(t, convos)
	token := login(t, s)

	ask := map[string]any{
		"article":  core.Article{URL: "https://x/a", Title: "T", Description: "D"},
		"question": "What happened?",
	}

	w := doJSON(t, s, http.MethodPost, "/api/articles/ask", token, ask)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Transcript []core.ChatMessage `json:"transcript"`
		AnswerHTML string             `json:"answer_html"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Transcript, 2)
	assert.Equal(t, core.RoleAssistant, resp.Transcript[1].Role)
	assert.Contains(t, resp.AnswerHTML, "<strong>An answer.</strong>")

	// Second question in the same session reuses the conversation
	w = doJSON(t, s, http.MethodPost, "/api/articles/ask", token, ask)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Transcript, 4)

	assert.Equal(t, 1, convos.creates)
	assert.Equal(t, 4, convos.saves)
}

func TestAsk_BadRequest(t *testing.T) {
	s := newTestServer(t, &fakeConvos{})
	token := login(t, s)

	w := doJSON(t, s, http.MethodPost, "/api/articles/ask", token, map[string]any{
		"question": "no article url",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogout_InvalidatesToken(t *testing.T) {
	s := newTestServer(t, &fakeConvos{})
	token := login(t, s)

	w := doJSON(t, s, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodPost, "/api/articles/ask", token, map[string]any{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
