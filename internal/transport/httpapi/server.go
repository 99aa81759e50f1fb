package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/newspulse/pulse/internal/config"
	"github.com/newspulse/pulse/internal/core"
	"github.com/newspulse/pulse/internal/service/chat"
	"github.com/newspulse/pulse/pkg/log"
)

// Enricher covers the single-shot completion helpers exposed alongside
// the chat endpoints.
type Enricher interface {
	Summarize(ctx context.Context, text string) (string, error)
	SuggestQuestions(ctx context.Context, text string, n int) (string, error)
}

type Deps struct {
	Users        core.UserRepository
	Prefs        core.PreferencesRepository
	Bookmarks    core.BookmarkRepository
	Searches     core.SearchHistoryRepository
	News         core.NewsProvider
	Orchestrator *chat.Orchestrator
	Enricher     Enricher
}

// Server is the JSON API transport. It satisfies srv.Service.
type Server struct {
	httpSrv  *http.Server
	deps     Deps
	sessions *sessionRegistry
}

func NewServer(ctx context.Context, cfg *config.AppConfig, deps Deps) *Server {
	if !config.IsDebug() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		deps:     deps,
		sessions: newSessionRegistry(),
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(ctx))
	s.routes(engine)

	s.httpSrv = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes(engine *gin.Engine) {
	api := engine.Group("/api")

	api.POST("/auth/register", s.handleRegister)
	api.POST("/auth/login", s.handleLogin)

	auth := api.Group("", s.authRequired)
	auth.POST("/auth/logout", s.handleLogout)

	auth.GET("/news/headlines", s.handleHeadlines)
	auth.GET("/news/search", s.handleSearch)

	auth.GET("/profile", s.handleGetProfile)
	auth.PUT("/profile", s.handleUpdateProfile)
	auth.GET("/preferences", s.handleGetPreferences)
	auth.PUT("/preferences", s.handleUpdatePreferences)
	auth.GET("/searches", s.handleRecentSearches)

	auth.GET("/bookmarks", s.handleListBookmarks)
	auth.POST("/bookmarks", s.handleSaveBookmark)
	auth.DELETE("/bookmarks", s.handleRemoveBookmark)

	auth.POST("/articles/ask", s.handleAskQuestion)
	auth.GET("/articles/messages", s.handleArticleMessages)
	auth.POST("/articles/questions", s.handleSuggestQuestions)
	auth.POST("/articles/summary", s.handleSummarize)
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.httpSrv.Addr).Msg("starting http api")
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpSrv.Shutdown(shutdownCtx)
}

func requestLogger(ctx context.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Thread the service logger into per-request contexts
		c.Request = c.Request.WithContext(log.FromCtx(ctx).WithContext(c.Request.Context()))

		start := time.Now()
		c.Next()

		log.FromCtx(c.Request.Context()).Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request handled")
	}
}
