package httpapi

import (
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/newspulse/pulse/internal/core"
	"github.com/newspulse/pulse/pkg/log"
	"github.com/newspulse/pulse/pkg/textutil"
)

type articleView struct {
	core.Article
	ReadMinutes int `json:"read_minutes"`
}

func enrichArticles(articles []core.Article) []articleView {
	views := make([]articleView, 0, len(articles))
	for _, a := range articles {
		text := a.Description
		if text == "" {
			text = a.Title
		}
		views = append(views, articleView{
			Article:     a,
			ReadMinutes: textutil.EstimateReadTime(text),
		})
	}
	return views
}

func searchOptions(c *gin.Context) core.SearchOptions {
	max, _ := strconv.Atoi(c.Query("max"))
	return core.SearchOptions{
		Language:   c.Query("lang"),
		Country:    c.Query("country"),
		MaxResults: max,
	}
}

func (s *Server) handleHeadlines(c *gin.Context) {
	ctx := c.Request.Context()
	sess := currentSession(c)

	topic := c.Query("topic")
	if topic != "" && !slices.Contains(core.Categories, topic) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown topic"})
		return
	}
	if topic == "" {
		// Fall back to the user's first preferred category
		if prefs, err := s.deps.Prefs.Preferences(ctx, sess.userID); err == nil && len(prefs.Categories) > 0 {
			topic = prefs.Categories[0]
		}
	}

	articles, err := s.deps.News.TopHeadlines(ctx, topic, searchOptions(c))
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("headlines fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "news provider unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": enrichArticles(articles)})
}

func (s *Server) handleSearch(c *gin.Context) {
	ctx := c.Request.Context()
	sess := currentSession(c)

	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query"})
		return
	}

	if err := s.deps.Searches.AddSearch(ctx, sess.userID, query); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("failed to record search")
	}

	articles, err := s.deps.News.Search(ctx, query, searchOptions(c))
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("news search failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "news provider unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": enrichArticles(articles)})
}

func (s *Server) handleRecentSearches(c *gin.Context) {
	sess := currentSession(c)
	entries, err := s.deps.Searches.RecentSearches(c.Request.Context(), sess.userID, 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load search history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"searches": entries})
}

func (s *Server) handleListBookmarks(c *gin.Context) {
	sess := currentSession(c)
	saved, err := s.deps.Bookmarks.SavedArticles(c.Request.Context(), sess.userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bookmarks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarks": saved})
}

func (s *Server) handleSaveBookmark(c *gin.Context) {
	var article core.Article
	if err := c.ShouldBindJSON(&article); err != nil || article.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article"})
		return
	}

	sess := currentSession(c)
	if err := s.deps.Bookmarks.SaveArticle(c.Request.Context(), sess.userID, article); err != nil {
		if errors.Is(err, core.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "already saved"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save bookmark"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "saved to bookmarks"})
}

func (s *Server) handleRemoveBookmark(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing url"})
		return
	}

	sess := currentSession(c)
	if err := s.deps.Bookmarks.RemoveSavedArticle(c.Request.Context(), sess.userID, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove bookmark"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "removed"})
}
