package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/newspulse/pulse/internal/core"
	"github.com/newspulse/pulse/pkg/conv"
	"github.com/newspulse/pulse/pkg/log"
)

type askRequest struct {
	Article  core.Article `json:"article"`
	Question string       `json:"question"`
}

func (s *Server) handleAskQuestion(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Question == "" || req.Article.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "article url and question are required"})
		return
	}

	sess := currentSession(c)
	transcript := s.deps.Orchestrator.HandleQuestion(
		c.Request.Context(), sess.chat, sess.userID, req.Article, req.Question)

	var answerHTML string
	if len(transcript) > 0 {
		answerHTML = conv.MarkdownToHTML([]byte(transcript[len(transcript)-1].Content))
	}

	c.JSON(http.StatusOK, gin.H{
		"transcript":  transcript,
		"answer_html": answerHTML,
	})
}

func (s *Server) handleArticleMessages(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing url"})
		return
	}

	messages, err := s.deps.Orchestrator.History(c.Request.Context(), url)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

type enrichRequest struct {
	Text string `json:"text"`
	N    int    `json:"n"`
}

func (s *Server) handleSuggestQuestions(c *gin.Context) {
	var req enrichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	questions, err := s.deps.Enricher.SuggestQuestions(c.Request.Context(), req.Text, req.N)
	if err != nil {
		log.FromCtx(c.Request.Context()).Warn().Err(err).Msg("question suggestion failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "suggestion service unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

func (s *Server) handleSummarize(c *gin.Context) {
	var req enrichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	summary, err := s.deps.Enricher.Summarize(c.Request.Context(), req.Text)
	if err != nil {
		log.FromCtx(c.Request.Context()).Warn().Err(err).Msg("summarization failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "summary service unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
