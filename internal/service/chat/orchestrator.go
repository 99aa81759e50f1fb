package chat

import (
	"context"

	"github.com/newspulse/pulse/internal/core"
	"github.com/newspulse/pulse/pkg/log"
)

type Answerer interface {
	Answer(ctx context.Context, article core.Article, question string) string
}

// Orchestrator ties one user question to the conversation store and the
// answer synthesizer. Persistence is fail-soft: a store outage degrades
// to an unrecorded chat, never a blocked one.
type Orchestrator struct {
	answerer Answerer
	convos   core.ConversationRepository
}

func NewOrchestrator(answerer Answerer, convos core.ConversationRepository) *Orchestrator {
	return &Orchestrator{
		answerer: answerer,
		convos:   convos,
	}
}

func (o *Orchestrator) HandleQuestion(ctx context.Context, sess *Session, userID int64, article core.Article, question string) []core.ChatMessage {
	logger := log.FromCtx(ctx)

	sess.append(article.URL, core.ChatMessage{Role: core.RoleUser, Content: question})

	convoID, cached := sess.conversationID(userID, article.URL)
	if !cached {
		id, err := o.convos.CreateConversation(ctx, userID, article.URL)
		if err != nil {
			logger.Warn().Err(err).Str("url", article.URL).Msg("failed to create conversation")
		} else {
			convoID = id
			cached = true
			sess.setConversationID(userID, article.URL, id)
		}
	}

	if cached {
		if err := o.convos.SaveMessage(ctx, convoID, core.RoleUser, question); err != nil {
			logger.Warn().Err(err).Msg("failed to save user message")
		}
	}

	reply := o.answerer.Answer(ctx, article, question)
	sess.append(article.URL, core.ChatMessage{Role: core.RoleAssistant, Content: reply})

	if cached {
		if err := o.convos.SaveMessage(ctx, convoID, core.RoleAssistant, reply); err != nil {
			logger.Warn().Err(err).Msg("failed to save assistant message")
		}
	}

	return sess.Transcript(article.URL)
}

// History returns the persisted transcript for an article across all of
// its conversations.
func (o *Orchestrator) History(ctx context.Context, articleURL string) ([]core.StoredMessage, error) {
	return o.convos.MessagesForArticle(ctx, articleURL)
}
