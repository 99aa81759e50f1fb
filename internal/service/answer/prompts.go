package answer

import (
	"fmt"

	"github.com/newspulse/pulse/internal/core"
)

func extractionPrompt(context, question string) string {
	return fmt.Sprintf(`You are a precise reading assistant. Use ONLY the article context below as your source.
If the context contains the answer, reply with the direct answer and nothing else.
If the answer cannot be found in the context, reply with exactly %s.

Context:
%s

Question:
%s

Answer:`, notFoundSentinel, context, question)
}

func reasoningPrompt(article core.Article, question string) string {
	return fmt.Sprintf(`You are a knowledgeable news assistant. The full article text is not available.
Using the headline and description below plus your general background knowledge, give your best structured answer.
Use short lists or notes where that helps. Note clearly which parts are background knowledge rather than from the article.
Do not ask the user for more information.

Headline: %s
Description: %s

Question:
%s

Answer:`, article.Title, article.Description, question)
}

func fallbackPrompt(article core.Article, question string) string {
	return fmt.Sprintf(`Answer the question below as well as you can from general knowledge.
If you are unsure, point the reader to coverage by canonical outlets such as Reuters, the Associated Press, or BBC News.

Headline: %s
Description: %s

Question:
%s

Answer:`, article.Title, article.Description, question)
}

func summaryPrompt(text string) string {
	return fmt.Sprintf("Summarize the following news article in a concise paragraph:\n\n%s", text)
}

func questionsPrompt(text string, n int) string {
	return fmt.Sprintf("Generate %d clear, concise, thought-provoking study questions based on the following article:\n\n%s\n\nReturn each question on a separate line.", n, text)
}
