package chat

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/newspulse/pulse/internal/core"
)

// Two parallel requests with the same session token operate on the same
// Session; run with -race.
func TestSession_ConcurrentUse(t *testing.T) {
	sess := NewSession()
	const workers = 100

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			url := fmt.Sprintf("https://x/%d", i%4)
			sess.append(url, core.ChatMessage{Role: core.RoleUser, Content: "question"})
			sess.setConversationID(7, url, int64(i))
			sess.conversationID(7, url)
			sess.Transcript(url)
		}(i)
	}
	wg.Wait()

	total := 0
	for i := 0; i < 4; i++ {
		total += len(sess.Transcript(fmt.Sprintf("https://x/%d", i)))
	}
	assert.Equal(t, workers, total, "every appended message survives")
}
