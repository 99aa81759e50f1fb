package textutil

import "regexp"

const wordsPerMinute = 200

var wordRe = regexp.MustCompile(`\w+`)

// EstimateReadTime returns a rough reading time in minutes, assuming
// 200 words per minute. Never returns less than 1.
func EstimateReadTime(text string) int {
	words := len(wordRe.FindAllString(text, -1))
	minutes := words / wordsPerMinute
	if words%wordsPerMinute != 0 {
		minutes++
	}
	if minutes < 1 {
		return 1
	}
	return minutes
}
