// Package digest builds a short recap of practice-focused chat snippets.
// It is a best-effort text heuristic over the transcript, not a
// summarization algorithm.
package digest

import (
	"regexp"
	"strings"
)

// Message is one transcript turn as the extractor sees it.
type Message struct {
	Role    string
	Content string
}

// practiceKeywords flag a sentence as practice-related. Matching is a
// plain lowercase substring check, so inflections like "learned" match
// via their stem as well as by listing.
var practiceKeywords = []string{
	"practice",
	"practiced",
	"practicing",
	"learn",
	"learned",
	"learning",
	"review",
	"reviewed",
	"studied",
	"study",
	"retain",
	"retention",
	"recap",
}

// sentenceSplitRe splits after terminal punctuation followed by
// whitespace. Go's regexp has no lookbehind, so the punctuation is
// captured and re-attached to the preceding sentence.
var sentenceSplitRe = regexp.MustCompile(`([.!?])\s+`)

const maxHighlights = 3

// The two fallback strings are textually identical today. They are kept
// as separate constants because they cover distinct cases (no transcript
// at all vs. no matching sentence) and callers pick between them.
const (
	// FallbackEmpty is returned when the transcript has no messages.
	FallbackEmpty = "I didn't spot specific practice highlights yet. Ask for a quick drill or share what you just practiced, then try again."
	// FallbackNoMatch is returned when no sentence matched a keyword.
	FallbackNoMatch = "I didn't spot specific practice highlights yet. Ask for a quick drill or share what you just practiced, then try again."
)

// recapHeader introduces the bullet list when highlights were found.
const recapHeader = "Here's a quick retention recap based on your recent chat:"

// Build scans the transcript most-recent-first and collects up to 3
// sentences containing a practice keyword, each labelled with its
// speaker. It stops as soon as 3 are collected, across both the sentence
// loop and the message loop.
func Build(messages []Message) string {
	if len(messages) == 0 {
		return FallbackEmpty
	}

	var highlights []string
	for i := len(messages) - 1; i >= 0 && len(highlights) < maxHighlights; i-- {
		content := strings.TrimSpace(messages[i].Content)
		if content == "" {
			continue
		}

		for _, sentence := range splitSentences(content) {
			cleaned := strings.TrimSpace(sentence)
			if cleaned == "" {
				continue
			}
			if !containsKeyword(strings.ToLower(cleaned)) {
				continue
			}

			speaker := "Tutor"
			if messages[i].Role == "user" {
				speaker = "You"
			}
			highlights = append(highlights, "- "+speaker+": "+cleaned)
			if len(highlights) >= maxHighlights {
				break
			}
		}
	}

	if len(highlights) == 0 {
		return FallbackNoMatch
	}
	return recapHeader + "\n" + strings.Join(highlights, "\n")
}

// splitSentences breaks text after `.`, `!` or `?` followed by
// whitespace, keeping the punctuation with the sentence it ends.
func splitSentences(text string) []string {
	marked := sentenceSplitRe.ReplaceAllString(text, "$1\x00")
	return strings.Split(marked, "\x00")
}

func containsKeyword(normalized string) bool {
	for _, kw := range practiceKeywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}
