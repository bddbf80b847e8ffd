// Package story synthesizes the deterministic three-sentence narrative
// returned by the mock endpoint. It never calls a model: the output is a
// fixed template personalized with a subject phrase pulled out of the
// prompt by a crude heuristic.
package story

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultSubject is used when the prompt gives us nothing to work with.
const DefaultSubject = "a small creature"

// maxSubjectWords caps the extracted phrase length.
const maxSubjectWords = 4

// subjectPattern matches "about [a/an] X" where X runs up to the next
// period, newline, or comma.
var subjectPattern = regexp.MustCompile(`(?i)about (?:a |an )?([^.\n,]+)`)

// ExtractSubject derives a short phrase from free-form prompt text.
//
// An "about a <thing>" phrase wins if present; the capture is trimmed and
// then truncated to its first four words (match first, truncate after).
// Otherwise the first four words of the prompt are used. An empty prompt
// yields DefaultSubject. The result may still be empty for whitespace-only
// prompts; callers that need a word must handle that (Compose does).
func ExtractSubject(prompt string) string {
	if prompt == "" {
		return DefaultSubject
	}
	if m := subjectPattern.FindStringSubmatch(prompt); m != nil {
		return truncateWords(strings.TrimSpace(m[1]), maxSubjectWords)
	}
	return truncateWords(prompt, maxSubjectWords)
}

// Compose builds the three-sentence story for a subject phrase. The first
// sentence carries the full phrase; the remaining two repeat only its
// first word so a multi-word subject doesn't read awkwardly. An empty
// subject falls back to DefaultSubject so there is always a first word.
func Compose(subject string) string {
	words := strings.Fields(subject)
	if len(words) == 0 {
		subject = DefaultSubject
		words = strings.Fields(subject)
	}
	lead := words[0]

	first := fmt.Sprintf("In a peaceful grove beneath a silver moon, %s discovered a hidden pool that reflected the stars.", subject)
	second := fmt.Sprintf("As %s approached the water, the pool began to shimmer and revealed a pathway to a gentle, magical realm.", lead)
	third := fmt.Sprintf("Filled with wonder, %s whispered a wish for all who dream to find their own spark of magic, and left footprints that twinkled like stardust.", lead)
	return strings.Join([]string{first, second, third}, " ")
}

// Generate runs extraction and composition in one step.
func Generate(prompt string) string {
	return Compose(ExtractSubject(prompt))
}

func truncateWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}
