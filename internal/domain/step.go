package domain

import "strings"

const sentenceBoundary = ". "

// SplitInstructions breaks instruction prose into ordered steps at sentence
// boundaries. Fragments are trimmed, empty ones dropped, and every step ends
// with terminal punctuation.
func SplitInstructions(text string) []string {
	parts := strings.Split(text, sentenceBoundary)

	steps := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !hasTerminalPunctuation(part) {
			part += "."
		}
		steps = append(steps, part)
	}
	return steps
}

func hasTerminalPunctuation(s string) bool {
	switch s[len(s)-1] {
	case '.', '!', '?':
		return true
	}
	return false
}
