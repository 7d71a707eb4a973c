// Package sanitize strips the simplest script injection vectors from
// submitted text before it is interpolated into generated email bodies.
//
// This is a denylist, not an HTML sanitizer. It removes script blocks,
// the javascript: scheme and inline event-handler attributes, and nothing
// else. It is not a security boundary for rich HTML contexts; values must
// still be escaped wherever they are rendered as HTML.
package sanitize

import (
	"regexp"

	"portfolio-contact-backend/internal/domain"
)

var (
	// Lazy match stops at the first closing tag, so text between two
	// separate script blocks survives.
	scriptBlock = regexp.MustCompile(`(?is)<script\b.*?</script>`)

	// Opening or closing script tags left without a partner
	strayScriptTag = regexp.MustCompile(`(?i)</?script[^<>]*>?`)

	jsScheme     = regexp.MustCompile(`(?i)javascript:`)
	eventHandler = regexp.MustCompile(`(?i)on\w+\s*=`)
)

var patterns = []*regexp.Regexp{scriptBlock, strayScriptTag, jsScheme, eventHandler}

// String removes script blocks, javascript: prefixes and on<event>= patterns.
// Removal repeats until nothing matches, so fragments cannot be reassembled
// by nesting and String(String(s)) == String(s).
func String(s string) string {
	for {
		out := s
		for _, re := range patterns {
			out = re.ReplaceAllString(out, "")
		}
		if out == s {
			return out
		}
		s = out
	}
}

// Submission returns a copy of in with every string field passed through String.
// The timestamp is left untouched.
func Submission(in domain.SubmissionInput) domain.SubmissionInput {
	return domain.SubmissionInput{
		Name:        String(in.Name),
		Email:       String(in.Email),
		Subject:     String(in.Subject),
		Message:     String(in.Message),
		SourceIP:    String(in.SourceIP),
		UserAgent:   String(in.UserAgent),
		SubmittedAt: in.SubmittedAt,
	}
}
