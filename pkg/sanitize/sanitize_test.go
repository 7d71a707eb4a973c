package sanitize_test

import (
	"regexp"
	"testing"
	"time"

	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/pkg/sanitize"

	"github.com/stretchr/testify/assert"
)

var forbidden = regexp.MustCompile(`(?i)<script|javascript:|on\w+=`)

func TestString(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Hello, I'd like to talk.", "Hello, I'd like to talk."},
		{"script block", "hi<script>alert(1)</script>there", "hithere"},
		{"script block mixed case", "a<ScRiPt type=\"text/javascript\">x()</SCRIPT>b", "ab"},
		{"script block across lines", "a<script>\nvar x = 1;\n</script>b", "ab"},
		{"two blocks keep text between", "<script>a</script>keep<script>b</script>", "keep"},
		{"javascript scheme", "click JavaScript:alert(1)", "click alert(1)"},
		{"event handler", `<img src=x onerror="alert(1)">`, `<img src=x "alert(1)">`},
		{"event handler with spaces", `<b onClick  = "x">`, `<b  "x">`},
		{"nested reassembly", "<scr<script>x</script>ipt>alert(1)</script>", "alert(1)"},
		{"nested scheme", "jajavascript:vascript:go", "go"},
		{"unclosed script tag", "before<script src=//evil>after", "beforeafter"},
		{"word containing on without equals", "Jonathan online", "Jonathan online"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sanitize.String(tc.in))
		})
	}
}

func TestStringProperties(t *testing.T) {
	inputs := []string{
		"",
		"Jane Doe",
		"<script>alert('x')</script>",
		"<SCRIPT>document.cookie</script><script>",
		"oonclick=nclick=",
		"javajavascript:script:",
		"<<script>script>alert(1)<</script>/script>",
		"onload =onerror= onmouseover\t=",
		"<a href=\"JAVASCRIPT:void(0)\" onfocus=x>link</a>",
	}

	for _, in := range inputs {
		once := sanitize.String(in)
		assert.False(t, forbidden.MatchString(once), "input %q left %q", in, once)
		assert.Equal(t, once, sanitize.String(once), "not idempotent for %q", in)
	}
}

func TestSubmission(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	in := domain.SubmissionInput{
		Name:        "Jane<script>x</script> Doe",
		Email:       "jane@example.com",
		Subject:     "Hi onmouseover=steal()",
		Message:     "javascript:alert(1)",
		SourceIP:    "127.0.0.1",
		UserAgent:   "curl/8.0 <script>1</script>",
		SubmittedAt: at,
	}

	out := sanitize.Submission(in)

	assert.Equal(t, "Jane Doe", out.Name)
	assert.Equal(t, "jane@example.com", out.Email)
	assert.Equal(t, "Hi steal()", out.Subject)
	assert.Equal(t, "alert(1)", out.Message)
	assert.Equal(t, "127.0.0.1", out.SourceIP)
	assert.Equal(t, "curl/8.0 ", out.UserAgent)
	assert.Equal(t, at, out.SubmittedAt)
	// input record is not modified
	assert.Equal(t, "Jane<script>x</script> Doe", in.Name)
}
