package validation

import (
	"strings"
)

var (
	gmailDomains = map[string]bool{"gmail.com": true, "googlemail.com": true}

	icloudDomains = map[string]bool{"icloud.com": true, "me.com": true}

	outlookDomains = map[string]bool{
		"hotmail.com": true, "hotmail.co.uk": true, "hotmail.fr": true, "hotmail.de": true,
		"hotmail.it": true, "hotmail.es": true, "live.com": true, "live.co.uk": true,
		"live.fr": true, "msn.com": true, "outlook.com": true, "outlook.fr": true,
		"outlook.de": true, "passport.com": true,
	}

	yahooDomains = map[string]bool{
		"yahoo.com": true, "yahoo.co.uk": true, "yahoo.ca": true, "yahoo.fr": true,
		"yahoo.de": true, "yahoo.it": true, "ymail.com": true, "rocketmail.com": true,
	}
)

// htmlEscaper covers the characters escaped by common web form validators,
// which is wider than html.EscapeString.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// Escape makes s safe to embed in HTML text and attribute values
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}

// NormalizeEmail lower-cases an address and canonicalizes provider-specific
// aliases: gmail drops dots and +tags and folds googlemail.com into gmail.com,
// outlook and icloud drop +tags, yahoo drops -tags.
func NormalizeEmail(addr string) string {
	at := strings.LastIndex(addr, "@")
	if at < 0 {
		return strings.ToLower(addr)
	}
	local := strings.ToLower(addr[:at])
	domain := strings.ToLower(addr[at+1:])

	switch {
	case gmailDomains[domain]:
		local = stripTag(local, "+")
		local = strings.ReplaceAll(local, ".", "")
		domain = "gmail.com"
	case icloudDomains[domain], outlookDomains[domain]:
		local = stripTag(local, "+")
	case yahooDomains[domain]:
		local = stripTag(local, "-")
	}

	return local + "@" + domain
}

// stripTag cuts local at sep unless that would leave it empty
func stripTag(local, sep string) string {
	if i := strings.Index(local, sep); i > 0 {
		return local[:i]
	}
	return local
}
