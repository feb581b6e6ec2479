// Package redact removes credentials and internal details from strings before
// they are logged. The server uses it for database URLs and storage errors.
package redact

import (
	"net/url"
	"regexp"
	"strings"
)

// Redaction placeholders.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedSQLPlaceholder        = "[REDACTED_SQL]"
	RedactedStackPlaceholder      = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

var (
	// userinfo of a URL, the scheme is kept
	dbConnRegex = regexp.MustCompile(`(?i)\b([a-z][a-z0-9+.-]*://)[^/@\s]+@`)

	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`)

	stackTraceRegex = regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`)

	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)

	sqlRegex = regexp.MustCompile(
		`(?i)(SELECT|INSERT|UPDATE|DELETE|CREATE|ALTER|DROP|GRANT)[\s\w,*()]+(?:FROM|INTO|SET|TABLE|DATABASE|SCHEMA|VIEW)(?:[\s\w,*()='"]+)?`,
	)

	// Applied in order: stack traces go before paths so frames are removed whole.
	rules = []rule{
		{dbConnRegex, "${1}" + RedactedCredentialPlaceholder + "@"},
		{passwordRegex, RedactedCredentialPlaceholder},
		{stackTraceRegex, RedactedStackPlaceholder},
		{unixPathRegex, RedactedPathPlaceholder},
		{sqlRegex, RedactedSQLPlaceholder},
	}
)

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

// DatabaseURL masks the credentials of a connection string while keeping the
// host, database and options readable. Keyword/value DSNs fall back to String.
func DatabaseURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return String(raw)
	}

	hadUser := u.User != nil
	u.User = nil

	masked := u.String()
	if hadUser {
		masked = u.Scheme + "://" + RedactedCredentialPlaceholder + "@" + strings.TrimPrefix(masked, u.Scheme+"://")
	}
	return passwordRegex.ReplaceAllString(masked, RedactedCredentialPlaceholder)
}
