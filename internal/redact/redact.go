// Package redact strips sensitive information from strings before they
// are logged. The catalog API handles credentials, session tokens and
// email addresses; none of them may surface in log output through error
// messages.
package redact

import "regexp"

// Redaction placeholders
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedTokenPlaceholder      = "[REDACTED_TOKEN]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
)

var (
	// Database connection strings with inline credentials
	dbConnPattern = regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`)

	// Password fragments in messages ("password=...", "pwd: ...")
	passwordPattern = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?)[^'"&\s]{3,}`)

	// Compact JWTs (three base64url segments starting with eyJ)
	jwtPattern = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// Email addresses
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
)

// String redacts sensitive fragments from s.
func String(s string) string {
	s = dbConnPattern.ReplaceAllString(s, RedactedCredentialPlaceholder)
	s = passwordPattern.ReplaceAllString(s, "$1$2"+RedactedCredentialPlaceholder)
	s = jwtPattern.ReplaceAllString(s, RedactedTokenPlaceholder)
	s = emailPattern.ReplaceAllString(s, RedactedEmailPlaceholder)
	return s
}

// Error redacts sensitive fragments from an error's message.
// Returns an empty string for nil errors.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
