// Package redact strips sensitive values from strings before they reach
// logs or error responses: database connection strings, bearer tokens, and
// the signing secret are the ones this service can realistically leak.
package redact

import "regexp"

// Redaction placeholders
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedTokenPlaceholder      = "[REDACTED_JWT]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
)

var (
	// Connection strings with inline credentials, e.g. postgres://u:p@host.
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql|db|database)://[^@\s]+@`)

	// Standard three-part base64url JWT shape.
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// Key/secret assignments in error text.
	secretRegex = regexp.MustCompile(`(?i)(secret|token|api[_-]?key|password)(['"\s:=]+)[A-Za-z0-9_\-.~+/!]{8,}`)

	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
)

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}
	out := dbConnRegex.ReplaceAllString(input, RedactedCredentialPlaceholder)
	out = jwtTokenRegex.ReplaceAllString(out, RedactedTokenPlaceholder)
	out = secretRegex.ReplaceAllString(out, RedactedKeyPlaceholder)
	out = emailRegex.ReplaceAllString(out, RedactedEmailPlaceholder)
	return out
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
