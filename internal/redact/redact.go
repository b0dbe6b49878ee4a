// Package redact scrubs credential material from directive values before
// they are logged. Resolved configurations are logged at debug level for
// diagnostics, and passwords, signatures, and token secrets must never reach
// that output.
package redact

// Placeholder replaces redacted credential values in log output.
const Placeholder = "[REDACTED]"

// Directive names whose values are secrets. Usernames, application IDs, and
// subjects are identifiers, not secrets, and stay readable for diagnostics.
var sensitiveKeys = map[string]struct{}{
	"API_PASSWORD":  {},
	"API_SIGNATURE": {},
	"ACCESS_TOKEN":  {},
	"TOKEN_SECRET":  {},
}

// Sensitive reports whether the named directive carries secret material.
func Sensitive(key string) bool {
	_, ok := sensitiveKeys[key]
	return ok
}

// Field returns the value unchanged unless the key names secret material, in
// which case it returns the placeholder.
func Field(key, value string) string {
	if Sensitive(key) {
		return Placeholder
	}
	return value
}

// Fields returns a copy of the given directive-keyed values that is safe to
// hand to a logger.
func Fields(fields map[string]string) map[string]string {
	safe := make(map[string]string, len(fields))
	for key, value := range fields {
		safe[key] = Field(key, value)
	}
	return safe
}
