package config

import "errors"

// Resolution errors. Every failure returned while resolving a directive set
// wraps exactly one of these sentinels, so callers can classify failures with
// errors.Is() while the wrapped message names the offending directive or value.
var (
	// ErrInvalidEnvironment is returned when API_ENVIRONMENT is not one of
	// the recognized deployment tiers.
	ErrInvalidEnvironment = errors.New("invalid environment")

	// ErrUnsupportedAuthMode is returned when API_AUTHENTICATION_MODE is not
	// one of the recognized authentication modes.
	ErrUnsupportedAuthMode = errors.New("unsupported authentication mode")

	// ErrUnimplementedAuthMode is returned when the requested mode is
	// recognized but has no endpoint mapping (currently only CERTIFICATE).
	ErrUnimplementedAuthMode = errors.New("authentication mode not implemented")

	// ErrMissingField is returned when a credential field required by the
	// resolved authentication mode is absent or empty.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidCACertPath is returned when API_CA_CERTS names a CA bundle
	// path that does not exist.
	ErrInvalidCACertPath = errors.New("invalid CA certificate path")

	// ErrInvalidTimeout is returned when HTTP_TIMEOUT is not a positive
	// number of seconds.
	ErrInvalidTimeout = errors.New("invalid HTTP timeout")

	// ErrInvalidDirective is returned when a recognized directive carries a
	// value of an unusable type.
	ErrInvalidDirective = errors.New("invalid directive value")
)
