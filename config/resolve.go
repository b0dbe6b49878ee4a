package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/quillon/paypalnvp/internal/redact"
)

// Directives is the open-ended key/value set New resolves a Config from.
// Values may be strings, booleans, or numbers; keys other than the Key*
// constants are ignored.
type Directives map[string]any

var validAuthModes = []AuthMode{
	AuthThreeToken,
	AuthCertificate,
	AuthAccessToken,
	AuthThreeTokenSubject,
}

// Per-mode required credential directives, in the order they are enforced.
var requiredFields = map[AuthMode][]string{
	AuthThreeToken:        {KeyUsername, KeyPassword, KeySignature},
	AuthAccessToken:       {KeyUsername, KeyPassword, KeyAccessToken, KeyTokenSecret, KeyApplicationID},
	AuthThreeTokenSubject: {KeyUsername, KeyPassword, KeySignature, KeySubject},
}

// New resolves the given directive set into a Config. Construction is
// all-or-nothing: either every directive validates and the returned Config
// carries the derived endpoint, redirect base URL, and the complete
// credential set for the resolved authentication mode, or New returns an
// error naming the offending directive and no Config at all.
func New(directives Directives) (*Config, error) {
	env, err := resolveEnvironment(directives)
	if err != nil {
		return nil, err
	}

	mode, err := resolveAuthMode(directives)
	if err != nil {
		return nil, err
	}

	// Endpoint derivation needs the resolved enums, so it runs only after
	// both validations above.
	endpoint, err := Endpoint(mode, env)
	if err != nil {
		return nil, err
	}

	caCerts, err := resolveCACerts(directives)
	if err != nil {
		return nil, err
	}

	creds, err := resolveCredentials(mode, directives)
	if err != nil {
		return nil, err
	}

	timeout, err := resolveTimeout(directives)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment:     env,
		AuthMode:        mode,
		APIVersion:      APIVersion,
		Endpoint:        endpoint,
		RedirectBaseURL: RedirectBaseURL(env),
		CACerts:         caCerts,
		Credentials:     creds,
		HTTPTimeout:     timeout,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("resolved paypal nvp configuration",
		"environment", cfg.Environment,
		"auth_mode", cfg.AuthMode,
		"endpoint", cfg.Endpoint,
		"redirect_base_url", cfg.RedirectBaseURL,
		"http_timeout", cfg.HTTPTimeout,
		"credentials", redact.Fields(creds.Fields()))

	return cfg, nil
}

// resolveEnvironment applies the SANDBOX default and case-normalizes the
// directive before checking it against the recognized tiers.
func resolveEnvironment(d Directives) (Environment, error) {
	raw, ok := d[KeyEnvironment]
	if !ok || raw == nil || raw == "" {
		return EnvSandbox, nil
	}

	s, err := cast.ToStringE(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEnvironment, raw)
	}

	env := Environment(strings.ToUpper(s))
	switch env {
	case EnvSandbox, EnvProduction:
		return env, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidEnvironment, s)
}

// resolveAuthMode applies the 3TOKEN default and case-normalizes the
// directive before checking it against the recognized modes. The error for an
// unrecognized mode names the valid choices.
func resolveAuthMode(d Directives) (AuthMode, error) {
	raw, ok := d[KeyAuthMode]
	if !ok || raw == nil || raw == "" {
		return AuthThreeToken, nil
	}

	s, err := cast.ToStringE(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedAuthMode, raw)
	}

	mode := AuthMode(strings.ToUpper(s))
	for _, valid := range validAuthModes {
		if mode == valid {
			return mode, nil
		}
	}

	choices := make([]string, len(validAuthModes))
	for i, valid := range validAuthModes {
		choices[i] = string(valid)
	}
	return "", fmt.Errorf("%w: %q (use one of: %s)",
		ErrUnsupportedAuthMode, s, strings.Join(choices, ", "))
}

// resolveCACerts interprets the API_CA_CERTS directive. Booleans keep the
// default system-root verification; a non-empty string is a CA bundle path
// that must exist now, not at first use, so misconfiguration surfaces during
// construction.
func resolveCACerts(d Directives) (CACertPolicy, error) {
	raw, ok := d[KeyCACerts]
	if !ok || raw == nil {
		return CACertPolicy{}, nil
	}

	switch v := raw.(type) {
	case bool:
		return CACertPolicy{}, nil
	case string:
		if v == "" {
			return CACertPolicy{}, nil
		}
		if _, err := os.Stat(v); err != nil {
			return CACertPolicy{}, fmt.Errorf("%w: %q", ErrInvalidCACertPath, v)
		}
		return CACertPolicy{BundlePath: v}, nil
	default:
		return CACertPolicy{}, fmt.Errorf("%w: %s must be a bool or a file path",
			ErrInvalidDirective, KeyCACerts)
	}
}

// resolveCredentials builds the typed credential record for the resolved
// mode, enforcing that every required field is present and non-empty. The
// first gap found is reported with the exact directive name.
func resolveCredentials(mode AuthMode, d Directives) (Credentials, error) {
	fields := make(map[string]string, len(requiredFields[mode]))
	for _, key := range requiredFields[mode] {
		value, err := requireField(d, key)
		if err != nil {
			return nil, err
		}
		fields[key] = value
	}

	switch mode {
	case AuthThreeToken:
		return ThreeTokenCredentials{
			Username:  fields[KeyUsername],
			Password:  fields[KeyPassword],
			Signature: fields[KeySignature],
		}, nil
	case AuthAccessToken:
		return AccessTokenCredentials{
			Username:      fields[KeyUsername],
			Password:      fields[KeyPassword],
			AccessToken:   fields[KeyAccessToken],
			TokenSecret:   fields[KeyTokenSecret],
			ApplicationID: fields[KeyApplicationID],
		}, nil
	case AuthThreeTokenSubject:
		return ThreeTokenSubjectCredentials{
			Username:  fields[KeyUsername],
			Password:  fields[KeyPassword],
			Signature: fields[KeySignature],
			Subject:   fields[KeySubject],
		}, nil
	}

	// Endpoint resolution already rejects CERTIFICATE, so this only triggers
	// if a new mode is added to the tables without a credential rule.
	return nil, fmt.Errorf("%w: %s", ErrUnimplementedAuthMode, mode)
}

// requireField fetches a credential directive, accepting only non-empty
// string values. Credential values are copied verbatim; anything that would
// need coercion is rejected rather than silently converted.
func requireField(d Directives, key string) (string, error) {
	raw, ok := d[key]
	if !ok || raw == nil {
		return "", fmt.Errorf("%w: %s", ErrMissingField, key)
	}

	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", ErrInvalidDirective, key)
	}
	if s == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	return s, nil
}

// resolveTimeout applies the 15-second default and coerces numeric or
// numeric-string overrides into a duration. Non-positive timeouts would make
// every API call fail immediately, so they are rejected here.
func resolveTimeout(d Directives) (time.Duration, error) {
	raw, ok := d[KeyHTTPTimeout]
	if !ok || raw == nil {
		return DefaultHTTPTimeout, nil
	}

	secs, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTimeout, raw)
	}
	if secs <= 0 {
		return 0, fmt.Errorf("%w: %v seconds", ErrInvalidTimeout, secs)
	}
	return time.Duration(secs * float64(time.Second)), nil
}
