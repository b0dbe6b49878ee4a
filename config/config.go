package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Environment is the target deployment tier. It determines which PayPal
// servers the client talks to.
type Environment string

// Recognized deployment tiers.
const (
	EnvSandbox    Environment = "SANDBOX"
	EnvProduction Environment = "PRODUCTION"
)

// AuthMode is the credential scheme used to authenticate API calls.
type AuthMode string

// Recognized authentication modes. CERTIFICATE is accepted as a valid value
// but has no endpoint mapping; constructing a Config with it fails with
// ErrUnimplementedAuthMode.
const (
	AuthThreeToken        AuthMode = "3TOKEN"
	AuthCertificate       AuthMode = "CERTIFICATE"
	AuthAccessToken       AuthMode = "ACCESS_TOKEN"
	AuthThreeTokenSubject AuthMode = "3TOKEN_SUBJECT"
)

// Fixed protocol constants. AckSuccess and AckSuccessWithWarning are the ACK
// values the NVP API returns for successful calls; response interpretation
// downstream compares against them.
const (
	APIVersion            = "98.0"
	AckSuccess            = "SUCCESS"
	AckSuccessWithWarning = "SUCCESSWITHWARNING"
)

// DefaultHTTPTimeout bounds each outbound API call unless HTTP_TIMEOUT
// overrides it.
const DefaultHTTPTimeout = 15 * time.Second

// Directive names recognized in a directive set. All other keys pass through
// unvalidated for forward compatibility.
const (
	KeyEnvironment   = "API_ENVIRONMENT"
	KeyAuthMode      = "API_AUTHENTICATION_MODE"
	KeyUsername      = "API_USERNAME"
	KeyPassword      = "API_PASSWORD"
	KeySignature     = "API_SIGNATURE"
	KeyAccessToken   = "ACCESS_TOKEN"
	KeyTokenSecret   = "TOKEN_SECRET"
	KeyApplicationID = "APPLICATION_ID"
	KeySubject       = "SUBJECT"
	KeyCACerts       = "API_CA_CERTS"
	KeyHTTPTimeout   = "HTTP_TIMEOUT"
)

// CACertPolicy is the TLS trust-anchor setting for the API endpoint. The zero
// value means default certificate verification against system roots; a
// non-empty BundlePath names a custom CA bundle that existed when the Config
// was constructed.
type CACertPolicy struct {
	BundlePath string
}

// CustomBundle reports whether verification uses a caller-supplied CA bundle
// instead of the system roots.
func (p CACertPolicy) CustomBundle() bool {
	return p.BundlePath != ""
}

// Config holds the fully-resolved client configuration. It is constructed
// once by New (or one of the Load helpers), validated during construction,
// and treated as immutable afterwards; sharing one Config across concurrent
// API calls is safe as long as callers do not mutate it.
type Config struct {
	Environment     Environment   `validate:"required,oneof=SANDBOX PRODUCTION"`
	AuthMode        AuthMode      `validate:"required,oneof=3TOKEN CERTIFICATE ACCESS_TOKEN 3TOKEN_SUBJECT"`
	APIVersion      string        `validate:"required"`
	Endpoint        string        `validate:"required,url"`
	RedirectBaseURL string        `validate:"required,url"`
	CACerts         CACertPolicy
	Credentials     Credentials   `validate:"required"`
	HTTPTimeout     time.Duration `validate:"gt=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate re-checks the structural invariants of an already-constructed
// Config. New always returns a valid Config; this exists for callers who
// mutate one after construction and want to re-establish the guarantees
// before sharing it.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
