package config

import "fmt"

// Static endpoint tables. These are unexported so no caller can mutate the
// mappings out from under other Config instances; Endpoint and
// RedirectBaseURL are the only way in.
var apiEndpoints = map[AuthMode]map[Environment]string{
	AuthThreeToken: {
		EnvSandbox:    "https://api-3t.sandbox.paypal.com/nvp",
		EnvProduction: "https://api-3t.paypal.com/nvp",
	},
	AuthAccessToken: {
		EnvSandbox:    "https://api-3t.sandbox.paypal.com/nvp",
		EnvProduction: "https://api-3t.paypal.com/nvp",
	},
	AuthThreeTokenSubject: {
		EnvSandbox:    "https://api-3t.sandbox.paypal.com/nvp",
		EnvProduction: "https://api-3t.paypal.com/nvp",
	},
}

var redirectBases = map[Environment]string{
	EnvSandbox:    "https://www.sandbox.paypal.com/webscr",
	EnvProduction: "https://www.paypal.com/webscr",
}

// Endpoint returns the transactional API endpoint for the given mode and
// environment. It fails with ErrUnimplementedAuthMode for modes that have no
// server mapping (CERTIFICATE); for the implemented modes and a validated
// environment it never fails.
func Endpoint(mode AuthMode, env Environment) (string, error) {
	byEnv, ok := apiEndpoints[mode]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnimplementedAuthMode, mode)
	}
	return byEnv[env], nil
}

// RedirectBaseURL returns the base URL for user-facing redirect links in the
// given environment. Redirect flows go through the same servers regardless of
// authentication mode.
func RedirectBaseURL(env Environment) string {
	return redirectBases[env]
}
