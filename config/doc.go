// Package config resolves user-supplied PayPal NVP client directives into the
// concrete settings the rest of the client needs: which API server to call,
// which base URL to build browser-redirect links from, and which credential
// fields the chosen authentication mode requires. It validates the directive
// set, fills in defaults, and produces an immutable Config while keeping
// endpoint tables and credential rules separate from transport logic.
package config
