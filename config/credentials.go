package config

// Credentials is the set of secret fields the transport layer signs requests
// with. Each implemented authentication mode has its own record type so the
// compiler, rather than a runtime check, enforces which fields the mode
// carries. Fields returns the values verbatim under their directive names for
// request construction.
type Credentials interface {
	Mode() AuthMode
	Fields() map[string]string
}

// ThreeTokenCredentials authenticates with the three shared secrets of
// 3TOKEN mode.
type ThreeTokenCredentials struct {
	Username  string `validate:"required"`
	Password  string `validate:"required"`
	Signature string `validate:"required"`
}

// Mode returns AuthThreeToken.
func (ThreeTokenCredentials) Mode() AuthMode { return AuthThreeToken }

// Fields returns the credential values keyed by directive name.
func (c ThreeTokenCredentials) Fields() map[string]string {
	return map[string]string{
		KeyUsername:  c.Username,
		KeyPassword:  c.Password,
		KeySignature: c.Signature,
	}
}

// AccessTokenCredentials authenticates with an OAuth-style access token on
// top of the shared username and password.
type AccessTokenCredentials struct {
	Username      string `validate:"required"`
	Password      string `validate:"required"`
	AccessToken   string `validate:"required"`
	TokenSecret   string `validate:"required"`
	ApplicationID string `validate:"required"`
}

// Mode returns AuthAccessToken.
func (AccessTokenCredentials) Mode() AuthMode { return AuthAccessToken }

// Fields returns the credential values keyed by directive name.
func (c AccessTokenCredentials) Fields() map[string]string {
	return map[string]string{
		KeyUsername:      c.Username,
		KeyPassword:      c.Password,
		KeyAccessToken:   c.AccessToken,
		KeyTokenSecret:   c.TokenSecret,
		KeyApplicationID: c.ApplicationID,
	}
}

// ThreeTokenSubjectCredentials authenticates with the 3TOKEN secrets on
// behalf of a third-party subject account.
type ThreeTokenSubjectCredentials struct {
	Username  string `validate:"required"`
	Password  string `validate:"required"`
	Signature string `validate:"required"`
	Subject   string `validate:"required"`
}

// Mode returns AuthThreeTokenSubject.
func (ThreeTokenSubjectCredentials) Mode() AuthMode { return AuthThreeTokenSubject }

// Fields returns the credential values keyed by directive name.
func (c ThreeTokenSubjectCredentials) Fields() map[string]string {
	return map[string]string{
		KeyUsername:  c.Username,
		KeyPassword:  c.Password,
		KeySignature: c.Signature,
		KeySubject:   c.Subject,
	}
}
