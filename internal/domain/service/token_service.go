package service

import (
	"errors"
	"time"
)

// ErrTokenInvalid is returned by Verify for any unusable token: bad
// signature, malformed envelope, or expiry. Callers map it to a single
// unauthorized outcome; the distinction lives only in the wrapped cause.
var ErrTokenInvalid = errors.New("token invalid")

// Claims is the decoded payload of an access token.
type Claims struct {
	Subject   string    // The identity's email, used as the lookup key.
	ExpiresAt time.Time // Absolute expiration set at issuance.
}

// TokenService signs and verifies compact, expiring identity claims.
// Tokens are stateless: validity is re-derived from the signature and
// expiration on every use, nothing is persisted server-side.
type TokenService interface {
	// Issue mints a signed token for the subject, expiring after the
	// configured validity window.
	Issue(subject string) (string, error)

	// Verify checks the signature, then the expiration, and returns the
	// embedded claims. Any failure is reported as ErrTokenInvalid.
	Verify(token string) (*Claims, error)
}
