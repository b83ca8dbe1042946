package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the shortest HMAC secret accepted without complaint.
// Shorter secrets still work; Validate reports them so the app can warn.
const MinSecretLength = 32

var (
	ErrEmptySecret = errors.New("jwtx: empty signing secret")
	ErrWeakSecret  = errors.New("jwtx: signing secret shorter than 32 bytes")
)

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
	Validate() error
}

// HS256Signer signs tokens with a shared HMAC-SHA256 secret.
type HS256Signer struct {
	secret []byte
}

// NewSignerHS256 creates a signer for secret. The slice is copied.
func NewSignerHS256(secret []byte) (*HS256Signer, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return &HS256Signer{secret: append([]byte(nil), secret...)}, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign takes your claims and turns them into a signed JWT string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate reports an empty or short secret.
func (s *HS256Signer) Validate() error {
	switch {
	case len(s.secret) == 0:
		return ErrEmptySecret
	case len(s.secret) < MinSecretLength:
		return ErrWeakSecret
	}
	return nil
}
