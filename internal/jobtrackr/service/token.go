package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/jobtrackr/pkg/jwtx"
)

// TokenService issues and verifies bearer tokens. Its only state is the
// injected signing material.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	TTL      time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

// NewTokenService builds an HS256 token service from secret.
func NewTokenService(secret []byte, issuer string, ttl time.Duration) (*TokenService, error) {
	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return nil, fmt.Errorf("token signer: %w", err)
	}
	if ttl <= 0 {
		ttl = jwtx.DefaultTokenTTL
	}
	return &TokenService{
		Signer:   signer,
		Verifier: jwtx.NewVerifierHS256(secret, issuer, 0),
		Issuer:   issuer,
		TTL:      ttl,
	}, nil
}

func (s *TokenService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Issue signs a token whose subject is userID.
func (s *TokenService) Issue(userID string) (string, error) {
	claims := jwtx.NewClaims(userID, s.Issuer, s.TTL, s.now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Guard verifies token and returns the user ID it was issued for. Every
// failure is reported as ErrInvalidToken with the jwtx cause attached.
func (s *TokenService) Guard(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", wrap(ErrInvalidToken, errors.New("missing token"))
	}

	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return "", wrap(ErrInvalidToken, err)
	}
	return claims.Subject, nil
}
