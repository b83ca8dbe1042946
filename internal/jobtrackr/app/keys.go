package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/service"
	"github.com/aussiebroadwan/jobtrackr/pkg/cryptox"
)

// InitTokenService builds the token service from the configured secret.
//
// Secret modes:
//   - configured: JWT_SECRET is used as is. Tokens survive restarts and are
//     accepted by every replica sharing the secret.
//   - ephemeral: with no JWT_SECRET a random 256-bit secret is generated on
//     startup and kept only in memory. All tokens become invalid when the
//     service restarts.
func InitTokenService(cfg Config, logger *slog.Logger) (*service.TokenService, error) {
	secret := []byte(cfg.JWTSecret)

	if len(secret) == 0 {
		generated, err := cryptox.GenerateSecret(cryptox.TokenSize256)
		if err != nil {
			return nil, fmt.Errorf("failed to generate signing secret: %w", err)
		}
		secret = generated
		logger.Warn("JWT_SECRET not set, using an ephemeral signing secret - tokens will not survive restarts")
	}

	tokens, err := service.NewTokenService(secret, cfg.JWTIssuer, cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	if err := tokens.Signer.Validate(); err != nil {
		logger.Warn("weak signing secret", "error", err)
	}

	logger.Info("token service initialized",
		"algorithm", tokens.Signer.Alg(),
		"issuer", cfg.JWTIssuer,
		"ttl", tokens.TTL,
	)
	return tokens, nil
}
