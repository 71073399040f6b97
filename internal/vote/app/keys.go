package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/ballotbox/pkg/cryptox"
	"github.com/aussiebroadwan/ballotbox/pkg/jwtx"
)

// InitSigningKeys builds the token KeyManager.
//
// With SigningKeyFile unset the key is generated in memory and every token
// becomes invalid on restart. Otherwise the PKCS8 Ed25519 key at that path is
// loaded, or created with 0600 permissions on first start.
func InitSigningKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	opts := jwtx.KeyManagerOptions{Issuer: cfg.Issuer}

	if cfg.SigningKeyFile == "" {
		logger.Info("using ephemeral signing key - tokens will not survive restarts")
	} else {
		pemKey, created, err := cryptox.LoadOrCreateEd25519Key(cfg.SigningKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load signing key: %w", err)
		}
		opts.PrivateKeyPEM = pemKey
		logger.Info("signing key loaded", "path", cfg.SigningKeyFile, "created", created)
	}

	km, err := jwtx.NewKeyManager(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize key manager: %w", err)
	}
	return km, nil
}
