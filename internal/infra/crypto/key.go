package crypto

import (
	"context"
	"encoding/base64"
	"log/slog"

	"profile/config"
	domainerrors "profile/internal/domain/errors"
	"profile/internal/errors"

	"gocloud.dev/secrets"
	_ "gocloud.dev/secrets/localsecrets" // registers base64key://
)

// LoadKey returns the raw AES key described by cfg. A wrapped key takes
// precedence and is unwrapped through the keeper at cfg.KeeperURL.
func LoadKey(ctx context.Context, cfg *config.EncryptionConfig, logger *slog.Logger) ([]byte, error) {
	if cfg == nil {
		return nil, errors.Wrap(domainerrors.ErrEncryptionFailed, "encryption is not configured")
	}

	if cfg.WrappedKey == "" {
		if cfg.Key == "" {
			return nil, errors.Wrap(domainerrors.ErrEncryptionFailed, "encryption key is empty")
		}
		logger.Info("Using configured encryption key")

		return []byte(cfg.Key), nil
	}

	if cfg.KeeperURL == "" {
		return nil, errors.Wrap(domainerrors.ErrEncryptionFailed, "keeper URL is required for a wrapped key")
	}

	wrapped, err := base64.StdEncoding.DecodeString(cfg.WrappedKey)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrEncryptionFailed, "decode wrapped key: %v", err)
	}

	keeper, err := secrets.OpenKeeper(ctx, cfg.KeeperURL)
	if err != nil {
		return nil, errors.Wrap(err, "open secrets keeper")
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			logger.Warn("Failed to close secrets keeper", slog.Any("error", closeErr))
		}
	}()

	key, err := keeper.Decrypt(ctx, wrapped)
	if err != nil {
		return nil, errors.Wrap(err, "unwrap encryption key")
	}
	logger.Info("Unwrapped encryption key through secrets keeper")

	return key, nil
}
