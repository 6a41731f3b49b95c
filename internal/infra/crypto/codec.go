// Package crypto provides the field-level encryption used for PII at rest.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"

	domainerrors "profile/internal/domain/errors"
	"profile/internal/domain/service"
	"profile/internal/errors"
)

// Codec encrypts single string values with AES-GCM. Each ciphertext is
// base64(nonce || ciphertext || tag) with a fresh 96-bit nonce.
type Codec struct {
	aead cipher.AEAD
}

var _ service.FieldCipher = (*Codec)(nil)

// NewCodec builds a codec over a raw AES key of 16, 24 or 32 bytes.
func NewCodec(key []byte) (*Codec, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrEncryptionFailed, "invalid key: %v", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrEncryptionFailed, "init gcm: %v", err)
	}

	return &Codec{aead: aead}, nil
}

// Encrypt returns the encoded ciphertext of plaintext. Empty input is returned as is.
func (c *Codec) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, c.aead.NonceSize(), c.aead.NonceSize()+len(plaintext)+c.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Wrapf(domainerrors.ErrEncryptionFailed, "generate nonce: %v", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Empty input is returned as is.
func (c *Codec) Decrypt(ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Wrapf(domainerrors.ErrEncryptionFailed, "decode: %v", err)
	}

	nonceSize := c.aead.NonceSize()
	if len(raw) < nonceSize+c.aead.Overhead() {
		return "", errors.Wrap(domainerrors.ErrEncryptionFailed, "ciphertext too short")
	}

	plaintext, err := c.aead.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return "", errors.Wrapf(domainerrors.ErrEncryptionFailed, "open: %v", err)
	}

	return string(plaintext), nil
}
