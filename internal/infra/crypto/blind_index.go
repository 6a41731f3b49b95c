package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strings"

	"profile/internal/domain/service"
	"profile/internal/errors"

	"golang.org/x/crypto/hkdf"
)

const emailIndexInfo = "profile-service/email-index"

// EmailIndex computes the blind index stored next to encrypted email addresses.
type EmailIndex struct {
	key []byte
}

var _ service.BlindIndexer = (*EmailIndex)(nil)

// NewEmailIndex derives the index sub-key from the master key with HKDF-SHA256.
func NewEmailIndex(masterKey []byte) (*EmailIndex, error) {
	if len(masterKey) == 0 {
		return nil, errors.New("email index: empty master key")
	}

	key := make([]byte, sha256.Size)
	if _, err := io.ReadFull(hkdf.New(sha256.New, masterKey, nil, []byte(emailIndexInfo)), key); err != nil {
		return nil, errors.Wrap(err, "email index: derive key")
	}

	return &EmailIndex{key: key}, nil
}

// Digest returns the hex HMAC-SHA256 of the trimmed, lower-cased email.
// Empty input yields an empty digest.
func (x *EmailIndex) Digest(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return ""
	}

	mac := hmac.New(sha256.New, x.key)
	mac.Write([]byte(normalized))

	return hex.EncodeToString(mac.Sum(nil))
}
