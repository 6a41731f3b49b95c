package service

// FieldCipher encrypts and decrypts single string values. Empty input maps to
// empty output. Failures match domainerrors.ErrEncryptionFailed.
type FieldCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// BlindIndexer derives a deterministic, keyed lookup token for a value whose
// ciphertext is randomized.
type BlindIndexer interface {
	Digest(value string) string
}
