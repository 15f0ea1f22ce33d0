package sealer

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

const KeySize = 32

var (
	ErrInvalidKey   = errors.New("seal key must be 32 bytes")
	ErrInvalidToken = errors.New("invalid token")
)

// Sealer turns a session id into an opaque, tamper-evident token with
// AES-GCM.
type Sealer struct {
	aead cipher.AEAD
}

func New(key []byte) (*Sealer, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Sealer{aead: aesgcm}, nil
}

// NewRandom creates a Sealer with a fresh key. Tokens it issues do not
// survive a restart.
func NewRandom() (*Sealer, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return New(key)
}

func (s *Sealer) Seal(sessionID string, issuedAt time.Time) (string, error) {
	plaintext := []byte(sessionID + ":" + strconv.FormatInt(issuedAt.Unix(), 10))

	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ct := s.aead.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(ct), nil
}

func (s *Sealer) Open(token string) (string, time.Time, error) {
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", time.Time{}, ErrInvalidToken
	}

	nonceSize := s.aead.NonceSize()
	if len(data) <= nonceSize {
		return "", time.Time{}, ErrInvalidToken
	}
	nonce := data[:nonceSize]
	ciphertext := data[nonceSize:]

	pt, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", time.Time{}, ErrInvalidToken
	}

	id, issued, ok := strings.Cut(string(pt), ":")
	if !ok || id == "" {
		return "", time.Time{}, fmt.Errorf("%w: malformed payload", ErrInvalidToken)
	}
	unix, err := strconv.ParseInt(issued, 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: malformed issue time", ErrInvalidToken)
	}

	return id, time.Unix(unix, 0), nil
}
