package token

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// KeyEnvVar is the environment variable holding the base64-encoded HMAC
// signing key
const KeyEnvVar = "USERD_TOKEN_KEY"

// KeySize is the size of a signing key in bytes
const KeySize = 32

// ErrInvalidToken is returned when a token fails parsing or verification
var ErrInvalidToken = errors.New("invalid token")

// Issuer mints and verifies HS256 session tokens
type Issuer struct {
	key    []byte
	issuer string
	ttl    time.Duration
}

// NewIssuer creates a token issuer. The key must be KeySize bytes.
func NewIssuer(key []byte, issuer string, ttl time.Duration) (*Issuer, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("token key must be %d bytes, got %d", KeySize, len(key))
	}
	return &Issuer{key: key, issuer: issuer, ttl: ttl}, nil
}

// TTL returns the lifetime of issued tokens
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue mints a signed token for a user ID
func (i *Issuer) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    i.issuer,
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
}

// Verify parses and validates a token, returning the user ID it was
// issued for. Expired, malformed and foreign-signed tokens all return
// ErrInvalidToken.
func (i *Issuer) Verify(tokenStr string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(
		tokenStr,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return i.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return userID, nil
}

// GenerateKey creates a new random signing key
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

// KeyFromEnv reads and decodes the signing key from KeyEnvVar
func KeyFromEnv() ([]byte, error) {
	encoded := os.Getenv(KeyEnvVar)
	if encoded == "" {
		return nil, fmt.Errorf("%s not set", KeyEnvVar)
	}

	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%s is not valid base64: %w", KeyEnvVar, err)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("%s must decode to %d bytes, got %d", KeyEnvVar, KeySize, len(key))
	}

	return key, nil
}
