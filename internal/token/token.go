// Package token wraps symmetric JWT signing behind a small codec so that the
// signing key, algorithm and default TTL are fixed once at startup.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification: bad
// signature, wrong algorithm, expired, or structurally malformed. Callers
// must not surface the distinction to clients.
var ErrInvalidToken = errors.New("invalid token")

type Codec struct {
	secret     []byte
	method     jwt.SigningMethod
	defaultTTL time.Duration
}

func NewCodec(secret, algorithm string, defaultTTL time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, fmt.Errorf("signing secret is required")
	}
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("algorithm %q is not an HMAC method", algorithm)
	}
	if defaultTTL <= 0 {
		return nil, fmt.Errorf("default TTL must be positive")
	}
	return &Codec{
		secret:     []byte(secret),
		method:     method,
		defaultTTL: defaultTTL,
	}, nil
}

// DefaultTTL reports the TTL applied when Encode is called with ttl == 0.
func (c *Codec) DefaultTTL() time.Duration {
	return c.defaultTTL
}

// Encode signs the given claims and injects an "exp" claim of now + ttl.
// A ttl of zero means the codec default. Callers own the claim names; "exp"
// is always overwritten.
func (c *Codec) Encode(claims map[string]any, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = c.defaultTTL
	}
	mapClaims := jwt.MapClaims{}
	for k, v := range claims {
		mapClaims[k] = v
	}
	mapClaims["exp"] = time.Now().Add(ttl).Unix()

	return jwt.NewWithClaims(c.method, mapClaims).SignedString(c.secret)
}

// EncodeSubject signs a single scalar subject under the standard "sub" claim.
func (c *Codec) EncodeSubject(subject string, ttl time.Duration) (string, error) {
	return c.Encode(map[string]any{"sub": subject}, ttl)
}

// Decode verifies the signature, algorithm and expiry of a token and returns
// its claims. Any failure collapses to ErrInvalidToken.
func (c *Codec) Decode(tokenString string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != c.method.Alg() {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
