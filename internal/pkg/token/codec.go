// Package token encodes and validates the signed bearer tokens that carry a
// session between login and subsequent requests. Tokens are self-contained:
// there is no server-side revocation, a token stays valid until its expiry
// claim passes or the signing secret is rotated.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every decode failure: bad signature, wrong
// algorithm, expired, or missing subject. Callers must not distinguish the
// cases, so the codec does not either.
var ErrInvalidToken = errors.New("invalid token")

// Codec issues and decodes signed, expiring bearer tokens.
type Codec struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewCodec builds a Codec for the given shared secret, algorithm identifier
// (e.g. "HS256") and validity window. Only HMAC-family algorithms are
// accepted: the configuration carries a symmetric secret, and anything else
// would fail on every request instead of at startup.
func NewCodec(secret, algorithm string, ttl time.Duration) (*Codec, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("token: unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("token: algorithm %q is not HMAC-based", algorithm)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token: validity window must be positive, got %s", ttl)
	}
	return &Codec{secret: []byte(secret), method: method, ttl: ttl}, nil
}

// Issue signs a token whose subject claim is the given identity and whose
// expiry is the issuance instant plus the configured window.
func (c *Codec) Issue(subject string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	return jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
}

// Decode verifies the signature and expiry and returns the subject claim.
func (c *Codec) Decode(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
