package identity

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Principal is a verified caller identity (email-equivalent). It is produced
// only by a Verifier and never persisted.
type Principal string

// Verifier turns a raw credential into a Principal. The verification
// algorithm is a black box to the rest of the system.
type Verifier interface {
	Verify(ctx context.Context, token string) (Principal, error)
}

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HS256 tokens signed with a shared secret
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(ctx context.Context, tokenStr string) (Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}
	email := claims.Email
	if email == "" {
		email = claims.Subject
	}
	if email == "" {
		return "", errors.New("token has no subject identity")
	}
	return Principal(email), nil
}

// MintToken creates a signed token for the given identity. Used by tests and
// tooling; the platform itself never issues credentials.
func MintToken(secret, email string, ttl time.Duration) (string, error) {
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
