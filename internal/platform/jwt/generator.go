package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// EnvKeyJWTSecret is the environment variable holding the token signing secret.
// There is no default: the middleware refuses requests when it is unset.
const EnvKeyJWTSecret = "JWT_SECRET"

// Generator creates signed JWT tokens carrying a user identity claim.
type Generator struct {
	secret []byte
	ttl    time.Duration
}

// NewGenerator creates a new JWT generator with the provided secret and
// token lifetime. A ttl of 0 issues tokens without an exp claim, keeping
// them valid indefinitely. That matches the historical behavior of this
// API and is a known weakness; deployments that want expiring tokens set
// JWT_TTL.
func NewGenerator(secret string, ttl time.Duration) *Generator {
	return &Generator{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// GenerateToken creates a signed HS256 token with the user ID as subject.
func (g *Generator) GenerateToken(userID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"iat":   time.Now().Unix(),
		"email": email,
	}
	if g.ttl > 0 {
		claims["exp"] = time.Now().Add(g.ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
