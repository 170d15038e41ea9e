package utils

import (
	"fmt"
	"time"

	"github.com/SscSPs/journal_engine/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims carries the acting user. Subject is the user id.
type IdentityClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Actor converts validated claims into the domain actor, rejecting roles outside the closed set.
func (c *IdentityClaims) Actor() (domain.Actor, error) {
	if c.Subject == "" {
		return domain.Actor{}, fmt.Errorf("subject claim missing")
	}
	role, err := domain.ParseRole(c.Role)
	if err != nil {
		return domain.Actor{}, err
	}
	return domain.Actor{UserID: c.Subject, Username: c.Name, Role: role}, nil
}

// GenerateJWT generates a new JWT token for actor.
func GenerateJWT(actor domain.Actor, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := IdentityClaims{
		Name: actor.Username,
		Role: string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   actor.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a JWT token string, validates its signature and standard claims.
// An empty issuer skips the issuer check.
func ParseAndValidateJWT(tokenString string, secretKey string, issuer string) (*IdentityClaims, error) {
	claims := &IdentityClaims{}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
