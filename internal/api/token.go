package api

import (
	"errors"
	"fmt"
	"time"

	"alcyxob/fittrack/internal/domain"

	"github.com/golang-jwt/jwt/v4"
)

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	AccountID string `json:"uid"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies the bearer tokens handed to the UI after login.
type TokenIssuer struct {
	secret     []byte
	expiration time.Duration
}

func NewTokenIssuer(secret string, expiration time.Duration) *TokenIssuer {
	if secret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), expiration: expiration}
}

// Issue creates a signed token for the given account.
func (t *TokenIssuer) Issue(profile domain.Profile) (string, error) {
	now := time.Now()
	claims := &jwtClaims{
		AccountID: profile.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "fittrack",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse verifies tokenString and returns the account id it was issued for.
func (t *TokenIssuer) Parse(tokenString string) (string, error) {
	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.AccountID == "" {
		return "", errors.New("invalid token or missing claims")
	}
	return claims.AccountID, nil
}
