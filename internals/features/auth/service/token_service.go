package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"bcaroutine_backend/internals/configs"
)

const AccessTokenTTL = 24 * time.Hour

var ErrMissingSecret = errors.New("JWT_SECRET is not set")

// IssueAccessToken signs an HS256 access token for the given subject.
func IssueAccessToken(subject string, isAdmin bool) (string, time.Time, error) {
	if configs.JWTSecret == "" {
		return "", time.Time{}, ErrMissingSecret
	}
	exp := time.Now().Add(AccessTokenTTL)
	claims := jwt.MapClaims{
		"sub":      subject,
		"is_admin": isAdmin,
		"typ":      "access",
		"iat":      time.Now().Unix(),
		"exp":      exp.Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// ParseAccessToken verifies the signature and returns the claims. Expiry is
// validated separately by the middleware (with leeway).
func ParseAccessToken(tokenString string) (jwt.MapClaims, error) {
	if configs.JWTSecret == "" {
		return nil, ErrMissingSecret
	}
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return nil, err
	}
	return claims, nil
}

// ValidateTokenExpiry checks the exp claim with a small leeway.
func ValidateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expF, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("missing exp claim")
	}
	if time.Now().After(time.Unix(int64(expF), 0).Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}
