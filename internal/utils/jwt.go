package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken creates a signed HMAC-SHA256 JWT for the given user.
//
// The token carries the standard claims:
//   - Issuer    (iss): identifies the issuing service
//   - Subject   (sub): the user identity
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty
// or zero, or if signing fails.
func GenerateSessionToken(issuer, user string, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || user == "" || tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   user,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return signed, nil
}

// ValidateSessionToken verifies the given token string and extracts the
// user identity from its subject claim.
//
// Validation covers the HMAC signature, the issuer claim, and the expiry.
// Returns the subject on success, or an error if the token is invalid,
// expired, issued by someone else, or carries an empty subject.
func ValidateSessionToken(tokenString, signKey, issuer string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return "", fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return "", errors.New("empty subject in session token")
	}

	return subject, nil
}

// InspectSessionToken peeks at an unverified token and returns its subject
// and expiry. Used for the read-only session endpoint, where a persisted
// token restored from storage may predate the current signing key; the
// session invariant is driven by the persisted user, not token validity.
func InspectSessionToken(tokenString string) (subject string, expiresAt time.Time, err error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &jwt.RegisteredClaims{})
	if err != nil {
		return "", time.Time{}, err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return "", time.Time{}, errors.New("invalid token claims")
	}

	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return claims.Subject, expiresAt, nil
}
