package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sessions signs and verifies short-lived applicant session tokens.
// The portal has no login of its own: tokens are minted by the identity
// provider fronting the UI and only name which applicant profile is acting.
type Sessions struct {
	secret []byte
	ttl    time.Duration
}

type SessionClaims struct {
	ApplicantID int64 `json:"applicant_id"`
	jwt.RegisteredClaims
}

var ErrInvalidSession = errors.New("invalid session token")

func NewSessions(secret string, ttl time.Duration) *Sessions {
	return &Sessions{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Configured reports whether a signing secret is present. Without one the
// portal runs in single-profile mode and every request acts as the default
// applicant.
func (s *Sessions) Configured() bool {
	return len(s.secret) > 0
}

// Sign issues a token for the given applicant profile.
func (s *Sessions) Sign(applicantID int64) (string, error) {
	if !s.Configured() {
		return "", errors.New("session secret not configured")
	}

	now := time.Now()
	claims := SessionClaims{
		ApplicantID: applicantID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies a token and returns the applicant profile it names.
func (s *Sessions) Parse(tokenString string) (int64, error) {
	if !s.Configured() {
		return 0, ErrInvalidSession
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidSession
	}
	if claims.ApplicantID == 0 {
		return 0, ErrInvalidSession
	}

	return claims.ApplicantID, nil
}
