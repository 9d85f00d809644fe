// Package token issues and validates the signed bearer credentials that
// identify a request. A token is a pure function of the secret key, the
// subject, and the clock; nothing is persisted.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/casetrack/case-management-api/internal/apperrors"
)

const roleClaim = "role"

// Claims carries the subject user id and their roles.
type Claims struct {
	jwt.RegisteredClaims
	Roles []string `json:"role"`
}

// Service signs and verifies tokens with a symmetric key. The clock is
// injectable so expiry boundaries can be tested exactly.
type Service struct {
	secret  []byte
	timeout time.Duration
	now     func() time.Time
}

func NewService(secret string, timeout time.Duration) *Service {
	return &Service{
		secret:  []byte(secret),
		timeout: timeout,
		now:     time.Now,
	}
}

// WithClock replaces the time source. Test hook.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Issue signs a token for the subject carrying the given roles, stamped
// issued-at now and expiring after the configured timeout.
func (s *Service) Issue(subject uuid.UUID, roles []string) (string, error) {
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.timeout)),
		},
		Roles: roles,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate verifies the signature and the expiry. A token whose expiry equals
// the current instant is already invalid (strict before-comparison).
func (s *Service) Validate(tokenString string) error {
	_, err := s.parse(tokenString, true)
	return err
}

// ExtractSubject parses the subject claim into a user id without enforcing
// expiry; the signature must still verify. Resolution of a stale subject is
// the caller's concern.
func (s *Service) ExtractSubject(tokenString string) (uuid.UUID, error) {
	claims, err := s.parse(tokenString, false)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, apperrors.ErrTokenInvalid
	}

	return id, nil
}

// ExtractRoles returns the role claim without enforcing expiry.
func (s *Service) ExtractRoles(tokenString string) ([]string, error) {
	claims, err := s.parse(tokenString, false)
	if err != nil {
		return nil, err
	}
	return claims.Roles, nil
}

func (s *Service) parse(tokenString string, checkExpiry bool) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if !checkExpiry {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, apperrors.ErrTokenInvalid
	}

	return claims, nil
}
