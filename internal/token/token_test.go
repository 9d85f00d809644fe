package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/casetrack/case-management-api/internal/apperrors"
)

const testSecret = "test-secret-key-for-signing"

func newTestService(timeout time.Duration, at time.Time) (*Service, *time.Time) {
	clock := at
	svc := NewService(testSecret, timeout).WithClock(func() time.Time { return clock })
	return svc, &clock
}

func TestIssueAndValidate(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(time.Hour, issued)

	subject := uuid.New()
	signed, err := svc.Issue(subject, []string{"STAFF"})
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	require.NoError(t, svc.Validate(signed))

	got, err := svc.ExtractSubject(signed)
	require.NoError(t, err)
	require.Equal(t, subject, got)

	roles, err := svc.ExtractRoles(signed)
	require.NoError(t, err)
	require.Equal(t, []string{"STAFF"}, roles)
}

func TestValidate_ExpiryBoundaries(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	timeout := 30 * time.Minute
	svc, clock := newTestService(timeout, issued)

	signed, err := svc.Issue(uuid.New(), []string{"STAFF"})
	require.NoError(t, err)

	// One second before expiry the token is still valid.
	*clock = issued.Add(timeout - time.Second)
	require.NoError(t, svc.Validate(signed))

	// At exactly the expiry instant the token is already invalid.
	*clock = issued.Add(timeout)
	err = svc.Validate(signed)
	require.ErrorIs(t, err, apperrors.ErrTokenExpired)

	// And one second after.
	*clock = issued.Add(timeout + time.Second)
	err = svc.Validate(signed)
	require.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestExtractSubject_IgnoresExpiry(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, clock := newTestService(time.Minute, issued)

	subject := uuid.New()
	signed, err := svc.Issue(subject, nil)
	require.NoError(t, err)

	*clock = issued.Add(time.Hour)

	got, err := svc.ExtractSubject(signed)
	require.NoError(t, err)
	require.Equal(t, subject, got)

	require.ErrorIs(t, svc.Validate(signed), apperrors.ErrTokenExpired)
}

func TestValidate_WrongSecret(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(time.Hour, issued)

	signed, err := svc.Issue(uuid.New(), []string{"STAFF"})
	require.NoError(t, err)

	other := NewService("a-completely-different-secret", time.Hour).
		WithClock(func() time.Time { return issued })

	require.ErrorIs(t, other.Validate(signed), apperrors.ErrTokenInvalid)

	_, err = other.ExtractSubject(signed)
	require.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestValidate_Garbage(t *testing.T) {
	svc, _ := newTestService(time.Hour, time.Now())

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		err := svc.Validate(tok)
		require.Error(t, err)
		require.True(t, errors.Is(err, apperrors.ErrTokenInvalid))
	}
}

func TestExtractSubject_MalformedSubject(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(time.Hour, issued)

	// Hand-roll a token whose subject is not a UUID.
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-uuid",
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ExtractSubject(signed)
	require.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}
