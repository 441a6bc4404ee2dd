package auth

import (
	"testing"
	"time"

	"sugarrush/config"
	"sugarrush/internal/domain/entity"
	"sugarrush/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_session_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T, now time.Time) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Session = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return now }

	return impl
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, now)

	token, issued, err := svc.Issue(entity.SessionClaims{
		GoogleAccessToken: "ya29.token",
		UserID:            "665f1c2e9b1d4a0012345678",
		Username:          "Candy Fan",
		Email:             "fan@example.com",
		Role:              entity.RoleTemporary,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, now, issued.IssuedAt)
	assert.Equal(t, now.Add(time.Hour), issued.ExpiresAt)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ya29.token", claims.GoogleAccessToken)
	assert.Equal(t, "665f1c2e9b1d4a0012345678", claims.UserID)
	assert.Equal(t, "Candy Fan", claims.Username)
	assert.Equal(t, "fan@example.com", claims.Email)
	assert.Equal(t, entity.RoleTemporary, claims.Role)
	assert.True(t, claims.ExpiresAt.Equal(now.Add(time.Hour)))
}

func TestJWTService_PayloadFieldNames(t *testing.T) {
	svc := newTestJWTService(t, time.Now())

	token, _, err := svc.Issue(entity.SessionClaims{UserID: "u1", Role: entity.RoleDriver, GoogleAccessToken: "g"})
	require.NoError(t, err)

	raw := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, raw)
	require.NoError(t, err)

	for _, key := range []string{"googleAccessToken", "userId", "username", "email", "role", "exp", "iat"} {
		assert.Contains(t, raw, key)
	}
}

func TestJWTService_VerifyRejects(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, now)

	valid, _, err := svc.Issue(entity.SessionClaims{UserID: "u1", Role: entity.RoleDriver})
	require.NoError(t, err)

	otherKey, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "u1",
		"exp":    now.Add(time.Hour).Unix(),
	}).SignedString([]byte("another-secret"))
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "u1",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"userId": "u1",
		"exp":    now.Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":      "clearly-not-a-jwt-token-format",
		"wrong secret": otherKey,
		"missing exp":  noExp,
		"wrong alg":    wrongAlg,
		"tampered":     valid[:len(valid)-2] + "xx",
		"empty":        "",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.Verify(token)
			assert.ErrorIs(t, err, service.ErrTokenInvalid)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_VerifyRejectsExpired(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, issuedAt)

	token, _, err := svc.Issue(entity.SessionClaims{UserID: "u1"})
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_DecodeIgnoresExpiry(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, issuedAt)

	token, _, err := svc.Issue(entity.SessionClaims{UserID: "u1", Role: entity.RoleAdmin})
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }

	claims, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.True(t, claims.ExpiresAt.Equal(issuedAt.Add(time.Hour)))
}

func TestJWTService_DecodeRejectsForeignSignature(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, now)

	claims := jwt.MapClaims{
		"userId": "u1",
		"role":   "admin",
		"exp":    now.Add(10 * 365 * 24 * time.Hour).Unix(),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("not-the-server-secret"))
	require.NoError(t, err)
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{"other secret": forged, "alg none": unsigned} {
		t.Run(name, func(t *testing.T) {
			decoded, err := svc.Decode(token)
			assert.ErrorIs(t, err, service.ErrTokenInvalid)
			assert.NotErrorIs(t, err, service.ErrTokenMalformed)
			assert.Nil(t, decoded)
		})
	}
}

func TestJWTService_DecodeMalformed(t *testing.T) {
	svc := newTestJWTService(t, time.Now())

	for _, token := range []string{"", "abc", "a.b.c", "not.a.jwt.token"} {
		_, err := svc.Decode(token)
		assert.ErrorIs(t, err, service.ErrTokenMalformed, token)
	}
}
