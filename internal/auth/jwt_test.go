package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipfare/shipfare/internal/auth"
)

func testService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SigningKey: "test-secret-key-for-testing-only",
		Issuer:     "https://api.shipfare.in",
		Audience:   "shipfare-ops",
	})
}

func TestJWTService_GenerateAndValidateOperatorToken(t *testing.T) {
	svc := testService()

	token, expiresAt, err := svc.GenerateOperatorToken("opr_del01")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.ValidateOperatorToken(token)
	require.NoError(t, err)
	assert.Equal(t, "opr_del01", claims.OperatorID)
	assert.Equal(t, "opr_del01", claims.Subject)
	assert.Equal(t, "https://api.shipfare.in", claims.Issuer)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := testService()

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"malformed token", "not.a.valid.jwt"},
		{"invalid base64", "xxx.yyy.zzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateOperatorToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestJWTService_WrongSigningKey(t *testing.T) {
	svc1 := auth.NewJWTService(auth.JWTConfig{
		SigningKey: "key-one",
		Issuer:     "https://api.shipfare.in",
		Audience:   "shipfare-ops",
	})

	token, _, err := svc1.GenerateOperatorToken("opr_del01")
	require.NoError(t, err)

	svc2 := auth.NewJWTService(auth.JWTConfig{
		SigningKey: "key-two",
		Issuer:     "https://api.shipfare.in",
		Audience:   "shipfare-ops",
	})

	_, err = svc2.ValidateOperatorToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestJWTService_WrongAudience(t *testing.T) {
	svc1 := auth.NewJWTService(auth.JWTConfig{
		SigningKey: "test-secret-key-for-testing-only",
		Issuer:     "https://api.shipfare.in",
		Audience:   "other-audience",
	})

	token, _, err := svc1.GenerateOperatorToken("opr_del01")
	require.NoError(t, err)

	_, err = testService().ValidateOperatorToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
