package linktoken

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirestream/hirestream/internal/config"
	ierr "github.com/hirestream/hirestream/internal/errors"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	return NewService(config.GetDefaultConfig())
}

func TestIssueAndVerify(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.Issue("pers_123", "tenant_abc")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "pers_123", claims.PersonID)
	assert.Equal(t, "tenant_abc", claims.TenantID)
}

func TestVerifyGarbage(t *testing.T) {
	svc := newTestService(t)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Verify(token)
		require.Error(t, err)
		assert.True(t, ierr.IsTokenInvalid(err))
		assert.False(t, ierr.IsTokenExpired(err))
	}
}

func TestVerifyTampered(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.Issue("pers_123", "tenant_abc")
	require.NoError(t, err)

	_, err = svc.Verify(token + "x")
	require.Error(t, err)
	assert.True(t, ierr.IsTokenInvalid(err))
}

func TestVerifyWrongSecret(t *testing.T) {
	svc := newTestService(t)

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"person_id": "pers_123",
		"tenant_id": "tenant_abc",
		"exp":       time.Now().Add(time.Hour).Unix(),
		"iat":       time.Now().Unix(),
	})
	signed, err := other.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	require.Error(t, err)
	assert.True(t, ierr.IsTokenInvalid(err))
}

func TestVerifyExpired(t *testing.T) {
	cfg := config.GetDefaultConfig()
	svc := NewService(cfg)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"person_id": "pers_123",
		"tenant_id": "tenant_abc",
		"exp":       time.Now().Add(-time.Minute).Unix(),
		"iat":       time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte(cfg.LinkToken.Secret))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	require.Error(t, err)
	// expiry is distinguishable from tampering
	assert.True(t, ierr.IsTokenExpired(err))
	assert.False(t, ierr.IsTokenInvalid(err))
}

func TestVerifyMissingPersonID(t *testing.T) {
	cfg := config.GetDefaultConfig()
	svc := NewService(cfg)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"tenant_id": "tenant_abc",
		"exp":       time.Now().Add(time.Hour).Unix(),
		"iat":       time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.LinkToken.Secret))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	require.Error(t, err)
	assert.True(t, ierr.IsTokenInvalid(err))
}

func TestVerifyRejectsNonHMAC(t *testing.T) {
	svc := newTestService(t)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"person_id": "pers_123",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	require.Error(t, err)
	assert.True(t, ierr.IsTokenInvalid(err))
}

func TestIssueUsesConfiguredValidity(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.LinkToken.ValidityDays = 2
	svc := NewService(cfg)

	token, err := svc.Issue("pers_123", "tenant_abc")
	require.NoError(t, err)

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)

	exp := time.Unix(int64(claims["exp"].(float64)), 0)
	iat := time.Unix(int64(claims["iat"].(float64)), 0)
	assert.Equal(t, 48*time.Hour, exp.Sub(iat))
}
