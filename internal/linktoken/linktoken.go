package linktoken

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/hirestream/hirestream/internal/config"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/types"
)

const defaultValidityDays = 7

// Claims carries the identity baked into an onboarding link.
type Claims struct {
	PersonID string
	TenantID string
}

// Service issues and verifies the signed tokens embedded in onboarding
// links. Tokens are bearer credentials for a single person record, so
// verification only proves the link is genuine and fresh; callers still
// re-check the person's current state before serving anything.
type Service interface {
	Issue(personID, tenantID string) (string, error)
	Verify(token string) (*Claims, error)
}

type service struct {
	secret   string
	validity time.Duration
}

func NewService(cfg *config.Configuration) Service {
	days := cfg.LinkToken.ValidityDays
	if days <= 0 {
		days = defaultValidityDays
	}
	return &service{
		secret:   cfg.LinkToken.Secret,
		validity: time.Duration(days) * 24 * time.Hour,
	}
}

func (s *service) Issue(personID, tenantID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"person_id": personID,
		"tenant_id": tenantID,
		"exp":       now.Add(s.validity).Unix(),
		"iat":       now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to sign onboarding link token").
			Mark(ierr.ErrSystem)
	}
	return signed, nil
}

func (s *service) Verify(token string) (*Claims, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ierr.NewError("unexpected signing method").
				WithHint(fmt.Sprintf("unexpected signing method: %v", token.Header["alg"])).
				Mark(ierr.ErrTokenInvalid)
		}
		return []byte(s.secret), nil
	})

	if err != nil {
		// Expiry is the one failure the recipient can act on, so it gets
		// its own error class.
		if vErr, ok := err.(*jwt.ValidationError); ok && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ierr.WithError(err).
				WithHint("This onboarding link has expired").
				Mark(ierr.ErrTokenExpired)
		}
		return nil, ierr.WithError(err).
			WithHint("This onboarding link is not valid").
			Mark(ierr.ErrTokenInvalid)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, ierr.NewError("invalid token claims").
			WithHint("This onboarding link is not valid").
			Mark(ierr.ErrTokenInvalid)
	}

	personID, personOk := claims["person_id"].(string)
	if !personOk || personID == "" {
		return nil, ierr.NewError("token missing person ID").
			WithHint("This onboarding link is not valid").
			Mark(ierr.ErrTokenInvalid)
	}

	tenantID, tenantOk := claims["tenant_id"].(string)
	if !tenantOk {
		tenantID = types.DefaultTenantID
	}

	return &Claims{PersonID: personID, TenantID: tenantID}, nil
}
