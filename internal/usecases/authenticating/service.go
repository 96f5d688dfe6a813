package authenticating

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/newsletter-api/internal/config"
	"github.com/vfg2006/newsletter-api/internal/domain"
	"github.com/vfg2006/newsletter-api/pkg/apiErrors"
	"github.com/vfg2006/newsletter-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	generatedSecretSize = 48
	tokenIDSize         = 21
	tokenIssuer         = "newsletter-api"
)

type Authenticator interface {
	LoginAdmin(password string) (*domain.AdminSession, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	passwordHash []byte
	secretKey    []byte
	tokenTTL     time.Duration
	now          func() time.Time
}

// NewService prepara o gate do dashboard. A senha é guardada apenas como hash
// bcrypt; sem ADMIN_TOKEN_SECRET um segredo aleatório é gerado e os tokens
// deixam de valer após reiniciar o processo.
func NewService(cfg *config.Config) (Authenticator, error) {
	s := &Service{
		tokenTTL: cfg.Admin.TokenTTL,
		now:      time.Now,
	}

	if s.tokenTTL <= 0 {
		s.tokenTTL = 12 * time.Hour
	}

	if cfg.Admin.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash admin dashboard password")
		}
		s.passwordHash = hash
	}

	secret := cfg.Admin.TokenSecret
	if secret == "" {
		generated, err := utils.GenerateID(generatedSecretSize)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate token secret")
		}
		secret = generated

		logrus.Warn("ADMIN_TOKEN_SECRET is not set, admin sessions will not survive a restart")
	}
	s.secretKey = []byte(secret)

	return s, nil
}

func (s *Service) LoginAdmin(password string) (*domain.AdminSession, error) {
	if password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Password cannot be empty.")
	}

	if len(s.passwordHash) == 0 {
		logrus.Error("admin login attempted but ADMIN_DASHBOARD_PASSWORD is not configured")
		return nil, NewAuthError(ErrPasswordNotSet, apiErrors.ErrConfiguration, "Server configuration error. Please try again later.")
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		logrus.Warn("admin login with invalid password")
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Invalid password.")
	}

	session, err := s.generateJWT()
	if err != nil {
		logrus.WithError(err).Error("failed to sign admin session token")
		return nil, NewAuthError(ErrTokenGeneration, apiErrors.ErrInternalServer, "Failed to create admin session.")
	}

	return session, nil
}

func (s *Service) generateJWT() (*domain.AdminSession, error) {
	tokenID, err := utils.GenerateID(tokenIDSize)
	if err != nil {
		return nil, err
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.tokenTTL)

	claims := domain.Claims{
		Role: domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return nil, err
	}

	return &domain.AdminSession{
		Token:     signed,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(tokenIssuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Session expired.")
		}
		return nil, NewAuthError(errors.Wrap(ErrInvalidToken, err.Error()), apiErrors.ErrInvalidToken, "Invalid token")
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Invalid token")
	}

	return claims, nil
}
