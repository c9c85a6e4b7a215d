package service

import (
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/bimcat/catalog-api/internal/models"
	appErrors "github.com/bimcat/catalog-api/pkg/errors"
)

// AuthConfig carries the single-operator admin credentials and token
// parameters. PasswordHash (bcrypt) wins over the plaintext Password; the
// plaintext form exists only to ease local development.
type AuthConfig struct {
	Password      string
	PasswordHash  string
	SessionSecret string
	SessionTTL    time.Duration
}

// AuthService issues and verifies signed admin session tokens. Sessions are
// stateless: a token is valid until it expires, there is no server-side
// session store to revoke against.
type AuthService struct {
	cfg    AuthConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewAuthService wires the admin auth service.
func NewAuthService(cfg AuthConfig, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 12 * time.Hour
	}
	return &AuthService{cfg: cfg, logger: logger, now: time.Now}
}

// Login checks the password and, on success, returns a signed session token
// together with its expiry.
func (s *AuthService) Login(password string) (string, time.Time, error) {
	if err := s.verifyPassword(password); err != nil {
		return "", time.Time{}, err
	}
	return s.issueToken()
}

// ValidateToken parses and verifies a session token, returning its claims.
func (s *AuthService) ValidateToken(token string) (*models.SessionClaims, error) {
	if s.cfg.SessionSecret == "" {
		return nil, appErrors.Clone(appErrors.ErrInternal, "sesión de administrador no configurada")
	}
	claims := &models.SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.SessionSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "Sesión inválida o expirada")
	}
	return claims, nil
}

func (s *AuthService) verifyPassword(password string) error {
	switch {
	case s.cfg.PasswordHash != "":
		if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password)); err != nil {
			return appErrors.Clone(appErrors.ErrWrongPassword, "Contraseña incorrecta")
		}
		return nil
	case s.cfg.Password != "":
		if subtle.ConstantTimeCompare([]byte(s.cfg.Password), []byte(password)) != 1 {
			return appErrors.Clone(appErrors.ErrWrongPassword, "Contraseña incorrecta")
		}
		return nil
	default:
		s.logger.Error("admin login attempted with no password configured")
		return appErrors.Clone(appErrors.ErrInternal, "acceso de administrador no configurado")
	}
}

func (s *AuthService) issueToken() (string, time.Time, error) {
	if s.cfg.SessionSecret == "" {
		return "", time.Time{}, appErrors.Clone(appErrors.ErrInternal, "sesión de administrador no configurada")
	}
	now := s.now()
	expiresAt := now.Add(s.cfg.SessionTTL)
	claims := models.SessionClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return "", time.Time{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo firmar la sesión")
	}
	return token, expiresAt, nil
}
