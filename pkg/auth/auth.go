package auth

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"droscher.com/Barista/configs"
)

// Claims is the decoded bearer token handed to protected handlers.
type Claims struct {
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

func (c *Claims) HasPermission(permission string) bool {
	return slices.Contains(c.Permissions, permission)
}

// Error is a rejected credential. Code is a stable machine readable reason.
type Error struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

var (
	ErrHeaderMissing = &Error{http.StatusUnauthorized, "authorization_header_missing", "Authorization header is expected."}
	ErrInvalidHeader = &Error{http.StatusUnauthorized, "invalid_header", "Authorization header must be bearer token."}
	ErrInvalidToken  = &Error{http.StatusUnauthorized, "invalid_header", "Unable to parse authentication token."}
	ErrTokenExpired  = &Error{http.StatusUnauthorized, "token_expired", "Token expired."}
	ErrInvalidClaims = &Error{http.StatusUnauthorized, "invalid_claims", "Incorrect claims. Please, check the audience and issuer."}
	ErrForbidden     = &Error{http.StatusForbidden, "unauthorized", "Permission not found."}
)

type (
	// HandlerFunc is a handler that runs only once a permission was granted.
	HandlerFunc func(w http.ResponseWriter, r *http.Request, claims *Claims)
	// ErrorHandler writes the response for a rejected request.
	ErrorHandler func(w http.ResponseWriter, r *http.Request, err *Error)
)

type Manager struct {
	conf         configs.Auth
	logger       *zap.Logger
	errorHandler ErrorHandler
	now          func() time.Time
}

func NewAuthManager(conf configs.Auth, logger *zap.Logger, errorHandler ErrorHandler) *Manager {
	return &Manager{conf: conf, logger: logger, errorHandler: errorHandler, now: time.Now}
}

// Require wraps next so that it only runs for requests carrying a valid token
// that grants permission.
func (a *Manager) Require(permission string, next HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := a.Authenticate(r.Header)
		if err == nil && !claims.HasPermission(permission) {
			err = ErrForbidden
		}

		if err != nil {
			var authErr *Error
			if !errors.As(err, &authErr) {
				authErr = ErrInvalidToken
			}

			a.logger.Warn("request rejected",
				zap.String("path", r.URL.Path),
				zap.String("permission", permission),
				zap.Int("status", authErr.StatusCode),
				zap.String("code", authErr.Code))

			a.errorHandler(w, r, authErr)

			return
		}

		next(w, r, claims)
	}
}

// Authenticate decodes and verifies the bearer token of a request.
func (a *Manager) Authenticate(header http.Header) (*Claims, error) {
	accessToken, err := extractTokenFromHeader(header)
	if err != nil {
		return nil, err
	}

	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(a.conf.SecretKey), nil
	}

	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())

	token, err := parser.ParseWithClaims(accessToken, claims, keyFunc)
	if err != nil {
		a.logger.Debug("error parsing token", zap.Error(err))

		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if err := a.validateClaims(claims); err != nil {
		return nil, err
	}

	return claims, nil
}

func (a *Manager) validateClaims(claims *Claims) error {
	now := a.now()

	if !claims.VerifyExpiresAt(now, false) {
		return ErrTokenExpired
	}

	if !claims.VerifyNotBefore(now, false) || !claims.VerifyIssuedAt(now, false) {
		return ErrInvalidToken
	}

	if a.conf.Audience != "" && !claims.VerifyAudience(a.conf.Audience, true) {
		return ErrInvalidClaims
	}

	if issuer := a.conf.Issuer(); issuer != "" && !claims.VerifyIssuer(issuer, true) {
		return ErrInvalidClaims
	}

	return nil
}

// IssueToken signs a token granting permissions to subject for ttl.
func (a *Manager) IssueToken(subject string, permissions []string, ttl time.Duration) (string, error) {
	now := a.now()
	claims := Claims{
		Permissions: permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    a.conf.Issuer(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	if a.conf.Audience != "" {
		claims.Audience = jwt.ClaimStrings{a.conf.Audience}
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.conf.SecretKey))
}

func extractTokenFromHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		return "", ErrHeaderMissing
	}

	parts := strings.Fields(authorization)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrInvalidHeader
	}

	return parts[1], nil
}
