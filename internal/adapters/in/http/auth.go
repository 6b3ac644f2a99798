package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"fleetdispatch/internal/generated/servers"
	"fleetdispatch/internal/pkg/logging"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// RoleAdmin is the role allowed to overwrite and delete tasks.
const RoleAdmin = "ADMIN"

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims are the JWT claims issued by the account service.
type Claims struct {
	jwt.RegisteredClaims
	SystemRole string `json:"systemRole"`
}

// TokenVerifier checks HS256 bearer tokens against a shared secret.
type TokenVerifier struct {
	secret []byte
}

// NewTokenVerifier returns nil for an empty secret, which disables the admin gate.
func NewTokenVerifier(secret string) *TokenVerifier {
	if secret == "" {
		return nil
	}
	return &TokenVerifier{secret: []byte(secret)}
}

// Verify parses token and checks signature, algorithm and expiry.
func (v *TokenVerifier) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(token), nil
}

// requiresAdmin selects the administrative task routes.
func requiresAdmin(c echo.Context) bool {
	method := c.Request().Method
	if method != http.MethodPut && method != http.MethodDelete {
		return false
	}
	return strings.HasPrefix(c.Path(), "/api/v1/tasks/")
}

// AdminOnly rejects administrative requests without a valid ADMIN token:
// 401 for a missing or invalid token, 403 for another role. A nil verifier
// lets every request through.
func AdminOnly(v *TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if v == nil || !requiresAdmin(c) {
				return next(c)
			}

			token, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Unauthorized - no token provided",
				})
			}

			claims, err := v.Verify(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Unauthorized - invalid token",
				})
			}

			if claims.SystemRole != RoleAdmin {
				return c.JSON(http.StatusForbidden, servers.Error{
					Code:    http.StatusForbidden,
					Message: "Forbidden: Admins only",
				})
			}

			logger := logging.FromContext(c.Request().Context())
			withLogger(c, logger.With("subject", claims.Subject, "role", claims.SystemRole))
			return next(c)
		}
	}
}
