package http

import (
	"context"
	"net/http"
	"strings"

	"campusdrop/internal/core/domain/model/kernel"
	"campusdrop/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type userIDContextKey struct{}

// WithUserID returns a context carrying the authenticated user's ID.
func WithUserID(ctx context.Context, userID kernel.UUID) context.Context {
	return context.WithValue(ctx, userIDContextKey{}, userID)
}

// ContextIdentityProvider resolves the current user from the request
// context populated by the JWT middleware. It implements the
// IdentityProvider port.
type ContextIdentityProvider struct{}

// NewContextIdentityProvider creates a context-backed identity provider.
func NewContextIdentityProvider() ContextIdentityProvider {
	return ContextIdentityProvider{}
}

// CurrentUser returns the authenticated user's ID from ctx.
// Returns an UnauthenticatedError when no user was injected.
func (ContextIdentityProvider) CurrentUser(ctx context.Context) (kernel.UUID, error) {
	userID, ok := ctx.Value(userIDContextKey{}).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, errs.NewUnauthenticatedError()
	}
	return userID, nil
}

// Authenticate validates the Bearer token on incoming requests and
// injects the token subject as the current user into the request context.
// Tokens must be HMAC-signed with the configured secret and carry the
// user's ID in the subject claim.
func Authenticate(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Authorization header is required",
				})
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid token format",
				})
			}

			claims := &jwt.RegisteredClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims,
				func(*jwt.Token) (any, error) { return secret, nil },
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			)
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			userID, err := kernel.UUIDFromString(claims.Subject)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid token subject",
				})
			}

			req := c.Request()
			c.SetRequest(req.WithContext(WithUserID(req.Context(), userID)))
			return next(c)
		}
	}
}
