package middleware

import (
	"slices"
	"strings"

	"pawmart/internal/delivery/http/response"
	"pawmart/internal/domain/entity"
	"pawmart/internal/domain/repository"
	"pawmart/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware provides middleware for token authentication and authorization.
// Roles are derived from the account at request time rather than baked into
// the token, so a state change (say, an entrepreneur losing approval) takes
// effect on the next request.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	accountRepo repository.AccountRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, accountRepo repository.AccountRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, accountRepo: accountRepo}
}

// Authenticate is the core middleware function that validates the bearer token
// and loads the account it identifies.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		identity, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		account, err := m.accountRepo.FindByID(c.Request().Context(), identity.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				// The account was deleted after the token was issued.
				return response.Unauthorized(c, "INVALID_TOKEN", "Account no longer exists")
			}

			return errors.Wrap(err, "failed to load account for token")
		}

		// Set account info on the context for handlers to use
		c.Set("accountID", account.ID)
		c.Set("account", account)
		c.Set("roles", account.Roles().ToStrings())

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the account has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rolesVal := c.Get("roles")
			roles, ok := rolesVal.([]string)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !slices.Contains(roles, requiredRole.String()) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}
