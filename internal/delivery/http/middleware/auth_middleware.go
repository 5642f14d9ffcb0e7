package middleware

import (
	"net/http"
	"strings"

	"ledger/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards routes that require a signed-in account.
type AuthMiddleware struct {
	accountUC usecase.AccountUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(accountUC usecase.AccountUsecase) *AuthMiddleware {
	return &AuthMiddleware{accountUC: accountUC}
}

// Authenticate validates the bearer token and resolves it to the owning account.
// The token must both verify and match the access token currently stored for
// the account, so stale tokens from earlier sessions are rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		account, err := m.accountUC.AccountByToken(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}
		if account == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		// Set account info on the context for handlers to use
		c.Set("account", account)
		c.Set("accountID", account.ID)

		return next(c)
	}
}
