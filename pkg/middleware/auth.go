package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fapagri/pkg/user/repository"
)

// UserContextKey is where the authenticated *entities.User lands on the
// echo context.
const UserContextKey = "user"

// BearerAuth validates an Authorization: Bearer token, resolves it to a user
// row and rejects inactive accounts. Missing/invalid/expired token -> 401;
// valid token but inactive user -> 403.
func BearerAuth(secret string, users repository.UserRepository, logger *zap.Logger) echo.MiddlewareFunc {
	key := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			claims := &jwt.RegisteredClaims{}
			tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return key, nil
			})
			if err != nil || !tok.Valid || claims.Subject == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}

			u, err := users.FindByUsername(claims.Subject)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}
			if !u.IsActive {
				logger.Info("inactive account blocked", zap.String("username", u.Username))
				return c.JSON(http.StatusForbidden, echo.Map{"error": "inactive user"})
			}

			c.Set(UserContextKey, u)
			return next(c)
		}
	}
}
