package http

import (
	"net/http"
	"strings"

	"tradefinance/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// Claims carries the caller identity issued by the trade network's
// identity provider. The subject is the party identifier; roles holds the
// party's role attributes (seller, buyer, freight).
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// NewAuthMiddleware returns middleware that authenticates requests via an
// HS256 bearer token and stores the resolved actor on the request context.
// Requests without a valid token are rejected before reaching a handler;
// role checks stay with the use cases.
func NewAuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenStr, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenStr == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims := new(Claims)
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			roles := make([]kernel.Role, 0, len(claims.Roles))
			for _, name := range claims.Roles {
				role, roleErr := kernel.RoleFromString(name)
				if roleErr != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "unknown role attribute")
				}
				roles = append(roles, role)
			}

			actor, err := kernel.NewActor(claims.Subject, roles...)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "token carries no usable identity")
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

func actorFromContext(c echo.Context) (kernel.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(kernel.Actor)
	return actor, ok
}
