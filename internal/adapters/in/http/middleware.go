package http

import (
	"errors"
	"strings"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

// authSchemes are the accepted Authorization header prefixes.
var authSchemes = []string{"Bearer ", "Token "}

// Identity resolves the Authorization header into an identity.Actor stored on
// the echo context. Requests without the header are anonymous; a header with
// a bad or expired token, or for a deleted user, is rejected with 401.
// Role and staff flag are read from the store on every request.
func Identity(tokens *Tokens, resolver QueryHandler[queries.ResolveActorQuery, identity.Actor]) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				c.Set(actorKey, identity.Anonymous())
				return next(c)
			}

			raw, ok := tokenFromHeader(header)
			if !ok {
				return errs.NewAuthenticationRequiredError("unsupported authorization scheme")
			}

			userID, err := tokens.Verify(raw)
			if err != nil {
				return errs.NewAuthenticationRequiredError("invalid token")
			}

			query, err := queries.NewResolveActorQuery(userID)
			if err != nil {
				return errs.NewAuthenticationRequiredError("invalid token")
			}

			actor, err := resolver.Handle(c.Request().Context(), query)
			if errors.Is(err, errs.ErrObjectNotFound) {
				return errs.NewAuthenticationRequiredError("unknown user")
			}
			if err != nil {
				return err
			}

			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

func tokenFromHeader(header string) (string, bool) {
	for _, scheme := range authSchemes {
		if len(header) > len(scheme) && strings.EqualFold(header[:len(scheme)], scheme) {
			return strings.TrimSpace(header[len(scheme):]), true
		}
	}
	return "", false
}

// actorFrom returns the actor set by Identity, or an anonymous one.
func actorFrom(c echo.Context) identity.Actor {
	if actor, ok := c.Get(actorKey).(identity.Actor); ok {
		return actor
	}
	return identity.Anonymous()
}
