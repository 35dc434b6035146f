package http

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

const (
	apiPrefix = "/api/v1/"
	actorKey  = "actor"
)

// Actor is the authenticated caller.
type Actor struct {
	ID   int64
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Claims are the JWT claims issued by the identity provider. The subject is
// the numeric user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTAuth authenticates requests under /api/v1/ with an HS256 bearer token
// and stores the Actor in the echo context. Other paths are public.
func JWTAuth(secret []byte) echo.MiddlewareFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	keyFunc := func(*jwt.Token) (any, error) {
		return secret, nil
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !strings.HasPrefix(ctx.Request().URL.Path, apiPrefix) {
				return next(ctx)
			}

			raw, ok := strings.CutPrefix(ctx.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing bearer token")
			}

			claims := &Claims{}
			token, err := parser.ParseWithClaims(strings.TrimSpace(raw), claims, keyFunc)
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			actor, err := actorFromClaims(claims)
			if err != nil {
				return err
			}

			ctx.Set(actorKey, actor)
			return next(ctx)
		}
	}
}

// NewToken signs claims for actor with HS256.
func NewToken(secret []byte, actor Actor, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = strconv.FormatInt(actor.ID, 10)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role:             actor.Role,
		RegisteredClaims: claims,
	})
	return token.SignedString(secret)
}

func actorFromClaims(claims *Claims) (Actor, error) {
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token subject")
	}
	if claims.Role != RoleUser && claims.Role != RoleAdmin {
		return Actor{}, echo.NewHTTPError(http.StatusForbidden, "Unknown role")
	}
	return Actor{ID: id, Role: claims.Role}, nil
}

// requireRole returns the caller if it has one of roles.
func requireRole(ctx echo.Context, roles ...string) (Actor, error) {
	actor, ok := ctx.Get(actorKey).(Actor)
	if !ok {
		return Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "Missing bearer token")
	}
	if !slices.Contains(roles, actor.Role) {
		return Actor{}, echo.NewHTTPError(http.StatusForbidden, "Insufficient role")
	}
	return actor, nil
}
