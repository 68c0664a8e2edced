package http

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/ports"
	"photoflow/internal/observability"
	"photoflow/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const actorContextKey = "photoflow.actor"

// Authenticator resolves the bearer token of a request to an actor. Only the
// subject is read from the token; role and workspace come from the
// directory.
type Authenticator struct {
	secret []byte
	actors ports.ActorDirectory
	logger *zap.Logger
}

func NewAuthenticator(secret string, actors ports.ActorDirectory, logger *zap.Logger) *Authenticator {
	return &Authenticator{
		secret: []byte(secret),
		actors: actors,
		logger: observability.Component(logger, "auth"),
	}
}

func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token, found := bearerToken(ctx.Request())
			if !found {
				return unauthorized(ctx, "missing bearer token")
			}

			userID, err := a.subject(token)
			if err != nil {
				a.logger.Debug("rejected token", zap.Error(err))
				return unauthorized(ctx, "invalid token")
			}

			actor, err := a.actors.GetActor(ctx.Request().Context(), userID)
			switch {
			case errors.Is(err, errs.ErrObjectNotFound):
				return unauthorized(ctx, "unknown user")
			case err != nil:
				a.logger.Error("resolve actor", zap.String("user_id", userID.String()), zap.Error(err))
				return ctx.JSON(http.StatusInternalServerError, envelope{Error: internalErrorMessage})
			}

			trace.SpanFromContext(ctx.Request().Context()).SetAttributes(
				observability.AttrActorRole.String(actor.Role().String()))
			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

func (a *Authenticator) subject(token string) (kernel.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return kernel.UUID{}, err
	}
	if claims.Subject == "" {
		return kernel.UUID{}, fmt.Errorf("token has no subject")
	}
	return kernel.UUIDFromString(claims.Subject)
}

// actorFrom returns the zero actor when the request was not authenticated,
// which every use case rejects.
func actorFrom(ctx echo.Context) kernel.Actor {
	actor, _ := ctx.Get(actorContextKey).(kernel.Actor)
	return actor
}

func bearerToken(req *http.Request) (string, bool) {
	header := req.Header.Get(echo.HeaderAuthorization)
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// secretMatches compares in constant time. An empty configured secret never
// matches.
func secretMatches(req *http.Request, secret string) bool {
	token, found := bearerToken(req)
	if !found || secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(secret)) == 1
}

func unauthorized(ctx echo.Context, msg string) error {
	return ctx.JSON(http.StatusUnauthorized, envelope{Error: msg})
}
