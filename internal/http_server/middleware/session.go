package middleware

import (
	"errors"

	c "github.com/hikoki-lab/drone-logbook/internal/interfaces/config"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

// SessionMiddleware Cookieの署名検証とセッション行の照合を行い、
// 解決できた場合のみIdentityをコンテキストへ載せる。
// requiredがtrueのとき、未認証のリクエストはここで401を返す。
func SessionMiddleware(
	logger log.LoggerInterface,
	config *c.SessionConfig,
	sessionOperation operation.SessionOperationInterface,
	required bool,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			identity, token := resolveIdentity(logger, config, sessionOperation, ctx)
			if identity == nil && required {
				return service.NewErrorResponse(ctx, &service.ErrAuthRequired)
			}
			if identity != nil {
				ctx.Set(service.IdentityContextKey, identity)
				ctx.Set(service.SessionTokenContextKey, token)
			}
			return next(ctx)
		}
	}
}

func resolveIdentity(
	logger log.LoggerInterface,
	config *c.SessionConfig,
	sessionOperation operation.SessionOperationInterface,
	ctx echo.Context,
) (*service.Identity, string) {
	cookie, err := ctx.Cookie(config.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, ""
	}

	token, ok := service.VerifySessionCookie(config.Secret, cookie.Value)
	if !ok {
		return nil, ""
	}

	session, err := sessionOperation.GetSessionByToken(token)
	if err != nil {
		if !errors.Is(err, operation.ErrSessionNotFound) {
			logger.ErrorF("Fail to load session: %v", err)
		}
		return nil, ""
	}

	return &service.Identity{
		PilotID:     session.PilotID,
		DisplayName: session.DisplayName,
	}, session.Token
}
