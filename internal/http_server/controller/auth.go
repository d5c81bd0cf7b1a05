// Package controller
package controller

import (
	"net/http"
	"time"

	c "github.com/hikoki-lab/drone-logbook/internal/interfaces/config"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type AuthControllerInterface interface {
	PilotLogin(ctx echo.Context) error
	PilotLogout(ctx echo.Context) error
	CurrentPilot(ctx echo.Context) error
}

type AuthController struct {
	logger  log.LoggerInterface
	config  *c.SessionConfig
	service AuthServiceInterface
}

func NewAuthController(logger log.LoggerInterface, config *c.SessionConfig, service AuthServiceInterface) *AuthController {
	return &AuthController{
		logger:  logger,
		config:  config,
		service: service,
	}
}

func (controller *AuthController) newSessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     controller.config.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (controller *AuthController) PilotLogin(ctx echo.Context) error {
	data := &RequestPilotLogin{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AuthController.PilotLogin bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	res, cookieValue := controller.service.PilotLogin(data)
	if cookieValue != "" {
		ctx.SetCookie(controller.newSessionCookie(cookieValue, time.Now().Add(controller.config.ExpiresDuration)))
	}
	return res.Response(ctx)
}

func (controller *AuthController) PilotLogout(ctx echo.Context) error {
	data := &RequestPilotLogout{Token: GetSessionToken(ctx)}
	res := controller.service.PilotLogout(data)
	// Cookieは即時に失効させる
	ctx.SetCookie(controller.newSessionCookie("", time.Unix(0, 0)))
	return res.Response(ctx)
}

func (controller *AuthController) CurrentPilot(ctx echo.Context) error {
	data := &RequestCurrentPilot{Identity: GetIdentity(ctx)}
	return controller.service.CurrentPilot(data).Response(ctx)
}
