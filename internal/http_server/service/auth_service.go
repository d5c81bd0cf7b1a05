// Package service
package service

import (
	"errors"

	c "github.com/hikoki-lab/drone-logbook/internal/interfaces/config"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
)

type AuthService struct {
	config           *c.HttpServerConfig
	pilotOperation   operation.PilotOperationInterface
	sessionOperation operation.SessionOperationInterface
}

func NewAuthService(
	config *c.HttpServerConfig,
	pilotOperation operation.PilotOperationInterface,
	sessionOperation operation.SessionOperationInterface,
) *AuthService {
	return &AuthService{
		config:           config,
		pilotOperation:   pilotOperation,
		sessionOperation: sessionOperation,
	}
}

var (
	SuccessLogin  = ApiStatus{StatusName: "LOGIN_SUCCESS", Description: "ログインしました。", HttpCode: Ok}
	SuccessLogout = ApiStatus{StatusName: "LOGOUT_SUCCESS", Description: "ログアウトしました。", HttpCode: Ok}
)

// PilotLogin 認証に成功するとセッションを永続化し、署名済みCookie値を返す。
// メール不一致とパスワード不一致は同じ応答に束ねる。
func (authService *AuthService) PilotLogin(req *RequestPilotLogin) (*ApiResponse[ResponsePilotLogin], string) {
	if req.Email == "" || req.Password == "" {
		return NewApiResponse[ResponsePilotLogin](&ErrIllegalParam, Unsatisfied, nil), ""
	}

	pilot, err := authService.pilotOperation.GetPilotByEmail(req.Email)
	if err != nil {
		if errors.Is(err, operation.ErrPilotNotFound) {
			return NewApiResponse[ResponsePilotLogin](&ErrLoginFailed, Unsatisfied, nil), ""
		}
		return NewApiResponse[ResponsePilotLogin](&ErrDatabaseFail, Unsatisfied, nil), ""
	}

	if pass := authService.pilotOperation.VerifyPilotPassword(pilot, req.Password); !pass {
		return NewApiResponse[ResponsePilotLogin](&ErrLoginFailed, Unsatisfied, nil), ""
	}

	sessionConfig := authService.config.Session
	session := authService.sessionOperation.NewSession(pilot, sessionConfig.ExpiresDuration)
	// 応答より先にセッションを確定させる
	if err := authService.sessionOperation.AddSession(session); err != nil {
		return NewApiResponse[ResponsePilotLogin](&ErrDatabaseFail, Unsatisfied, nil), ""
	}

	cookieValue := SignSessionToken(sessionConfig.Secret, session.Token)
	return NewApiResponse(&SuccessLogin, Unsatisfied, &ResponsePilotLogin{Pilot: pilot}), cookieValue
}

func (authService *AuthService) PilotLogout(req *RequestPilotLogout) *ApiResponse[ResponsePilotLogout] {
	if req.Token != "" {
		if err := authService.sessionOperation.DeleteSession(req.Token); err != nil {
			return NewApiResponse[ResponsePilotLogout](&ErrDatabaseFail, Unsatisfied, nil)
		}
	}
	return NewApiResponse(&SuccessLogout, Unsatisfied, &ResponsePilotLogout{})
}

var SuccessCurrentPilot = ApiStatus{StatusName: "CURRENT_PILOT", Description: "セッション情報を取得しました。", HttpCode: Ok}

// CurrentPilot 未ログインでもエラーにせず、pilotをnullで返す。
func (authService *AuthService) CurrentPilot(req *RequestCurrentPilot) *ApiResponse[ResponseCurrentPilot] {
	if req.Identity == nil {
		return NewApiResponse(&SuccessCurrentPilot, Unsatisfied, &ResponseCurrentPilot{Pilot: nil})
	}
	return NewApiResponse(&SuccessCurrentPilot, Unsatisfied, &ResponseCurrentPilot{
		Pilot: &SessionPilot{
			ID:   req.Identity.PilotID,
			Name: req.Identity.DisplayName,
		},
	})
}
