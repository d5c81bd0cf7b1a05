// Package service
package service

import (
	"errors"

	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
	"github.com/labstack/echo/v4"
)

type HttpCode int

const (
	Unsatisfied         HttpCode = 0
	Ok                  HttpCode = 200
	BadRequest          HttpCode = 400
	Unauthorized        HttpCode = 401
	PermissionDenied    HttpCode = 403
	NotFound            HttpCode = 404
	Conflict            HttpCode = 409
	ServerInternalError HttpCode = 500
)

func (hc HttpCode) Code() int {
	return int(hc)
}

type ApiStatus struct {
	StatusName  string
	Description string
	HttpCode    HttpCode
}

type ApiResponse[T any] struct {
	HttpCode int    `json:"-"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Data     *T     `json:"data"`
}

// Identity 認証ゲートが一度だけ解決するセッション識別情報。
// 以降の処理はこの構造体経由でのみ操縦者を特定する。
type Identity struct {
	PilotID     uint   `json:"pilot_id"`
	DisplayName string `json:"display_name"`
}

const (
	IdentityContextKey     = "identity"
	SessionTokenContextKey = "session_token"
)

// GetIdentity リクエストコンテキストからセッション識別情報を取り出す。
// 認証ミドルウェアを通過していない場合はnilを返す。
func GetIdentity(ctx echo.Context) *Identity {
	if identity, ok := ctx.Get(IdentityContextKey).(*Identity); ok {
		return identity
	}
	return nil
}

// GetSessionToken 認証済みリクエストのセッショントークンを取り出す。
func GetSessionToken(ctx echo.Context) string {
	if token, ok := ctx.Get(SessionTokenContextKey).(string); ok {
		return token
	}
	return ""
}

func (res *ApiResponse[T]) Response(ctx echo.Context) error {
	return ctx.JSON(res.HttpCode, res)
}

var (
	ErrIllegalParam       = ApiStatus{"PARAM_ERROR", "入力内容が正しくありません。", BadRequest}
	ErrLackParam          = ApiStatus{"PARAM_LACK_ERROR", "リクエストの形式が正しくありません。", BadRequest}
	ErrAuthRequired       = ApiStatus{"AUTH_REQUIRED", "ログインが必要です。", Unauthorized}
	ErrLoginFailed        = ApiStatus{"LOGIN_FAILED", "メールアドレスまたはパスワードが正しくありません。", Unauthorized}
	ErrNoPermission       = ApiStatus{"NO_PERMISSION", "権限がありません。", PermissionDenied}
	ErrDatabaseFail       = ApiStatus{"DATABASE_ERROR", "サーバー内部エラーが発生しました。", ServerInternalError}
	ErrPilotNotFound      = ApiStatus{"PILOT_NOT_FOUND", "操縦者が見つかりません。", NotFound}
	ErrDroneNotFound      = ApiStatus{"DRONE_NOT_FOUND", "機体が見つかりません。", NotFound}
	ErrFlightLogNotFound  = ApiStatus{"FLIGHT_LOG_NOT_FOUND", "飛行記録が見つかりません。", NotFound}
	ErrMaintenanceNotFnd  = ApiStatus{"MAINTENANCE_NOT_FOUND", "整備記録が見つかりません。", NotFound}
	ErrEmailTaken         = ApiStatus{"EMAIL_TAKEN", "このメールアドレスは既に使用されています。", Conflict}
	ErrSerialTaken        = ApiStatus{"SERIAL_TAKEN", "この製造番号は既に登録されています。", Conflict}
	ErrDroneInUse         = ApiStatus{"DRONE_IN_USE", "飛行記録が存在するため削除できません。", Conflict}
	ErrPilotHasDependents = ApiStatus{"PILOT_HAS_DEPENDENTS", "機体または飛行記録が存在するため削除できません。", Conflict}
)

func NewErrorResponse(ctx echo.Context, codeStatus *ApiStatus) error {
	return NewApiResponse[any](codeStatus, Unsatisfied, nil).Response(ctx)
}

func NewApiResponse[T any](codeStatus *ApiStatus, httpCode HttpCode, data *T) *ApiResponse[T] {
	if httpCode == Unsatisfied {
		httpCode = codeStatus.HttpCode
	}
	if httpCode == Unsatisfied {
		httpCode = Ok
	}
	return &ApiResponse[T]{
		HttpCode: httpCode.Code(),
		Code:     codeStatus.StatusName,
		Message:  codeStatus.Description,
		Data:     data,
	}
}

var serviceLogger log.LoggerInterface

// InitServiceLogger データベースエラーの詳細をサーバ側ログへ残すためのロガーを設定する
func InitServiceLogger(logger log.LoggerInterface) {
	serviceLogger = logger
}

// CallDBFuncAndCheckError データベース操作を呼び出して既知のエラーをApiStatusへ写像する。
// 未知のエラーは詳細をログに残し、利用者には汎用メッセージのみを返す。
func CallDBFuncAndCheckError[R any, T any](fc func() (*R, error)) (*R, *ApiResponse[T]) {
	result, err := fc()
	switch {
	case err == nil:
		return result, nil
	case errors.Is(err, operation.ErrPilotNotFound):
		return nil, NewApiResponse[T](&ErrPilotNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrDroneNotFound):
		return nil, NewApiResponse[T](&ErrDroneNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrFlightLogNotFound):
		return nil, NewApiResponse[T](&ErrFlightLogNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrMaintenanceNotFound):
		return nil, NewApiResponse[T](&ErrMaintenanceNotFnd, Unsatisfied, nil)
	case errors.Is(err, operation.ErrEmailTaken):
		return nil, NewApiResponse[T](&ErrEmailTaken, Unsatisfied, nil)
	case errors.Is(err, operation.ErrSerialTaken):
		return nil, NewApiResponse[T](&ErrSerialTaken, Unsatisfied, nil)
	case errors.Is(err, operation.ErrDroneInUse):
		return nil, NewApiResponse[T](&ErrDroneInUse, Unsatisfied, nil)
	case errors.Is(err, operation.ErrPilotHasDependents):
		return nil, NewApiResponse[T](&ErrPilotHasDependents, Unsatisfied, nil)
	default:
		if serviceLogger != nil {
			serviceLogger.ErrorF("Error in DB function: %v", err)
		}
		return nil, NewApiResponse[T](&ErrDatabaseFail, Unsatisfied, nil)
	}
}
