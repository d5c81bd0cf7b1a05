// Package service
package service

import (
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
)

type AuthServiceInterface interface {
	PilotLogin(req *RequestPilotLogin) (*ApiResponse[ResponsePilotLogin], string)
	PilotLogout(req *RequestPilotLogout) *ApiResponse[ResponsePilotLogout]
	CurrentPilot(req *RequestCurrentPilot) *ApiResponse[ResponseCurrentPilot]
}

type RequestPilotLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ResponsePilotLogin struct {
	Pilot *operation.Pilot `json:"pilot"`
}

type RequestPilotLogout struct {
	Token string
}

type ResponsePilotLogout struct{}

// SessionPilot 現在のセッションに紐づくパイロットの概要
type SessionPilot struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type RequestCurrentPilot struct {
	Identity *Identity
}

type ResponseCurrentPilot struct {
	Pilot *SessionPilot `json:"pilot"`
}
