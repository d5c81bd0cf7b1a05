// Package service
package service

import (
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
)

type FlightLogServiceInterface interface {
	GetFlightLogList(req *RequestFlightLogList) *ApiResponse[ResponseFlightLogList]
	GetFlightLogProfile(req *RequestFlightLogProfile) *ApiResponse[ResponseFlightLogProfile]
	CreateFlightLog(req *RequestFlightLogCreate) *ApiResponse[ResponseFlightLogCreate]
	EditFlightLogInfo(req *RequestFlightLogEdit) *ApiResponse[ResponseFlightLogEdit]
	DeleteFlightLog(req *RequestFlightLogDelete) *ApiResponse[ResponseFlightLogDelete]
}

type RequestFlightLogList struct {
	Identity *Identity
}

type ResponseFlightLogList struct {
	Items []*operation.FlightLog `json:"items"`
	Total int64                  `json:"total"`
}

type RequestFlightLogProfile struct {
	Identity *Identity
	TargetID uint `param:"id"`
}

type ResponseFlightLogProfile operation.FlightLog

// FlightLogFields 作成と更新で共有する入力項目
type FlightLogFields struct {
	DroneID        uint   `json:"drone_id"`
	PrecheckDate   string `json:"precheck_date"`
	Inspector      string `json:"inspector"`
	Place          string `json:"place"`
	Body           string `json:"body"`
	Propeller      string `json:"propeller"`
	Frame          string `json:"frame"`
	Comm           string `json:"comm"`
	Engine         string `json:"engine"`
	Power          string `json:"power"`
	Autocontrol    string `json:"autocontrol"`
	Controller     string `json:"controller"`
	Battery        string `json:"battery"`
	FlyDate        string `json:"fly_date"`
	StartLocation  string `json:"start_location"`
	EndLocation    string `json:"end_location"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	FlightAbnormal string `json:"flight_abnormal"`
	Aftercheck     string `json:"aftercheck"`
	CopilotName    string `json:"copilot_name"`
	Purpose        string `json:"purpose"`
	FlightForm     string `json:"flight_form"`
}

type RequestFlightLogCreate struct {
	Identity *Identity `json:"-"`
	FlightLogFields
}

type ResponseFlightLogCreate struct {
	FlightLog *operation.FlightLog `json:"flight_log"`
}

type RequestFlightLogEdit struct {
	Identity *Identity `json:"-"`
	TargetID uint      `json:"-" param:"id"`
	FlightLogFields
}

type ResponseFlightLogEdit struct {
	FlightLog *operation.FlightLog `json:"flight_log"`
}

type RequestFlightLogDelete struct {
	Identity *Identity
	TargetID uint `param:"id"`
}

type ResponseFlightLogDelete struct{}
