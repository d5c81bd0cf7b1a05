// Package service
package service

import (
	"errors"
	"slices"

	"github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
	"github.com/hikoki-lab/drone-logbook/internal/utils"
)

const maxFlightMinutes = 720

var (
	allowedPurposes = []string{"訓練", "業務", "その他"}

	allowedFlightForms = []string{
		"目視内飛行",
		"目視外飛行",
		"夜間飛行",
		"25kg以上の機体の飛行",
		"催し場所上空の飛行",
		"危険物輸送",
		"物件投下",
	}
)

type FlightLogService struct {
	droneOperation     operation.DroneOperationInterface
	flightLogOperation operation.FlightLogOperationInterface
}

func NewFlightLogService(
	droneOperation operation.DroneOperationInterface,
	flightLogOperation operation.FlightLogOperationInterface,
) *FlightLogService {
	return &FlightLogService{
		droneOperation:     droneOperation,
		flightLogOperation: flightLogOperation,
	}
}

var (
	ErrFlightTime    = ApiStatus{StatusName: "VALIDATION_ERROR", Description: "飛行時間が不正です。", HttpCode: BadRequest}
	ErrPurposeValue  = ApiStatus{StatusName: "VALIDATION_ERROR", Description: "飛行目的の値が不正です。", HttpCode: BadRequest}
	ErrFlightForm    = ApiStatus{StatusName: "VALIDATION_ERROR", Description: "飛行形態の値が不正です。", HttpCode: BadRequest}
	ErrClockFormat   = ApiStatus{StatusName: "VALIDATION_ERROR", Description: "時刻の形式が正しくありません。", HttpCode: BadRequest}
	ErrDroneNotOwned = ApiStatus{StatusName: "DRONE_NOT_OWNED", Description: "指定された機体を使用する権限がありません。", HttpCode: PermissionDenied}
	SuccessGetLogs   = ApiStatus{StatusName: "GET_FLIGHT_LOGS_SUCCESS", Description: "飛行記録一覧を取得しました。", HttpCode: Ok}
	SuccessGetLog    = ApiStatus{StatusName: "GET_FLIGHT_LOG_SUCCESS", Description: "飛行記録を取得しました。", HttpCode: Ok}
	SuccessCreateLog = ApiStatus{StatusName: "CREATE_FLIGHT_LOG_SUCCESS", Description: "飛行記録を登録しました。", HttpCode: Ok}
	SuccessEditLog   = ApiStatus{StatusName: "EDIT_FLIGHT_LOG_SUCCESS", Description: "飛行記録を更新しました。", HttpCode: Ok}
	SuccessDeleteLog = ApiStatus{StatusName: "DELETE_FLIGHT_LOG_SUCCESS", Description: "飛行記録を削除しました。", HttpCode: Ok}
)

// checkFlightLogFields 作成と更新で同じ検証を通す。
// 戻り値のminutesは検証済みの実飛行時間。
func (flightLogService *FlightLogService) checkFlightLogFields(pilotId uint, fields *FlightLogFields) (int, *ApiStatus) {
	if fields.DroneID == 0 || fields.FlyDate == "" {
		return 0, &ErrIllegalParam
	}
	// 飛行目的・飛行形態は未入力を許容し、入力があれば許可値のみ受け付ける
	if fields.Purpose != "" && !slices.Contains(allowedPurposes, fields.Purpose) {
		return 0, &ErrPurposeValue
	}
	if fields.FlightForm != "" && !slices.Contains(allowedFlightForms, fields.FlightForm) {
		return 0, &ErrFlightForm
	}
	if !utils.ValidClock(fields.StartTime) || !utils.ValidClock(fields.EndTime) {
		return 0, &ErrClockFormat
	}

	minutes := utils.FlightMinutes(fields.StartTime, fields.EndTime)
	if minutes <= 0 || minutes > maxFlightMinutes {
		return 0, &ErrFlightTime
	}

	// 機体は本人所有のものに限る
	if _, err := flightLogService.droneOperation.GetDroneById(pilotId, fields.DroneID); err != nil {
		if errors.Is(err, operation.ErrDroneNotFound) {
			return 0, &ErrDroneNotOwned
		}
		return 0, &ErrDatabaseFail
	}

	return minutes, nil
}

func (flightLogService *FlightLogService) GetFlightLogList(req *RequestFlightLogList) *ApiResponse[ResponseFlightLogList] {
	flightLogs, res := CallDBFuncAndCheckError[[]*operation.FlightLog, ResponseFlightLogList](func() (*[]*operation.FlightLog, error) {
		flightLogs, err := flightLogService.flightLogOperation.GetFlightLogs(req.Identity.PilotID)
		return &flightLogs, err
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetLogs, Unsatisfied, &ResponseFlightLogList{
		Items: *flightLogs,
		Total: int64(len(*flightLogs)),
	})
}

func (flightLogService *FlightLogService) GetFlightLogProfile(req *RequestFlightLogProfile) *ApiResponse[ResponseFlightLogProfile] {
	flightLog, res := CallDBFuncAndCheckError[operation.FlightLog, ResponseFlightLogProfile](func() (*operation.FlightLog, error) {
		return flightLogService.flightLogOperation.GetFlightLogById(req.Identity.PilotID, req.TargetID)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetLog, Unsatisfied, (*ResponseFlightLogProfile)(flightLog))
}

func (flightLogService *FlightLogService) CreateFlightLog(req *RequestFlightLogCreate) *ApiResponse[ResponseFlightLogCreate] {
	minutes, status := flightLogService.checkFlightLogFields(req.Identity.PilotID, &req.FlightLogFields)
	if status != nil {
		return NewApiResponse[ResponseFlightLogCreate](status, Unsatisfied, nil)
	}

	flightLog := &operation.FlightLog{
		PrecheckDate:      req.PrecheckDate,
		Inspector:         req.Inspector,
		Place:             req.Place,
		Body:              req.Body,
		Propeller:         req.Propeller,
		Frame:             req.Frame,
		Comm:              req.Comm,
		Engine:            req.Engine,
		Power:             req.Power,
		Autocontrol:       req.Autocontrol,
		Controller:        req.Controller,
		Battery:           req.Battery,
		FlyDate:           req.FlyDate,
		StartLocation:     req.StartLocation,
		EndLocation:       req.EndLocation,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		ActualTimeMinutes: minutes,
		FlightAbnormal:    req.FlightAbnormal,
		Aftercheck:        req.Aftercheck,
		CopilotName:       req.CopilotName,
		Purpose:           req.Purpose,
		FlightForm:        req.FlightForm,
		DroneID:           req.DroneID,
		PilotID:           req.Identity.PilotID,
	}

	if _, res := CallDBFuncAndCheckError[interface{}, ResponseFlightLogCreate](func() (*interface{}, error) {
		return nil, flightLogService.flightLogOperation.AddFlightLog(flightLog)
	}); res != nil {
		return res
	}

	return NewApiResponse(&SuccessCreateLog, Unsatisfied, &ResponseFlightLogCreate{FlightLog: flightLog})
}

func (flightLogService *FlightLogService) EditFlightLogInfo(req *RequestFlightLogEdit) *ApiResponse[ResponseFlightLogEdit] {
	minutes, status := flightLogService.checkFlightLogFields(req.Identity.PilotID, &req.FlightLogFields)
	if status != nil {
		return NewApiResponse[ResponseFlightLogEdit](status, Unsatisfied, nil)
	}

	flightLog, res := CallDBFuncAndCheckError[operation.FlightLog, ResponseFlightLogEdit](func() (*operation.FlightLog, error) {
		return flightLogService.flightLogOperation.GetFlightLogById(req.Identity.PilotID, req.TargetID)
	})
	if res != nil {
		return res
	}

	// pilot_idは更新対象に含めない。実飛行時間は常に再計算した値を書く
	info := map[string]interface{}{
		"precheck_date":       req.PrecheckDate,
		"inspector":           req.Inspector,
		"place":               req.Place,
		"body":                req.Body,
		"propeller":           req.Propeller,
		"frame":               req.Frame,
		"comm":                req.Comm,
		"engine":              req.Engine,
		"power":               req.Power,
		"autocontrol":         req.Autocontrol,
		"controller":          req.Controller,
		"battery":             req.Battery,
		"fly_date":            req.FlyDate,
		"start_location":      req.StartLocation,
		"end_location":        req.EndLocation,
		"start_time":          req.StartTime,
		"end_time":            req.EndTime,
		"actual_time_minutes": minutes,
		"flight_abnormal":     req.FlightAbnormal,
		"aftercheck":          req.Aftercheck,
		"copilot_name":        req.CopilotName,
		"purpose":             req.Purpose,
		"flight_form":         req.FlightForm,
		"drone_id":            req.DroneID,
	}

	if _, res := CallDBFuncAndCheckError[interface{}, ResponseFlightLogEdit](func() (*interface{}, error) {
		return nil, flightLogService.flightLogOperation.UpdateFlightLogInfo(flightLog, info)
	}); res != nil {
		return res
	}

	return NewApiResponse(&SuccessEditLog, Unsatisfied, &ResponseFlightLogEdit{FlightLog: flightLog})
}

func (flightLogService *FlightLogService) DeleteFlightLog(req *RequestFlightLogDelete) *ApiResponse[ResponseFlightLogDelete] {
	flightLog, res := CallDBFuncAndCheckError[operation.FlightLog, ResponseFlightLogDelete](func() (*operation.FlightLog, error) {
		return flightLogService.flightLogOperation.GetFlightLogById(req.Identity.PilotID, req.TargetID)
	})
	if res != nil {
		return res
	}

	if _, res := CallDBFuncAndCheckError[interface{}, ResponseFlightLogDelete](func() (*interface{}, error) {
		return nil, flightLogService.flightLogOperation.DeleteFlightLog(flightLog)
	}); res != nil {
		return res
	}

	return NewApiResponse(&SuccessDeleteLog, Unsatisfied, &ResponseFlightLogDelete{})
}
