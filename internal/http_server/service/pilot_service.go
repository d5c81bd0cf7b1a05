// Package service
package service

import (
	"strings"

	c "github.com/hikoki-lab/drone-logbook/internal/interfaces/config"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
)

type PilotService struct {
	config         *c.HttpServerConfig
	logger         log.LoggerInterface
	emailService   EmailServiceInterface
	pilotOperation operation.PilotOperationInterface
}

func NewPilotService(
	config *c.HttpServerConfig,
	logger log.LoggerInterface,
	emailService EmailServiceInterface,
	pilotOperation operation.PilotOperationInterface,
) *PilotService {
	return &PilotService{
		config:         config,
		logger:         logger,
		emailService:   emailService,
		pilotOperation: pilotOperation,
	}
}

var (
	ErrEmailFormat  = ApiStatus{StatusName: "EMAIL_FORMAT_ERROR", Description: "メールアドレスの形式が正しくありません。", HttpCode: BadRequest}
	SuccessRegister = ApiStatus{StatusName: "REGISTER_SUCCESS", Description: "操縦者を登録しました。", HttpCode: Ok}
)

func (pilotService *PilotService) checkPilotFields(name, email, password string, passwordRequired bool) *ApiStatus {
	if res := nameValidator.CheckString(name); res != nil {
		return res
	}
	if res := emailValidator.CheckString(email); res != nil {
		return res
	}
	if !strings.Contains(email, "@") {
		return &ErrEmailFormat
	}
	if password != "" || passwordRequired {
		if res := passwordValidator.CheckString(password); res != nil {
			return res
		}
	}
	return nil
}

func (pilotService *PilotService) PilotRegister(req *RequestPilotRegister) *ApiResponse[ResponsePilotRegister] {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return NewApiResponse[ResponsePilotRegister](&ErrIllegalParam, Unsatisfied, nil)
	}
	if res := pilotService.checkPilotFields(req.Name, req.Email, req.Password, true); res != nil {
		return NewApiResponse[ResponsePilotRegister](res, Unsatisfied, nil)
	}

	pilot, err := pilotService.pilotOperation.NewPilot(req.Name, req.Email, req.Password)
	if err != nil {
		return NewApiResponse[ResponsePilotRegister](&ErrDatabaseFail, Unsatisfied, nil)
	}
	pilot.NameKana = req.NameKana
	pilot.PostalCode = req.PostalCode
	pilot.Prefecture = req.Prefecture
	pilot.Address1 = req.Address1
	pilot.Address2 = req.Address2
	pilot.Phone = req.Phone
	pilot.HasLicense = req.HasLicense
	pilot.InitialFlightMinutes = req.InitialFlightMinutes

	if _, res := CallDBFuncAndCheckError[interface{}, ResponsePilotRegister](func() (*interface{}, error) {
		return nil, pilotService.pilotOperation.AddPilot(pilot)
	}); res != nil {
		return res
	}

	if err := pilotService.emailService.SendRegisterEmail(pilot); err != nil {
		pilotService.logger.WarnF("Fail to send register email to %s: %v", pilot.Email, err)
	}

	return NewApiResponse(&SuccessRegister, Unsatisfied, &ResponsePilotRegister{Pilot: pilot})
}

var ErrPilotListDisabled = ApiStatus{StatusName: "PILOT_LIST_DISABLED", Description: "この機能は使用できません。", HttpCode: PermissionDenied}

// GetPilotList 一覧は公開しない。常に403を返す。
func (pilotService *PilotService) GetPilotList(_ *RequestPilotList) *ApiResponse[ResponsePilotList] {
	return NewApiResponse[ResponsePilotList](&ErrPilotListDisabled, Unsatisfied, nil)
}

var SuccessGetProfile = ApiStatus{StatusName: "GET_PROFILE_SUCCESS", Description: "操縦者情報を取得しました。", HttpCode: Ok}

func (pilotService *PilotService) GetPilotProfile(req *RequestPilotProfile) *ApiResponse[ResponsePilotProfile] {
	if req.Identity == nil || req.TargetID != req.Identity.PilotID {
		return NewApiResponse[ResponsePilotProfile](&ErrNoPermission, Unsatisfied, nil)
	}

	pilot, res := CallDBFuncAndCheckError[operation.Pilot, ResponsePilotProfile](func() (*operation.Pilot, error) {
		return pilotService.pilotOperation.GetPilotById(req.TargetID)
	})
	if res != nil {
		return res
	}

	minutes, res := CallDBFuncAndCheckError[int64, ResponsePilotProfile](func() (*int64, error) {
		minutes, err := pilotService.pilotOperation.GetFlightMinutesSum(req.TargetID)
		return &minutes, err
	})
	if res != nil {
		return res
	}

	return NewApiResponse(&SuccessGetProfile, Unsatisfied, &ResponsePilotProfile{
		Pilot:            pilot,
		AppFlightMinutes: *minutes,
	})
}

var SuccessEditProfile = ApiStatus{StatusName: "EDIT_PROFILE_SUCCESS", Description: "操縦者情報を更新しました。", HttpCode: Ok}

func (pilotService *PilotService) EditPilotProfile(req *RequestPilotEditProfile) *ApiResponse[ResponsePilotEditProfile] {
	if req.Identity == nil || req.TargetID != req.Identity.PilotID {
		return NewApiResponse[ResponsePilotEditProfile](&ErrNoPermission, Unsatisfied, nil)
	}
	if req.Name == "" || req.Email == "" {
		return NewApiResponse[ResponsePilotEditProfile](&ErrIllegalParam, Unsatisfied, nil)
	}
	if res := pilotService.checkPilotFields(req.Name, req.Email, req.Password, false); res != nil {
		return NewApiResponse[ResponsePilotEditProfile](res, Unsatisfied, nil)
	}

	pilot, res := CallDBFuncAndCheckError[operation.Pilot, ResponsePilotEditProfile](func() (*operation.Pilot, error) {
		return pilotService.pilotOperation.GetPilotById(req.TargetID)
	})
	if res != nil {
		return res
	}

	// 更新対象のカラムはここで明示した項目に限定する
	info := map[string]interface{}{
		"name":                   req.Name,
		"name_kana":              req.NameKana,
		"postal_code":            req.PostalCode,
		"prefecture":             req.Prefecture,
		"address1":               req.Address1,
		"address2":               req.Address2,
		"email":                  req.Email,
		"phone":                  req.Phone,
		"has_license":            req.HasLicense,
		"initial_flight_minutes": req.InitialFlightMinutes,
	}

	if req.Password != "" {
		encoded, err := pilotService.pilotOperation.EncodePassword(req.Password)
		if err != nil {
			return NewApiResponse[ResponsePilotEditProfile](&ErrDatabaseFail, Unsatisfied, nil)
		}
		info["password"] = encoded
	}

	if _, res := CallDBFuncAndCheckError[interface{}, ResponsePilotEditProfile](func() (*interface{}, error) {
		return nil, pilotService.pilotOperation.UpdatePilotInfo(pilot, info)
	}); res != nil {
		return res
	}

	return NewApiResponse(&SuccessEditProfile, Unsatisfied, &ResponsePilotEditProfile{Pilot: pilot})
}

var (
	ErrDeleteOtherPilot = ApiStatus{StatusName: "DELETE_OTHER_PILOT", Description: "他人アカウントは削除できません。", HttpCode: PermissionDenied}
	ErrDeleteSelfPilot  = ApiStatus{StatusName: "VALIDATION_ERROR", Description: "ご自身のアカウントはこの操作では削除できません。", HttpCode: BadRequest}
)

// DeletePilot 他人のアカウントは403、自分自身は検証エラーとする。
// 依存レコードが残っている場合は409を返す。
func (pilotService *PilotService) DeletePilot(req *RequestPilotDelete) *ApiResponse[ResponsePilotDelete] {
	if req.Identity == nil || req.TargetID != req.Identity.PilotID {
		return NewApiResponse[ResponsePilotDelete](&ErrDeleteOtherPilot, Unsatisfied, nil)
	}

	if _, res := CallDBFuncAndCheckError[operation.Pilot, ResponsePilotDelete](func() (*operation.Pilot, error) {
		return pilotService.pilotOperation.GetPilotById(req.TargetID)
	}); res != nil {
		return res
	}

	has, res := CallDBFuncAndCheckError[bool, ResponsePilotDelete](func() (*bool, error) {
		has, err := pilotService.pilotOperation.HasDependents(req.TargetID)
		return &has, err
	})
	if res != nil {
		return res
	}
	if *has {
		return NewApiResponse[ResponsePilotDelete](&ErrPilotHasDependents, Unsatisfied, nil)
	}

	// ログイン中の本人アカウントはこの経路では削除させない
	return NewApiResponse[ResponsePilotDelete](&ErrDeleteSelfPilot, Unsatisfied, nil)
}
