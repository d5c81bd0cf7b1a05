package operation

import (
	"time"
)

// Pilot 操縦者アカウント。全ての所有権チェックの境界となる。
type Pilot struct {
	ID                   uint         `gorm:"primarykey" json:"id"`
	Name                 string       `gorm:"size:100;not null" json:"name"`
	NameKana             string       `gorm:"size:100" json:"name_kana"`
	PostalCode           string       `gorm:"size:20" json:"postal_code"`
	Prefecture           string       `gorm:"size:50" json:"prefecture"`
	Address1             string       `gorm:"size:255" json:"address1"`
	Address2             string       `gorm:"size:255" json:"address2"`
	Email                string       `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone                string       `gorm:"size:30" json:"phone"`
	HasLicense           bool         `gorm:"default:false" json:"has_license"`
	InitialFlightMinutes int          `gorm:"default:0" json:"initial_flight_minutes"`
	Password             string       `gorm:"size:128;not null" json:"-"`
	Drones               []*Drone     `gorm:"foreignKey:PilotID;constraint:OnDelete:CASCADE" json:"-"`
	FlightLogs           []*FlightLog `gorm:"foreignKey:PilotID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt            time.Time    `json:"-"`
	UpdatedAt            time.Time    `json:"-"`
}

// Drone 登録機体。常にちょうど1人の操縦者に属する。
type Drone struct {
	ID                 uint                 `gorm:"primarykey" json:"id"`
	Manufacturer       string               `gorm:"size:100" json:"manufacturer"`
	Model              string               `gorm:"size:100;not null" json:"model"`
	Type               string               `gorm:"size:100" json:"type"`
	SerialNumber       string               `gorm:"size:100" json:"serial_number"`
	RegistrationSymbol string               `gorm:"size:100" json:"registration_symbol"`
	ValidPeriodStart   string               `gorm:"size:10" json:"valid_period_start"`
	ValidPeriodEnd     string               `gorm:"size:10" json:"valid_period_end"`
	Nickname           string               `gorm:"size:100" json:"nickname"`
	PilotID            uint                 `gorm:"index;not null" json:"pilot_id"`
	FlightLogs         []*FlightLog         `gorm:"foreignKey:DroneID;constraint:OnDelete:RESTRICT" json:"-"`
	Maintenances       []*MaintenanceRecord `gorm:"foreignKey:DroneID;constraint:OnDelete:RESTRICT" json:"-"`
	CreatedAt          time.Time            `json:"-"`
	UpdatedAt          time.Time            `json:"-"`
}

// FlightLog 1回の飛行の記録。日付は"YYYY-MM-DD"、時刻は"HH:MM"の文字列で保持する。
type FlightLog struct {
	ID                uint      `gorm:"primarykey" json:"id"`
	PrecheckDate      string    `gorm:"size:10" json:"precheck_date"`
	Inspector         string    `gorm:"size:100" json:"inspector"`
	Place             string    `gorm:"size:255" json:"place"`
	Body              string    `gorm:"size:255" json:"body"`
	Propeller         string    `gorm:"size:255" json:"propeller"`
	Frame             string    `gorm:"size:255" json:"frame"`
	Comm              string    `gorm:"size:255" json:"comm"`
	Engine            string    `gorm:"size:255" json:"engine"`
	Power             string    `gorm:"size:255" json:"power"`
	Autocontrol       string    `gorm:"size:255" json:"autocontrol"`
	Controller        string    `gorm:"size:255" json:"controller"`
	Battery           string    `gorm:"size:255" json:"battery"`
	FlyDate           string    `gorm:"size:10;index:idx_flight_logs_pilot_date,priority:2,sort:desc;index:idx_flight_logs_drone_date,priority:2,sort:desc" json:"fly_date"`
	StartLocation     string    `gorm:"size:255" json:"start_location"`
	EndLocation       string    `gorm:"size:255" json:"end_location"`
	StartTime         string    `gorm:"size:8" json:"start_time"`
	EndTime           string    `gorm:"size:8" json:"end_time"`
	ActualTimeMinutes int       `gorm:"default:0" json:"actual_time_minutes"`
	FlightAbnormal    string    `gorm:"type:text" json:"flight_abnormal"`
	Aftercheck        string    `gorm:"type:text" json:"aftercheck"`
	CopilotName       string    `gorm:"size:100" json:"copilot_name"`
	Purpose           string    `gorm:"size:50" json:"purpose"`
	FlightForm        string    `gorm:"size:50" json:"flight_form"`
	DroneID           uint      `gorm:"not null;index:idx_flight_logs_drone_date,priority:1" json:"drone_id"`
	PilotID           uint      `gorm:"not null;index:idx_flight_logs_pilot_date,priority:1" json:"pilot_id"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"-"`
}

// MaintenanceRecord 機体の点検整備の記録。機体経由で操縦者に帰属する。
type MaintenanceRecord struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	DroneID            uint      `gorm:"index;not null" json:"drone_id"`
	MaintenanceDate    string    `gorm:"size:10" json:"maintenance_date"`
	Description        string    `gorm:"type:text" json:"description"`
	Provider           string    `gorm:"size:100" json:"provider"`
	IsMakerMaintenance bool      `gorm:"default:false" json:"is_maker_maintenance"`
	AttachmentPath     string    `gorm:"size:255" json:"attachment_path"`
	CreatedAt          time.Time `json:"-"`
	UpdatedAt          time.Time `json:"-"`
}

// Session サーバ側セッション。Cookieには不透明トークンのみを載せる。
type Session struct {
	ID          uint      `gorm:"primarykey" json:"-"`
	Token       string    `gorm:"size:128;uniqueIndex;not null" json:"-"`
	PilotID     uint      `gorm:"index;not null" json:"pilot_id"`
	DisplayName string    `gorm:"size:100;not null" json:"display_name"`
	ExpiresAt   time.Time `gorm:"index;not null" json:"-"`
	CreatedAt   time.Time `json:"-"`
}

// FlightLogReportRow PDF出力用に機体名・操縦者名を結合した行。
type FlightLogReportRow struct {
	FlightLog
	DroneNickname string `json:"drone_nickname"`
	DroneModel    string `json:"drone_model"`
	PilotName     string `json:"pilot_name"`
}

// DashboardStats ダッシュボードの集計値。
type DashboardStats struct {
	MonthlyLogs  int64 `json:"monthly_logs"`
	TotalLogs    int64 `json:"total_logs"`
	TotalMinutes int64 `json:"total_minutes"`
	FlightAreas  int64 `json:"flight_areas"`
}
