// Package operation
package operation

import "errors"

var (
	// ErrFlightLogNotFound 飛行記録が存在しない(他人所有の場合も同じ扱いにする)
	ErrFlightLogNotFound = errors.New("flight log does not exist")
)

// FlightLogOperationInterface 飛行記録テーブル操作の定義。
// 読み書きは必ずpilotIdで絞り込む。
type FlightLogOperationInterface interface {
	// GetFlightLogById 操縦者スコープ内で主キー検索する
	GetFlightLogById(pilotId, logId uint) (flightLog *FlightLog, err error)
	// GetFlightLogs 操縦者の飛行記録一覧(飛行日降順、id降順)
	GetFlightLogs(pilotId uint) (flightLogs []*FlightLog, err error)
	// AddFlightLog 飛行記録を作成する
	AddFlightLog(flightLog *FlightLog) (err error)
	// UpdateFlightLogInfo 許可されたカラムのみを更新する
	UpdateFlightLogInfo(flightLog *FlightLog, info map[string]interface{}) (err error)
	// DeleteFlightLog 飛行記録を削除する
	DeleteFlightLog(flightLog *FlightLog) (err error)
	// GetReportRows 期間内の飛行記録を機体名・操縦者名付きで取得する。
	// 並び順は飛行日昇順、開始時刻昇順(空は最後)、id昇順で固定する
	GetReportRows(pilotId uint, startDate, endDate string) (rows []*FlightLogReportRow, err error)
	// CountLogsSince 指定日以降の飛行記録数
	CountLogsSince(pilotId uint, date string) (count int64, err error)
	// CountLogs 飛行記録の総数
	CountLogs(pilotId uint) (count int64, err error)
	// SumMinutes actual_time_minutesの合計(記録なしは0)
	SumMinutes(pilotId uint) (minutes int64, err error)
	// CountDistinctStartLocations 離陸場所(空文字を除く)の異なり数
	CountDistinctStartLocations(pilotId uint) (count int64, err error)
	// CountByDrone 機体を参照する飛行記録数
	CountByDrone(droneId uint) (count int64, err error)
}
