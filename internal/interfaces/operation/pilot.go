// Package operation
package operation

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrPilotNotFound 操縦者が存在しない
	ErrPilotNotFound = errors.New("pilot does not exist")
	// ErrEmailTaken メールアドレスが既に使用されている
	ErrEmailTaken = errors.New("email address has been used")
	// ErrEmailCheck 一意性チェック異常
	ErrEmailCheck = errors.New("email uniqueness check error")
	// ErrPasswordEncode パスワードエンコード失敗
	ErrPasswordEncode = errors.New("password encode error")
	// ErrPilotHasDependents 機体または飛行記録が残っているため削除不可
	ErrPilotHasDependents = errors.New("pilot still owns drones or flight logs")
)

// PilotOperationInterface 操縦者テーブル操作の定義
type PilotOperationInterface interface {
	// GetPilotById 主キーで操縦者を取得する, errがnilのとき返り値pilotは有効
	GetPilotById(id uint) (pilot *Pilot, err error)
	// GetPilotByEmail メールアドレス完全一致で操縦者を取得する
	GetPilotByEmail(email string) (pilot *Pilot, err error)
	// NewPilot パスワードをハッシュ化して操縦者エンティティを組み立てる(DBには書き込まない)
	NewPilot(name, email, password string) (pilot *Pilot, err error)
	// AddPilot メール一意性をトランザクション内で確認してから作成する
	AddPilot(pilot *Pilot) (err error)
	// UpdatePilotInfo 許可されたカラムのみを更新する。メール変更時は一意性を再確認する
	UpdatePilotInfo(pilot *Pilot, info map[string]interface{}) (err error)
	// DeletePilot 依存する機体・飛行記録・整備記録が無いことを確認してから削除する
	DeletePilot(pilot *Pilot) (err error)
	// HasDependents 操縦者に機体または飛行記録が残っているか確認する
	HasDependents(pilotId uint) (has bool, err error)
	// VerifyPilotPassword パスワード照合, passがtrueで一致
	VerifyPilotPassword(pilot *Pilot, password string) (pass bool)
	// EncodePassword bcryptでハッシュ化する
	EncodePassword(password string) (encoded string, err error)
	// GetFlightMinutesSum 操縦者の飛行記録のactual_time_minutes合計(記録なしは0)
	GetFlightMinutesSum(pilotId uint) (minutes int64, err error)
	// IsEmailTaken excludeId以外でメールアドレスが使用済みか確認する
	IsEmailTaken(tx *gorm.DB, email string, excludeId uint) (taken bool, err error)
}
