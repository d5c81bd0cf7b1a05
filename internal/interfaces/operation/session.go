// Package operation
package operation

import (
	"errors"
	"time"
)

var (
	// ErrSessionNotFound セッションが存在しないか期限切れ
	ErrSessionNotFound = errors.New("session does not exist or has expired")
)

// SessionOperationInterface サーバ側セッションストアの定義
type SessionOperationInterface interface {
	// NewSession 不透明トークンを発行してセッションエンティティを組み立てる(DBには書き込まない)
	NewSession(pilot *Pilot, lifetime time.Duration) (session *Session)
	// AddSession セッションを永続化する。成功応答を返す前に必ず完了させること
	AddSession(session *Session) (err error)
	// GetSessionByToken トークンでセッションを取得する。期限切れはErrSessionNotFound
	GetSessionByToken(token string) (session *Session, err error)
	// DeleteSession セッションを破棄する。存在しなくてもエラーにしない
	DeleteSession(token string) (err error)
	// DeleteSessionsByPilot 操縦者の全セッションを破棄する
	DeleteSessionsByPilot(pilotId uint) (err error)
	// SweepExpired 期限切れセッションを削除し、削除件数を返す
	SweepExpired() (removed int64, err error)
}
