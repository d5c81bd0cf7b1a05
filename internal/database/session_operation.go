package database

import (
	"context"
	"errors"
	"time"

	"github.com/hikoki-lab/drone-logbook/internal/interfaces/global"
	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
	"github.com/thanhpk/randstr"
	"gorm.io/gorm"
)

type SessionOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewSessionOperation(db *gorm.DB, queryTimeout time.Duration) *SessionOperation {
	return &SessionOperation{db: db, queryTimeout: queryTimeout}
}

func (sessionOperation *SessionOperation) NewSession(pilot *Pilot, lifetime time.Duration) *Session {
	return &Session{
		Token:       randstr.Hex(global.SessionTokenLength),
		PilotID:     pilot.ID,
		DisplayName: pilot.Name,
		ExpiresAt:   time.Now().Add(lifetime),
	}
}

func (sessionOperation *SessionOperation) AddSession(session *Session) error {
	ctx, cancel := context.WithTimeout(context.Background(), sessionOperation.queryTimeout)
	defer cancel()
	return sessionOperation.db.WithContext(ctx).Create(session).Error
}

func (sessionOperation *SessionOperation) GetSessionByToken(token string) (session *Session, err error) {
	session = &Session{}
	ctx, cancel := context.WithTimeout(context.Background(), sessionOperation.queryTimeout)
	defer cancel()
	err = sessionOperation.db.WithContext(ctx).
		Where("token = ? AND expires_at > ?", token, time.Now()).
		First(session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrSessionNotFound
	}
	return
}

func (sessionOperation *SessionOperation) DeleteSession(token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), sessionOperation.queryTimeout)
	defer cancel()
	return sessionOperation.db.WithContext(ctx).Where("token = ?", token).Delete(&Session{}).Error
}

func (sessionOperation *SessionOperation) DeleteSessionsByPilot(pilotId uint) error {
	ctx, cancel := context.WithTimeout(context.Background(), sessionOperation.queryTimeout)
	defer cancel()
	return sessionOperation.db.WithContext(ctx).Where("pilot_id = ?", pilotId).Delete(&Session{}).Error
}

func (sessionOperation *SessionOperation) SweepExpired() (removed int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), sessionOperation.queryTimeout)
	defer cancel()
	result := sessionOperation.db.WithContext(ctx).Where("expires_at <= ?", time.Now()).Delete(&Session{})
	return result.RowsAffected, result.Error
}
