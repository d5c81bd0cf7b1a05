package database

import (
	"context"
	"errors"
	"time"

	c "github.com/hikoki-lab/drone-logbook/internal/interfaces/config"
	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PilotOperation struct {
	config       *c.GeneralConfig
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewPilotOperation(db *gorm.DB, queryTimeout time.Duration, config *c.GeneralConfig) *PilotOperation {
	return &PilotOperation{config: config, db: db, queryTimeout: queryTimeout}
}

func (pilotOperation *PilotOperation) GetPilotById(id uint) (pilot *Pilot, err error) {
	pilot = &Pilot{}
	ctx, cancel := context.WithTimeout(context.Background(), pilotOperation.queryTimeout)
	defer cancel()
	err = pilotOperation.db.WithContext(ctx).
		Where("id = ?", id).
		First(pilot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrPilotNotFound
	}
	return
}

func (pilotOperation *PilotOperation) GetPilotByEmail(email string) (pilot *Pilot, err error) {
	pilot = &Pilot{}
	ctx, cancel := context.WithTimeout(context.Background(), pilotOperation.queryTimeout)
	defer cancel()
	err = pilotOperation.db.WithContext(ctx).
		Where("email = ?", email).
		First(pilot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrPilotNotFound
	}
	return
}

func (pilotOperation *PilotOperation) NewPilot(name, email, password string) (pilot *Pilot, err error) {
	encodePassword, err := pilotOperation.EncodePassword(password)
	if err != nil {
		return nil, err
	}
	pilot = &Pilot{
		Name:     name,
		Email:    email,
		Password: encodePassword,
	}
	return pilot, nil
}

func (pilotOperation *PilotOperation) AddPilot(pilot *Pilot) error {
	return pilotOperation.db.Clauses(clause.Locking{Strength: "UPDATE"}).Transaction(func(tx *gorm.DB) error {
		taken, err := pilotOperation.IsEmailTaken(tx, pilot.Email, 0)
		if err != nil {
			return ErrEmailCheck
		}

		if taken {
			return ErrEmailTaken
		}

		ctx, cancel := context.WithTimeout(context.Background(), pilotOperation.queryTimeout)
		defer cancel()
		return tx.WithContext(ctx).Create(pilot).Error
	})
}

func (pilotOperation *PilotOperation) UpdatePilotInfo(pilot *Pilot, info map[string]interface{}) error {
	return pilotOperation.db.Clauses(clause.Locking{Strength: "UPDATE"}).Transaction(func(tx *gorm.DB) error {
		if email, ok := info["email"]; ok {
			taken, err := pilotOperation.IsEmailTaken(tx, email.(string), pilot.ID)
			if err != nil {
				return ErrEmailCheck
			}
			if taken {
				return ErrEmailTaken
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), pilotOperation.queryTimeout)
		defer cancel()
		return tx.WithContext(ctx).Model(pilot).Updates(info).Error
	})
}

func (pilotOperation *PilotOperation) DeletePilot(pilot *Pilot) error {
	return pilotOperation.db.Clauses(clause.Locking{Strength: "UPDATE"}).Transaction(func(tx *gorm.DB) error {
		ctx, cancel := context.WithTimeout(context.Background(), pilotOperation.queryTimeout)
		defer cancel()

		var droneCount int64
		if err := tx.WithContext(ctx).Model(&Drone{}).Where("pilot_id = ?", pilot.ID).Count(&droneCount).Error; err != nil {
			return err
		}

		var logCount int64
		if err := tx.WithContext(ctx).Model(&FlightLog{}).Where("pilot_id = ?", pilot.ID).Count(&logCount).Error; err != nil {
			return err
		}

		if droneCount > 0 || logCount > 0 {
			return ErrPilotHasDependents
		}

		if err := tx.WithContext(ctx).Where("pilot_id = ?", pilot.ID).Delete(&Session{}).Error; err != nil {
			return err
		}

		return tx.WithContext(ctx).Delete(pilot).Error
	})
}

func (pilotOperation *PilotOperation) HasDependents(pilotId uint) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), pilotOperation.queryTimeout)
	defer cancel()

	var droneCount int64
	if err := pilotOperation.db.WithContext(ctx).Model(&Drone{}).Where("pilot_id = ?", pilotId).Count(&droneCount).Error; err != nil {
		return false, err
	}
	if droneCount > 0 {
		return true, nil
	}

	var logCount int64
	if err := pilotOperation.db.WithContext(ctx).Model(&FlightLog{}).Where("pilot_id = ?", pilotId).Count(&logCount).Error; err != nil {
		return false, err
	}
	return logCount > 0, nil
}

func (pilotOperation *PilotOperation) VerifyPilotPassword(pilot *Pilot, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(pilot.Password), []byte(password))
	return err == nil
}

func (pilotOperation *PilotOperation) EncodePassword(password string) (string, error) {
	encodePassword, err := bcrypt.GenerateFromPassword([]byte(password), pilotOperation.config.BcryptCost)
	if err != nil {
		return "", ErrPasswordEncode
	}
	return string(encodePassword), nil
}

func (pilotOperation *PilotOperation) GetFlightMinutesSum(pilotId uint) (minutes int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), pilotOperation.queryTimeout)
	defer cancel()
	err = pilotOperation.db.WithContext(ctx).
		Model(&FlightLog{}).
		Where("pilot_id = ?", pilotId).
		Select("COALESCE(SUM(actual_time_minutes), 0)").
		Scan(&minutes).Error
	return
}

func (pilotOperation *PilotOperation) IsEmailTaken(tx *gorm.DB, email string, excludeId uint) (bool, error) {
	if tx == nil {
		tx = pilotOperation.db
	}
	ctx, cancel := context.WithTimeout(context.Background(), pilotOperation.queryTimeout)
	defer cancel()

	var count int64
	query := tx.WithContext(ctx).
		Model(&Pilot{}).
		Where("email = ?", email)
	if excludeId > 0 {
		query = query.Where("id <> ?", excludeId)
	}
	err := query.Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}
