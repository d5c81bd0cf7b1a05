// Package service
package service

import (
	"testing"

	c "github.com/hikoki-lab/drone-logbook/internal/interfaces/config"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
	"gorm.io/gorm"
)

// fakePilotOperation 削除経路の検証用。DeletePilotが呼ばれたら記録する。
type fakePilotOperation struct {
	pilots        map[uint]*operation.Pilot
	hasDependents bool
	deleteCalled  bool
	addPilotError error
}

func (f *fakePilotOperation) GetPilotById(id uint) (*operation.Pilot, error) {
	pilot, found := f.pilots[id]
	if !found {
		return nil, operation.ErrPilotNotFound
	}
	return pilot, nil
}

func (f *fakePilotOperation) GetPilotByEmail(email string) (*operation.Pilot, error) {
	return nil, operation.ErrPilotNotFound
}

func (f *fakePilotOperation) NewPilot(name, email, password string) (*operation.Pilot, error) {
	return &operation.Pilot{Name: name, Email: email}, nil
}

func (f *fakePilotOperation) AddPilot(pilot *operation.Pilot) error { return f.addPilotError }

func (f *fakePilotOperation) UpdatePilotInfo(pilot *operation.Pilot, info map[string]interface{}) error {
	return nil
}

func (f *fakePilotOperation) DeletePilot(pilot *operation.Pilot) error {
	f.deleteCalled = true
	return nil
}

func (f *fakePilotOperation) HasDependents(pilotId uint) (bool, error) {
	return f.hasDependents, nil
}

func (f *fakePilotOperation) VerifyPilotPassword(pilot *operation.Pilot, password string) bool {
	return false
}

func (f *fakePilotOperation) EncodePassword(password string) (string, error) { return password, nil }

func (f *fakePilotOperation) GetFlightMinutesSum(pilotId uint) (int64, error) { return 0, nil }

func (f *fakePilotOperation) IsEmailTaken(tx *gorm.DB, email string, excludeId uint) (bool, error) {
	return false, nil
}

func TestDeletePilot(t *testing.T) {
	tests := []struct {
		name           string
		targetId       uint
		hasDependents  bool
		expectedStatus string
	}{
		{"other pilot account", 2, false, ErrDeleteOtherPilot.StatusName},
		{"own account with dependents", 1, true, service.ErrPilotHasDependents.StatusName},
		{"own account without dependents", 1, false, ErrDeleteSelfPilot.StatusName},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		pilotOperation := &fakePilotOperation{
			pilots:        map[uint]*operation.Pilot{1: {Name: "山田太郎"}},
			hasDependents: test.hasDependents,
		}
		pilotService := NewPilotService(nil, nil, nil, pilotOperation)

		res := pilotService.DeletePilot(&service.RequestPilotDelete{
			Identity: &service.Identity{PilotID: 1},
			TargetID: test.targetId,
		})
		if res.Code != test.expectedStatus {
			fail++
			t.Errorf("DeletePilot(%s) code = %q; expected %q", test.name, res.Code, test.expectedStatus)
			continue
		}
		if pilotOperation.deleteCalled {
			fail++
			t.Errorf("DeletePilot(%s) must never reach the destructive path", test.name)
			continue
		}
		pass++
	}
	t.Logf("TestDeletePilot: %d pass, %d fail", pass, fail)
}

func TestPilotRegisterDuplicateEmail(t *testing.T) {
	InitValidator(&c.HttpServerLimit{
		NameLengthMin:     1,
		NameLengthMax:     100,
		EmailLengthMin:    4,
		EmailLengthMax:    100,
		PasswordLengthMin: 8,
		PasswordLengthMax: 72,
	})
	pilotService := NewPilotService(nil, nil, nil, &fakePilotOperation{addPilotError: operation.ErrEmailTaken})

	res := pilotService.PilotRegister(&service.RequestPilotRegister{
		Name:     "山田太郎",
		Email:    "taro@example.com",
		Password: "password123",
	})
	if res.Code != service.ErrEmailTaken.StatusName {
		t.Errorf("PilotRegister code = %q; expected %q", res.Code, service.ErrEmailTaken.StatusName)
	}
	if res.HttpCode != service.Conflict.Code() {
		t.Errorf("PilotRegister http code = %d; expected %d", res.HttpCode, service.Conflict.Code())
	}
}

func TestCheckPilotFields(t *testing.T) {
	InitValidator(&c.HttpServerLimit{
		NameLengthMin:     1,
		NameLengthMax:     100,
		EmailLengthMin:    4,
		EmailLengthMax:    100,
		PasswordLengthMin: 8,
		PasswordLengthMax: 72,
	})
	pilotService := NewPilotService(nil, nil, nil, &fakePilotOperation{})

	tests := []struct {
		name             string
		pilotName        string
		email            string
		password         string
		passwordRequired bool
		expectedStatus   string
	}{
		{"valid", "山田太郎", "taro@example.com", "password123", true, ""},
		{"empty name", "", "taro@example.com", "password123", true, "NAME_TOO_SHORT"},
		{"email without at sign", "山田太郎", "taro.example.com", "password123", true, ErrEmailFormat.StatusName},
		{"short password", "山田太郎", "taro@example.com", "short", true, "PASSWORD_TOO_SHORT"},
		{"password optional and empty", "山田太郎", "taro@example.com", "", false, ""},
		{"password optional but short", "山田太郎", "taro@example.com", "short", false, "PASSWORD_TOO_SHORT"},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		res := pilotService.checkPilotFields(test.pilotName, test.email, test.password, test.passwordRequired)
		status := ""
		if res != nil {
			status = res.StatusName
		}
		if status != test.expectedStatus {
			fail++
			t.Errorf("checkPilotFields(%s) = %q; expected %q", test.name, status, test.expectedStatus)
			continue
		}
		pass++
	}
	t.Logf("TestCheckPilotFields: %d pass, %d fail", pass, fail)
}
