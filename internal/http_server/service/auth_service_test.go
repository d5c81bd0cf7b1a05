// Package service
package service

import (
	"strings"
	"testing"
	"time"

	c "github.com/hikoki-lab/drone-logbook/internal/interfaces/config"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
	"gorm.io/gorm"
)

// fakeAuthPilotOperation 平文比較でパスワードを照合するログイン検証用の操縦者操作。
type fakeAuthPilotOperation struct {
	fakePilotOperation
	email    string
	password string
	pilot    *operation.Pilot
}

func (f *fakeAuthPilotOperation) GetPilotByEmail(email string) (*operation.Pilot, error) {
	if email != f.email {
		return nil, operation.ErrPilotNotFound
	}
	return f.pilot, nil
}

func (f *fakeAuthPilotOperation) VerifyPilotPassword(pilot *operation.Pilot, password string) bool {
	return password == f.password
}

// fakeSessionOperation セッションの発行と永続化を記録する。
type fakeSessionOperation struct {
	added    []*operation.Session
	deleted  []string
	addError error
}

func (f *fakeSessionOperation) NewSession(pilot *operation.Pilot, lifetime time.Duration) *operation.Session {
	return &operation.Session{
		Token:       "0123456789abcdef0123456789abcdef",
		PilotID:     pilot.ID,
		DisplayName: pilot.Name,
		ExpiresAt:   time.Now().Add(lifetime),
	}
}

func (f *fakeSessionOperation) AddSession(session *operation.Session) error {
	if f.addError != nil {
		return f.addError
	}
	f.added = append(f.added, session)
	return nil
}

func (f *fakeSessionOperation) GetSessionByToken(token string) (*operation.Session, error) {
	return nil, operation.ErrSessionNotFound
}

func (f *fakeSessionOperation) DeleteSession(token string) error {
	f.deleted = append(f.deleted, token)
	return nil
}

func (f *fakeSessionOperation) DeleteSessionsByPilot(pilotId uint) error { return nil }

func (f *fakeSessionOperation) SweepExpired() (int64, error) { return 0, nil }

func newAuthTestService(sessionOperation *fakeSessionOperation) *AuthService {
	pilotOperation := &fakeAuthPilotOperation{
		email:    "taro@example.com",
		password: "password123",
		pilot:    &operation.Pilot{ID: 1, Name: "山田太郎"},
	}
	config := &c.HttpServerConfig{
		Session: &c.SessionConfig{
			Secret:          "test-secret",
			ExpiresDuration: time.Hour,
		},
	}
	return NewAuthService(config, pilotOperation, sessionOperation)
}

func TestPilotLogin(t *testing.T) {
	tests := []struct {
		name         string
		email        string
		password     string
		expectedCode string
		expectCookie bool
	}{
		{"valid credentials", "taro@example.com", "password123", SuccessLogin.StatusName, true},
		{"unknown email", "jiro@example.com", "password123", service.ErrLoginFailed.StatusName, false},
		{"wrong password", "taro@example.com", "wrong-password", service.ErrLoginFailed.StatusName, false},
		{"empty email", "", "password123", service.ErrIllegalParam.StatusName, false},
		{"empty password", "taro@example.com", "", service.ErrIllegalParam.StatusName, false},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		sessionOperation := &fakeSessionOperation{}
		authService := newAuthTestService(sessionOperation)

		res, cookieValue := authService.PilotLogin(&service.RequestPilotLogin{
			Email:    test.email,
			Password: test.password,
		})
		if res.Code != test.expectedCode || (cookieValue != "") != test.expectCookie {
			fail++
			t.Errorf("PilotLogin(%s) = (%q, cookie=%v); expected (%q, cookie=%v)", test.name, res.Code, cookieValue != "", test.expectedCode, test.expectCookie)
			continue
		}
		if test.expectCookie {
			if len(sessionOperation.added) != 1 {
				fail++
				t.Errorf("PilotLogin(%s) must persist the session before responding", test.name)
				continue
			}
			token, ok := service.VerifySessionCookie("test-secret", cookieValue)
			if !ok || token != sessionOperation.added[0].Token {
				fail++
				t.Errorf("PilotLogin(%s) cookie signature does not verify against the stored token", test.name)
				continue
			}
		} else if len(sessionOperation.added) != 0 {
			fail++
			t.Errorf("PilotLogin(%s) must not persist a session", test.name)
			continue
		}
		pass++
	}
	t.Logf("TestPilotLogin: %d pass, %d fail", pass, fail)
}

func TestPilotLoginSessionWriteFailure(t *testing.T) {
	sessionOperation := &fakeSessionOperation{addError: gorm.ErrInvalidDB}
	authService := newAuthTestService(sessionOperation)

	res, cookieValue := authService.PilotLogin(&service.RequestPilotLogin{
		Email:    "taro@example.com",
		Password: "password123",
	})
	if res.Code != service.ErrDatabaseFail.StatusName || cookieValue != "" {
		t.Errorf("PilotLogin with failing session store = (%q, %q); expected (%q, no cookie)", res.Code, cookieValue, service.ErrDatabaseFail.StatusName)
	}
}

func TestPilotLogout(t *testing.T) {
	tests := []struct {
		name           string
		token          string
		expectedDelete int
	}{
		{"with session", "0123456789abcdef", 1},
		{"without session", "", 0},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		sessionOperation := &fakeSessionOperation{}
		authService := newAuthTestService(sessionOperation)

		res := authService.PilotLogout(&service.RequestPilotLogout{Token: test.token})
		if res.Code != SuccessLogout.StatusName || len(sessionOperation.deleted) != test.expectedDelete {
			fail++
			t.Errorf("PilotLogout(%s) = (%q, %d deletions); expected (%q, %d deletions)", test.name, res.Code, len(sessionOperation.deleted), SuccessLogout.StatusName, test.expectedDelete)
			continue
		}
		if test.expectedDelete > 0 && !strings.Contains(strings.Join(sessionOperation.deleted, ","), test.token) {
			fail++
			t.Errorf("PilotLogout(%s) deleted the wrong token", test.name)
			continue
		}
		pass++
	}
	t.Logf("TestPilotLogout: %d pass, %d fail", pass, fail)
}
