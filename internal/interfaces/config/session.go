// Package config
package config

import (
	"errors"
	"os"
	"time"

	"github.com/hikoki-lab/drone-logbook/internal/interfaces/global"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
	"github.com/thanhpk/randstr"
)

type SessionConfig struct {
	Secret          string        `json:"secret"`
	CookieName      string        `json:"cookie_name"`
	ExpiresTime     string        `json:"expires_time"`
	ExpiresDuration time.Duration `json:"-"`
	SweepInterval   string        `json:"sweep_interval"`
	SweepDuration   time.Duration `json:"-"`
}

func defaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		Secret:        randstr.String(64),
		CookieName:    "logbook_session",
		ExpiresTime:   "24h",
		SweepInterval: "1h",
	}
}

func (config *SessionConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if secret := os.Getenv(global.EnvSessionSecret); secret != "" {
		config.Secret = secret
	}

	if config.Secret == "" {
		// 再起動のたびに既存セッションが無効になるため、固定値の設定を推奨する
		config.Secret = randstr.String(64)
		logger.Warn("session secret is empty, generated a random one; existing sessions will not survive a restart")
	}

	if config.CookieName == "" {
		return ValidFail(errors.New("invalid json field http_server.session.cookie_name, cannot be empty"))
	}

	if duration, err := time.ParseDuration(config.ExpiresTime); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.session.expires_time"), err)
	} else {
		config.ExpiresDuration = duration
	}

	if duration, err := time.ParseDuration(config.SweepInterval); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.session.sweep_interval"), err)
	} else {
		config.SweepDuration = duration
	}

	return ValidPass()
}
