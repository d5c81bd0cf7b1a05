// Package config
package config

import (
	"errors"

	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
	"gopkg.in/gomail.v2"
)

type EmailConfig struct {
	Enabled     bool                 `json:"enabled"`
	Host        string               `json:"host"`
	Port        int                  `json:"port"`
	EmailServer *gomail.Dialer       `json:"-"`
	Username    string               `json:"username"`
	Password    string               `json:"password"`
	Template    *EmailTemplateConfig `json:"template"`
}

func defaultEmailConfig() *EmailConfig {
	return &EmailConfig{
		Enabled:  false,
		Host:     "smtp.example.com",
		Port:     465,
		Username: "logbook@example.com",
		Password: "",
		Template: defaultEmailTemplateConfig(),
	}
}

func (config *EmailConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if !config.Enabled {
		return ValidPass()
	}

	if result := config.Template.checkValid(logger); result.IsFail() {
		return result
	}

	config.EmailServer = gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	dial, err := config.EmailServer.Dial()
	if err != nil {
		return ValidFailWith(errors.New("connecting to smtp server fail"), err)
	}
	_ = dial.Close()

	return ValidPass()
}
