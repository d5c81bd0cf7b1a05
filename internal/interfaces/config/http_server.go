// Package config
package config

import (
	"fmt"
	"os"

	"github.com/hikoki-lab/drone-logbook/internal/interfaces/global"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
	"github.com/hikoki-lab/drone-logbook/internal/utils"
)

type HttpServerConfig struct {
	Host      string           `json:"host"`
	Port      uint             `json:"port"`
	Address   string           `json:"-"`
	ProxyType int              `json:"proxy_type"`
	BodyLimit string           `json:"body_limit"`
	Session   *SessionConfig   `json:"session"`
	Limits    *HttpServerLimit `json:"limits"`
	Store     *HttpServerStore `json:"store"`
	Report    *ReportConfig    `json:"report"`
	Email     *EmailConfig     `json:"email"`
	SSL       *SSLConfig       `json:"ssl"`
}

func defaultHttpServerConfig() *HttpServerConfig {
	return &HttpServerConfig{
		Host:      "0.0.0.0",
		Port:      8080,
		ProxyType: 0,
		BodyLimit: "10MB",
		Session:   defaultSessionConfig(),
		Limits:    defaultHttpServerLimit(),
		Store:     defaultHttpServerStore(),
		Report:    defaultReportConfig(),
		Email:     defaultEmailConfig(),
		SSL:       defaultSSLConfig(),
	}
}

func (config *HttpServerConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if port := os.Getenv(global.EnvHttpPort); port != "" {
		config.Port = uint(utils.StrToInt(port, int(config.Port)))
	}

	if result := checkPort(config.Port); result.IsFail() {
		return result
	}

	config.Address = fmt.Sprintf("%s:%d", config.Host, config.Port)

	if config.BodyLimit == "" {
		logger.WarnF("body_limit is empty, where the length of the request body is not restricted. This is a very dangerous behavior")
	}

	if result := config.Session.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.Limits.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.Store.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.Report.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.Email.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.SSL.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
