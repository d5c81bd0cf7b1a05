// Package config
package config

import (
	"errors"
	"time"

	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
)

type HttpServerLimit struct {
	RateLimit         int           `json:"rate_limit"`
	RateLimitWindow   string        `json:"rate_limit_window"`
	RateLimitDuration time.Duration `json:"-"`
	NameLengthMin     int           `json:"name_length_min"`
	NameLengthMax     int           `json:"name_length_max"`
	EmailLengthMin    int           `json:"email_length_min"`
	EmailLengthMax    int           `json:"email_length_max"`
	PasswordLengthMin int           `json:"password_length_min"`
	PasswordLengthMax int           `json:"password_length_max"`
}

func defaultHttpServerLimit() *HttpServerLimit {
	return &HttpServerLimit{
		RateLimit:         30,
		RateLimitWindow:   "1m",
		NameLengthMin:     1,
		NameLengthMax:     100,
		EmailLengthMin:    4,
		EmailLengthMax:    100,
		PasswordLengthMin: 8,
		PasswordLengthMax: 72,
	}
}

func (config *HttpServerLimit) checkValid(_ log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.RateLimitWindow); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.limits.rate_limit_window"), err)
	} else {
		config.RateLimitDuration = duration
	}
	return ValidPass()
}
