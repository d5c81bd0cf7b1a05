// Package interfaces
package interfaces

import (
	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/config"
)

type ConfigManagerInterface interface {
	Config() *Config
	SaveConfig() error
}
