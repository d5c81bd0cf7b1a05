// Package interfaces
package interfaces

import (
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/global"
)

type CleanerInterface interface {
	Init()
	Add(callable global.Callable)
	Clean()
}
