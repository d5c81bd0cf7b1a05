// Package service
package service

import (
	"html/template"

	"github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
)

type EmailServiceInterface interface {
	RenderTemplate(template *template.Template, data interface{}) (string, error)
	SendRegisterEmail(pilot *operation.Pilot) error
}
