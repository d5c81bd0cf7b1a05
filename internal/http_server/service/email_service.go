// Package service
package service

import (
	"errors"
	"html/template"
	"strings"
	"sync"

	"github.com/hikoki-lab/drone-logbook/internal/interfaces/config"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
	"gopkg.in/gomail.v2"
)

var (
	emailService *EmailService
	once         sync.Once
)

type EmailService struct {
	logger log.LoggerInterface
	config *config.EmailConfig
}

type RegisterTemplateData struct {
	Name  string
	Email string
}

func NewEmailService(logger log.LoggerInterface, config *config.EmailConfig) *EmailService {
	once.Do(func() {
		emailService = &EmailService{
			logger: logger,
			config: config,
		}
	})
	return emailService
}

var (
	ErrRenderingTemplate      = errors.New("error rendering template")
	ErrTemplateNotInitialized = errors.New("error template not initialized")
)

func (emailService *EmailService) RenderTemplate(template *template.Template, data interface{}) (string, error) {
	if template == nil {
		return "", ErrTemplateNotInitialized
	}
	var sb strings.Builder
	if err := template.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// SendRegisterEmail 登録完了メールを送る。メール機能が無効のときは何もしない。
func (emailService *EmailService) SendRegisterEmail(pilot *operation.Pilot) error {
	if !emailService.config.Enabled || emailService.config.EmailServer == nil {
		return nil
	}
	if !emailService.config.Template.EnableRegisterEmail {
		return nil
	}

	body, err := emailService.RenderTemplate(emailService.config.Template.RegisterTemplate, &RegisterTemplateData{
		Name:  pilot.Name,
		Email: pilot.Email,
	})
	if err != nil {
		emailService.logger.ErrorF("Fail to render register email template: %v", err)
		return ErrRenderingTemplate
	}

	message := gomail.NewMessage()
	message.SetHeader("From", emailService.config.Username)
	message.SetHeader("To", pilot.Email)
	message.SetHeader("Subject", "アカウント登録のお知らせ")
	message.SetBody("text/html", body)

	return emailService.config.EmailServer.DialAndSend(message)
}
