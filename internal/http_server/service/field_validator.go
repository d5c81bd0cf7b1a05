// Package service
package service

import (
	c "github.com/hikoki-lab/drone-logbook/internal/interfaces/config"
	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
)

type FieldValidator struct {
	Min, Max          int
	ErrShort, ErrLong *ApiStatus
}

func (v *FieldValidator) CheckString(value string) *ApiStatus {
	length := len(value)
	if length > v.Max {
		return v.ErrLong
	}
	if length < v.Min {
		return v.ErrShort
	}
	return nil
}

func (v *FieldValidator) CheckInt(value int) *ApiStatus {
	if value > v.Max {
		return v.ErrLong
	}
	if value < v.Min {
		return v.ErrShort
	}
	return nil
}

var (
	nameValidator     *FieldValidator
	emailValidator    *FieldValidator
	passwordValidator *FieldValidator
)

func InitValidator(config *c.HttpServerLimit) {
	nameValidator = &FieldValidator{
		Min:      config.NameLengthMin,
		Max:      config.NameLengthMax,
		ErrShort: &ApiStatus{StatusName: "NAME_TOO_SHORT", Description: "氏名を入力してください。", HttpCode: BadRequest},
		ErrLong:  &ApiStatus{StatusName: "NAME_TOO_LONG", Description: "氏名が長すぎます。", HttpCode: BadRequest},
	}
	emailValidator = &FieldValidator{
		Min:      config.EmailLengthMin,
		Max:      config.EmailLengthMax,
		ErrShort: &ApiStatus{StatusName: "EMAIL_TOO_SHORT", Description: "メールアドレスが短すぎます。", HttpCode: BadRequest},
		ErrLong:  &ApiStatus{StatusName: "EMAIL_TOO_LONG", Description: "メールアドレスが長すぎます。", HttpCode: BadRequest},
	}
	passwordValidator = &FieldValidator{
		Min:      config.PasswordLengthMin,
		Max:      config.PasswordLengthMax,
		ErrShort: &ApiStatus{StatusName: "PASSWORD_TOO_SHORT", Description: "パスワードが短すぎます。", HttpCode: BadRequest},
		ErrLong:  &ApiStatus{StatusName: "PASSWORD_TOO_LONG", Description: "パスワードが長すぎます。", HttpCode: BadRequest},
	}
}
