// Package config
package config

import (
	"errors"
	"html/template"
	"os"

	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
)

const defaultRegisterTemplate = `<html><body>
<p>{{.Name}} 様</p>
<p>飛行記録システムへのアカウント登録が完了しました。</p>
<p>登録メールアドレス: {{.Email}}</p>
<p>このメールに心当たりがない場合は、管理者までご連絡ください。</p>
</body></html>`

type EmailTemplateConfig struct {
	RegisterTemplateFile string             `json:"register_template_file"`
	RegisterTemplate     *template.Template `json:"-"`
	EnableRegisterEmail  bool               `json:"enable_register_email"`
}

func defaultEmailTemplateConfig() *EmailTemplateConfig {
	return &EmailTemplateConfig{
		RegisterTemplateFile: "template/register.template",
		EnableRegisterEmail:  true,
	}
}

func (config *EmailTemplateConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	if !config.EnableRegisterEmail {
		return ValidPass()
	}
	bytes, err := os.ReadFile(config.RegisterTemplateFile)
	if os.IsNotExist(err) {
		// テンプレートが無ければ既定の内容で作成する
		if err := createFileWithContent(config.RegisterTemplateFile, []byte(defaultRegisterTemplate)); err != nil {
			return ValidFailWith(errors.New("fail to create register_template_file"), err)
		}
		bytes = []byte(defaultRegisterTemplate)
	} else if err != nil {
		return ValidFailWith(errors.New("fail to load register_template_file"), err)
	}
	if parse, err := template.New("register").Parse(string(bytes)); err != nil {
		return ValidFailWith(errors.New("fail to parse register_template"), err)
	} else {
		config.RegisterTemplate = parse
	}
	return ValidPass()
}
