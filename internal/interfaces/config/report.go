// Package config
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
)

// ReportConfig 飛行記録PDF出力の設定。
// フォントは日本語グリフを含むTrueTypeフォントを指定すること。
type ReportConfig struct {
	Title    string `json:"title"`
	FontPath string `json:"font_path"`
	FontName string `json:"font_name"`
}

func defaultReportConfig() *ReportConfig {
	return &ReportConfig{
		Title:    "無人航空機 飛行記録",
		FontPath: "fonts/ipaexg.ttf",
		FontName: "ipaexg",
	}
}

func (config *ReportConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	if config.Title == "" {
		return ValidFail(errors.New("invalid json field http_server.report.title, cannot be empty"))
	}
	if config.FontName == "" {
		return ValidFail(errors.New("invalid json field http_server.report.font_name, cannot be empty"))
	}
	if config.FontPath == "" {
		return ValidFail(errors.New("invalid json field http_server.report.font_path, cannot be empty"))
	}
	if _, err := os.Stat(config.FontPath); err != nil {
		return ValidFailWith(fmt.Errorf("report font file not found at %s", config.FontPath), err)
	}
	return ValidPass()
}
