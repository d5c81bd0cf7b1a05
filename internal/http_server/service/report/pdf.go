// Package report 飛行記録PDFの描画。
package report

import (
	"fmt"

	c "github.com/hikoki-lab/drone-logbook/internal/interfaces/config"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
	"github.com/signintech/gopdf"
)

const (
	pageMarginX = 40.0
	pageMarginY = 40.0
	lineHeight  = 16.0
	recordGap   = 6.0
	titleSize   = 16
	headerSize  = 10
	bodySize    = 9
)

type Builder struct {
	config *c.ReportConfig
}

func NewBuilder(config *c.ReportConfig) *Builder {
	return &Builder{config: config}
}

// Build 期間内の飛行記録を1件2行で描画したPDFを返す。
// 0件の場合も案内文のみの1ページを生成する。
func (builder *Builder) Build(rows []*operation.FlightLogReportRow, startDate, endDate string) ([]byte, error) {
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})

	if err := pdf.AddTTFFont(builder.config.FontName, builder.config.FontPath); err != nil {
		return nil, err
	}

	pdf.AddPage()

	if err := pdf.SetFont(builder.config.FontName, "", titleSize); err != nil {
		return nil, err
	}
	pdf.SetXY(pageMarginX, pageMarginY)
	if err := pdf.Cell(nil, builder.config.Title); err != nil {
		return nil, err
	}

	if err := pdf.SetFont(builder.config.FontName, "", headerSize); err != nil {
		return nil, err
	}
	pdf.SetXY(pageMarginX, pageMarginY+lineHeight*1.5)
	if err := pdf.Cell(nil, fmt.Sprintf("期間: %s 〜 %s (%d件)", startDate, endDate, len(rows))); err != nil {
		return nil, err
	}

	if err := pdf.SetFont(builder.config.FontName, "", bodySize); err != nil {
		return nil, err
	}
	y := pageMarginY + lineHeight*3.5

	if len(rows) == 0 {
		pdf.SetXY(pageMarginX, y)
		if err := pdf.Cell(nil, "該当する飛行記録はありません"); err != nil {
			return nil, err
		}
		return pdf.GetBytesPdfReturnErr()
	}

	for _, row := range rows {
		if needsPageBreak(y) {
			pdf.AddPage()
			y = pageMarginY
		}

		for _, line := range builder.recordLines(row) {
			pdf.SetXY(pageMarginX, y)
			if err := pdf.Cell(nil, line); err != nil {
				return nil, err
			}
			y += lineHeight
		}
		y += recordGap
	}

	return pdf.GetBytesPdfReturnErr()
}

// needsPageBreak 次の記録(2行)が下余白に食い込むか判定する
func needsPageBreak(y float64) bool {
	return y+lineHeight*2 > gopdf.PageSizeA4.H-pageMarginY
}

// recordLines 1件分の本文2行
func (builder *Builder) recordLines(row *operation.FlightLogReportRow) []string {
	return []string{builder.firstLine(row), builder.secondLine(row)}
}

func (builder *Builder) firstLine(row *operation.FlightLogReportRow) string {
	droneName := row.DroneNickname
	if droneName == "" {
		droneName = row.DroneModel
	}
	return fmt.Sprintf("%s  %s〜%s (%d分)  操縦者: %s  機体: %s",
		row.FlyDate, row.StartTime, row.EndTime, row.ActualTimeMinutes, row.PilotName, droneName)
}

func (builder *Builder) secondLine(row *operation.FlightLogReportRow) string {
	return fmt.Sprintf("目的: %s / 形態: %s / 離陸: %s / 着陸: %s",
		row.Purpose, row.FlightForm, row.StartLocation, row.EndLocation)
}
