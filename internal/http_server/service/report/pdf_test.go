// Package report
package report

import (
	"fmt"
	"strings"
	"testing"

	c "github.com/hikoki-lab/drone-logbook/internal/interfaces/config"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
)

func TestFirstLineFallsBackToModel(t *testing.T) {
	builder := NewBuilder(&c.ReportConfig{})
	tests := []struct {
		nickname string
		model    string
		expected string
	}{
		{"ほしまる", "Mavic 3", "ほしまる"},
		{"", "Mavic 3", "Mavic 3"},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		row := &operation.FlightLogReportRow{
			FlightLog: operation.FlightLog{
				FlyDate:           "2026-08-01",
				StartTime:         "09:00",
				EndTime:           "10:30",
				ActualTimeMinutes: 90,
			},
			DroneNickname: test.nickname,
			DroneModel:    test.model,
			PilotName:     "山田太郎",
		}
		line := builder.firstLine(row)
		if !strings.Contains(line, test.expected) {
			fail++
			t.Errorf("firstLine(nickname=%q, model=%q) = %q; expected to contain %q", test.nickname, test.model, line, test.expected)
			continue
		}
		pass++
	}
	t.Logf("TestFirstLineFallsBackToModel: %d pass, %d fail", pass, fail)
}

// TestRecordLinesKeepDateOrder 与えられた並びのまま日付が本文に現れること。
func TestRecordLinesKeepDateOrder(t *testing.T) {
	builder := NewBuilder(&c.ReportConfig{})
	dates := []string{"2026-08-01", "2026-08-02", "2026-08-15", "2026-09-01"}

	body := make([]string, 0, len(dates)*2)
	for i, date := range dates {
		row := &operation.FlightLogReportRow{
			FlightLog: operation.FlightLog{
				FlyDate:           date,
				StartTime:         "09:00",
				EndTime:           "10:00",
				ActualTimeMinutes: 60,
			},
			DroneNickname: fmt.Sprintf("機体%d", i+1),
			PilotName:     "山田太郎",
		}
		body = append(body, builder.recordLines(row)...)
	}

	if len(body) != len(dates)*2 {
		t.Fatalf("recordLines produced %d lines for %d records; expected %d", len(body), len(dates), len(dates)*2)
	}
	joined := strings.Join(body, "\n")
	previous := -1
	for _, date := range dates {
		position := strings.Index(joined, date)
		if position < 0 {
			t.Errorf("date %s is missing from the rendered body", date)
			continue
		}
		if position <= previous {
			t.Errorf("date %s appears out of order (position %d, previous %d)", date, position, previous)
		}
		previous = position
	}
}

// TestPageBreakGeometry 2行1件が下余白に食い込む直前で改ページされること。
// 1ページ目は見出し分だけ本文開始が下がるため収容件数が2ページ目以降より少ない。
func TestPageBreakGeometry(t *testing.T) {
	pages := func(recordCount int) int {
		count := 1
		y := pageMarginY + lineHeight*3.5
		for i := 0; i < recordCount; i++ {
			if needsPageBreak(y) {
				count++
				y = pageMarginY
			}
			y += lineHeight*2 + recordGap
		}
		return count
	}

	tests := []struct {
		name          string
		recordCount   int
		expectedPages int
	}{
		{"single record", 1, 1},
		{"last record of first page", 18, 1},
		{"first spill to second page", 19, 2},
		{"last record of second page", 38, 2},
		{"first spill to third page", 39, 3},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		if got := pages(test.recordCount); got != test.expectedPages {
			fail++
			t.Errorf("pages(%s: %d records) = %d; expected %d", test.name, test.recordCount, got, test.expectedPages)
			continue
		}
		pass++
	}
	t.Logf("TestPageBreakGeometry: %d pass, %d fail", pass, fail)
}
