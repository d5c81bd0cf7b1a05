// Package utils
package utils

import (
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// FlightMinutes 離陸時刻と着陸時刻("HH:MM")から飛行時間(分)を求める。
// 日付をまたぐ場合は翌日着陸として+24時間で補正する。
// どちらかが空文字の場合は0を返す。
func FlightMinutes(start, end string) int {
	startMinutes, ok := parseClock(start)
	if !ok {
		return 0
	}
	endMinutes, ok := parseClock(end)
	if !ok {
		return 0
	}
	diff := endMinutes - startMinutes
	if diff < 0 {
		diff += minutesPerDay
	}
	return diff
}

// parseClock "HH:MM"を0時からの経過分に変換する。
// TIME型カラムの往復で付く":SS"は無視する。
func parseClock(value string) (int, bool) {
	if value == "" {
		return 0, false
	}
	if parts := strings.Split(value, ":"); len(parts) > 2 {
		value = parts[0] + ":" + parts[1]
	}
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, false
	}
	return parsed.Hour()*60 + parsed.Minute(), true
}

// ValidClock 時刻文字列が"HH:MM"形式として妥当か検証する。空文字は妥当とする。
func ValidClock(value string) bool {
	if value == "" {
		return true
	}
	_, ok := parseClock(value)
	return ok
}
