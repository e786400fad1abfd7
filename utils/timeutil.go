package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout định dạng ngày dùng chung toàn hệ thống
const DateLayout = "02/01/2006"

// ParseClock chuyển chuỗi "HH:MM" thành số phút trong ngày
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid time format: %q, expected HH:MM", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}

	return hour*60 + minute, nil
}

// Overlaps kiểm tra hai khoảng [aStart, aEnd) và [bStart, bEnd) có giao nhau không.
// Hai khoảng chạm đầu mút không tính là giao nhau.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return !(aEnd <= bStart || aStart >= bEnd)
}

// OverlapsInclusive kiểm tra giao nhau với biên đóng [aStart, aEnd],
// dùng cho kiểm tra trùng lịch bệnh nhân và điều dưỡng
func OverlapsInclusive(aStart, aEnd, bStart, bEnd int) bool {
	return aStart <= bEnd && aEnd >= bStart
}

// ParseDate chuyển chuỗi ngày dd/mm/yyyy thành timestamp chuẩn hóa về 00:00 UTC
func ParseDate(dateStr string) (time.Time, error) {
	parsedDate, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return parsedDate, nil
}

// MinutesOfDay trả về số phút đã trôi qua trong ngày của t
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// SameDay kiểm tra hai timestamp có cùng ngày dương lịch không
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
