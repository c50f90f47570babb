package util

import (
	"strings"
	"time"
)

// PairKey 生成与顺序无关的图片对标识，(A,B) 与 (B,A) 归一到同一个 key
func PairKey(imageA, imageB string) string {
	if strings.Compare(imageA, imageB) > 0 {
		imageA, imageB = imageB, imageA
	}
	return imageA + ":" + imageB
}

// DateKey 格式化为 YYYY-MM-DD
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// SameDay 是否为同一个自然日
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// StartOfDay 当天零点
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek 本周周一零点
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return day.AddDate(0, 0, -(weekday - 1))
}

// StartOfMonth 本月一号零点
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// StartOfYear 本年一月一号零点
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
}

// PeriodDateKey 各时间粒度对应的汇总行日期键
func PeriodDateKey(period string, t time.Time) string {
	switch period {
	case "day":
		return DateKey(t)
	case "week":
		return DateKey(StartOfWeek(t))
	case "month":
		return t.Format("2006-01")
	case "year":
		return t.Format("2006")
	default:
		return "all"
	}
}
