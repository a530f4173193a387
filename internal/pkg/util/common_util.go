package util

import (
	"Pulseboard/internal/pkg/consts"
	"strconv"
	"strings"
	"time"
)

// Midnight 取 t 所在日期的零点，统一为 UTC 以便各数据库按 DATE 比较
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBefore 返回 day 之前 n 天的零点
func DaysBefore(day time.Time, n int) time.Time {
	return Midnight(day).AddDate(0, 0, -n)
}

// ParseDate 解析 2006-01-02 格式日期，空串返回 false
func ParseDate(s string) (time.Time, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(consts.DateLayout, s)
	if err != nil {
		return time.Time{}, false, err
	}
	return Midnight(t), true, nil
}

// FormatDate 格式化为 2006-01-02
func FormatDate(t time.Time) string {
	return t.Format(consts.DateLayout)
}

// ParseOptionalUint64 解析可选的数字参数，空串返回 nil
func ParseOptionalUint64(s string) (*uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
