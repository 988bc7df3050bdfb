package util

import (
	"fmt"
	"time"
)

// FormatDuration 将分钟数格式化为 "45m"、"2h"、"2h 30m" 形式
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	remaining := minutes % 60
	if remaining == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, remaining)
}

// FormatDate 格式化为 "Jun 15, 2023"
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DisplayDateFormat)
}

// TruncateText 超过 maxLength 个字符时截断并追加 "..."
func TruncateText(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	if maxLength < 0 {
		maxLength = 0
	}
	return string(runes[:maxLength]) + "..."
}
