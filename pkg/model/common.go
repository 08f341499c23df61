// Package model 定义实验室检测排期引擎的核心数据模型
package model

import (
	"time"
)

// DateLayout 日期格式 YYYY-MM-DD
const DateLayout = "2006-01-02"

// Season 季节标签
type Season string

const (
	SeasonWinter Season = "winter" // 冬季 (12月/1月/2月)
	SeasonSpring Season = "spring" // 春季 (3月/4月/5月)
	SeasonSummer Season = "summer" // 夏季 (6月/7月/8月)
	SeasonAutumn Season = "autumn" // 秋季 (9月/10月/11月)

	// SeasonAll 表示实验室全年可接收样品
	SeasonAll = "all"
)

// ParseDate 解析 YYYY-MM-DD 日期字符串
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate 格式化日期为 YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AddDays 增加自然日天数（不跳过节假日）
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
