// Package planner 提供实验室检测排期核心算法
package planner

import (
	"time"

	"github.com/SherGrigory/ScedulerLab/pkg/model"
)

// ResolveSeason 将日期映射为季节标签
//
// 固定按月份分组：12/1/2 冬，3/4/5 春，6/7/8 夏，9/10/11 秋。
func ResolveSeason(t time.Time) model.Season {
	switch t.Month() {
	case time.December, time.January, time.February:
		return model.SeasonWinter
	case time.March, time.April, time.May:
		return model.SeasonSpring
	case time.June, time.July, time.August:
		return model.SeasonSummer
	default:
		return model.SeasonAutumn
	}
}
