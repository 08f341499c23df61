// Package planner 提供实验室检测排期核心算法
package planner

import (
	"github.com/SherGrigory/ScedulerLab/pkg/model"
)

// Summarize 汇总排期方案的成本与风险
//
// 总成本只累计状态为 scheduled 的项目；排上了但会逾期的项目
// 不计入成本，只计入 MissedCount，用于暴露资源不足。
func Summarize(s *model.Schedule) model.Summary {
	var sum model.Summary
	for i := range s.Assignments {
		a := &s.Assignments[i]
		switch a.Status {
		case model.StatusScheduled:
			sum.ScheduledCount++
			sum.TotalCost += a.Price
		case model.StatusWillMissDeadline:
			sum.MissedCount++
		default:
			sum.UnresolvedCount++
		}
	}
	return sum
}
