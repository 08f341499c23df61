// Package planner 提供实验室检测排期核心算法
package planner

import (
	"sort"
	"time"

	"github.com/SherGrigory/ScedulerLab/pkg/model"
)

// Candidate 合格实验室的候选评估结果
type Candidate struct {
	Lab        *model.Lab
	StartDate  time.Time
	FinishDate time.Time
	// DaysBeforeDeadline 截止日期减去完成日期，负数表示逾期
	DaysBeforeDeadline int
	Price              float64
}

// BuildCandidates 为每个合格实验室计算完成日期和截止余量
//
// 完成日期 = 开始日期 + 检测天数 + 出具结果天数（均为自然日）。
func BuildCandidates(test *model.TestMethod, labs []*model.Lab, start, deadline time.Time) []Candidate {
	candidates := make([]Candidate, 0, len(labs))
	for _, lab := range labs {
		finish := model.AddDays(start, test.DurationDays+lab.TurnaroundDays)
		days := int(deadline.Sub(finish).Hours() / 24)
		candidates = append(candidates, Candidate{
			Lab:                lab,
			StartDate:          start,
			FinishDate:         finish,
			DaysBeforeDeadline: days,
			Price:              lab.PricePerTest,
		})
	}
	return candidates
}

// Rank 按完成日期升序排序候选实验室，同日期按价格升序，
// 两者都相同时按 LabID 升序兜底，保证排期结果可复现。
func Rank(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		ci, cj := candidates[i], candidates[j]
		if !ci.FinishDate.Equal(cj.FinishDate) {
			return ci.FinishDate.Before(cj.FinishDate)
		}
		if ci.Price != cj.Price {
			return ci.Price < cj.Price
		}
		return ci.Lab.LabID < cj.Lab.LabID
	})
}
