// Package validator 提供排期方案验证功能
package validator

import (
	"fmt"
	"strings"

	"github.com/SherGrigory/ScedulerLab/pkg/model"
	"github.com/SherGrigory/ScedulerLab/pkg/planner"
)

// ViolationType 违规类型
type ViolationType string

const (
	ViolationCount      ViolationType = "count"       // 排期项数与合同要求不符
	ViolationOrder      ViolationType = "order"       // 排期顺序与合同要求不符
	ViolationFinishDate ViolationType = "finish_date" // 完成日期与工期不符
	ViolationChaining   ViolationType = "chaining"    // 串行链断裂
	ViolationFields     ViolationType = "fields"      // 字段存在性与状态不符
	ViolationStatus     ViolationType = "status"      // 状态与截止余量不符
)

// Violation 违规信息
type Violation struct {
	Type     ViolationType `json:"type"`
	TestName string        `json:"test_name,omitempty"`
	Index    int           `json:"index"`
	Message  string        `json:"message"`
}

// InvariantChecker 排期不变量检查器
//
// 对照合同与目录检查一份排期方案是否自洽：项数与顺序、完成
// 日期公式、串行链推进、已匹配/未匹配字段的存在性、状态与
// 截止余量的一致性。
type InvariantChecker struct{}

// NewInvariantChecker 创建检查器
func NewInvariantChecker() *InvariantChecker {
	return &InvariantChecker{}
}

// Check 检查排期方案，返回所有违规项，空切片表示方案自洽
func (c *InvariantChecker) Check(contract *model.Contract, schedule *model.Schedule, labs []*model.Lab, tests []*model.TestMethod) []Violation {
	var violations []Violation

	required := planner.ParseListField(contract.RequiredTests)

	if len(schedule.Assignments) != len(required) {
		violations = append(violations, Violation{
			Type:    ViolationCount,
			Message: fmt.Sprintf("合同要求 %d 项，排期包含 %d 项", len(required), len(schedule.Assignments)),
		})
		return violations
	}

	testIndex := make(map[string]*model.TestMethod, len(tests))
	for _, t := range tests {
		testIndex[strings.ToLower(t.TestName)] = t
	}
	labIndex := make(map[int]*model.Lab, len(labs))
	for _, l := range labs {
		labIndex[l.LabID] = l
	}

	sampleDate, err := model.ParseDate(contract.SampleCollectionDate)
	if err != nil {
		violations = append(violations, Violation{
			Type:    ViolationChaining,
			Message: fmt.Sprintf("合同采样日期无效: %q", contract.SampleCollectionDate),
		})
		return violations
	}

	currentDate := sampleDate

	for i := range schedule.Assignments {
		a := &schedule.Assignments[i]

		if !strings.EqualFold(a.TestName, required[i]) {
			violations = append(violations, Violation{
				Type: ViolationOrder, TestName: a.TestName, Index: i,
				Message: fmt.Sprintf("第 %d 项应为 %q，实际为 %q", i, required[i], a.TestName),
			})
		}

		if !a.Resolved() {
			// 未匹配项不得携带实验室字段，也不推进时间线
			if a.LabID != 0 || a.LabName != "" || a.StartDate != "" || a.FinishDate != "" {
				violations = append(violations, Violation{
					Type: ViolationFields, TestName: a.TestName, Index: i,
					Message: "未匹配项不应包含实验室或日期字段",
				})
			}
			continue
		}

		if a.LabName == "" || a.StartDate == "" || a.FinishDate == "" {
			violations = append(violations, Violation{
				Type: ViolationFields, TestName: a.TestName, Index: i,
				Message: "已匹配项缺少实验室或日期字段",
			})
			continue
		}

		start, sErr := model.ParseDate(a.StartDate)
		finish, fErr := model.ParseDate(a.FinishDate)
		if sErr != nil || fErr != nil {
			violations = append(violations, Violation{
				Type: ViolationFields, TestName: a.TestName, Index: i,
				Message: "已匹配项日期格式无效",
			})
			continue
		}

		// 串行链：开始日期必须等于当前时间线
		if !start.Equal(currentDate) {
			violations = append(violations, Violation{
				Type: ViolationChaining, TestName: a.TestName, Index: i,
				Message: fmt.Sprintf("开始日期 %s 与时间线 %s 不符", a.StartDate, model.FormatDate(currentDate)),
			})
		}

		// 完成日期 = 开始日期 + 检测天数 + 出具结果天数
		test := testIndex[strings.ToLower(a.TestName)]
		lab := labIndex[a.LabID]
		if test != nil && lab != nil {
			expected := model.AddDays(start, test.DurationDays+lab.TurnaroundDays)
			if !finish.Equal(expected) {
				violations = append(violations, Violation{
					Type: ViolationFinishDate, TestName: a.TestName, Index: i,
					Message: fmt.Sprintf("完成日期应为 %s，实际为 %s", model.FormatDate(expected), a.FinishDate),
				})
			}
		}

		// 状态必须与截止余量一致
		if a.Status == model.StatusScheduled && a.DaysBeforeDeadline < 0 {
			violations = append(violations, Violation{
				Type: ViolationStatus, TestName: a.TestName, Index: i,
				Message: "逾期项目状态不应为 scheduled",
			})
		}
		if a.Status == model.StatusWillMissDeadline && a.DaysBeforeDeadline >= 0 {
			violations = append(violations, Violation{
				Type: ViolationStatus, TestName: a.TestName, Index: i,
				Message: "未逾期项目状态不应为 will miss deadline",
			})
		}

		currentDate = finish
	}

	return violations
}
