// Package planner 提供实验室检测排期核心算法
//
// 排期是 (Contract, Labs, TestMethods) 的纯函数：单线程同步计算，
// 不访问外部资源，不持有跨次调用的状态。不同合同可以由调用方
// 并发排期，互不协调。算法内的异常（项目不存在、无合格实验室、
// 超出截止日期）一律记录为单项终态，不会中断整条链。
package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/SherGrigory/ScedulerLab/pkg/errors"
	"github.com/SherGrigory/ScedulerLab/pkg/logger"
	"github.com/SherGrigory/ScedulerLab/pkg/model"
)

// Planner 串行排期引擎
type Planner struct {
	logger *logger.PlannerLogger
}

// New 创建排期引擎
func New() *Planner {
	return &Planner{
		logger: logger.NewPlannerLogger(),
	}
}

// Result 排期结果
type Result struct {
	Schedule *model.Schedule `json:"schedule"`
	Summary  model.Summary   `json:"summary"`
	Duration time.Duration   `json:"duration"`
}

// ScheduleContract 为一份合同生成串行检测排期
//
// 合同要求的检测项目按声明顺序依次处理，绝不并行：每个项目的
// 开始日期等于上一个已排期项目的完成日期（串行资源链模型）。
// 未能排期的项目不推进时间线。季节在合同开始时按原始采样日期
// 解析一次，即使时间线跨越季节边界也固定不变。
//
// 合同必填字段缺失或格式错误时整体拒绝，返回验证错误。
func (p *Planner) ScheduleContract(contract *model.Contract, labs []*model.Lab, tests []*model.TestMethod) (*Result, error) {
	startTime := time.Now()

	sampleDate, deadline, requiredTests, err := validateContract(contract)
	if err != nil {
		return nil, err
	}

	p.logger.StartPlan(contract.ContractID, len(requiredTests), len(labs))

	// 按小写项目名建立方法目录索引
	testIndex := make(map[string]*model.TestMethod, len(tests))
	for _, t := range tests {
		testIndex[strings.ToLower(t.TestName)] = t
	}

	// 季节固定取自合同原始采样日期
	season := ResolveSeason(sampleDate)

	schedule := &model.Schedule{
		ContractID:  contract.ContractID,
		Season:      season,
		Assignments: make([]model.Assignment, 0, len(requiredTests)),
	}

	currentDate := sampleDate

	for _, testName := range requiredTests {
		test, ok := testIndex[strings.ToLower(testName)]
		if !ok {
			p.logger.TestUnresolved(testName, "方法目录中不存在")
			schedule.Assignments = append(schedule.Assignments, model.Assignment{
				TestName: testName,
				Status:   model.StatusTestNotFound,
			})
			continue
		}

		eligible := EligibleLabs(test, labs, season)
		if len(eligible) == 0 {
			p.logger.TestUnresolved(testName, "没有实验室通过约束过滤")
			schedule.Assignments = append(schedule.Assignments, model.Assignment{
				TestName: testName,
				Status:   model.StatusNoSuitableLab,
			})
			continue
		}

		candidates := BuildCandidates(test, eligible, currentDate, deadline)
		Rank(candidates)
		chosen := candidates[0]

		status := model.StatusScheduled
		if chosen.DaysBeforeDeadline < 0 {
			status = model.StatusWillMissDeadline
		}

		schedule.Assignments = append(schedule.Assignments, model.Assignment{
			TestName:           testName,
			Status:             status,
			LabID:              chosen.Lab.LabID,
			LabName:            chosen.Lab.Name,
			StartDate:          model.FormatDate(chosen.StartDate),
			FinishDate:         model.FormatDate(chosen.FinishDate),
			DaysBeforeDeadline: chosen.DaysBeforeDeadline,
			Price:              chosen.Price,
		})

		// 串行链：下一项目的开始日期即本项目的完成日期
		currentDate = chosen.FinishDate
	}

	summary := Summarize(schedule)

	result := &Result{
		Schedule: schedule,
		Summary:  summary,
		Duration: time.Since(startTime),
	}

	p.logger.PlanComplete(contract.ContractID, result.Duration, summary.TotalCost, summary.MissedCount)

	return result, nil
}

// validateContract 校验合同必填字段
//
// 上游加载器负责表格级校验；这里保证排期调用不会带着缺失或
// 无法解析的字段静默执行。
func validateContract(contract *model.Contract) (sampleDate, deadline time.Time, requiredTests []string, err error) {
	if contract == nil {
		return time.Time{}, time.Time{}, nil, errors.New(errors.CodeContractInvalid, "合同不能为空")
	}

	ve := &errors.ValidationErrors{}

	requiredTests = ParseListField(contract.RequiredTests)
	if strings.TrimSpace(contract.RequiredTests) == "" {
		ve.Add("required_tests", "必填字段缺失")
	}

	sampleDate, sErr := model.ParseDate(contract.SampleCollectionDate)
	if sErr != nil {
		ve.Add("sample_collection_date", fmt.Sprintf("日期无效: %q", contract.SampleCollectionDate))
	}

	deadline, dErr := model.ParseDate(contract.ContractDeadline)
	if dErr != nil {
		ve.Add("contract_deadline", fmt.Sprintf("日期无效: %q", contract.ContractDeadline))
	}

	if ve.HasErrors() {
		return time.Time{}, time.Time{}, nil, ve.ToAppError()
	}

	return sampleDate, deadline, requiredTests, nil
}
