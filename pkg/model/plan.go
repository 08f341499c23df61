// Package model 定义实验室检测排期引擎的核心数据模型
package model

// AssignmentStatus 单项检测的排期终态
type AssignmentStatus string

const (
	// StatusScheduled 已排期且能在截止日期前完成
	StatusScheduled AssignmentStatus = "scheduled"
	// StatusWillMissDeadline 已排期但完成日期晚于合同截止日期
	StatusWillMissDeadline AssignmentStatus = "will miss deadline"
	// StatusNoSuitableLab 没有实验室通过约束过滤
	StatusNoSuitableLab AssignmentStatus = "no suitable lab found"
	// StatusTestNotFound 检测项目在方法目录中不存在
	StatusTestNotFound AssignmentStatus = "test not found"
)

// Assignment 单项检测的排期结果
//
// LabID/LabName/日期/价格字段仅在 Resolved 时有值。
type Assignment struct {
	TestName string           `json:"test_name"`
	Status   AssignmentStatus `json:"status"`

	// 数值字段不带 omitempty：截止余量恰好为 0 或价格为 0 的
	// 已匹配项必须完整序列化，字段存在性由 Resolved 判断
	LabID   int    `json:"lab_id"`
	LabName string `json:"lab_name,omitempty"`

	// StartDate 送样/开始日期 YYYY-MM-DD
	StartDate string `json:"start_date,omitempty"`
	// FinishDate 结果出具日期 = StartDate + DurationDays + TurnaroundDays
	FinishDate string `json:"finish_date,omitempty"`

	// DaysBeforeDeadline 截止日期减去完成日期，负数表示逾期
	DaysBeforeDeadline int     `json:"days_before_deadline"`
	Price              float64 `json:"price"`
}

// Resolved 是否已匹配到实验室（含逾期完成的情况）
func (a *Assignment) Resolved() bool {
	return a.Status == StatusScheduled || a.Status == StatusWillMissDeadline
}

// Schedule 一份合同的排期方案，顺序与合同 RequiredTests 一致
type Schedule struct {
	ContractID int `json:"contract_id"`

	// Season 按合同采样日期解析出的季节，整条链固定使用
	Season Season `json:"season"`

	Assignments []Assignment `json:"assignments"`
}

// Summary 排期方案的成本与风险汇总
type Summary struct {
	// TotalCost 仅累计状态为 scheduled 的检测项目价格
	TotalCost float64 `json:"total_cost"`
	// MissedCount 状态为 will miss deadline 的项目数
	MissedCount int `json:"missed_count"`
	// ScheduledCount 状态为 scheduled 的项目数
	ScheduledCount int `json:"scheduled_count"`
	// UnresolvedCount 未能匹配实验室或项目不存在的数量
	UnresolvedCount int `json:"unresolved_count"`
}
