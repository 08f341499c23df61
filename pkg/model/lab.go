// Package model 定义实验室检测排期引擎的核心数据模型
package model

// Lab 检测实验室
//
// 列表型字段（SupportedTests、StorageConditionsAccepted、SeasonsAllowed）
// 保存原始分隔文本，由 planner 的字段解析器按 "," 或 ";" 切分。
// 排期运行期间实验室目录视为不可变快照。
type Lab struct {
	LabID int    `json:"lab_id" db:"lab_id"`
	Name  string `json:"name" db:"name"`

	// SupportedTests 支持的检测项目（分隔文本，匹配时不区分大小写）
	SupportedTests string `json:"supported_tests" db:"supported_tests"`

	// CapacityPerDay 每日接样能力（仅作申报信息，排期不做容量校验）
	CapacityPerDay int `json:"capacity_per_day" db:"capacity_per_day"`

	// TurnaroundDays 检测完成后出具结果所需天数
	TurnaroundDays int `json:"turnaround_days" db:"turnaround_days"`

	// StorageConditionsAccepted 可接受的样品存储条件（分隔文本，如 "+4C; -20C"）
	StorageConditionsAccepted string `json:"storage_conditions_accepted" db:"storage_conditions_accepted"`

	// SeasonsAllowed 可接样季节（分隔文本，或字面量 "all"）
	SeasonsAllowed string `json:"seasons_allowed" db:"seasons_allowed"`

	// PricePerTest 单项检测价格
	PricePerTest float64 `json:"price_per_test" db:"price_per_test"`
}

// TestMethod 检测方法/项目
type TestMethod struct {
	TestID int `json:"test_id" db:"test_id"`

	// TestName 检测项目名称（唯一匹配键，不区分大小写）
	TestName string `json:"test_name" db:"test_name"`

	// DurationDays 实验室检测本身占用的自然日天数
	DurationDays int `json:"duration_days" db:"duration_days"`

	// RequiredStorageCondition 要求的样品存储条件，空表示无要求
	RequiredStorageCondition string `json:"required_storage_condition" db:"required_storage_condition"`

	// SeasonRequired 保留字段，约束过滤不使用（为模板兼容保留）
	SeasonRequired string `json:"season_required" db:"season_required"`
}
