// Package model 定义实验室检测排期引擎的核心数据模型
package model

// Contract 检测合同/委托单
type Contract struct {
	ContractID      int    `json:"contract_id" db:"contract_id"`
	ProductName     string `json:"product_name" db:"product_name"`
	ActiveSubstance string `json:"active_substance" db:"active_substance"`

	// RequiredTests 要求的检测项目（分隔文本，顺序即串行排期顺序）
	RequiredTests string `json:"required_tests" db:"required_tests"`

	// SampleCollectionDate 采样日期 YYYY-MM-DD
	SampleCollectionDate string `json:"sample_collection_date" db:"sample_collection_date"`

	// ContractDeadline 合同截止日期 YYYY-MM-DD
	ContractDeadline string `json:"contract_deadline" db:"contract_deadline"`

	// MaxStorageDays 保留字段，排期不使用（为模板兼容保留）
	MaxStorageDays int `json:"max_storage_days" db:"max_storage_days"`
}
