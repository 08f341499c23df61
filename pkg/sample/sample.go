// Package sample 提供示例目录数据（演示与测试用模板）
package sample

import (
	"time"

	"github.com/SherGrigory/ScedulerLab/pkg/model"
)

// Labs 返回示例实验室目录
func Labs() []*model.Lab {
	return []*model.Lab{
		{
			LabID:                     1,
			Name:                      "Лаборатория А",
			SupportedTests:            "Residue, Purity",
			CapacityPerDay:            10,
			TurnaroundDays:            7,
			StorageConditionsAccepted: "+4C, -20C",
			SeasonsAllowed:            "all",
			PricePerTest:              120.0,
		},
		{
			LabID:                     2,
			Name:                      "Лаборатория Б",
			SupportedTests:            "Residue",
			CapacityPerDay:            5,
			TurnaroundDays:            14,
			StorageConditionsAccepted: "+4C",
			SeasonsAllowed:            "summer,autumn",
			PricePerTest:              100.0,
		},
	}
}

// TestMethods 返回示例检测方法目录
func TestMethods() []*model.TestMethod {
	return []*model.TestMethod{
		{TestID: 1, TestName: "Residue", DurationDays: 3, RequiredStorageCondition: "+4C", SeasonRequired: ""},
		{TestID: 2, TestName: "Purity", DurationDays: 2, RequiredStorageCondition: "room", SeasonRequired: ""},
	}
}

// Contracts 返回示例合同目录（采样日期取当天，截止日期30天后）
func Contracts() []*model.Contract {
	now := time.Now()
	return []*model.Contract{
		{
			ContractID:           1,
			ProductName:          "Препарат X",
			ActiveSubstance:      "ДВ1",
			RequiredTests:        "Residue;Purity",
			SampleCollectionDate: model.FormatDate(now),
			ContractDeadline:     model.FormatDate(model.AddDays(now, 30)),
			MaxStorageDays:       14,
		},
	}
}
