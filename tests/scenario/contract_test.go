// Package scenario 提供场景测试
package scenario

import (
	"testing"

	"github.com/SherGrigory/ScedulerLab/pkg/loader"
	"github.com/SherGrigory/ScedulerLab/pkg/model"
	"github.com/SherGrigory/ScedulerLab/pkg/planner"
	"github.com/SherGrigory/ScedulerLab/pkg/report"
	"github.com/SherGrigory/ScedulerLab/pkg/validator"
)

const labsCSV = `lab_id,name,supported_tests,capacity_per_day,turnaround_days,storage_conditions_accepted,seasons_allowed,price_per_test
1,Лаборатория А,Residue;Purity,10,7,+4C;-20C,all,120
2,Лаборатория Б,Residue;Purity,5,14,+4C,summer;autumn,100
`

const testsCSV = `test_id,test_name,duration_days,required_storage_condition,season_required
1,Residue,3,+4C,
2,Purity,2,,
`

const contractsCSV = `contract_id,product_name,active_substance,required_tests,sample_collection_date,contract_deadline,max_storage_days
1,Препарат X,ДВ1,Residue;Purity,2024-01-10,2024-02-09,14
2,Препарат Y,ДВ2,Residue;Stability,2024-01-10,2024-02-09,14
3,Препарат Z,ДВ3,Residue;Purity,2024-01-10,2024-01-12,14
`

func loadCatalogs(t *testing.T) ([]*model.Lab, []*model.TestMethod, []*model.Contract) {
	t.Helper()
	l := loader.NewLoader()

	labs, err := l.LoadLabs("labs.csv", []byte(labsCSV))
	if err != nil {
		t.Fatalf("加载实验室目录失败: %v", err)
	}
	tests, err := l.LoadTestMethods("tests.csv", []byte(testsCSV))
	if err != nil {
		t.Fatalf("加载检测方法目录失败: %v", err)
	}
	contracts, err := l.LoadContracts("contracts.csv", []byte(contractsCSV))
	if err != nil {
		t.Fatalf("加载合同目录失败: %v", err)
	}
	return labs, tests, contracts
}

// TestWinterContractEndToEnd 冬季合同完整流程
//
// 从CSV目录加载到排期、验证、导出。冬季只有实验室А合格
// （实验室Б仅夏秋接样），两项检测全部由А串行承接。
func TestWinterContractEndToEnd(t *testing.T) {
	labs, tests, contracts := loadCatalogs(t)

	result, err := planner.New().ScheduleContract(contracts[0], labs, tests)
	if err != nil {
		t.Fatalf("排期失败: %v", err)
	}

	s := result.Schedule
	t.Logf("季节: %s", s.Season)
	t.Logf("总成本: %.2f, 逾期: %d", result.Summary.TotalCost, result.Summary.MissedCount)

	if s.Season != model.SeasonWinter {
		t.Errorf("季节 = %s, expected winter", s.Season)
	}

	expected := []struct {
		testName   string
		labID      int
		start      string
		finish     string
		daysBefore int
	}{
		{"Residue", 1, "2024-01-10", "2024-01-20", 20},
		{"Purity", 1, "2024-01-20", "2024-01-29", 11},
	}

	for i, want := range expected {
		a := s.Assignments[i]
		if a.Status != model.StatusScheduled {
			t.Errorf("%s 状态 = %s, expected scheduled", want.testName, a.Status)
		}
		if a.LabID != want.labID {
			t.Errorf("%s 实验室 = %d, expected %d", want.testName, a.LabID, want.labID)
		}
		if a.StartDate != want.start || a.FinishDate != want.finish {
			t.Errorf("%s 日期 = %s..%s, expected %s..%s",
				want.testName, a.StartDate, a.FinishDate, want.start, want.finish)
		}
		if a.DaysBeforeDeadline != want.daysBefore {
			t.Errorf("%s 截止余量 = %d, expected %d", want.testName, a.DaysBeforeDeadline, want.daysBefore)
		}
	}

	if result.Summary.TotalCost != 240 {
		t.Errorf("总成本 = %v, expected 240", result.Summary.TotalCost)
	}
	if result.Summary.MissedCount != 0 {
		t.Errorf("逾期项数 = %d, expected 0", result.Summary.MissedCount)
	}

	// 方案通过不变量验证
	violations := validator.NewInvariantChecker().Check(contracts[0], s, labs, tests)
	for _, v := range violations {
		t.Errorf("违规 [%s] %s: %s", v.Type, v.TestName, v.Message)
	}

	// 导出结果包含两张表的关键内容
	csvData, err := report.ScheduleCSV(s)
	if err != nil {
		t.Fatalf("CSV导出失败: %v", err)
	}
	if len(csvData) == 0 {
		t.Error("CSV导出为空")
	}
}

// TestContractWithUnknownTest 合同包含目录外的检测项目
func TestContractWithUnknownTest(t *testing.T) {
	labs, tests, contracts := loadCatalogs(t)

	result, err := planner.New().ScheduleContract(contracts[1], labs, tests)
	if err != nil {
		t.Fatalf("排期失败: %v", err)
	}

	s := result.Schedule
	if len(s.Assignments) != 2 {
		t.Fatalf("排期项数 = %d, expected 2", len(s.Assignments))
	}

	if s.Assignments[0].Status != model.StatusScheduled {
		t.Errorf("Residue 状态 = %s, expected scheduled", s.Assignments[0].Status)
	}
	if s.Assignments[1].Status != model.StatusTestNotFound {
		t.Errorf("Stability 状态 = %s, expected test not found", s.Assignments[1].Status)
	}

	// 单项失败不影响整体方案的自洽性
	violations := validator.NewInvariantChecker().Check(contracts[1], s, labs, tests)
	if len(violations) != 0 {
		t.Errorf("方案应自洽: %+v", violations)
	}

	if result.Summary.TotalCost != 120 {
		t.Errorf("总成本 = %v, expected 120", result.Summary.TotalCost)
	}
	if result.Summary.UnresolvedCount != 1 {
		t.Errorf("未匹配项数 = %d, expected 1", result.Summary.UnresolvedCount)
	}
}

// TestContractWithTightDeadline 截止日期过近的合同
//
// 两天后截止，任何实验室都来不及：项目仍然排出，但状态为
// will miss deadline，成本不计入，逾期计数暴露资源缺口。
func TestContractWithTightDeadline(t *testing.T) {
	labs, tests, contracts := loadCatalogs(t)

	result, err := planner.New().ScheduleContract(contracts[2], labs, tests)
	if err != nil {
		t.Fatalf("排期失败: %v", err)
	}

	for _, a := range result.Schedule.Assignments {
		t.Logf("%s: %s (%s..%s, 余量 %d)", a.TestName, a.Status, a.StartDate, a.FinishDate, a.DaysBeforeDeadline)

		if a.Status != model.StatusWillMissDeadline {
			t.Errorf("%s 状态 = %s, expected will miss deadline", a.TestName, a.Status)
		}
		if a.LabID == 0 {
			t.Errorf("%s 逾期项目仍应匹配实验室", a.TestName)
		}
	}

	if result.Summary.TotalCost != 0 {
		t.Errorf("总成本 = %v, expected 0 (逾期项不计入)", result.Summary.TotalCost)
	}
	if result.Summary.MissedCount != 2 {
		t.Errorf("逾期项数 = %d, expected 2", result.Summary.MissedCount)
	}

	violations := validator.NewInvariantChecker().Check(contracts[2], result.Schedule, labs, tests)
	if len(violations) != 0 {
		t.Errorf("方案应自洽: %+v", violations)
	}
}

// TestSummerContractUsesBothLabs 夏季合同两家实验室竞争
func TestSummerContractUsesBothLabs(t *testing.T) {
	labs, tests, _ := loadCatalogs(t)

	contract := &model.Contract{
		ContractID:           10,
		RequiredTests:        "Residue;Purity",
		SampleCollectionDate: "2024-07-01",
		ContractDeadline:     "2024-09-30",
	}

	result, err := planner.New().ScheduleContract(contract, labs, tests)
	if err != nil {
		t.Fatalf("排期失败: %v", err)
	}

	if result.Schedule.Season != model.SeasonSummer {
		t.Errorf("季节 = %s, expected summer", result.Schedule.Season)
	}

	// 实验室А更快（7天 vs 14天），两项检测仍由А胜出
	for _, a := range result.Schedule.Assignments {
		if a.LabID != 1 {
			t.Errorf("%s 实验室 = %d, expected 1 (完成日期优先)", a.TestName, a.LabID)
		}
	}
}
