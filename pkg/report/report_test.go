package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/SherGrigory/ScedulerLab/pkg/model"
)

func sampleSchedule() (*model.Schedule, model.Summary) {
	schedule := &model.Schedule{
		ContractID: 1,
		Season:     model.SeasonWinter,
		Assignments: []model.Assignment{
			{
				TestName: "Residue", Status: model.StatusScheduled,
				LabID: 1, LabName: "Лаборатория А",
				StartDate: "2024-01-10", FinishDate: "2024-01-20",
				DaysBeforeDeadline: 20, Price: 120,
			},
			{TestName: "Unknown", Status: model.StatusTestNotFound},
		},
	}
	summary := model.Summary{TotalCost: 120, ScheduledCount: 1, UnresolvedCount: 1}
	return schedule, summary
}

func TestScheduleCSV(t *testing.T) {
	schedule, _ := sampleSchedule()

	data, err := ScheduleCSV(schedule)
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("行数 = %d, expected 3 (表头+2行)", len(lines))
	}

	if lines[0] != "test_name,status,lab_id,lab_name,start_date,finish_date,days_before_deadline,price" {
		t.Errorf("表头不符: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Residue,scheduled,1,Лаборатория А,2024-01-10,2024-01-20,20,120.00") {
		t.Errorf("已排期行不符: %s", lines[1])
	}
	// 未匹配行的实验室和日期列为空
	if lines[2] != "Unknown,test not found,,,,,," {
		t.Errorf("未匹配行不符: %s", lines[2])
	}
}

func TestContractCSV(t *testing.T) {
	c := &model.Contract{
		ContractID:           1,
		ProductName:          "Препарат X",
		ActiveSubstance:      "ДВ1",
		RequiredTests:        "Residue;Purity",
		SampleCollectionDate: "2024-01-10",
		ContractDeadline:     "2024-02-09",
		MaxStorageDays:       14,
	}

	data, err := ContractCSV(c)
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("行数 = %d, expected 2", len(lines))
	}
	if lines[1] != "1,Препарат X,ДВ1,Residue;Purity,2024-01-10,2024-02-09,14" {
		t.Errorf("数据行不符: %s", lines[1])
	}
}

func TestRenderSchedule(t *testing.T) {
	schedule, summary := sampleSchedule()

	var buf bytes.Buffer
	if err := RenderSchedule(&buf, schedule, summary); err != nil {
		t.Fatalf("渲染失败: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Residue", "scheduled", "2024-01-20", "总成本: 120.00", "未匹配项目数: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("输出缺少 %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "逾期项目数") {
		t.Error("无逾期时不应输出逾期行")
	}
}

func TestSchedulePDF(t *testing.T) {
	schedule, summary := sampleSchedule()
	c := &model.Contract{ContractID: 1, ProductName: "Препарат X"}

	data, err := SchedulePDF(c, schedule, summary)
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("输出不是合法PDF文件头")
	}
}
