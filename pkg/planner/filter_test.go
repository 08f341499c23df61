package planner

import (
	"testing"

	"github.com/SherGrigory/ScedulerLab/pkg/model"
)

func baseLab() *model.Lab {
	return &model.Lab{
		LabID:                     1,
		Name:                      "实验室A",
		SupportedTests:            "Residue;Purity",
		TurnaroundDays:            7,
		StorageConditionsAccepted: "+4C; -20C",
		SeasonsAllowed:            "all",
		PricePerTest:              120,
	}
}

func TestEligible(t *testing.T) {
	tests := []struct {
		name     string
		test     *model.TestMethod
		modify   func(*model.Lab)
		season   model.Season
		expected bool
	}{
		{
			name:     "全部条件满足",
			test:     &model.TestMethod{TestName: "Residue", RequiredStorageCondition: "+4C"},
			modify:   func(l *model.Lab) {},
			season:   model.SeasonWinter,
			expected: true,
		},
		{
			name:     "不支持该项目",
			test:     &model.TestMethod{TestName: "Stability"},
			modify:   func(l *model.Lab) {},
			season:   model.SeasonWinter,
			expected: false,
		},
		{
			name:     "项目名不区分大小写",
			test:     &model.TestMethod{TestName: "RESIDUE"},
			modify:   func(l *model.Lab) {},
			season:   model.SeasonWinter,
			expected: true,
		},
		{
			name:     "季节不匹配",
			test:     &model.TestMethod{TestName: "Residue"},
			modify:   func(l *model.Lab) { l.SeasonsAllowed = "summer;autumn" },
			season:   model.SeasonWinter,
			expected: false,
		},
		{
			name:     "季节列表包含目标季节",
			test:     &model.TestMethod{TestName: "Residue"},
			modify:   func(l *model.Lab) { l.SeasonsAllowed = "summer;autumn" },
			season:   model.SeasonSummer,
			expected: true,
		},
		{
			name:     "all覆盖所有季节",
			test:     &model.TestMethod{TestName: "Residue"},
			modify:   func(l *model.Lab) { l.SeasonsAllowed = "all" },
			season:   model.SeasonAutumn,
			expected: true,
		},
		{
			name:     "存储条件不满足",
			test:     &model.TestMethod{TestName: "Residue", RequiredStorageCondition: "-80C"},
			modify:   func(l *model.Lab) {},
			season:   model.SeasonWinter,
			expected: false,
		},
		{
			name:     "存储条件不区分大小写",
			test:     &model.TestMethod{TestName: "Residue", RequiredStorageCondition: "+4c"},
			modify:   func(l *model.Lab) {},
			season:   model.SeasonWinter,
			expected: true,
		},
		{
			name:     "存储条件不做单位归一化",
			test:     &model.TestMethod{TestName: "Residue", RequiredStorageCondition: "4 °C"},
			modify:   func(l *model.Lab) {},
			season:   model.SeasonWinter,
			expected: false,
		},
		{
			name:     "无存储要求时跳过存储检查",
			test:     &model.TestMethod{TestName: "Residue", RequiredStorageCondition: ""},
			modify:   func(l *model.Lab) { l.StorageConditionsAccepted = "" },
			season:   model.SeasonWinter,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lab := baseLab()
			tt.modify(lab)
			ok, reason := Eligible(tt.test, lab, tt.season)
			if ok != tt.expected {
				t.Errorf("Eligible() = %v (%s), expected %v", ok, reason, tt.expected)
			}
			if !ok && reason == "" {
				t.Error("不合格时应返回原因")
			}
		})
	}
}

func TestEligibleLabs_PreservesOrder(t *testing.T) {
	labA := baseLab()
	labB := baseLab()
	labB.LabID = 2
	labB.Name = "实验室B"
	labC := baseLab()
	labC.LabID = 3
	labC.SupportedTests = "Stability"

	test := &model.TestMethod{TestName: "Residue", RequiredStorageCondition: "+4C"}
	eligible := EligibleLabs(test, []*model.Lab{labA, labB, labC}, model.SeasonWinter)

	if len(eligible) != 2 {
		t.Fatalf("合格实验室数 = %d, expected 2", len(eligible))
	}
	if eligible[0].LabID != 1 || eligible[1].LabID != 2 {
		t.Errorf("应保持目录原始顺序, got [%d %d]", eligible[0].LabID, eligible[1].LabID)
	}
}
