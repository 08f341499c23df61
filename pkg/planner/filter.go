// Package planner 提供实验室检测排期核心算法
package planner

import (
	"strings"

	"github.com/SherGrigory/ScedulerLab/pkg/model"
)

// Eligible 判断实验室能否承接某检测项目
//
// 三条规则全部满足才算合格：
//  1. 实验室支持该检测项目（不区分大小写）；
//  2. 实验室可接样季节包含 "all" 或解析出的季节；
//  3. 项目无存储条件要求，或实验室接受该条件（不区分大小写的
//     精确令牌匹配，不做单位归一化："+4C" 与 "+4c" 匹配，
//     "+4C" 与 "4 °C" 不匹配）。
//
// 返回是否合格以及不合格原因（用于日志诊断）。
func Eligible(test *model.TestMethod, lab *model.Lab, season model.Season) (bool, string) {
	supported := NormalizeSet(lab.SupportedTests)
	if !supported[strings.ToLower(test.TestName)] {
		return false, "不支持该检测项目"
	}

	seasons := NormalizeSet(lab.SeasonsAllowed)
	if !seasons[model.SeasonAll] && !seasons[string(season)] {
		return false, "季节不在可接样范围"
	}

	if req := strings.TrimSpace(test.RequiredStorageCondition); req != "" {
		storage := NormalizeSet(lab.StorageConditionsAccepted)
		if !storage[strings.ToLower(req)] {
			return false, "存储条件不满足"
		}
	}

	return true, ""
}

// EligibleLabs 过滤出所有合格实验室，保持目录原始顺序
func EligibleLabs(test *model.TestMethod, labs []*model.Lab, season model.Season) []*model.Lab {
	var result []*model.Lab
	for _, lab := range labs {
		if ok, _ := Eligible(test, lab, season); ok {
			result = append(result, lab)
		}
	}
	return result
}
