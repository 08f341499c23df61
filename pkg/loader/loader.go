// Package loader 提供目录表格的加载与校验
//
// 排期核心只消费已校验的表格；这里负责把 labs.csv / tests.csv /
// contracts.csv 解析为模型，缺列、非数字、日期无法解析等数据
// 质量问题一律报错拒绝，绝不静默取默认值。
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SherGrigory/ScedulerLab/pkg/errors"
	"github.com/SherGrigory/ScedulerLab/pkg/model"
)

// 各表必需列
var (
	labColumns = []string{
		"lab_id", "name", "supported_tests", "capacity_per_day",
		"turnaround_days", "storage_conditions_accepted", "seasons_allowed", "price_per_test",
	}
	testColumns = []string{
		"test_id", "test_name", "duration_days", "required_storage_condition", "season_required",
	}
	contractColumns = []string{
		"contract_id", "product_name", "active_substance", "required_tests",
		"sample_collection_date", "contract_deadline", "max_storage_days",
	}
)

// table 解析后的表格：表头索引 + 数据行
type table struct {
	name  string
	index map[string]int
	rows  [][]string
}

// readTable 读取CSV并校验必需列
func readTable(name string, r io.Reader, required []string) (*table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeParseError, fmt.Sprintf("读取 %s 失败", name))
	}
	if len(records) == 0 {
		return nil, errors.New(errors.CodeParseError, fmt.Sprintf("%s 缺少表头", name))
	}

	index := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}

	ve := &errors.ValidationErrors{}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			ve.Add(col, fmt.Sprintf("%s 缺少必需列", name))
		}
	}
	if ve.HasErrors() {
		return nil, ve.ToAppError()
	}

	return &table{name: name, index: index, rows: records[1:]}, nil
}

// field 取某行某列的值（去首尾空白）
func (t *table) field(row []string, col string) string {
	i := t.index[col]
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// intField 取整数列
func (t *table) intField(row []string, rowNum int, col string) (int, error) {
	raw := t.field(row, col)
	if raw == "" {
		return 0, errors.ParseError(t.name, rowNum, fmt.Sprintf("列 %s 为空", col))
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.ParseError(t.name, rowNum, fmt.Sprintf("列 %s 不是整数: %q", col, raw))
	}
	return v, nil
}

// floatField 取数值列
func (t *table) floatField(row []string, rowNum int, col string) (float64, error) {
	raw := t.field(row, col)
	if raw == "" {
		return 0, errors.ParseError(t.name, rowNum, fmt.Sprintf("列 %s 为空", col))
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.ParseError(t.name, rowNum, fmt.Sprintf("列 %s 不是数字: %q", col, raw))
	}
	return v, nil
}

// dateField 取日期列（YYYY-MM-DD）
func (t *table) dateField(row []string, rowNum int, col string) (string, error) {
	raw := t.field(row, col)
	if _, err := model.ParseDate(raw); err != nil {
		return "", errors.ParseError(t.name, rowNum, fmt.Sprintf("列 %s 日期无效: %q", col, raw))
	}
	return raw, nil
}

// ParseLabs 解析实验室目录
func ParseLabs(name string, r io.Reader) ([]*model.Lab, error) {
	t, err := readTable(name, r, labColumns)
	if err != nil {
		return nil, err
	}

	labs := make([]*model.Lab, 0, len(t.rows))
	seen := make(map[int]bool, len(t.rows))
	for i, row := range t.rows {
		rowNum := i + 2 // 含表头的行号

		labID, err := t.intField(row, rowNum, "lab_id")
		if err != nil {
			return nil, err
		}
		if seen[labID] {
			return nil, errors.ParseError(t.name, rowNum, fmt.Sprintf("lab_id %d 重复", labID))
		}
		seen[labID] = true
		capacity, err := t.intField(row, rowNum, "capacity_per_day")
		if err != nil {
			return nil, err
		}
		turnaround, err := t.intField(row, rowNum, "turnaround_days")
		if err != nil {
			return nil, err
		}
		if turnaround < 0 {
			return nil, errors.ParseError(t.name, rowNum, "turnaround_days 不能为负数")
		}
		price, err := t.floatField(row, rowNum, "price_per_test")
		if err != nil {
			return nil, err
		}
		if price < 0 {
			return nil, errors.ParseError(t.name, rowNum, "price_per_test 不能为负数")
		}

		labs = append(labs, &model.Lab{
			LabID:                     labID,
			Name:                      t.field(row, "name"),
			SupportedTests:            t.field(row, "supported_tests"),
			CapacityPerDay:            capacity,
			TurnaroundDays:            turnaround,
			StorageConditionsAccepted: t.field(row, "storage_conditions_accepted"),
			SeasonsAllowed:            t.field(row, "seasons_allowed"),
			PricePerTest:              price,
		})
	}
	return labs, nil
}

// ParseTestMethods 解析检测方法目录
func ParseTestMethods(name string, r io.Reader) ([]*model.TestMethod, error) {
	t, err := readTable(name, r, testColumns)
	if err != nil {
		return nil, err
	}

	tests := make([]*model.TestMethod, 0, len(t.rows))
	seen := make(map[string]bool, len(t.rows))
	for i, row := range t.rows {
		rowNum := i + 2

		testID, err := t.intField(row, rowNum, "test_id")
		if err != nil {
			return nil, err
		}
		duration, err := t.intField(row, rowNum, "duration_days")
		if err != nil {
			return nil, err
		}
		if duration <= 0 {
			return nil, errors.ParseError(t.name, rowNum, "duration_days 必须为正数")
		}
		testName := t.field(row, "test_name")
		if testName == "" {
			return nil, errors.ParseError(t.name, rowNum, "test_name 为空")
		}
		// 项目名是不区分大小写的唯一匹配键，重复会导致静默覆盖
		key := strings.ToLower(testName)
		if seen[key] {
			return nil, errors.ParseError(t.name, rowNum, fmt.Sprintf("test_name %q 重复", testName))
		}
		seen[key] = true

		tests = append(tests, &model.TestMethod{
			TestID:                   testID,
			TestName:                 testName,
			DurationDays:             duration,
			RequiredStorageCondition: t.field(row, "required_storage_condition"),
			SeasonRequired:           t.field(row, "season_required"),
		})
	}
	return tests, nil
}

// ParseContracts 解析合同目录
func ParseContracts(name string, r io.Reader) ([]*model.Contract, error) {
	t, err := readTable(name, r, contractColumns)
	if err != nil {
		return nil, err
	}

	contracts := make([]*model.Contract, 0, len(t.rows))
	seen := make(map[int]bool, len(t.rows))
	for i, row := range t.rows {
		rowNum := i + 2

		contractID, err := t.intField(row, rowNum, "contract_id")
		if err != nil {
			return nil, err
		}
		if seen[contractID] {
			return nil, errors.ParseError(t.name, rowNum, fmt.Sprintf("contract_id %d 重复", contractID))
		}
		seen[contractID] = true
		sampleDate, err := t.dateField(row, rowNum, "sample_collection_date")
		if err != nil {
			return nil, err
		}
		deadline, err := t.dateField(row, rowNum, "contract_deadline")
		if err != nil {
			return nil, err
		}
		maxStorage, err := t.intField(row, rowNum, "max_storage_days")
		if err != nil {
			return nil, err
		}

		contracts = append(contracts, &model.Contract{
			ContractID:           contractID,
			ProductName:          t.field(row, "product_name"),
			ActiveSubstance:      t.field(row, "active_substance"),
			RequiredTests:        t.field(row, "required_tests"),
			SampleCollectionDate: sampleDate,
			ContractDeadline:     deadline,
			MaxStorageDays:       maxStorage,
		})
	}
	return contracts, nil
}
