// Package report 提供排期结果的渲染与导出
package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/SherGrigory/ScedulerLab/pkg/model"
)

// scheduleHeader 排期表导出列
var scheduleHeader = []string{
	"test_name", "status", "lab_id", "lab_name",
	"start_date", "finish_date", "days_before_deadline", "price",
}

// ScheduleCSV 将排期方案导出为CSV
func ScheduleCSV(schedule *model.Schedule) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(scheduleHeader); err != nil {
		return nil, err
	}

	for i := range schedule.Assignments {
		a := &schedule.Assignments[i]
		row := []string{a.TestName, string(a.Status), "", "", "", "", "", ""}
		if a.Resolved() {
			row[2] = strconv.Itoa(a.LabID)
			row[3] = a.LabName
			row[4] = a.StartDate
			row[5] = a.FinishDate
			row[6] = strconv.Itoa(a.DaysBeforeDeadline)
			row[7] = strconv.FormatFloat(a.Price, 'f', 2, 64)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ContractCSV 将合同记录导出为CSV（导出包中的第二张表）
func ContractCSV(c *model.Contract) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"contract_id", "product_name", "active_substance", "required_tests",
		"sample_collection_date", "contract_deadline", "max_storage_days",
	}
	row := []string{
		strconv.Itoa(c.ContractID), c.ProductName, c.ActiveSubstance, c.RequiredTests,
		c.SampleCollectionDate, c.ContractDeadline, strconv.Itoa(c.MaxStorageDays),
	}

	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
