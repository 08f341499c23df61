// Package report 提供排期结果的渲染与导出
package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/SherGrigory/ScedulerLab/pkg/model"
)

// pdf 列宽（mm，横向A4）
var pdfColWidths = []float64{45, 42, 50, 28, 28, 28, 28}

var pdfHeader = []string{
	"Test", "Status", "Lab", "Start", "Finish", "Days left", "Price",
}

// SchedulePDF 将排期方案导出为PDF报表
func SchedulePDF(contract *model.Contract, schedule *model.Schedule, summary model.Summary) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Contract %d - %s", contract.ContractID, contract.ProductName)),
		"", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Sampled: %s    Deadline: %s    Season: %s",
		contract.SampleCollectionDate, contract.ContractDeadline, schedule.Season),
		"", 1, "L", false, 0, "")
	pdf.Ln(4)

	// 表头
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range pdfHeader {
		pdf.CellFormat(pdfColWidths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// 数据行
	pdf.SetFont("Helvetica", "", 10)
	for i := range schedule.Assignments {
		a := &schedule.Assignments[i]
		cells := []string{a.TestName, string(a.Status), "-", "-", "-", "-", "-"}
		if a.Resolved() {
			cells[2] = a.LabName
			cells[3] = a.StartDate
			cells[4] = a.FinishDate
			cells[5] = fmt.Sprintf("%d", a.DaysBeforeDeadline)
			cells[6] = fmt.Sprintf("%.2f", a.Price)
		}
		for j, c := range cells {
			align := "L"
			if j >= 3 {
				align = "R"
			}
			pdf.CellFormat(pdfColWidths[j], 7, tr(c), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Total cost: %.2f", summary.TotalCost), "", 1, "L", false, 0, "")
	if summary.MissedCount > 0 {
		pdf.SetTextColor(200, 0, 0)
		pdf.CellFormat(0, 7, fmt.Sprintf("Tests missing deadline: %d", summary.MissedCount), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
