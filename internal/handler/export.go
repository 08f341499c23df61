// Package handler 提供HTTP请求处理器
package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SherGrigory/ScedulerLab/pkg/errors"
	"github.com/SherGrigory/ScedulerLab/pkg/report"
)

// ExportRequest 排期导出请求
//
// 携带与生成相同的输入，服务端重新排期后按 format 序列化。
type ExportRequest struct {
	GenerateRequest
	Format string `json:"format"` // csv/pdf/table
}

// Export 导出排期文件
func (h *PlanHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持POST方法"))
		return
	}

	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidInput, "解析请求失败"))
		return
	}

	contract, err := selectContract(&req.GenerateRequest)
	if err != nil {
		respondError(w, err)
		return
	}
	if len(req.Labs) == 0 || len(req.Tests) == 0 {
		respondError(w, errors.ErrEmptyCatalog)
		return
	}

	result, err := h.planner.ScheduleContract(contract, req.Labs, req.Tests)
	if err != nil {
		respondError(w, err)
		return
	}

	switch req.Format {
	case "csv", "":
		data, err := report.ScheduleCSV(result.Schedule)
		if err != nil {
			respondError(w, errors.Wrap(err, errors.CodeExportFailed, "CSV导出失败"))
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="plan_contract_%d.csv"`, contract.ContractID))
		w.WriteHeader(http.StatusOK)
		w.Write(data)

	case "pdf":
		data, err := report.SchedulePDF(contract, result.Schedule, result.Summary)
		if err != nil {
			respondError(w, errors.Wrap(err, errors.CodeExportFailed, "PDF导出失败"))
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="plan_contract_%d.pdf"`, contract.ContractID))
		w.WriteHeader(http.StatusOK)
		w.Write(data)

	case "table":
		var buf bytes.Buffer
		if err := report.RenderSchedule(&buf, result.Schedule, result.Summary); err != nil {
			respondError(w, errors.Wrap(err, errors.CodeExportFailed, "表格渲染失败"))
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())

	default:
		respondError(w, errors.InvalidInput("format", fmt.Sprintf("不支持的格式 %q", req.Format)))
	}
}
