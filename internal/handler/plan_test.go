package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SherGrigory/ScedulerLab/pkg/model"
)

func requestBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("序列化请求失败: %v", err)
	}
	return bytes.NewReader(data)
}

func generateRequest() GenerateRequest {
	return GenerateRequest{
		Contract: &model.Contract{
			ContractID:           1,
			ProductName:          "Препарат X",
			RequiredTests:        "Residue;Purity",
			SampleCollectionDate: "2024-01-10",
			ContractDeadline:     "2024-02-09",
		},
		Labs: []*model.Lab{
			{
				LabID:                     1,
				Name:                      "Лаборатория А",
				SupportedTests:            "Residue;Purity",
				TurnaroundDays:            7,
				StorageConditionsAccepted: "+4C;-20C",
				SeasonsAllowed:            "all",
				PricePerTest:              120,
			},
		},
		Tests: []*model.TestMethod{
			{TestID: 1, TestName: "Residue", DurationDays: 3, RequiredStorageCondition: "+4C"},
			{TestID: 2, TestName: "Purity", DurationDays: 2},
		},
	}
}

func TestPlanHandler_Generate(t *testing.T) {
	h := NewPlanHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/plan/generate", requestBody(t, generateRequest()))
	rec := httptest.NewRecorder()
	h.Generate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, expected 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp GenerateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if !resp.Success {
		t.Error("success 应为 true")
	}
	if len(resp.Schedule.Assignments) != 2 {
		t.Fatalf("排期项数 = %d, expected 2", len(resp.Schedule.Assignments))
	}
	if resp.Summary.TotalCost != 240 {
		t.Errorf("总成本 = %v, expected 240", resp.Summary.TotalCost)
	}
}

func TestPlanHandler_Generate_SelectByContractID(t *testing.T) {
	h := NewPlanHandler()

	body := generateRequest()
	body.Contracts = []*model.Contract{body.Contract, {ContractID: 2, RequiredTests: "Purity",
		SampleCollectionDate: "2024-01-10", ContractDeadline: "2024-02-09"}}
	body.Contract = nil
	body.ContractID = 2

	req := httptest.NewRequest(http.MethodPost, "/api/v1/plan/generate", requestBody(t, body))
	rec := httptest.NewRecorder()
	h.Generate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, expected 200", rec.Code)
	}

	var resp GenerateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if resp.Schedule.ContractID != 2 {
		t.Errorf("合同ID = %d, expected 2", resp.Schedule.ContractID)
	}
}

func TestPlanHandler_Generate_Rejects(t *testing.T) {
	h := NewPlanHandler()

	tests := []struct {
		name     string
		method   string
		mutate   func(*GenerateRequest)
		expected int
	}{
		{
			name:     "GET方法",
			method:   http.MethodGet,
			mutate:   func(r *GenerateRequest) {},
			expected: http.StatusBadRequest,
		},
		{
			name:     "空实验室目录",
			method:   http.MethodPost,
			mutate:   func(r *GenerateRequest) { r.Labs = nil },
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "空方法目录",
			method:   http.MethodPost,
			mutate:   func(r *GenerateRequest) { r.Tests = nil },
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "缺少合同",
			method:   http.MethodPost,
			mutate:   func(r *GenerateRequest) { r.Contract = nil },
			expected: http.StatusBadRequest,
		},
		{
			name:   "合同ID不存在",
			method: http.MethodPost,
			mutate: func(r *GenerateRequest) {
				r.Contracts = []*model.Contract{r.Contract}
				r.Contract = nil
				r.ContractID = 99
			},
			expected: http.StatusNotFound,
		},
		{
			name:   "合同日期无效",
			method: http.MethodPost,
			mutate: func(r *GenerateRequest) {
				r.Contract.SampleCollectionDate = "10.01.2024"
			},
			expected: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := generateRequest()
			tt.mutate(&body)

			req := httptest.NewRequest(tt.method, "/api/v1/plan/generate", requestBody(t, body))
			rec := httptest.NewRecorder()
			h.Generate(rec, req)

			if rec.Code != tt.expected {
				t.Errorf("状态码 = %d, expected %d, body: %s", rec.Code, tt.expected, rec.Body.String())
			}

			var body2 errorBody
			if err := json.Unmarshal(rec.Body.Bytes(), &body2); err != nil {
				t.Fatalf("解析错误响应失败: %v", err)
			}
			if !body2.Error {
				t.Error("error 应为 true")
			}
		})
	}
}

func TestPlanHandler_Validate(t *testing.T) {
	h := NewPlanHandler()

	// 先生成合法方案
	genReq := httptest.NewRequest(http.MethodPost, "/api/v1/plan/generate", requestBody(t, generateRequest()))
	genRec := httptest.NewRecorder()
	h.Generate(genRec, genReq)

	var genResp GenerateResponse
	if err := json.Unmarshal(genRec.Body.Bytes(), &genResp); err != nil {
		t.Fatalf("解析生成响应失败: %v", err)
	}

	input := generateRequest()
	valReq := ValidateRequest{
		Contract: input.Contract,
		Schedule: genResp.Schedule,
		Labs:     input.Labs,
		Tests:    input.Tests,
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/plan/validate", requestBody(t, valReq))
	rec := httptest.NewRecorder()
	h.Validate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, expected 200", rec.Code)
	}

	var resp ValidateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if !resp.Valid {
		t.Errorf("引擎产出的方案应通过验证: %+v", resp.Violations)
	}

	// 篡改后应检出违规
	valReq.Schedule.Assignments[1].StartDate = "2024-01-25"
	req = httptest.NewRequest(http.MethodPost, "/api/v1/plan/validate", requestBody(t, valReq))
	rec = httptest.NewRecorder()
	h.Validate(rec, req)

	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if resp.Valid {
		t.Error("篡改后的方案不应通过验证")
	}
}

func TestPlanHandler_Export(t *testing.T) {
	h := NewPlanHandler()

	tests := []struct {
		name        string
		format      string
		contentType string
		check       func(t *testing.T, body []byte)
	}{
		{
			name:        "CSV导出",
			format:      "csv",
			contentType: "text/csv; charset=utf-8",
			check: func(t *testing.T, body []byte) {
				if !strings.HasPrefix(string(body), "test_name,status,") {
					t.Errorf("CSV表头不符: %s", body)
				}
			},
		},
		{
			name:        "默认格式为CSV",
			format:      "",
			contentType: "text/csv; charset=utf-8",
			check:       func(t *testing.T, body []byte) {},
		},
		{
			name:        "PDF导出",
			format:      "pdf",
			contentType: "application/pdf",
			check: func(t *testing.T, body []byte) {
				if !bytes.HasPrefix(body, []byte("%PDF")) {
					t.Error("输出不是合法PDF文件头")
				}
			},
		},
		{
			name:        "文本表格导出",
			format:      "table",
			contentType: "text/plain; charset=utf-8",
			check: func(t *testing.T, body []byte) {
				if !strings.Contains(string(body), "总成本") {
					t.Errorf("表格缺少汇总行: %s", body)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := ExportRequest{GenerateRequest: generateRequest(), Format: tt.format}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/plan/export", requestBody(t, body))
			rec := httptest.NewRecorder()
			h.Export(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("状态码 = %d, expected 200, body: %s", rec.Code, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != tt.contentType {
				t.Errorf("Content-Type = %s, expected %s", ct, tt.contentType)
			}
			tt.check(t, rec.Body.Bytes())
		})
	}
}

func TestPlanHandler_Export_UnknownFormat(t *testing.T) {
	h := NewPlanHandler()

	body := ExportRequest{GenerateRequest: generateRequest(), Format: "xlsx"}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plan/export", requestBody(t, body))
	rec := httptest.NewRecorder()
	h.Export(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("状态码 = %d, expected 400", rec.Code)
	}
}

func TestTemplatesHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/templates", nil)
	rec := httptest.NewRecorder()
	TemplatesHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, expected 200", rec.Code)
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	for _, key := range []string{"labs", "tests", "contracts"} {
		if _, ok := resp[key]; !ok {
			t.Errorf("响应缺少 %s", key)
		}
	}
}
