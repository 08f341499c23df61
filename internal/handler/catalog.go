package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/SherGrigory/ScedulerLab/internal/metrics"
	"github.com/SherGrigory/ScedulerLab/internal/repository"
	"github.com/SherGrigory/ScedulerLab/pkg/errors"
	"github.com/SherGrigory/ScedulerLab/pkg/loader"
	"github.com/SherGrigory/ScedulerLab/pkg/logger"
	"github.com/SherGrigory/ScedulerLab/pkg/planner"
)

// CatalogHandler 目录处理器（数据库模式）
type CatalogHandler struct {
	repos   *repository.Catalogs
	loader  *loader.Loader
	planner *planner.Planner
}

// NewCatalogHandler 创建目录处理器
func NewCatalogHandler(repos *repository.Catalogs) *CatalogHandler {
	return &CatalogHandler{
		repos:   repos,
		loader:  loader.NewLoader(),
		planner: planner.New(),
	}
}

// Labs 返回实验室目录
func (h *CatalogHandler) Labs(w http.ResponseWriter, r *http.Request) {
	labs, err := h.repos.Labs.List(r.Context())
	if err != nil {
		respondError(w, errors.Wrap(err, errors.CodeDatabaseError, "查询实验室目录失败"))
		return
	}
	respondJSON(w, http.StatusOK, labs)
}

// Tests 返回检测方法目录
func (h *CatalogHandler) Tests(w http.ResponseWriter, r *http.Request) {
	tests, err := h.repos.Tests.List(r.Context())
	if err != nil {
		respondError(w, errors.Wrap(err, errors.CodeDatabaseError, "查询检测方法目录失败"))
		return
	}
	respondJSON(w, http.StatusOK, tests)
}

// Contracts 返回合同目录
func (h *CatalogHandler) Contracts(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.repos.Contracts.List(r.Context())
	if err != nil {
		respondError(w, errors.Wrap(err, errors.CodeDatabaseError, "查询合同目录失败"))
		return
	}
	respondJSON(w, http.StatusOK, contracts)
}

// ImportRequest 目录导入请求，字段为原始CSV文本
type ImportRequest struct {
	LabsCSV      string `json:"labs_csv,omitempty"`
	TestsCSV     string `json:"tests_csv,omitempty"`
	ContractsCSV string `json:"contracts_csv,omitempty"`
}

// ImportResponse 目录导入响应
type ImportResponse struct {
	Labs      int `json:"labs"`
	Tests     int `json:"tests"`
	Contracts int `json:"contracts"`
}

// Import 导入CSV目录并写入数据库
func (h *CatalogHandler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持POST方法"))
		return
	}

	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidInput, "解析请求失败"))
		return
	}

	var resp ImportResponse
	ctx := r.Context()

	if req.LabsCSV != "" {
		labs, err := h.loader.LoadLabs("labs.csv", []byte(req.LabsCSV))
		if err != nil {
			respondError(w, err)
			return
		}
		for _, lab := range labs {
			if err := h.repos.Labs.Upsert(ctx, lab); err != nil {
				respondError(w, errors.Wrap(err, errors.CodeDatabaseError, "写入实验室失败"))
				return
			}
		}
		resp.Labs = len(labs)
	}

	if req.TestsCSV != "" {
		tests, err := h.loader.LoadTestMethods("tests.csv", []byte(req.TestsCSV))
		if err != nil {
			respondError(w, err)
			return
		}
		for _, t := range tests {
			if err := h.repos.Tests.Upsert(ctx, t); err != nil {
				respondError(w, errors.Wrap(err, errors.CodeDatabaseError, "写入检测方法失败"))
				return
			}
		}
		resp.Tests = len(tests)
	}

	if req.ContractsCSV != "" {
		contracts, err := h.loader.LoadContracts("contracts.csv", []byte(req.ContractsCSV))
		if err != nil {
			respondError(w, err)
			return
		}
		for _, c := range contracts {
			if err := h.repos.Contracts.Upsert(ctx, c); err != nil {
				respondError(w, errors.Wrap(err, errors.CodeDatabaseError, "写入合同失败"))
				return
			}
		}
		resp.Contracts = len(contracts)
	}

	logger.Info().
		Int("labs", resp.Labs).
		Int("tests", resp.Tests).
		Int("contracts", resp.Contracts).
		Msg("目录导入完成")

	respondJSON(w, http.StatusOK, resp)
}

// Plan 为数据库中的合同生成排期
//
// GET /api/v1/catalog/plan?contract_id=N
func (h *CatalogHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持GET方法"))
		return
	}

	contractID, err := strconv.Atoi(r.URL.Query().Get("contract_id"))
	if err != nil {
		respondError(w, errors.InvalidInput("contract_id", "必须为整数"))
		return
	}

	ctx := r.Context()

	contract, err := h.repos.Contracts.GetByID(ctx, contractID)
	if err != nil {
		respondError(w, errors.Wrap(err, errors.CodeDatabaseError, "查询合同失败"))
		return
	}
	if contract == nil {
		respondError(w, errors.NotFound("合同", strconv.Itoa(contractID)))
		return
	}

	labs, err := h.repos.Labs.List(ctx)
	if err != nil {
		respondError(w, errors.Wrap(err, errors.CodeDatabaseError, "查询实验室目录失败"))
		return
	}
	tests, err := h.repos.Tests.List(ctx)
	if err != nil {
		respondError(w, errors.Wrap(err, errors.CodeDatabaseError, "查询检测方法目录失败"))
		return
	}
	if len(labs) == 0 || len(tests) == 0 {
		respondError(w, errors.ErrEmptyCatalog)
		return
	}

	result, err := h.planner.ScheduleContract(contract, labs, tests)
	if err != nil {
		metrics.RecordPlanGeneration(false, 0)
		respondError(w, err)
		return
	}

	metrics.RecordPlanGeneration(true, result.Duration)
	metrics.RecordPlanSummary(result.Summary.TotalCost, result.Summary.MissedCount)

	respondJSON(w, http.StatusOK, GenerateResponse{
		Success:  true,
		Schedule: result.Schedule,
		Summary:  result.Summary,
		Duration: result.Duration.String(),
	})
}
