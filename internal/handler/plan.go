// Package handler 提供HTTP请求处理器
package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SherGrigory/ScedulerLab/internal/metrics"
	"github.com/SherGrigory/ScedulerLab/pkg/errors"
	"github.com/SherGrigory/ScedulerLab/pkg/model"
	"github.com/SherGrigory/ScedulerLab/pkg/planner"
	"github.com/SherGrigory/ScedulerLab/pkg/validator"
)

// PlanHandler 排期处理器
type PlanHandler struct {
	planner *planner.Planner
	checker *validator.InvariantChecker
}

// NewPlanHandler 创建排期处理器
func NewPlanHandler() *PlanHandler {
	return &PlanHandler{
		planner: planner.New(),
		checker: validator.NewInvariantChecker(),
	}
}

// GenerateRequest 排期生成请求
//
// 合同二选一：直接给 contract，或给 contracts 全表 + contract_id 选择。
type GenerateRequest struct {
	Contract   *model.Contract     `json:"contract,omitempty"`
	Contracts  []*model.Contract   `json:"contracts,omitempty"`
	ContractID int                 `json:"contract_id,omitempty"`
	Labs       []*model.Lab        `json:"labs"`
	Tests      []*model.TestMethod `json:"tests"`
}

// GenerateResponse 排期生成响应
type GenerateResponse struct {
	Success  bool            `json:"success"`
	Schedule *model.Schedule `json:"schedule"`
	Summary  model.Summary   `json:"summary"`
	Duration string          `json:"duration"`
}

// selectContract 从请求中解析目标合同
func selectContract(req *GenerateRequest) (*model.Contract, error) {
	if req.Contract != nil {
		return req.Contract, nil
	}
	for _, c := range req.Contracts {
		if c.ContractID == req.ContractID {
			return c, nil
		}
	}
	if len(req.Contracts) > 0 {
		return nil, errors.NotFound("合同", fmt.Sprintf("%d", req.ContractID))
	}
	return nil, errors.InvalidInput("contract", "缺少合同数据")
}

// Generate 生成排期
func (h *PlanHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持POST方法"))
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidInput, "解析请求失败"))
		return
	}

	contract, err := selectContract(&req)
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
		metrics.RecordPlanGeneration(false, 0)
		respondError(w, err)
		return
	}

	metrics.RecordPlanGeneration(true, result.Duration)
	metrics.RecordPlanSummary(result.Summary.TotalCost, result.Summary.MissedCount)
	for i := range result.Schedule.Assignments {
		metrics.RecordAssignment(string(result.Schedule.Assignments[i].Status))
	}

	respondJSON(w, http.StatusOK, GenerateResponse{
		Success:  true,
		Schedule: result.Schedule,
		Summary:  result.Summary,
		Duration: result.Duration.String(),
	})
}

// ValidateRequest 排期验证请求
type ValidateRequest struct {
	Contract *model.Contract     `json:"contract"`
	Schedule *model.Schedule     `json:"schedule"`
	Labs     []*model.Lab        `json:"labs"`
	Tests    []*model.TestMethod `json:"tests"`
}

// ValidateResponse 排期验证响应
type ValidateResponse struct {
	Valid      bool                  `json:"valid"`
	Violations []validator.Violation `json:"violations,omitempty"`
}

// Validate 验证排期方案的不变量
func (h *PlanHandler) Validate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持POST方法"))
		return
	}

	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidInput, "解析请求失败"))
		return
	}
	if req.Contract == nil || req.Schedule == nil {
		respondError(w, errors.InvalidInput("contract/schedule", "不能为空"))
		return
	}

	violations := h.checker.Check(req.Contract, req.Schedule, req.Labs, req.Tests)

	respondJSON(w, http.StatusOK, ValidateResponse{
		Valid:      len(violations) == 0,
		Violations: violations,
	})
}
