// Package handler 提供HTTP请求处理器
package handler

import (
	"net/http"

	"github.com/SherGrigory/ScedulerLab/pkg/errors"
	"github.com/SherGrigory/ScedulerLab/pkg/model"
	"github.com/SherGrigory/ScedulerLab/pkg/sample"
)

// TemplatesResponse 示例目录响应
type TemplatesResponse struct {
	Labs      []*model.Lab        `json:"labs"`
	Tests     []*model.TestMethod `json:"tests"`
	Contracts []*model.Contract   `json:"contracts"`
}

// TemplatesHandler 返回示例目录数据
func TemplatesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持GET方法"))
		return
	}

	respondJSON(w, http.StatusOK, TemplatesResponse{
		Labs:      sample.Labs(),
		Tests:     sample.TestMethods(),
		Contracts: sample.Contracts(),
	})
}
