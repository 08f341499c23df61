// Package handler 提供HTTP请求处理器
package handler

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/SherGrigory/ScedulerLab/pkg/errors"
	"github.com/SherGrigory/ScedulerLab/pkg/logger"
)

// respondJSON 输出JSON响应
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.WithError(err).Msg("写入响应失败")
	}
}

// errorBody 错误响应体
type errorBody struct {
	Error   bool                   `json:"error"`
	Code    errors.Code            `json:"code"`
	Message string                 `json:"message"`
	Fields  map[string]interface{} `json:"fields,omitempty"`
}

// respondError 输出错误响应
func respondError(w http.ResponseWriter, err error) {
	body := errorBody{
		Error:   true,
		Code:    errors.GetCode(err),
		Message: err.Error(),
	}

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		body.Message = appErr.Message
		body.Fields = appErr.Fields
	}

	respondJSON(w, errors.GetHTTPStatus(err), body)
}
