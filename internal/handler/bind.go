package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"social-im/internal/service"
	"social-im/pkg/contract"
	"social-im/pkg/logger"
	"social-im/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bindJSON 解析请求体并按契约校验，失败时已写出响应
func bindJSON[T any](c *gin.Context, schema *contract.Schema) (T, bool) {
	var zero T
	rec := contract.Record{}
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&rec); err != nil && !errors.Is(err, io.EOF) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "请求体不是合法的JSON对象", err)
		return zero, false
	}
	v, err := contract.Decode[T](schema, rec)
	return decoded(c, v, err)
}

// bindQuery 查询参数同名多值时取第一个
func bindQuery[T any](c *gin.Context, schema *contract.Schema) (T, bool) {
	rec := contract.Record{}
	for k, v := range c.Request.URL.Query() {
		if len(v) > 0 {
			rec[k] = v[0]
		}
	}
	v, err := contract.DecodeQuery[T](schema, rec)
	return decoded(c, v, err)
}

// decoded 校验失败时写出错误响应
func decoded[T any](c *gin.Context, v T, err error) (T, bool) {
	if err != nil {
		if verr, ok := contract.AsValidationError(err); ok {
			response.ValidationFailed(c, verr)
			return v, false
		}
		response.ErrorWithDetails(c, http.StatusBadRequest, "请求参数无法解析", err)
		return v, false
	}
	return v, true
}

// uintParam 解析路径中的数字ID
func uintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, name+"格式不正确")
		return 0, false
	}
	return uint(id), true
}

// writeError 业务错误映射为HTTP状态码
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, "资源不存在")
	case errors.Is(err, service.ErrDuplicate):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrPermissionDenied):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrInvalidParent),
		errors.Is(err, service.ErrInvalidTarget):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	default:
		logger.Error("请求处理失败", zap.String("path", c.Request.URL.Path), zap.Error(err))
		response.ErrorWithDetails(c, http.StatusInternalServerError, "服务器内部错误", err)
	}
}
