package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	apperrors "github.com/AhmadAyoub1/bookstore-backend-render/pkg/errors"
)

// ErrorBody 统一错误响应结构
// 设计说明：
// 1. 成功时直接返回业务数据（对象或数组），不再包一层code/message
// 2. 失败时只返回{"error": "..."}，错误类别由HTTP状态码表达
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody 仅包含提示信息的响应（如删除成功）
type MessageBody struct {
	Message string `json:"message"`
}

// OK 200响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message 200 + {"message": msg}
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageBody{Message: msg})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	book, err := h.getBook.Execute(ctx, id)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := apperrors.HTTPStatus(appErr.Code)

	// 5xx的内部原因只进日志，客户端只看到通用提示
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(c.Request.Context()).Error().
			Err(appErr.Err).
			Int("code", appErr.Code).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg(appErr.Message)
	}

	c.JSON(status, ErrorBody{Error: appErr.Message})
}

// Abort 写入错误响应并终止后续handler（中间件使用）
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
