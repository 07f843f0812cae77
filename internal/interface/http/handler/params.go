package handler

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	apperrors "github.com/AhmadAyoub1/bookstore-backend-render/pkg/errors"
)

// idParam 解析路径中的数字ID
// 非数字、负数、超出范围都返回0,由领域层按"不存在"处理
func idParam(c *gin.Context, name string) uint {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// bind 按Content-Type绑定JSON或表单,失败时返回400 Invalid request body
// 空的JSON请求体按{}处理,由业务校验给出缺字段的提示
func bind(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBind(obj); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperrors.ErrBindError.WithCause(err)
	}
	return nil
}

func isJSON(c *gin.Context) bool {
	return c.ContentType() == binding.MIMEJSON
}
