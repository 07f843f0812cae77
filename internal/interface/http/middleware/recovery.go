package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	apperrors "github.com/AhmadAyoub1/bookstore-backend-render/pkg/errors"
	"github.com/AhmadAyoub1/bookstore-backend-render/pkg/response"
)

// Recovery 捕获handler中的panic，返回500 {"error":"Something went wrong!"}
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				zerolog.Ctx(c.Request.Context()).Error().
					Str("stack", string(debug.Stack())).
					Msgf("捕获panic: %v", r)
				response.Abort(c, apperrors.ErrPanic.WithCause(fmt.Errorf("panic: %v", r)))
			}
		}()
		c.Next()
	}
}
