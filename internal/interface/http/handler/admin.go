package handler

import (
	"github.com/gin-gonic/gin"

	appadmin "github.com/AhmadAyoub1/bookstore-backend-render/internal/application/admin"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/interface/http/dto"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/interface/http/middleware"
	"github.com/AhmadAyoub1/bookstore-backend-render/pkg/response"
)

// AdminHandler 管理员HTTP处理器
type AdminHandler struct {
	login      *appadmin.LoginUseCase
	getSession *appadmin.GetSessionUseCase
}

// NewAdminHandler 创建管理员处理器
func NewAdminHandler(login *appadmin.LoginUseCase, getSession *appadmin.GetSessionUseCase) *AdminHandler {
	return &AdminHandler{login: login, getSession: getSession}
}

// Login 管理员登录
// @Summary      管理员登录
// @Description  邮箱不存在和密码错误返回相同的401
// @Tags         管理员
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} appadmin.LoginResponse
// @Failure      400 {object} response.ErrorBody "Email and password required"
// @Failure      401 {object} response.ErrorBody "Invalid credentials"
// @Router       /api/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := bind(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.login.Execute(c.Request.Context(), appadmin.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
		IP:       c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Session 当前管理员的最近登录记录
// @Summary      登录记录
// @Tags         管理员
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} appadmin.SessionView
// @Failure      401 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody "Session not found"
// @Router       /api/admin/session [get]
func (h *AdminHandler) Session(c *gin.Context) {
	s, err := h.getSession.Execute(c.Request.Context(), middleware.GetAdminID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, s)
}
