package auth

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/blog/config"
	"terminal-terrace/blog/internal/dto"
	"terminal-terrace/blog/pkg/response"
)

type AuthHandler struct {
	service *AuthService
}

func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login 登录
// @Summary 管理员登录
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录请求"
// @Success 200 {object} response.Response{data=dto.LoginResponse}
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, bizErr := h.service.Login(req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	// 写 cookie：access_token 用于请求认证，refresh_token 用于续期
	accessMaxAge := config.Conf.JWT.ExpireTime * 3600
	c.SetCookie("access_token", result.AccessToken, accessMaxAge, "/", "", false, true)
	c.SetCookie("refresh_token", result.RefreshToken, int(result.RefreshTTL.Seconds()), "/", "", false, true)

	dto.SuccessResponse(c, dto.LoginResponse{
		Username:    result.User.Username,
		RedirectURL: "/admin/dashboard",
	})
}

// Refresh 刷新访问令牌
// @Summary 用 refresh token 换新的 access token
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token, err := c.Cookie("refresh_token")
	if err != nil || token == "" {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("未提供刷新令牌"),
		))
		return
	}

	result, bizErr := h.service.Refresh(token)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	accessMaxAge := config.Conf.JWT.ExpireTime * 3600
	refreshMaxAge := config.Conf.JWT.RefreshTTL * 3600
	c.SetCookie("access_token", result.AccessToken, accessMaxAge, "/", "", false, true)
	c.SetCookie("refresh_token", result.RefreshToken, refreshMaxAge, "/", "", false, true)

	dto.SuccessResponse(c, nil)
}

// Logout 登出
// @Summary 登出并撤销会话
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie("refresh_token")
	h.service.Logout(token)

	// 清除 cookie
	c.SetCookie("access_token", "", -1, "/", "", false, true)
	c.SetCookie("refresh_token", "", -1, "/", "", false, true)

	dto.SuccessResponse(c, nil)
}

// ChangePassword 修改密码
// @Summary 修改当前登录用户的密码
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "修改密码请求"
// @Success 200 {object} response.Response
// @Router /change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	userID, _ := c.Get("user_id")

	if bizErr := h.service.ChangePassword(userID.(uint), req); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, nil)
}
